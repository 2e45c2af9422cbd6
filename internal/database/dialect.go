package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/english-companion/internal/config"
)

// InsertReturningID executes an INSERT written with ? placeholders and returns the generated id.
// Postgres has no LastInsertId, so RETURNING id is appended there.
func InsertReturningID(ctx context.Context, db sqlx.ExtContext, query string, args ...interface{}) (int64, error) {
	if db.DriverName() == config.DriverPostgres {
		var id int64
		if err := db.QueryRowxContext(ctx, db.Rebind(query+" RETURNING id"), args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("db.QueryRowxContext(insert returning id) > %w", err)
		}
		return id, nil
	}

	result, err := db.ExecContext(ctx, db.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("db.ExecContext(insert) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("result.LastInsertId() > %w", err)
	}
	return id, nil
}

// OnConflictUpdate returns the upsert clause that overwrites columns when keys collide.
// updated_at is always refreshed.
func OnConflictUpdate(driverName string, keys []string, columns []string) string {
	assignments := make([]string, 0, len(columns)+1)
	if driverName == config.DriverMySQL {
		for _, c := range columns {
			assignments = append(assignments, fmt.Sprintf("%s = VALUES(%s)", c, c))
		}
		assignments = append(assignments, "updated_at = CURRENT_TIMESTAMP")
		return "ON DUPLICATE KEY UPDATE " + strings.Join(assignments, ", ")
	}

	for _, c := range columns {
		assignments = append(assignments, fmt.Sprintf("%s = excluded.%s", c, c))
	}
	assignments = append(assignments, "updated_at = CURRENT_TIMESTAMP")
	return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s", strings.Join(keys, ", "), strings.Join(assignments, ", "))
}
