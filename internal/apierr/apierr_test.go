package apierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "not found", err: NotFound("Lesson not found"), want: KindNotFound},
		{name: "validation", err: Validation("Quiz has no questions"), want: KindValidation},
		{name: "wrapped not found", err: fmt.Errorf("quizService.Submit > %w", NotFound("Quiz not found")), want: KindNotFound},
		{name: "internal", err: Internal(errors.New("connection refused")), want: KindInternal},
		{name: "plain error", err: errors.New("boom"), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestError_Error(t *testing.T) {
	cause := errors.New("connection refused")

	assert.Equal(t, "Lesson not found", NotFound("Lesson not found").Error())
	assert.Equal(t, "connection refused", Internal(cause).Error())
	assert.Equal(t, "validation_failed", (&Error{Kind: KindValidation}).Error())
	assert.Equal(t, "load quiz: connection refused", (&Error{Message: "load quiz", Err: cause}).Error())
	assert.ErrorIs(t, Internal(cause), cause)
}

func TestAs(t *testing.T) {
	err := fmt.Errorf("wrap > %w", Validation("Invalid request", Detail{Path: []string{"userId"}, Message: "userId is required"}))

	got, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, KindValidation, got.Kind)
	require.Len(t, got.Details, 1)
	assert.Equal(t, []string{"userId"}, got.Details[0].Path)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}
