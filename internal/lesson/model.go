package lesson

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ListItem is the summary row returned by lesson listings.
type ListItem struct {
	ID         int64  `db:"id" json:"id"`
	Title      string `db:"title" json:"title"`
	Difficulty string `db:"difficulty" json:"difficulty"`
	Summary    string `db:"summary" json:"summary"`
}

// Lesson is a lesson with its raw content document.
type Lesson struct {
	ID          int64       `db:"id" json:"id"`
	Title       string      `db:"title" json:"title"`
	Difficulty  string      `db:"difficulty" json:"difficulty"`
	Summary     string      `db:"summary" json:"summary"`
	ContentJSON ContentJSON `db:"content_json" json:"content_json"`
	CreatedAt   time.Time   `db:"created_at" json:"-"`
	UpdatedAt   time.Time   `db:"updated_at" json:"-"`
}

// Content decodes the lesson's content document.
func (l Lesson) Content() Content {
	return ParseContent(l.ContentJSON)
}

// ContentJSON holds the content document exactly as stored.
type ContentJSON []byte

func (c *ContentJSON) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*c = nil
	case []byte:
		*c = append(ContentJSON(nil), v...)
	case string:
		*c = ContentJSON(v)
	default:
		return fmt.Errorf("unsupported content_json type %T", src)
	}
	return nil
}

// Value returns a string so that drivers bind it as text rather than bytea/blob.
func (c ContentJSON) Value() (driver.Value, error) {
	if len(c) == 0 {
		return nil, nil
	}
	return string(c), nil
}

func (c ContentJSON) MarshalJSON() ([]byte, error) {
	if len(c) == 0 {
		return []byte("null"), nil
	}
	if !json.Valid(c) {
		return json.Marshal(string(c))
	}
	return []byte(c), nil
}

func (c *ContentJSON) UnmarshalJSON(data []byte) error {
	*c = append(ContentJSON(nil), data...)
	return nil
}

// Content is the typed view of a lesson's content document.
// Entries keep their position in the document; malformed entries decode to zero values.
type Content struct {
	Vocabulary    []VocabularyEntry `json:"vocabulary" yaml:"vocabulary"`
	GrammarPoints []GrammarPoint    `json:"grammar_points" yaml:"grammar_points"`
}

type VocabularyEntry struct {
	Term       string `json:"term" yaml:"term"`
	Definition string `json:"definition" yaml:"definition"`
	Example    string `json:"example,omitempty" yaml:"example,omitempty"`
}

type GrammarPoint struct {
	Point       string `json:"point" yaml:"point"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// ParseContent decodes raw into Content. It never fails: anything that is not the
// expected shape is treated as absent.
func ParseContent(raw []byte) Content {
	var content Content

	var document map[string]json.RawMessage
	if err := json.Unmarshal(raw, &document); err != nil {
		return content
	}

	for _, item := range rawArray(document["vocabulary"]) {
		fields := rawObject(item)
		content.Vocabulary = append(content.Vocabulary, VocabularyEntry{
			Term:       stringField(fields, "term"),
			Definition: stringField(fields, "definition"),
			Example:    stringField(fields, "example"),
		})
	}
	for _, item := range rawArray(document["grammar_points"]) {
		fields := rawObject(item)
		content.GrammarPoints = append(content.GrammarPoints, GrammarPoint{
			Point:       stringField(fields, "point"),
			Explanation: stringField(fields, "explanation"),
		})
	}
	return content
}

func rawArray(raw json.RawMessage) []json.RawMessage {
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return nil
	}
	return items
}

func rawObject(raw json.RawMessage) map[string]json.RawMessage {
	var fields map[string]json.RawMessage
	if json.Unmarshal(raw, &fields) != nil {
		return nil
	}
	return fields
}

func stringField(fields map[string]json.RawMessage, key string) string {
	var s string
	if raw, ok := fields[key]; ok && json.Unmarshal(raw, &s) == nil {
		return s
	}
	return ""
}
