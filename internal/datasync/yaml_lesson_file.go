package datasync

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ReadLessonFile decodes a YAML lesson fixture file. Unknown keys are rejected.
func ReadLessonFile(path string) (*LessonFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() { _ = f.Close() }()

	file, err := DecodeLessonFile(f)
	if err != nil {
		return nil, fmt.Errorf("DecodeLessonFile(%s) > %w", path, err)
	}
	return file, nil
}

func DecodeLessonFile(r io.Reader) (*LessonFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file LessonFile
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return &file, nil
		}
		return nil, fmt.Errorf("decode lesson file: %w", err)
	}
	return &file, nil
}

// YAMLLessonSink writes lesson documents to a YAML file.
type YAMLLessonSink struct {
	path string
}

func NewYAMLLessonSink(path string) *YAMLLessonSink {
	return &YAMLLessonSink{path: path}
}

func (s *YAMLLessonSink) WriteAll(file *LessonFile) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := writeYAML(s.path, file); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func writeYAML(path string, data interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}
