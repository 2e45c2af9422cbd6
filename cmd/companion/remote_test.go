package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormat_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    OutputFormat
		wantErr bool
	}{
		{name: "text", value: "text", want: OutputText},
		{name: "json", value: "json", want: OutputJSON},
		{name: "invalid value", value: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var format OutputFormat
			err := format.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid value")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, format)
		})
	}
}

func TestOutputFormat_String(t *testing.T) {
	var nilFormat *OutputFormat
	assert.Equal(t, "", nilFormat.String())

	format := OutputJSON
	assert.Equal(t, "json", format.String())
}

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","message":"Service is healthy","timestamp":"2025-01-30T09:00:00.000Z","environment":"test"}`))
	})
	mux.HandleFunc("/api/lessons", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"lessons":[{"id":1,"title":"Greetings","difficulty":"beginner","summary":"Say hello"}]}`))
	})
	mux.HandleFunc("/api/progress", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("userId") != "42" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"status":"error","message":"Invalid request"}`))
			return
		}
		_, _ = w.Write([]byte(`{"progress":{"user_id":42,"attempts_count":4,"total_correct":14,"total_questions":20,
			"accuracy":0.7,"vocab_count":12,"updated_at":"2025-01-01T00:00:00Z"}}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRemoteCommands(t *testing.T) {
	server := newAPIServer(t)

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr string
	}{
		{
			name: "health",
			args: []string{"health", "--server", server.URL},
			want: "ok: Service is healthy\nenvironment: test\ntimestamp:   2025-01-30T09:00:00.000Z\n",
		},
		{
			name: "health as json",
			args: []string{"health", "--server", server.URL, "--output", "json"},
			want: "{\n  \"status\": \"ok\",\n  \"message\": \"Service is healthy\",\n" +
				"  \"timestamp\": \"2025-01-30T09:00:00.000Z\",\n  \"environment\": \"test\"\n}\n",
		},
		{
			name: "lessons",
			args: []string{"lessons", "--server", server.URL},
			want: "1\tbeginner    \tGreetings\n",
		},
		{
			name: "progress",
			args: []string{"progress", "--server", server.URL, "--user-id", "42"},
			want: "user:       42\nattempts:   4\ncorrect:    14 / 20\naccuracy:   70.0%\nvocabulary: 12\n",
		},
		{
			name:    "progress requires a user id",
			args:    []string{"progress", "--server", server.URL},
			wantErr: `required flag(s) "user-id" not set`,
		},
		{
			name:    "progress surfaces API errors",
			args:    []string{"progress", "--server", server.URL, "--user-id", "7", "--retries", "0"},
			wantErr: "response error 400: Invalid request",
		},
		{
			name:    "invalid output format",
			args:    []string{"health", "--server", server.URL, "--output", "yaml"},
			wantErr: "invalid value \"yaml\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := executeCommand(t, tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
