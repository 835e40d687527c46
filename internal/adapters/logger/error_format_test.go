package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/lockcheck/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "zerr wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "metadata on a standard error",
			err:          zerr.With(errors.New("exit status 1"), "exit_code", 1),
			wantMessages: []string{"exit status 1"},
			wantMetadata: []map[string]any{{"exit_code": 1}},
		},
		{
			name: "metadata on both links",
			err: func() error {
				inner := zerr.With(zerr.New("inner"), "inner_key", "inner_val")
				return zerr.With(zerr.Wrap(inner, "outer"), "outer_key", "outer_val")
			}(),
			wantMessages: []string{"outer", "inner"},
			wantMetadata: []map[string]any{{"outer_key": "outer_val"}, {"inner_key": "inner_val"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			assert.Len(t, entries, len(tt.wantMessages))
			for i, wantMsg := range tt.wantMessages {
				assert.Equal(t, wantMsg, entries[i].Message, "message mismatch at index %d", i)
				assert.Equal(t, tt.wantMetadata[i], entries[i].Metadata, "metadata mismatch at index %d", i)
			}
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "three entries",
			entries: []logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "metadata sorted alphabetically",
			entries: []logger.ErrorEntry{{
				Message:  "error",
				Metadata: map[string]any{"line": 3, "file": "conanfile.txt"},
			}},
			want: "Error: error\n       file: conanfile.txt\n       line: 3",
		},
		{
			name: "metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"exit_code": 2}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      exit_code: 2",
		},
		{
			name:    "multiline cause message",
			entries: []logger.ErrorEntry{{Message: "main"}, {Message: "cause line1\ncause line2"}},
			want:    "Error: main\n\n  Caused by:\n    → cause line1\n      cause line2",
		},
		{
			name:    "empty entries",
			entries: []logger.ErrorEntry{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
