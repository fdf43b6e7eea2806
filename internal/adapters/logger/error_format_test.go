package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/osw/internal/adapters/logger"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, logger.CollectErrorEntriesExported(nil))
	})

	t.Run("plain error", func(t *testing.T) {
		entries := logger.CollectErrorEntriesExported(errors.New("disk full"))
		assert.Equal(t, []logger.ErrorEntry{{Message: "disk full"}}, entries)
	})

	t.Run("step failure chain", func(t *testing.T) {
		err := zerr.With(zerr.Wrap(
			zerr.With(zerr.Wrap(errors.New("no roof found"), "measure returned false"), "measure", "needs_roof"),
			"step failed",
		), "step", 2)

		entries := logger.CollectErrorEntriesExported(err)
		assert.Equal(t, []string{"step failed", "measure returned false", "no roof found"}, messages(entries))
		assert.Equal(t, map[string]any{"step": 2}, entries[0].Metadata)
		assert.Equal(t, map[string]any{"measure": "needs_roof"}, entries[1].Metadata)
		assert.Nil(t, entries[2].Metadata)
	})

	t.Run("stacked metadata merges into one link", func(t *testing.T) {
		err := zerr.With(zerr.With(zerr.New("cache miss"), "namespace", "model"), "path", "/w/house.osm")
		entries := logger.CollectErrorEntriesExported(err)
		assert.Equal(t, []logger.ErrorEntry{{
			Message:  "cache miss",
			Metadata: map[string]any{"namespace": "model", "path": "/w/house.osm"},
		}}, entries)
	})

	t.Run("metadata on a plain error moves to its cause", func(t *testing.T) {
		entries := logger.CollectErrorEntriesExported(zerr.With(domain.ErrNotFound, "path", "/w/house.osm"))
		assert.Equal(t, []logger.ErrorEntry{{
			Message:  domain.ErrNotFound.Error(),
			Metadata: map[string]any{"path": "/w/house.osm"},
		}}, entries)
	})
}

func messages(entries []logger.ErrorEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Message)
	}
	return out
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{name: "empty", want: ""},
		{
			name:    "single",
			entries: []logger.ErrorEntry{{Message: "workflow not found"}},
			want:    "Error: workflow not found",
		},
		{
			name: "causes with metadata",
			entries: []logger.ErrorEntry{
				{Message: "run failed", Metadata: map[string]any{"run": "r1"}},
				{Message: "step failed", Metadata: map[string]any{"step": 2, "measure": "needs_roof"}},
				{Message: "no roof found"},
			},
			want: "Error: run failed\n" +
				"       run: r1\n\n" +
				"  Caused by:\n" +
				"    → step failed\n" +
				"      measure: needs_roof\n" +
				"      step: 2\n" +
				"    → no roof found",
		},
		{
			name: "multiline messages keep their indent",
			entries: []logger.ErrorEntry{
				{Message: "script error\nline 3: undefined: x"},
				{Message: "compile\nfailed"},
			},
			want: "Error: script error\n" +
				"       line 3: undefined: x\n\n" +
				"  Caused by:\n" +
				"    → compile\n" +
				"      failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(tt.entries))
		})
	}
}
