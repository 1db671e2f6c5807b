package main

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/observability"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/storage"
)

type flakyWriter struct {
	failAt  int
	written []string
}

func (w *flakyWriter) Upsert(ctx context.Context, rec *storage.Record) error {
	if len(w.written) == w.failAt {
		return errors.New("disk full")
	}
	w.written = append(w.written, rec.MaterialColor)
	return nil
}

type countingInvalidator struct{ calls int }

func (c *countingInvalidator) Invalidate(ctx context.Context) error {
	c.calls++
	return nil
}

func withQuietOutput(t *testing.T) {
	t.Helper()
	prevUI, prevLogger := ui, logger
	ui = NewUI(io.Discard, true)
	logger = observability.NopLogger()
	t.Cleanup(func() { ui, logger = prevUI, prevLogger })
}

func seedFixture() []storage.Record {
	return []storage.Record{
		{MatType: "klasyczne", CellStructure: "romby", MaterialColor: "black", BorderColor: "czarny"},
		{MatType: "klasyczne", CellStructure: "romby", MaterialColor: "grey", BorderColor: "czarny"},
		{MatType: "klasyczne", CellStructure: "romby", MaterialColor: "red", BorderColor: "czarny"},
	}
}

func TestSeedRecords(t *testing.T) {
	tests := []struct {
		name            string
		failAt          int
		wantWritten     int
		wantErr         bool
		wantInvalidated int
	}{
		{"all written", -1, 3, false, 1},
		{"partial failure still invalidates", 2, 2, true, 1},
		{"first record fails", 0, 0, true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			withQuietOutput(t)
			w := &flakyWriter{failAt: tc.failAt}
			inv := &countingInvalidator{}

			written, err := seedRecords(context.Background(), w, inv, seedFixture())
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.wantWritten, written)
			assert.Len(t, w.written, tc.wantWritten)
			assert.Equal(t, tc.wantInvalidated, inv.calls)
		})
	}
}

func TestSeedRecords_NoCache(t *testing.T) {
	withQuietOutput(t)

	written, err := seedRecords(context.Background(), &flakyWriter{failAt: -1}, nil, seedFixture())
	require.NoError(t, err)
	assert.Equal(t, 3, written)
}
