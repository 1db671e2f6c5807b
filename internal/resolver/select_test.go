package resolver

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/storage"
)

func TestSelect(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	idLow := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	idHigh := uuid.MustParse("ffffffff-0000-0000-0000-000000000001")

	tests := []struct {
		name      string
		records   []storage.Record
		materials []string
		borders   []string
		wantID    uuid.UUID
	}{
		{
			name: "material rank first",
			records: []storage.Record{
				{ID: idLow, MaterialColor: "niebieski", BorderColor: "granatowy", UpdatedAt: t0.Add(time.Hour)},
				{ID: idHigh, MaterialColor: "blue", BorderColor: "granatowe", UpdatedAt: t0},
			},
			materials: []string{"blue", "niebieski"},
			borders:   []string{"granatowy", "granatowe"},
			wantID:    idHigh,
		},
		{
			name: "border rank second",
			records: []storage.Record{
				{ID: idLow, MaterialColor: "blue", BorderColor: "granatowe", UpdatedAt: t0.Add(time.Hour)},
				{ID: idHigh, MaterialColor: "blue", BorderColor: "granatowy", UpdatedAt: t0},
			},
			materials: []string{"blue"},
			borders:   []string{"granatowy", "granatowe"},
			wantID:    idHigh,
		},
		{
			name: "most recent update third",
			records: []storage.Record{
				{ID: idLow, MaterialColor: "blue", BorderColor: "granatowy", UpdatedAt: t0},
				{ID: idHigh, MaterialColor: "blue", BorderColor: "granatowy", UpdatedAt: t0.Add(time.Hour)},
			},
			materials: []string{"blue"},
			borders:   []string{"granatowy"},
			wantID:    idHigh,
		},
		{
			name: "lowest id last",
			records: []storage.Record{
				{ID: idHigh, MaterialColor: "blue", BorderColor: "granatowy", UpdatedAt: t0},
				{ID: idLow, MaterialColor: "blue", BorderColor: "granatowy", UpdatedAt: t0},
			},
			materials: []string{"blue"},
			borders:   []string{"granatowy"},
			wantID:    idLow,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			best, others := Select(tc.records, tc.materials, tc.borders)
			assert.Equal(t, tc.wantID, best.ID)
			assert.Len(t, others, len(tc.records)-1)
		})
	}
}

func TestSelect_DoesNotReorderInput(t *testing.T) {
	records := []storage.Record{
		{ID: uuid.New(), MaterialColor: "b", BorderColor: "x"},
		{ID: uuid.New(), MaterialColor: "a", BorderColor: "x"},
	}
	first := records[0].ID

	best, _ := Select(records, []string{"a", "b"}, []string{"x"})
	assert.Equal(t, records[1].ID, best.ID)
	assert.Equal(t, first, records[0].ID)
}
