package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		placed []PlacedBlock
		want   []PlacedBlock
	}{
		{"empty", nil, nil},
		{
			"negative corner",
			[]PlacedBlock{{X: -8, Y: 19, Z: -1, Name: "a"}, {X: -15, Y: 8, Z: 0, Name: "b"}},
			[]PlacedBlock{{X: 7, Y: 11, Z: 0, Name: "a"}, {X: 0, Y: 0, Z: 1, Name: "b"}},
		},
		{
			"positive offset",
			[]PlacedBlock{{X: 3, Y: 64, Z: 2, Name: "a"}},
			[]PlacedBlock{{X: 0, Y: 0, Z: 0, Name: "a"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.placed)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, Measure(tt.placed), Measure(got))
		})
	}
}

func TestNormalizeLeavesInputUntouched(t *testing.T) {
	placed := []PlacedBlock{{X: -1, Y: -1, Z: -1, Name: "a"}}
	Normalize(placed)
	assert.Equal(t, PlacedBlock{X: -1, Y: -1, Z: -1, Name: "a"}, placed[0])
}
