package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionFromID(t *testing.T) {
	assert.Equal(t, PositionQB, PositionFromID(1))
	assert.Equal(t, PositionRB, PositionFromID(2))
	assert.Equal(t, PositionWR, PositionFromID(3))
	assert.Equal(t, PositionTE, PositionFromID(4))
	assert.Equal(t, PositionK, PositionFromID(5))
	assert.Equal(t, PositionDST, PositionFromID(16))

	// IDP and other unmapped slots
	assert.Equal(t, PositionFlex, PositionFromID(9))
	assert.Equal(t, PositionFlex, PositionFromID(0))
}

func TestScoringThresholds(t *testing.T) {
	tests := []struct {
		position Position
		boom     float64
		bust     float64
	}{
		{PositionQB, 25, 10},
		{PositionRB, 20, 5},
		{PositionWR, 20, 5},
		{PositionTE, 15, 3},
		{PositionK, 12, 3},
		{PositionDST, 15, 2},
		{PositionFlex, 15, 5},
		{PositionUnknown, 15, 5},
	}

	for _, tc := range tests {
		t.Run(string(tc.position), func(t *testing.T) {
			assert.Equal(t, tc.boom, tc.position.BoomThreshold())
			assert.Equal(t, tc.bust, tc.position.BustThreshold())
		})
	}
}
