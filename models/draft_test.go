package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraftCapital(t *testing.T) {
	first := &DraftPick{OverallPick: 1}
	assert.Equal(t, 192, first.DraftCapital())

	last := &DraftPick{OverallPick: 192}
	assert.Equal(t, 1, last.DraftCapital())

	beyond := &DraftPick{OverallPick: 193}
	assert.Equal(t, 0, beyond.DraftCapital())
}

func TestPickValue(t *testing.T) {
	pick := &DraftPick{OverallPick: 93, SeasonStats: SeasonStats{SeasonPoints: 200}}
	assert.Equal(t, 2.0, pick.Value())

	// no capital means no value signal regardless of production
	deep := &DraftPick{OverallPick: 193, SeasonStats: SeasonStats{SeasonPoints: 300}}
	assert.Equal(t, 0.0, deep.Value())

	deeper := &DraftPick{OverallPick: 250, SeasonStats: SeasonStats{SeasonPoints: 300}}
	assert.Equal(t, 0.0, deeper.Value())
}
