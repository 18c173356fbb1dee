package services

import (
	"testing"

	"ffl-history-go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pickWithConsistency(owner string, overall int, cs float64) *models.DraftPick {
	return &models.DraftPick{
		OwnerName:   owner,
		OverallPick: overall,
		Position:    models.PositionRB,
		Round:       1,
		SeasonStats: models.SeasonStats{ConsistencyScore: cs},
	}
}

func TestConsistencyAverageDilution(t *testing.T) {
	// Zero-consistency picks skip the update but still grow the divisor,
	// diluting the average on the next defined pick.
	agg := NewMetricsAggregator()

	agg.AddPick(pickWithConsistency("Alice", 1, 0))
	agg.AddPick(pickWithConsistency("Alice", 20, 80))
	agg.AddPick(pickWithConsistency("Alice", 40, 60))

	owner := agg.Result().ByOwner["Alice"]
	require.NotNil(t, owner)
	assert.Equal(t, 3, owner.TotalPicks)
	assert.InDelta(t, 46.6667, owner.ConsistencyAvg, 0.001)
}

func TestPickValueFromDraftCapital(t *testing.T) {
	agg := NewMetricsAggregator()

	early := pickWithConsistency("Bob", 1, 0)
	early.SeasonPoints = 100
	late := pickWithConsistency("Bob", 193, 0)
	late.SeasonPoints = 100

	agg.AddPick(early)
	agg.AddPick(late)

	owner := agg.Result().ByOwner["Bob"]
	// overall 1 has capital 192; overall 193 and beyond has none
	assert.Equal(t, 0.0, late.Value())
	assert.Equal(t, early.Value(), owner.TotalValue)
	assert.Equal(t, early, owner.BestPick)
}

func TestOwnerClassificationThresholds(t *testing.T) {
	agg := NewMetricsAggregator()

	boom := pickWithConsistency("Carol", 10, 0)
	boom.BoomGames = 4
	atBoomLine := pickWithConsistency("Carol", 11, 0)
	atBoomLine.BoomGames = 3
	bust := pickWithConsistency("Carol", 12, 0)
	bust.BustGames = 6
	injured := pickWithConsistency("Carol", 13, 0)
	injured.NonScoringGames = 5
	playoff := pickWithConsistency("Carol", 14, 0)
	playoff.PlayoffPoints = 30.5

	for _, p := range []*models.DraftPick{boom, atBoomLine, bust, injured, playoff} {
		agg.AddPick(p)
	}

	owner := agg.Result().ByOwner["Carol"]
	assert.Equal(t, 1, owner.BoomPlayers)
	assert.Equal(t, 1, owner.BustPlayers)
	assert.Equal(t, 1, owner.InjuredPlayers)
	assert.Equal(t, 1, owner.PlayoffPerformers)
}

func TestBestPickTieKeepsFirstSeen(t *testing.T) {
	agg := NewMetricsAggregator()

	first := pickWithConsistency("Dan", 50, 0)
	first.SeasonPoints = 143
	second := pickWithConsistency("Dan", 50, 0)
	second.SeasonPoints = 143

	agg.AddPick(first)
	agg.AddPick(second)

	owner := agg.Result().ByOwner["Dan"]
	assert.Same(t, first, owner.BestPick)
}

func TestWorstPickTracking(t *testing.T) {
	agg := NewMetricsAggregator()

	mid := pickWithConsistency("Eve", 100, 0)
	mid.SeasonPoints = 93
	deep := pickWithConsistency("Eve", 180, 0)
	deep.SeasonPoints = 6.5
	undrafted := pickWithConsistency("Eve", 200, 0)
	undrafted.SeasonPoints = 50

	agg.AddPick(mid)
	owner := agg.Result().ByOwner["Eve"]
	assert.Same(t, mid, owner.WorstPick)

	agg.AddPick(deep)
	assert.Same(t, deep, owner.WorstPick)

	// zero-value picks take over the worst slot
	agg.AddPick(undrafted)
	assert.Same(t, undrafted, owner.WorstPick)
	assert.Equal(t, 0.0, owner.WorstPickValue)
}

func TestBucketGroupings(t *testing.T) {
	agg := NewMetricsAggregator()

	rb1 := &models.DraftPick{OwnerName: "Fay", Position: models.PositionRB, Round: 1, OverallPick: 2}
	rb2 := &models.DraftPick{OwnerName: "Fay", Position: models.PositionRB, Round: 2, OverallPick: 14}
	wr1 := &models.DraftPick{OwnerName: "Fay", Position: models.PositionWR, Round: 1, OverallPick: 5}

	agg.AddSeason([]*models.DraftPick{rb1, rb2, wr1})

	metrics := agg.Result()
	assert.Len(t, metrics.ByPosition[models.PositionRB][1], 1)
	assert.Len(t, metrics.ByPosition[models.PositionRB][2], 1)
	assert.Len(t, metrics.ByRound[1], 2)
	assert.Same(t, wr1, metrics.ByRound[1][models.PositionWR][0])
}
