package services

import (
	"ffl-history-go/models"
)

// Aggregator thresholds for classifying a pick's season. The injured
// threshold is tied to complete-weeks mode, where non-scoring games
// count every week without points out of the full range.
const (
	boomPlayerThreshold    = 3  // boom games above which a pick counts as a boom player
	bustPlayerThreshold    = 5  // bust games above which a pick counts as a bust player
	injuredPlayerThreshold = 4  // non-scoring games above which a pick counts as injured
	playoffPointsThreshold = 30 // playoff points above which a pick is a playoff performer
)

// MetricsAggregator folds enriched draft picks, in encounter order
// across all seasons, into per-owner running aggregates and
// position/round groupings. It owns its accumulator state; seasons must
// be fed in ascending year order to keep the running consistency
// average reproducible.
type MetricsAggregator struct {
	metrics *models.DraftMetrics
}

// NewMetricsAggregator creates an empty aggregator
func NewMetricsAggregator() *MetricsAggregator {
	return &MetricsAggregator{
		metrics: models.NewDraftMetrics(),
	}
}

// AddSeason processes one season's picks in order
func (a *MetricsAggregator) AddSeason(picks []*models.DraftPick) {
	for _, pick := range picks {
		a.AddPick(pick)
	}
}

// AddPick updates the owning owner's aggregate and the position/round
// groupings for a single pick
func (a *MetricsAggregator) AddPick(pick *models.DraftPick) {
	value := pick.Value()

	owner := a.metrics.Owner(pick.OwnerName)
	owner.TotalPicks++
	owner.TotalValue += value
	if pick.BoomGames > boomPlayerThreshold {
		owner.BoomPlayers++
	}
	if pick.BustGames > bustPlayerThreshold {
		owner.BustPlayers++
	}
	if pick.NonScoringGames > injuredPlayerThreshold {
		owner.InjuredPlayers++
	}
	if pick.PlayoffPoints > playoffPointsThreshold {
		owner.PlayoffPerformers++
	}

	// Running average updated only for picks with a defined consistency
	// score, but divided by the owner's full pick count, zero-consistency
	// picks included. That dilution matches the historical output and is
	// intentionally preserved.
	if pick.ConsistencyScore > 0 {
		n := float64(owner.TotalPicks)
		owner.ConsistencyAvg = (owner.ConsistencyAvg*(n-1) + pick.ConsistencyScore) / n
	}

	// Ties keep the first pick seen for best; worst also moves when the
	// tracked value is still zero.
	if value > owner.BestPickValue {
		owner.BestPickValue = value
		owner.BestPick = pick
	}
	if owner.WorstPickValue == 0 || value < owner.WorstPickValue {
		owner.WorstPickValue = value
		owner.WorstPick = pick
	}

	a.bucket(pick)
}

// bucket files the pick under both the position->round and
// round->position groupings, creating inner maps explicitly
func (a *MetricsAggregator) bucket(pick *models.DraftPick) {
	byPos, ok := a.metrics.ByPosition[pick.Position]
	if !ok {
		byPos = make(map[int][]*models.DraftPick)
		a.metrics.ByPosition[pick.Position] = byPos
	}
	byPos[pick.Round] = append(byPos[pick.Round], pick)

	byRound, ok := a.metrics.ByRound[pick.Round]
	if !ok {
		byRound = make(map[models.Position][]*models.DraftPick)
		a.metrics.ByRound[pick.Round] = byRound
	}
	byRound[pick.Position] = append(byRound[pick.Position], pick)
}

// Result returns the accumulated metrics
func (a *MetricsAggregator) Result() *models.DraftMetrics {
	return a.metrics
}
