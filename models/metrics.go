package models

// OwnerDraftMetrics accumulates draft performance for one owner across
// every season processed. Created on the owner's first pick and updated
// once per pick after that.
type OwnerDraftMetrics struct {
	TotalPicks        int        `json:"total_picks"`
	TotalValue        float64    `json:"total_value"`
	BoomPlayers       int        `json:"boom_players"`
	BustPlayers       int        `json:"bust_players"`
	InjuredPlayers    int        `json:"injured_players"`
	ConsistencyAvg    float64    `json:"consistency_avg"`
	PlayoffPerformers int        `json:"playoff_performers"`
	BestPickValue     float64    `json:"best_pick_value"`
	BestPick          *DraftPick `json:"best_pick,omitempty"`
	WorstPickValue    float64    `json:"worst_pick_value"`
	WorstPick         *DraftPick `json:"worst_pick,omitempty"`
}

// DraftMetrics is the cross-season rollup of all enriched draft picks:
// per-owner aggregates plus position/round groupings for ad hoc reports
type DraftMetrics struct {
	ByOwner    map[string]*OwnerDraftMetrics     `json:"by_owner"`
	ByPosition map[Position]map[int][]*DraftPick `json:"by_position"`
	ByRound    map[int]map[Position][]*DraftPick `json:"by_round"`
}

// NewDraftMetrics returns an empty rollup with all groupings allocated
func NewDraftMetrics() *DraftMetrics {
	return &DraftMetrics{
		ByOwner:    make(map[string]*OwnerDraftMetrics),
		ByPosition: make(map[Position]map[int][]*DraftPick),
		ByRound:    make(map[int]map[Position][]*DraftPick),
	}
}

// Owner returns the accumulator for an owner, creating it on first use
func (m *DraftMetrics) Owner(name string) *OwnerDraftMetrics {
	o, ok := m.ByOwner[name]
	if !ok {
		o = &OwnerDraftMetrics{}
		m.ByOwner[name] = o
	}
	return o
}

// PicksAt returns the picks bucketed under a position and round
func (m *DraftMetrics) PicksAt(pos Position, round int) []*DraftPick {
	rounds, ok := m.ByPosition[pos]
	if !ok {
		return nil
	}
	return rounds[round]
}
