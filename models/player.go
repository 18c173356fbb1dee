package models

// Position represents a fantasy roster position
type Position string

const (
	PositionQB      Position = "QB"
	PositionRB      Position = "RB"
	PositionWR      Position = "WR"
	PositionTE      Position = "TE"
	PositionK       Position = "K"
	PositionDST     Position = "D/ST"
	PositionFlex    Position = "FLEX"
	PositionUnknown Position = "Unknown"
)

// positionIDs maps ESPN defaultPositionId values to positions. Any id
// not in the map (IDP leagues, bench-only slots) falls back to FLEX.
var positionIDs = map[int]Position{
	1:  PositionQB,
	2:  PositionRB,
	3:  PositionWR,
	4:  PositionTE,
	5:  PositionK,
	16: PositionDST,
}

// PositionFromID converts an ESPN defaultPositionId to a Position
func PositionFromID(id int) Position {
	if pos, ok := positionIDs[id]; ok {
		return pos
	}
	return PositionFlex
}

// Scoring thresholds for boom/bust classification, keyed by position.
// Positions without an entry use the default 15/5.
var (
	boomThresholds = map[Position]float64{
		PositionQB:  25,
		PositionRB:  20,
		PositionWR:  20,
		PositionTE:  15,
		PositionK:   12,
		PositionDST: 15,
	}
	bustThresholds = map[Position]float64{
		PositionQB:  10,
		PositionRB:  5,
		PositionWR:  5,
		PositionTE:  3,
		PositionK:   3,
		PositionDST: 2,
	}
)

// BoomThreshold returns the score at or above which a week counts as a boom game
func (p Position) BoomThreshold() float64 {
	if thr, ok := boomThresholds[p]; ok {
		return thr
	}
	return 15
}

// BustThreshold returns the score at or below which a positive-scoring week
// counts as a bust game
func (p Position) BustThreshold() float64 {
	if thr, ok := bustThresholds[p]; ok {
		return thr
	}
	return 5
}

// WeeklyScore is one week's fantasy points for a player
type WeeklyScore struct {
	Week  int     `json:"week"`
	Score float64 `json:"score"`
}

// SeasonStats holds the derived per-season statistics for a player.
// It is embedded in both PlayerSeasonRecord and DraftPick so enriched
// picks serialize with the stat fields flattened in.
type SeasonStats struct {
	SeasonPoints     float64       `json:"season_points"`
	GamesPlayed      int           `json:"games_played"`
	WeeklyScores     []WeeklyScore `json:"weekly_scores"`
	ConsistencyScore float64       `json:"consistency_score"`
	NonScoringGames  int           `json:"non_scoring_games"`
	AbsenceGames     int           `json:"absence_games"`
	BoomGames        int           `json:"boom_games"`
	BustGames        int           `json:"bust_games"`
	BestWeek         float64       `json:"best_week"`
	WorstWeek        float64       `json:"worst_week"`
	PlayoffPoints    float64       `json:"playoff_points"`
}

// PlayerSeasonRecord is one player's identity and derived statistics
// for a single season
type PlayerSeasonRecord struct {
	PlayerID     int      `json:"player_id"`
	PlayerName   string   `json:"player_name"`
	Position     Position `json:"position"`
	ProTeam      int      `json:"pro_team"`
	InjuryStatus string   `json:"injury_status"`
	SeasonStats
}
