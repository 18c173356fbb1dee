package models

import "math"

// Matchup winner values as reported by the ESPN schedule
const (
	WinnerHome      = "HOME"
	WinnerAway      = "AWAY"
	PlayoffTierNone = "NONE"
)

// Matchup is one scheduled game between two fantasy teams, with the
// winning/losing pair derived for reporting
type Matchup struct {
	Year           int     `json:"year"`
	Week           int     `json:"week"`
	MatchupID      int     `json:"matchup_id"`
	HomeTeamID     int     `json:"home_team_id"`
	HomeTeamName   string  `json:"home_team_name"`
	HomeTeamAbbrev string  `json:"home_team_abbrev"`
	HomeScore      float64 `json:"home_score"`
	AwayTeamID     int     `json:"away_team_id"`
	AwayTeamName   string  `json:"away_team_name"`
	AwayTeamAbbrev string  `json:"away_team_abbrev"`
	AwayScore      float64 `json:"away_score"`
	Winner         string  `json:"winner"`
	PlayoffType    string  `json:"playoff_type"`
	IsPlayoff      bool    `json:"is_playoff"`
	Margin         float64 `json:"margin"`

	WinningTeamID   int     `json:"winning_team_id"`
	WinningTeamName string  `json:"winning_team_name"`
	WinningScore    float64 `json:"winning_score"`
	LosingTeamID    int     `json:"losing_team_id"`
	LosingTeamName  string  `json:"losing_team_name"`
	LosingScore     float64 `json:"losing_score"`
}

// DeriveOutcome fills margin, playoff flag, and the winning/losing
// team pair from the base fields. Anything other than a HOME winner is
// credited to the away side.
func (m *Matchup) DeriveOutcome() {
	m.Margin = Round2(math.Abs(m.HomeScore - m.AwayScore))
	m.IsPlayoff = m.PlayoffType != PlayoffTierNone

	if m.Winner == WinnerHome {
		m.WinningTeamID = m.HomeTeamID
		m.WinningTeamName = m.HomeTeamName
		m.WinningScore = m.HomeScore
		m.LosingTeamID = m.AwayTeamID
		m.LosingTeamName = m.AwayTeamName
		m.LosingScore = m.AwayScore
	} else {
		m.WinningTeamID = m.AwayTeamID
		m.WinningTeamName = m.AwayTeamName
		m.WinningScore = m.AwayScore
		m.LosingTeamID = m.HomeTeamID
		m.LosingTeamName = m.HomeTeamName
		m.LosingScore = m.HomeScore
	}
}

// Round2 rounds a score to two decimal places
func Round2(val float64) float64 {
	return math.Round(val*100) / 100
}
