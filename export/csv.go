package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"ffl-history-go/models"
)

// Fixed column orders for the tabular artifacts. The draft pick export
// is an explicit allowlist; internal-only fields never reach the CSV.
var (
	matchupColumns = []string{
		"year", "week", "matchup_id",
		"home_team_id", "home_team_name", "home_team_abbrev", "home_score",
		"away_team_id", "away_team_name", "away_team_abbrev", "away_score",
		"winner", "playoff_type", "is_playoff", "margin",
		"winning_team_id", "winning_team_name", "winning_score",
		"losing_team_id", "losing_team_name", "losing_score",
	}
	standingColumns = []string{
		"year", "team_id", "team_name", "abbrev",
		"wins", "losses", "ties", "points_for", "points_against",
		"playoff_seed", "final_rank", "draft_position",
	}
	draftPickColumns = []string{
		"year", "round", "overall_pick", "team_name", "owner_name",
		"player_name", "position", "season_points", "games_played",
		"consistency_score", "boom_games", "bust_games",
		"non_scoring_games", "best_week", "worst_week", "playoff_points",
	}
)

// WriteMatchupsCSV writes the matchup table
func (e *Exporter) WriteMatchupsCSV(matchups []models.Matchup) error {
	rows := make([][]string, 0, len(matchups))
	for _, m := range matchups {
		rows = append(rows, []string{
			strconv.Itoa(m.Year), strconv.Itoa(m.Week), strconv.Itoa(m.MatchupID),
			strconv.Itoa(m.HomeTeamID), m.HomeTeamName, m.HomeTeamAbbrev, formatScore(m.HomeScore),
			strconv.Itoa(m.AwayTeamID), m.AwayTeamName, m.AwayTeamAbbrev, formatScore(m.AwayScore),
			m.Winner, m.PlayoffType, strconv.FormatBool(m.IsPlayoff), formatScore(m.Margin),
			strconv.Itoa(m.WinningTeamID), m.WinningTeamName, formatScore(m.WinningScore),
			strconv.Itoa(m.LosingTeamID), m.LosingTeamName, formatScore(m.LosingScore),
		})
	}
	return e.writeCSV("espn_fantasy_matchups.csv", matchupColumns, rows)
}

// WriteStandingsCSV writes the standings table
func (e *Exporter) WriteStandingsCSV(standings []models.TeamSeasonRecord) error {
	rows := make([][]string, 0, len(standings))
	for _, r := range standings {
		rows = append(rows, []string{
			strconv.Itoa(r.Year), strconv.Itoa(r.TeamID), r.TeamName, r.Abbrev,
			strconv.Itoa(r.Wins), strconv.Itoa(r.Losses), strconv.Itoa(r.Ties),
			formatScore(r.PointsFor), formatScore(r.PointsAgainst),
			strconv.Itoa(r.PlayoffSeed), strconv.Itoa(r.FinalRank), strconv.Itoa(r.DraftPosition),
		})
	}
	return e.writeCSV("espn_fantasy_standings.csv", standingColumns, rows)
}

// WriteDraftPicksCSV writes the enriched draft pick table using the
// fixed column allowlist
func (e *Exporter) WriteDraftPicksCSV(picks []*models.DraftPick) error {
	rows := make([][]string, 0, len(picks))
	for _, p := range picks {
		rows = append(rows, []string{
			strconv.Itoa(p.Year), strconv.Itoa(p.Round), strconv.Itoa(p.OverallPick),
			p.TeamName, p.OwnerName, p.PlayerName, string(p.Position),
			formatScore(p.SeasonPoints), strconv.Itoa(p.GamesPlayed),
			formatScore(p.ConsistencyScore), strconv.Itoa(p.BoomGames), strconv.Itoa(p.BustGames),
			strconv.Itoa(p.NonScoringGames), formatScore(p.BestWeek), formatScore(p.WorstWeek),
			formatScore(p.PlayoffPoints),
		})
	}
	return e.writeCSV("espn_fantasy_draft_picks.csv", draftPickColumns, rows)
}

// writeCSV writes a header plus rows to a file in the output directory
func (e *Exporter) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(e.outputDir, name)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	e.logger.Infof("Saved %d rows to %s", len(rows), path)
	return nil
}

// formatScore renders a float without trailing zero noise
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
