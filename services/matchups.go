package services

import (
	"strconv"

	"ffl-history-go/models"
)

// ExtractMatchups converts a season document's schedule into matchup
// records. Games without a decided winner field are skipped. Sides
// reporting a zero total fall back to their per-scoring-period points
// for the matchup week.
func ExtractMatchups(season *ESPNSeason, year int, directory models.TeamDirectory) []models.Matchup {
	matchups := make([]models.Matchup, 0, len(season.Schedule))

	for _, game := range season.Schedule {
		if game.Winner == "" || game.Home == nil || game.Away == nil {
			continue
		}

		week := game.MatchupPeriodID
		homeScore := sideScore(game.Home, week)
		awayScore := sideScore(game.Away, week)

		matchup := models.Matchup{
			Year:           year,
			Week:           week,
			MatchupID:      game.ID,
			HomeTeamID:     game.Home.TeamID,
			HomeTeamName:   directory.Name(game.Home.TeamID),
			HomeTeamAbbrev: directory.Abbrev(game.Home.TeamID),
			HomeScore:      models.Round2(homeScore),
			AwayTeamID:     game.Away.TeamID,
			AwayTeamName:   directory.Name(game.Away.TeamID),
			AwayTeamAbbrev: directory.Abbrev(game.Away.TeamID),
			AwayScore:      models.Round2(awayScore),
			Winner:         game.Winner,
			PlayoffType:    playoffTier(game.PlayoffTierType),
		}
		matchup.DeriveOutcome()

		matchups = append(matchups, matchup)
	}

	return matchups
}

// sideScore returns a side's total points, falling back to the
// per-scoring-period map keyed by the matchup week when the total is 0
func sideScore(side *ESPNGameSide, week int) float64 {
	if side.TotalPoints != 0 || side.PointsByScoringPeriod == nil {
		return side.TotalPoints
	}
	return side.PointsByScoringPeriod[strconv.Itoa(week)]
}

func playoffTier(tier string) string {
	if tier == "" {
		return models.PlayoffTierNone
	}
	return tier
}
