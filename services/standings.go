package services

import (
	"fmt"

	"ffl-history-go/models"
)

// ExtractStandings converts a season document's team list into final
// standing records
func ExtractStandings(season *ESPNSeason, year int) []models.TeamSeasonRecord {
	records := make([]models.TeamSeasonRecord, 0, len(season.Teams))

	for _, team := range season.Teams {
		record := models.TeamSeasonRecord{
			Year:          year,
			TeamID:        team.ID,
			TeamName:      team.Name,
			Abbrev:        team.Abbrev,
			PlayoffSeed:   team.PlayoffSeed,
			FinalRank:     team.RankCalculatedFinal,
			DraftPosition: team.DraftDayProjectedRank,
		}
		if record.TeamName == "" {
			record.TeamName = fmt.Sprintf("Team %d", team.ID)
		}
		if record.Abbrev == "" {
			record.Abbrev = fmt.Sprintf("T%d", team.ID)
		}
		if team.Record != nil {
			overall := team.Record.Overall
			record.Wins = overall.Wins
			record.Losses = overall.Losses
			record.Ties = overall.Ties
			record.PointsFor = models.Round2(overall.PointsFor)
			record.PointsAgainst = models.Round2(overall.PointsAgainst)
		}

		records = append(records, record)
	}

	return records
}
