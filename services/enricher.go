package services

import (
	"fmt"
	"strings"

	"ffl-history-go/logging"
	"ffl-history-go/models"
)

// DraftPickEnricher joins derived player statistics onto raw draft
// picks. Picks whose player never recorded a weekly score get a fully
// synthesized zero record rather than absent fields.
type DraftPickEnricher struct {
	maxWeek int
	logger  *logging.Logger
}

// NewDraftPickEnricher creates a new enricher for a week range
func NewDraftPickEnricher(maxWeek int) *DraftPickEnricher {
	return &DraftPickEnricher{
		maxWeek: maxWeek,
		logger:  logging.WithPrefix("Enricher"),
	}
}

// BuildTeamDirectory resolves team id -> team identity for a season,
// including the owner's display name from the member list. Owners not
// found among members keep their raw owner id as the display name.
func BuildTeamDirectory(season *ESPNSeason) models.TeamDirectory {
	memberNames := make(map[string]string, len(season.Members))
	for _, m := range season.Members {
		if m.ID == "" {
			continue
		}
		name := strings.TrimSpace(m.FirstName + " " + m.LastName)
		if name == "" {
			name = fmt.Sprintf("Owner %s", m.ID)
		}
		memberNames[m.ID] = name
	}

	directory := make(models.TeamDirectory, len(season.Teams))
	for _, t := range season.Teams {
		info := models.TeamInfo{
			ID:        t.ID,
			Name:      t.Name,
			Abbrev:    t.Abbrev,
			OwnerID:   t.PrimaryOwner,
			OwnerName: t.PrimaryOwner,
		}
		if info.Name == "" {
			info.Name = fmt.Sprintf("Team %d", t.ID)
		}
		if info.Abbrev == "" {
			info.Abbrev = fmt.Sprintf("T%d", t.ID)
		}
		if info.OwnerName == "" {
			info.OwnerName = "Unknown"
		}
		if name, ok := memberNames[t.PrimaryOwner]; ok {
			info.OwnerName = name
		}
		directory[t.ID] = info
	}

	return directory
}

// Enrich merges player statistics onto each raw draft pick
func (e *DraftPickEnricher) Enrich(year int, picks []ESPNDraftPick, playerStats map[int]*models.PlayerSeasonRecord, directory models.TeamDirectory) []*models.DraftPick {
	enriched := make([]*models.DraftPick, 0, len(picks))

	for _, raw := range picks {
		pick := &models.DraftPick{
			Year:        year,
			Round:       raw.RoundID,
			PickNumber:  raw.RoundPickNumber,
			OverallPick: raw.OverallPickNumber,
			TeamID:      raw.TeamID,
			TeamName:    directory.Name(raw.TeamID),
			OwnerName:   directory.OwnerName(raw.TeamID),
			PlayerID:    raw.PlayerID,
			Keeper:      raw.Keeper,
			BidAmount:   raw.BidAmount,
		}

		if record, ok := playerStats[raw.PlayerID]; ok {
			pick.PlayerName = record.PlayerName
			pick.Position = record.Position
			pick.ProTeam = record.ProTeam
			pick.InjuryStatus = record.InjuryStatus
			pick.SeasonStats = record.SeasonStats
		} else {
			e.logger.Debugf("Season %d pick %d: no record for player %d, synthesizing zero stats",
				year, raw.OverallPickNumber, raw.PlayerID)
			e.fillZeroRecord(pick, raw)
		}

		enriched = append(enriched, pick)
	}

	return enriched
}

// fillZeroRecord synthesizes a full zero-stat record for a drafted
// player with no recorded weekly scores. Identity comes from the
// draft-time player metadata embedded in the pick when present.
func (e *DraftPickEnricher) fillZeroRecord(pick *models.DraftPick, raw ESPNDraftPick) {
	pick.PlayerName = "Unknown"
	pick.Position = models.PositionUnknown
	pick.ProTeam = 0
	if raw.PlayerPoolEntry != nil && raw.PlayerPoolEntry.Player != nil {
		p := raw.PlayerPoolEntry.Player
		if p.FullName != "" {
			pick.PlayerName = p.FullName
		}
		pick.Position = models.PositionFromID(p.DefaultPositionID)
		pick.ProTeam = p.ProTeamID
	}

	pick.InjuryStatus = "DNP"

	weekly := make([]models.WeeklyScore, 0, e.maxWeek)
	for week := 1; week <= e.maxWeek; week++ {
		weekly = append(weekly, models.WeeklyScore{Week: week, Score: 0})
	}
	pick.SeasonStats = models.SeasonStats{
		WeeklyScores:    weekly,
		NonScoringGames: e.maxWeek,
	}
}
