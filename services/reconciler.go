package services

import (
	"ffl-history-go/logging"
	"ffl-history-go/models"
)

// PlayerWeeks is one player's reconciled identity and week->score map,
// before statistics are derived
type PlayerWeeks struct {
	PlayerID     int
	PlayerName   string
	Position     models.Position
	ProTeam      int
	InjuryStatus string
	WeeklyScores map[int]float64
}

// WeekDocument pairs a fetched week-scoped season document with the
// week it was fetched for
type WeekDocument struct {
	Week int
	Doc  *ESPNSeason
}

// WeeklyScoreReconciler merges weekly roster documents into per-player
// scoring histories. Entries without a player id are skipped; a player
// appearing twice in one week (trade, duplicate entry) keeps the higher
// score; identity fields are upgraded whenever a sighting carries richer
// player metadata.
type WeeklyScoreReconciler struct {
	logger *logging.Logger
}

// NewWeeklyScoreReconciler creates a new reconciler
func NewWeeklyScoreReconciler() *WeeklyScoreReconciler {
	return &WeeklyScoreReconciler{
		logger: logging.WithPrefix("Reconciler"),
	}
}

// Reconcile folds week documents into a player id -> PlayerWeeks map.
// Weeks that failed to fetch are simply missing from the input; nothing
// is backfilled for them here.
func (r *WeeklyScoreReconciler) Reconcile(year int, weeks []WeekDocument) map[int]*PlayerWeeks {
	players := make(map[int]*PlayerWeeks)
	locator := locatorForYear(year)

	for _, wd := range weeks {
		if wd.Doc == nil {
			continue
		}
		entries := locator.LocateEntries(wd.Doc, wd.Week)
		r.logger.Debugf("Season %d week %d: %d roster entries", year, wd.Week, len(entries))

		for _, entry := range entries {
			if entry.PlayerID == 0 {
				continue
			}

			player, ok := players[entry.PlayerID]
			if !ok {
				player = &PlayerWeeks{
					PlayerID:     entry.PlayerID,
					PlayerName:   "Unknown",
					Position:     models.PositionUnknown,
					ProTeam:      0,
					InjuryStatus: "ACTIVE",
					WeeklyScores: make(map[int]float64),
				}
				players[entry.PlayerID] = player
			}

			updateIdentity(player, entry)

			score := entryScore(entry, wd.Week)
			if existing, seen := player.WeeklyScores[wd.Week]; !seen || score > existing {
				player.WeeklyScores[wd.Week] = score
			}
		}
	}

	return players
}

// SeedDrafted adds placeholder records for drafted players who never
// appeared in any weekly document, so they still surface downstream
// with a wholly synthetic zero record. Identity comes from the
// draft-time player metadata embedded in the pick when present.
func (r *WeeklyScoreReconciler) SeedDrafted(players map[int]*PlayerWeeks, picks []ESPNDraftPick) {
	for _, pick := range picks {
		if pick.PlayerID == 0 {
			continue
		}
		if _, ok := players[pick.PlayerID]; ok {
			continue
		}
		seeded := &PlayerWeeks{
			PlayerID:     pick.PlayerID,
			PlayerName:   "Unknown",
			Position:     models.PositionUnknown,
			ProTeam:      0,
			InjuryStatus: "DNP",
			WeeklyScores: make(map[int]float64),
		}
		if pick.PlayerPoolEntry != nil && pick.PlayerPoolEntry.Player != nil {
			p := pick.PlayerPoolEntry.Player
			if p.FullName != "" {
				seeded.PlayerName = p.FullName
			}
			if p.DefaultPositionID != 0 {
				seeded.Position = models.PositionFromID(p.DefaultPositionID)
			}
			seeded.ProTeam = p.ProTeamID
		}
		players[pick.PlayerID] = seeded
	}
}

// updateIdentity overwrites placeholder identity fields when the entry
// carries full player metadata. Later weeks may upgrade earlier
// placeholder values.
func updateIdentity(player *PlayerWeeks, entry ESPNRosterEntry) {
	if entry.PlayerPoolEntry == nil || entry.PlayerPoolEntry.Player == nil {
		return
	}
	p := entry.PlayerPoolEntry.Player

	if p.FullName != "" {
		player.PlayerName = p.FullName
	}
	if p.DefaultPositionID != 0 {
		player.Position = models.PositionFromID(p.DefaultPositionID)
	}
	if p.ProTeamID != 0 {
		player.ProTeam = p.ProTeamID
	}
	if p.InjuryStatus != "" {
		player.InjuryStatus = p.InjuryStatus
	}
}

// entryScore extracts the week's score from an entry, checking the
// candidate schema locations in priority order: entry applied total,
// entry total points, pool-entry applied total, then the player's stat
// line for the week with statSourceId 0 (real scoring, not projections).
func entryScore(entry ESPNRosterEntry, week int) float64 {
	if entry.AppliedStatTotal != nil {
		return *entry.AppliedStatTotal
	}
	if entry.TotalPoints != nil {
		return *entry.TotalPoints
	}
	if ppe := entry.PlayerPoolEntry; ppe != nil {
		if ppe.AppliedStatTotal != nil {
			return *ppe.AppliedStatTotal
		}
		if ppe.Player != nil {
			for _, stat := range ppe.Player.Stats {
				if stat.ScoringPeriodID == week && stat.StatSourceID == 0 {
					return stat.AppliedTotal
				}
			}
		}
	}
	return 0
}
