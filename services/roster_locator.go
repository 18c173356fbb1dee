package services

// rosterLocator abstracts where a week-scoped season document keeps its
// roster entries. The modern API hangs rosters off the team list; the
// leagueHistory generation nests them under each scheduled game's sides.
// Keeping the difference here lets the reconciler stay schema-agnostic.
type rosterLocator interface {
	LocateEntries(doc *ESPNSeason, week int) []ESPNRosterEntry
}

// locatorForYear selects the roster locator for a season's API generation
func locatorForYear(year int) rosterLocator {
	if year >= ModernSeasonThreshold {
		return teamRosterLocator{}
	}
	return scheduleRosterLocator{}
}

// teamRosterLocator reads teams[].roster.entries (modern documents)
type teamRosterLocator struct{}

func (teamRosterLocator) LocateEntries(doc *ESPNSeason, week int) []ESPNRosterEntry {
	var entries []ESPNRosterEntry
	for _, team := range doc.Teams {
		if team.Roster == nil {
			continue
		}
		entries = append(entries, team.Roster.Entries...)
	}
	return entries
}

// scheduleRosterLocator reads both sides of every game scheduled for the
// week (legacy leagueHistory documents)
type scheduleRosterLocator struct{}

func (scheduleRosterLocator) LocateEntries(doc *ESPNSeason, week int) []ESPNRosterEntry {
	var entries []ESPNRosterEntry
	for _, game := range doc.Schedule {
		if game.MatchupPeriodID != week {
			continue
		}
		for _, side := range []*ESPNGameSide{game.Home, game.Away} {
			if side == nil || side.RosterForMatchupPeriod == nil {
				continue
			}
			entries = append(entries, side.RosterForMatchupPeriod.Entries...)
		}
	}
	return entries
}
