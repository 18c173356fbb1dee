package models

import "fmt"

// TeamInfo is a fantasy team's identity within one season, with owner
// display name resolved from the league member list
type TeamInfo struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Abbrev    string `json:"abbrev"`
	OwnerID   string `json:"owner_id"`
	OwnerName string `json:"owner_name"`
}

// TeamDirectory maps team ids to their identity for one season
type TeamDirectory map[int]TeamInfo

// Name returns the team's name, or a "Team {id}" placeholder when the
// team is not in the directory
func (d TeamDirectory) Name(teamID int) string {
	if t, ok := d[teamID]; ok {
		return t.Name
	}
	return fmt.Sprintf("Team %d", teamID)
}

// Abbrev returns the team's abbreviation, or "UNK" when the team is not
// in the directory
func (d TeamDirectory) Abbrev(teamID int) string {
	if t, ok := d[teamID]; ok {
		return t.Abbrev
	}
	return "UNK"
}

// OwnerName returns the owner's display name, or "Unknown" when the
// team is not in the directory
func (d TeamDirectory) OwnerName(teamID int) string {
	if t, ok := d[teamID]; ok {
		return t.OwnerName
	}
	return "Unknown"
}

// TeamSeasonRecord is one team's final standing for a season
type TeamSeasonRecord struct {
	Year          int     `json:"year"`
	TeamID        int     `json:"team_id"`
	TeamName      string  `json:"team_name"`
	Abbrev        string  `json:"abbrev"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
	PlayoffSeed   int     `json:"playoff_seed"`
	FinalRank     int     `json:"final_rank"`
	DraftPosition int     `json:"draft_position"`
}
