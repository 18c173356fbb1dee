package services

import (
	"testing"

	"ffl-history-go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTeamDirectory(t *testing.T) {
	season := &ESPNSeason{
		Members: []ESPNMember{
			{ID: "{ABC}", FirstName: "Jane", LastName: "Doe"},
			{ID: "{DEF}"},
		},
		Teams: []ESPNTeam{
			{ID: 1, Name: "The Juggernauts", Abbrev: "JUG", PrimaryOwner: "{ABC}"},
			{ID: 2, PrimaryOwner: "{DEF}"},
			{ID: 3, PrimaryOwner: "{GHI}"},
			{ID: 4},
		},
	}

	dir := BuildTeamDirectory(season)
	require.Len(t, dir, 4)

	assert.Equal(t, "The Juggernauts", dir.Name(1))
	assert.Equal(t, "JUG", dir[1].Abbrev)
	assert.Equal(t, "Jane Doe", dir.OwnerName(1))

	// member without a name falls back to an owner-id label
	assert.Equal(t, "Team 2", dir.Name(2))
	assert.Equal(t, "T2", dir[2].Abbrev)
	assert.Equal(t, "Owner {DEF}", dir.OwnerName(2))

	// owner missing from the member list keeps the raw owner id
	assert.Equal(t, "{GHI}", dir.OwnerName(3))

	// team with no owner at all
	assert.Equal(t, "Unknown", dir.OwnerName(4))
}

func TestTeamDirectoryUnknownTeam(t *testing.T) {
	dir := models.TeamDirectory{}

	assert.Equal(t, "Team 9", dir.Name(9))
	assert.Equal(t, "UNK", dir.Abbrev(9))
	assert.Equal(t, "Unknown", dir.OwnerName(9))
}

func TestEnrichMergesPlayerRecord(t *testing.T) {
	enricher := NewDraftPickEnricher(14)
	directory := models.TeamDirectory{
		5: {ID: 5, Name: "Gridiron Gang", OwnerName: "Jane Doe"},
	}
	stats := map[int]*models.PlayerSeasonRecord{
		4046: {
			PlayerID:     4046,
			PlayerName:   "Patrick Mahomes",
			Position:     models.PositionQB,
			ProTeam:      12,
			InjuryStatus: "ACTIVE",
			SeasonStats: models.SeasonStats{
				SeasonPoints: 310.5,
				GamesPlayed:  14,
			},
		},
	}
	picks := []ESPNDraftPick{
		{PlayerID: 4046, RoundID: 2, RoundPickNumber: 3, OverallPickNumber: 15, TeamID: 5},
	}

	enriched := enricher.Enrich(2023, picks, stats, directory)
	require.Len(t, enriched, 1)

	pick := enriched[0]
	assert.Equal(t, 2023, pick.Year)
	assert.Equal(t, 2, pick.Round)
	assert.Equal(t, 3, pick.PickNumber)
	assert.Equal(t, 15, pick.OverallPick)
	assert.Equal(t, "Gridiron Gang", pick.TeamName)
	assert.Equal(t, "Jane Doe", pick.OwnerName)
	assert.Equal(t, "Patrick Mahomes", pick.PlayerName)
	assert.Equal(t, models.PositionQB, pick.Position)
	assert.Equal(t, 310.5, pick.SeasonPoints)
	assert.Equal(t, 14, pick.GamesPlayed)
}

func TestEnrichSynthesizesZeroRecord(t *testing.T) {
	enricher := NewDraftPickEnricher(14)
	picks := []ESPNDraftPick{
		{
			PlayerID: 9999, RoundID: 10, OverallPickNumber: 111, TeamID: 1,
			PlayerPoolEntry: &ESPNPoolEntry{Player: &ESPNPlayer{
				ID: 9999, FullName: "Practice Squad Guy", DefaultPositionID: 4, ProTeamID: 7,
			}},
		},
	}

	enriched := enricher.Enrich(2023, picks, map[int]*models.PlayerSeasonRecord{}, models.TeamDirectory{})
	require.Len(t, enriched, 1)

	pick := enriched[0]
	assert.Equal(t, "Practice Squad Guy", pick.PlayerName)
	assert.Equal(t, models.PositionTE, pick.Position)
	assert.Equal(t, 7, pick.ProTeam)
	assert.Equal(t, "DNP", pick.InjuryStatus)

	assert.Equal(t, 0.0, pick.SeasonPoints)
	assert.Equal(t, 0, pick.GamesPlayed)
	assert.Equal(t, 0.0, pick.ConsistencyScore)
	assert.Equal(t, 14, pick.NonScoringGames)
	assert.Equal(t, 0, pick.BoomGames)
	assert.Equal(t, 0, pick.BustGames)
	assert.Equal(t, 0.0, pick.BestWeek)
	assert.Equal(t, 0.0, pick.WorstWeek)
	assert.Equal(t, 0.0, pick.PlayoffPoints)

	require.Len(t, pick.WeeklyScores, 14)
	for i, ws := range pick.WeeklyScores {
		assert.Equal(t, i+1, ws.Week)
		assert.Equal(t, 0.0, ws.Score)
	}
}

func TestEnrichZeroRecordWithoutMetadata(t *testing.T) {
	enricher := NewDraftPickEnricher(14)
	picks := []ESPNDraftPick{{PlayerID: 8888, OverallPickNumber: 120}}

	enriched := enricher.Enrich(2023, picks, map[int]*models.PlayerSeasonRecord{}, models.TeamDirectory{})
	require.Len(t, enriched, 1)

	pick := enriched[0]
	assert.Equal(t, "Unknown", pick.PlayerName)
	assert.Equal(t, models.PositionUnknown, pick.Position)
	assert.Equal(t, "DNP", pick.InjuryStatus)
}
