package services

import (
	"ffl-history-go/models"

	"github.com/montanaflynn/stats"
)

// StatsDeriver computes per-season summary statistics from a player's
// weekly scoring history.
//
// It operates in complete-weeks mode: every week in 1..maxWeek is
// materialized, substituting 0.0 for weeks with no recorded score. A
// zero week counts as non-participation, never as a bust game. This
// keeps games_played, consistency, and averages comparable across
// players regardless of how sparse their roster appearances were.
type StatsDeriver struct {
	maxWeek       int
	playoffWindow int
}

// NewStatsDeriver creates a deriver for a week range and trailing
// playoff window. A window of 0 disables playoff aggregation
// (regular-season-only mode), in which playoff_points is always 0.
func NewStatsDeriver(maxWeek, playoffWindow int) *StatsDeriver {
	return &StatsDeriver{
		maxWeek:       maxWeek,
		playoffWindow: playoffWindow,
	}
}

// DeriveRecord derives the full season record for a reconciled player
func (d *StatsDeriver) DeriveRecord(pw *PlayerWeeks) *models.PlayerSeasonRecord {
	return &models.PlayerSeasonRecord{
		PlayerID:     pw.PlayerID,
		PlayerName:   pw.PlayerName,
		Position:     pw.Position,
		ProTeam:      pw.ProTeam,
		InjuryStatus: pw.InjuryStatus,
		SeasonStats:  d.Derive(pw.WeeklyScores, pw.Position),
	}
}

// Derive computes season statistics from a week->score map
func (d *StatsDeriver) Derive(weeklyScores map[int]float64, position models.Position) models.SeasonStats {
	weekly := make([]models.WeeklyScore, 0, d.maxWeek)
	scores := make([]float64, 0, d.maxWeek)
	for week := 1; week <= d.maxWeek; week++ {
		score := models.Round2(weeklyScores[week])
		weekly = append(weekly, models.WeeklyScore{Week: week, Score: score})
		scores = append(scores, score)
	}

	result := models.SeasonStats{WeeklyScores: weekly}

	sum, err := stats.Sum(scores)
	if err == nil {
		result.SeasonPoints = models.Round2(sum)
	}

	positives := make([]float64, 0, len(scores))
	for _, s := range scores {
		if s > 0 {
			positives = append(positives, s)
		}
	}
	result.GamesPlayed = len(positives)
	result.NonScoringGames = d.maxWeek - result.GamesPlayed

	result.ConsistencyScore = consistency(positives)

	boomThr := position.BoomThreshold()
	bustThr := position.BustThreshold()
	for _, s := range scores {
		if s >= boomThr {
			result.BoomGames++
		}
		if s > 0 && s <= bustThr {
			result.BustGames++
		}
	}

	if best, err := stats.Max(scores); err == nil {
		result.BestWeek = best
	}
	if len(positives) > 0 {
		if worst, err := stats.Min(positives); err == nil {
			result.WorstWeek = worst
		}
	}

	result.PlayoffPoints = d.playoffPoints(scores)
	result.AbsenceGames = absences(scores)

	return result
}

// consistency is 100 minus the coefficient of variation over the
// positive-scoring weeks, floored at 0. Undefined (0) with fewer than
// two positive weeks or a zero mean. Standard deviation is the sample
// form, dividing by n-1.
func consistency(positives []float64) float64 {
	if len(positives) < 2 {
		return 0
	}
	mean, err := stats.Mean(positives)
	if err != nil || mean <= 0 {
		return 0
	}
	stdDev, err := stats.StandardDeviationSample(positives)
	if err != nil {
		return 0
	}
	score := 100 - (stdDev/mean)*100
	if score < 0 {
		return 0
	}
	return score
}

// playoffPoints sums the trailing playoff-window weeks of the range
func (d *StatsDeriver) playoffPoints(scores []float64) float64 {
	if d.playoffWindow <= 0 || d.playoffWindow > len(scores) {
		return 0
	}
	total, err := stats.Sum(scores[len(scores)-d.playoffWindow:])
	if err != nil {
		return 0
	}
	return models.Round2(total)
}

// absences counts zero-score weeks occurring after the player's first
// positive week. It separates "stopped scoring mid-season" (likely
// injury or benching) from "never played at all".
func absences(scores []float64) int {
	count := 0
	seenPositive := false
	for _, s := range scores {
		if s > 0 {
			seenPositive = true
		} else if seenPositive {
			count++
		}
	}
	return count
}
