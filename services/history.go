package services

import (
	"encoding/json"
	"sort"
	"time"

	"ffl-history-go/config"
	"ffl-history-go/logging"
	"ffl-history-go/models"
)

// SnapshotSource supplies season and weekly snapshots. Implemented by
// ESPNClient; faked in tests.
type SnapshotSource interface {
	FetchSeason(year int) (*ESPNSeason, error)
	FetchWeek(year, week int) (*ESPNSeason, error)
}

// SeasonDraft is one season's enriched draft
type SeasonDraft struct {
	Year  int                 `json:"year"`
	Picks []*models.DraftPick `json:"picks"`
}

// LeagueHistory is the full output of a pipeline run
type LeagueHistory struct {
	Matchups  []models.Matchup          `json:"matchups"`
	Standings []models.TeamSeasonRecord `json:"standings"`
	Drafts    map[int]*SeasonDraft      `json:"drafts"`
	RawByYear map[int]json.RawMessage   `json:"-"`
	Metrics   *models.DraftMetrics      `json:"metrics"`
}

// AllPicks returns every enriched pick across all seasons, in ascending
// year order
func (h *LeagueHistory) AllPicks() []*models.DraftPick {
	years := make([]int, 0, len(h.Drafts))
	for year := range h.Drafts {
		years = append(years, year)
	}
	sort.Ints(years)

	var picks []*models.DraftPick
	for _, year := range years {
		picks = append(picks, h.Drafts[year].Picks...)
	}
	return picks
}

// HistoryService runs the batch pipeline: fetch each season and its
// weeks, reconcile weekly scores, derive player statistics, enrich
// draft picks, extract matchups and standings, and roll up cross-season
// draft metrics. Single-threaded; seasons are processed in ascending
// year order because the metrics rollup is order-sensitive.
type HistoryService struct {
	source     SnapshotSource
	cfg        config.FetchConfig
	reconciler *WeeklyScoreReconciler
	deriver    *StatsDeriver
	enricher   *DraftPickEnricher
	logger     *logging.Logger
}

// NewHistoryService creates a new pipeline over a snapshot source
func NewHistoryService(source SnapshotSource, cfg config.FetchConfig) *HistoryService {
	return &HistoryService{
		source:     source,
		cfg:        cfg,
		reconciler: NewWeeklyScoreReconciler(),
		deriver:    NewStatsDeriver(cfg.MaxWeek, cfg.PlayoffWindow),
		enricher:   NewDraftPickEnricher(cfg.MaxWeek),
		logger:     logging.WithPrefix("History"),
	}
}

// BuildHistory fetches and processes every season in the configured
// range. Seasons or weeks that fail to fetch are logged and skipped;
// a run in which nothing could be fetched yields empty collections.
func (s *HistoryService) BuildHistory() *LeagueHistory {
	history := &LeagueHistory{
		Matchups:  make([]models.Matchup, 0),
		Standings: make([]models.TeamSeasonRecord, 0),
		Drafts:    make(map[int]*SeasonDraft),
		RawByYear: make(map[int]json.RawMessage),
	}
	aggregator := NewMetricsAggregator()

	for year := s.cfg.StartYear; year <= s.cfg.EndYear; year++ {
		s.logger.Infof("Fetching data for %d...", year)

		season, err := s.source.FetchSeason(year)
		if err != nil {
			s.logger.Errorf("Season %d fetch failed, skipping: %v", year, err)
			continue
		}
		history.RawByYear[year] = season.Raw

		draft := s.processSeason(year, season)
		history.Drafts[year] = draft
		s.logger.Infof("Season %d: %d draft picks", year, len(draft.Picks))

		directory := BuildTeamDirectory(season)
		matchups := ExtractMatchups(season, year, directory)
		history.Matchups = append(history.Matchups, matchups...)
		s.logger.Infof("Season %d: %d matchups", year, len(matchups))

		standings := ExtractStandings(season, year)
		history.Standings = append(history.Standings, standings...)

		s.pause()
	}

	s.logger.Info("Calculating draft metrics...")
	years := make([]int, 0, len(history.Drafts))
	for year := range history.Drafts {
		years = append(years, year)
	}
	sort.Ints(years)
	for _, year := range years {
		aggregator.AddSeason(history.Drafts[year].Picks)
	}
	history.Metrics = aggregator.Result()

	return history
}

// processSeason reconciles weekly scores, derives player statistics,
// and enriches the season's draft picks
func (s *HistoryService) processSeason(year int, season *ESPNSeason) *SeasonDraft {
	s.logger.Infof("Fetching weekly data for all players in %d...", year)
	weeks := s.fetchWeeks(year)

	players := s.reconciler.Reconcile(year, weeks)
	if season.DraftDetail != nil {
		s.reconciler.SeedDrafted(players, season.DraftDetail.Picks)
	}

	playerStats := make(map[int]*models.PlayerSeasonRecord, len(players))
	for id, pw := range players {
		playerStats[id] = s.deriver.DeriveRecord(pw)
	}

	draft := &SeasonDraft{Year: year, Picks: []*models.DraftPick{}}
	if season.DraftDetail != nil {
		directory := BuildTeamDirectory(season)
		draft.Picks = s.enricher.Enrich(year, season.DraftDetail.Picks, playerStats, directory)
	}

	return draft
}

// fetchWeeks fetches each week in the range, skipping failures
func (s *HistoryService) fetchWeeks(year int) []WeekDocument {
	weeks := make([]WeekDocument, 0, s.cfg.MaxWeek)
	for week := 1; week <= s.cfg.MaxWeek; week++ {
		doc, err := s.source.FetchWeek(year, week)
		if err != nil {
			s.logger.Warnf("Season %d week %d fetch failed, skipping: %v", year, week, err)
			s.pause()
			continue
		}
		weeks = append(weeks, WeekDocument{Week: week, Doc: doc})
		s.pause()
	}
	return weeks
}

// pause applies the polite inter-request delay
func (s *HistoryService) pause() {
	if s.cfg.RequestDelay > 0 {
		time.Sleep(s.cfg.RequestDelay)
	}
}
