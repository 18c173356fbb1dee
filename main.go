package main

import (
	"flag"
	"os"
	"strconv"

	"ffl-history-go/config"
	"ffl-history-go/export"
	"ffl-history-go/logging"
	"ffl-history-go/services"
)

func main() {
	leagueID := flag.String("league", "", "ESPN league id (overrides LEAGUE_ID)")
	startYear := flag.Int("start", 0, "first season to fetch (overrides START_YEAR)")
	endYear := flag.Int("end", 0, "last season to fetch (overrides END_YEAR)")
	outputDir := flag.String("out", "", "artifact output directory (overrides OUTPUT_DIR)")
	flag.Parse()

	// Flags win over the environment and .env file
	if *leagueID != "" {
		os.Setenv("LEAGUE_ID", *leagueID)
	}
	if *startYear != 0 {
		os.Setenv("START_YEAR", strconv.Itoa(*startYear))
	}
	if *endYear != 0 {
		os.Setenv("END_YEAR", strconv.Itoa(*endYear))
	}
	if *outputDir != "" {
		os.Setenv("OUTPUT_DIR", *outputDir)
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Failed to load configuration: %v", err)
	}

	logging.Configure(logging.Config{
		Level:       cfg.Logging.Level,
		Output:      os.Stdout,
		Prefix:      cfg.Logging.Prefix,
		EnableColor: cfg.Logging.EnableColor,
	})
	cfg.LogConfiguration()

	client := services.NewESPNClient(cfg.ESPN)
	pipeline := services.NewHistoryService(client, cfg.Fetch)

	logging.Infof("Fetching league %s history for %d-%d...",
		cfg.ESPN.LeagueID, cfg.Fetch.StartYear, cfg.Fetch.EndYear)

	history := pipeline.BuildHistory()

	logging.Infof("Fetched %d seasons: %d matchups, %d standings rows, %d draft picks",
		len(history.Drafts), len(history.Matchups), len(history.Standings), len(history.AllPicks()))

	exporter := export.NewExporter(cfg.Output.Dir)
	if err := exporter.WriteAll(history); err != nil {
		logging.Fatalf("Failed to write artifacts: %v", err)
	}

	logging.Info("Done")
}
