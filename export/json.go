package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ffl-history-go/logging"
	"ffl-history-go/services"
)

// Exporter writes the pipeline's artifacts to the output directory
type Exporter struct {
	outputDir string
	logger    *logging.Logger
}

// NewExporter creates an exporter rooted at an output directory
func NewExporter(outputDir string) *Exporter {
	return &Exporter{
		outputDir: outputDir,
		logger:    logging.WithPrefix("Exporter"),
	}
}

// WriteAll writes every artifact for a pipeline run: three CSV tables
// plus the raw and enriched JSON documents
func (e *Exporter) WriteAll(history *services.LeagueHistory) error {
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := e.WriteMatchupsCSV(history.Matchups); err != nil {
		return err
	}
	if err := e.WriteStandingsCSV(history.Standings); err != nil {
		return err
	}
	if err := e.WriteDraftPicksCSV(history.AllPicks()); err != nil {
		return err
	}
	if err := e.WriteRawJSON(history.RawByYear); err != nil {
		return err
	}
	return e.WriteDraftJSON(history.Drafts)
}

// WriteRawJSON writes the raw per-season documents keyed by year
func (e *Exporter) WriteRawJSON(rawByYear map[int]json.RawMessage) error {
	return e.writeJSON("espn_fantasy_complete_data.json", rawByYear)
}

// WriteDraftJSON writes the enriched draft data keyed by year
func (e *Exporter) WriteDraftJSON(drafts map[int]*services.SeasonDraft) error {
	return e.writeJSON("espn_fantasy_draft_data.json", drafts)
}

// writeJSON marshals a document with indentation and writes it to a
// file in the output directory
func (e *Exporter) writeJSON(name string, document interface{}) error {
	path := filepath.Join(e.outputDir, name)

	b, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	b = append(b, '\n')

	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	e.logger.Infof("Saved %s", path)
	return nil
}
