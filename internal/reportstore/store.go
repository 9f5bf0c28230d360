// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reportstore persists paper analysis reports in a searchable
// SQLite database.
package reportstore

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperlens/pkg/types"
)

const dbFile = "reports.db"

// Store manages the report database.
type Store struct {
	db         *sql.DB
	reportsDir string
	maxResults int
}

// NewStore opens or creates the report database at reportsDir/reports.db,
// creating the schema if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	cfg = cfg.WithDefaults()
	if err := os.MkdirAll(cfg.ReportsDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating reports directory: %w", err)
	}

	dbPath := filepath.Join(cfg.ReportsDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:         db,
		reportsDir: cfg.ReportsDir,
		maxResults: cfg.MaxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// StableID derives a deterministic report key from the paper title.
func StableID(title string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(title))))
	return hex.EncodeToString(sum[:])[:12]
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS reports (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			abstract TEXT,
			authors TEXT,
			year TEXT,
			conference TEXT,
			quality REAL,
			impact REAL,
			citation_count INTEGER,
			report TEXT NOT NULL,
			stored_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_year ON reports(year)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_conference ON reports(conference)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='reports_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE reports_fts USING fts5(title, abstract, content=reports, content_rowid=rowid)`,
			`CREATE TRIGGER reports_ai AFTER INSERT ON reports BEGIN
				INSERT INTO reports_fts(rowid, title, abstract) VALUES (new.rowid, new.title, new.abstract);
			END`,
			`CREATE TRIGGER reports_ad AFTER DELETE ON reports BEGIN
				INSERT INTO reports_fts(reports_fts, rowid, title, abstract) VALUES('delete', old.rowid, old.title, old.abstract);
			END`,
			`CREATE TRIGGER reports_au AFTER UPDATE ON reports BEGIN
				INSERT INTO reports_fts(reports_fts, rowid, title, abstract) VALUES('delete', old.rowid, old.title, old.abstract);
				INSERT INTO reports_fts(rowid, title, abstract) VALUES (new.rowid, new.title, new.abstract);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Save upserts one paper's analysis report, keyed by the stable ID of its
// title. Re-analyzing a paper replaces its previous report.
func (s *Store) Save(ctx context.Context, paper types.PaperRecord, report *types.PaperReport) (string, error) {
	id := StableID(paper.Title)

	reportYAML, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}
	authorsJSON, _ := json.Marshal(paper.Authors)

	conference := ""
	if report.ConferenceFit != nil {
		conference = report.ConferenceFit.Conference
	}
	impact := 0.0
	if report.ImpactPrediction != nil {
		impact = report.ImpactPrediction.ImpactScore
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO reports (id, title, abstract, authors, year, conference, quality, impact, citation_count, report, stored_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, abstract=excluded.abstract, authors=excluded.authors,
			year=excluded.year, conference=excluded.conference, quality=excluded.quality,
			impact=excluded.impact, citation_count=excluded.citation_count,
			report=excluded.report, stored_at=excluded.stored_at`,
		id, paper.Title, paper.Abstract, string(authorsJSON), paper.Year(),
		conference, report.QualityScore[types.QualityOverall], impact,
		paper.CitationCount, string(reportYAML),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("upserting report: %w", err)
	}

	return id, nil
}
