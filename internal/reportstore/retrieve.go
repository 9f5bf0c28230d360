// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reportstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperlens/pkg/types"
)

// QueryOptions holds parameters for report queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over title and abstract.
	Query string

	// Conference filters by suggested conference.
	Conference string

	// Year filters by publication year bucket.
	Year string

	// MinQuality keeps only reports at or above the given overall score.
	MinQuality float64

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Conference == "" && q.Year == "" && q.MinQuality == 0
}

// StoredReport is a persisted report with its paper-level columns.
type StoredReport struct {
	ID      string             `json:"id" yaml:"id"`
	Title   string             `json:"title" yaml:"title"`
	Authors []string           `json:"authors" yaml:"authors"`
	Year    string             `json:"year" yaml:"year"`
	Quality float64            `json:"quality" yaml:"quality"`
	Impact  float64            `json:"impact" yaml:"impact"`
	Report  *types.PaperReport `json:"report" yaml:"report"`
}

// Retrieve queries stored reports with optional full-text search and
// structured filters. Full-text queries rank by relevance; structured-only
// queries sort by quality descending, then title.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]StoredReport, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT r.id, r.title, r.authors, r.year, r.quality, r.impact, r.report
			FROM reports_fts
			JOIN reports r ON r.rowid = reports_fts.rowid
			WHERE reports_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT r.id, r.title, r.authors, r.year, r.quality, r.impact, r.report
			FROM reports r
			WHERE 1=1`)
	}

	if opts.Conference != "" {
		qb.WriteString(` AND r.conference = ?`)
		args = append(args, opts.Conference)
	}

	if opts.Year != "" {
		qb.WriteString(` AND r.year = ?`)
		args = append(args, opts.Year)
	}

	if opts.MinQuality > 0 {
		qb.WriteString(` AND r.quality >= ?`)
		args = append(args, opts.MinQuality)
	}

	if useFTS {
		qb.WriteString(` ORDER BY reports_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY r.quality DESC, r.title`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	var results []StoredReport
	for rows.Next() {
		var (
			sr          StoredReport
			authorsJSON sql.NullString
			reportYAML  string
		)

		if err := rows.Scan(
			&sr.ID, &sr.Title, &authorsJSON, &sr.Year, &sr.Quality, &sr.Impact, &reportYAML,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		if authorsJSON.Valid {
			json.Unmarshal([]byte(authorsJSON.String), &sr.Authors)
		}

		var report types.PaperReport
		if err := yaml.Unmarshal([]byte(reportYAML), &report); err != nil {
			return nil, fmt.Errorf("parsing stored report %s: %w", sr.ID, err)
		}
		sr.Report = &report

		results = append(results, sr)
	}

	return results, rows.Err()
}

// Get loads one report by stable ID. A missing ID is not an error; it
// reports nil.
func (s *Store) Get(ctx context.Context, id string) (*StoredReport, error) {
	results, err := s.retrieveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

func (s *Store) retrieveByID(ctx context.Context, id string) ([]StoredReport, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, authors, year, quality, impact, report FROM reports WHERE id = ?`, id)

	var (
		sr          StoredReport
		authorsJSON sql.NullString
		reportYAML  string
	)
	err := row.Scan(&sr.ID, &sr.Title, &authorsJSON, &sr.Year, &sr.Quality, &sr.Impact, &reportYAML)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("looking up report %s: %w", id, err)
	}

	if authorsJSON.Valid {
		json.Unmarshal([]byte(authorsJSON.String), &sr.Authors)
	}
	var report types.PaperReport
	if err := yaml.Unmarshal([]byte(reportYAML), &report); err != nil {
		return nil, fmt.Errorf("parsing stored report %s: %w", id, err)
	}
	sr.Report = &report

	return []StoredReport{sr}, nil
}
