package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/plainweb/plainaudit/internal/domain/audits"
)

type ReportRepository struct{ db *sql.DB }

func NewReportRepository(db *sql.DB) *ReportRepository { return &ReportRepository{db: db} }

// Save insert/update Report record
func (r *ReportRepository) Save(ctx context.Context, rep *domain.Report) error {
	const q = `
INSERT INTO audit_reports
(url_hash, id, url, status, score, risk_level, issues_total, artifact_url, report, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
ON CONFLICT (url_hash) DO UPDATE SET
 id = EXCLUDED.id,
 status = EXCLUDED.status,
 score = EXCLUDED.score,
 risk_level = EXCLUDED.risk_level,
 issues_total = EXCLUDED.issues_total,
 artifact_url = EXCLUDED.artifact_url,
 report = EXCLUDED.report,
 created_at = EXCLUDED.created_at;`

	doc, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	status := stringOrDash(string(rep.Status))
	created := rep.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err = r.db.ExecContext(ctx, q,
		rep.URLHash, rep.ID, rep.URL, status,
		rep.Score, rep.RiskLevel, rep.Buckets.TotalFailures(),
		rep.ArtifactURL, doc, created,
	)
	return err
}

// Get by url hash
func (r *ReportRepository) Get(ctx context.Context, urlHash string) (*domain.Report, error) {
	const q = `SELECT report FROM audit_reports WHERE url_hash=$1 LIMIT 1;`
	var doc []byte
	if err := r.db.QueryRowContext(ctx, q, urlHash).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var rep domain.Report
	if err := json.Unmarshal(doc, &rep); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &rep, nil
}

// Latest reports, scalar columns only
func (r *ReportRepository) Latest(ctx context.Context, limit int) ([]*domain.Report, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT url_hash, id, url, status, score, risk_level, artifact_url, created_at
FROM audit_reports
ORDER BY created_at DESC LIMIT $1;`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Report
	for rows.Next() {
		var rep domain.Report
		if err := rows.Scan(
			&rep.URLHash, &rep.ID, &rep.URL, &rep.Status,
			&rep.Score, &rep.RiskLevel, &rep.ArtifactURL, &rep.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &rep)
	}
	return out, rows.Err()
}

// stringOrDash returns "-" when the input is empty/whitespace
func stringOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
