package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	domain "github.com/plainweb/plainaudit/internal/domain/audits"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Save insert/update Report record. The full report document is stored as
// JSON; the scalar columns exist for listing without decoding documents.
func (r *ReportRepository) Save(ctx context.Context, rep *domain.Report) error {
	const q = `
INSERT INTO audit_reports
(url_hash, id, url, status, score, risk_level, issues_total, artifact_url, report, created_at)
VALUES (?,?,?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
 id=VALUES(id), status=VALUES(status), score=VALUES(score),
 risk_level=VALUES(risk_level), issues_total=VALUES(issues_total),
 artifact_url=VALUES(artifact_url), report=VALUES(report), created_at=VALUES(created_at);
`
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

// Get by url hash; the stored document is the source of truth
func (r *ReportRepository) Get(ctx context.Context, urlHash string) (*domain.Report, error) {
	const q = `SELECT report FROM audit_reports WHERE url_hash=? LIMIT 1;`
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

// Latest reports, scalar columns only (no documents)
func (r *ReportRepository) Latest(ctx context.Context, limit int) ([]*domain.Report, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT url_hash, id, url, status, score, risk_level, artifact_url, created_at
FROM audit_reports
ORDER BY created_at DESC LIMIT ?;
`
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
