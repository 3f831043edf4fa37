package sqlite

import (
	"context"
	"time"

	"github.com/trialdesk/trialdesk/internal/platform/domain"
)

type engagementsRepo struct {
	db dbtx
}

const engagementColumns = `id, tenant_id, name, customer_name, status, created_by, created_at, updated_at`

func (r *engagementsRepo) GetEngagementByID(ctx context.Context, id string) (domain.Engagement, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+engagementColumns+` FROM engagements WHERE id = ?`, id)
	return scanEngagement(row)
}

func (r *engagementsRepo) ListEngagementsByTenant(ctx context.Context, tenantID string) ([]domain.Engagement, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+engagementColumns+` FROM engagements WHERE tenant_id = ? ORDER BY created_at DESC`,
		tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var engagements []domain.Engagement
	for rows.Next() {
		e, err := scanEngagement(rows)
		if err != nil {
			return nil, err
		}
		engagements = append(engagements, e)
	}
	return engagements, rows.Err()
}

func (r *engagementsRepo) CreateEngagement(ctx context.Context, e domain.Engagement) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO engagements (id, tenant_id, name, customer_name, status, created_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.TenantID, e.Name, e.CustomerName, e.Status, e.CreatedBy, now, now)
	return mapConstraint(err)
}

func (r *engagementsRepo) UpdateEngagementStatus(ctx context.Context, engagementID, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE engagements SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), engagementID)
	return affectedOrNotFound(res, err)
}

func scanEngagement(row rowScanner) (domain.Engagement, error) {
	var e domain.Engagement
	err := row.Scan(
		&e.ID, &e.TenantID, &e.Name, &e.CustomerName,
		&e.Status, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return domain.Engagement{}, mapNotFound(err)
	}
	return e, nil
}
