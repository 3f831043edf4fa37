package sqlite

import (
	"context"
	"time"

	"github.com/trialdesk/trialdesk/internal/platform/domain"
)

type membershipsRepo struct {
	db dbtx
}

const membershipColumns = `id, user_id, tenant_id, role, is_default, created_at, updated_at`

func (r *membershipsRepo) GetMembership(ctx context.Context, userID, tenantID string) (domain.Membership, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE user_id = ? AND tenant_id = ?`,
		userID, tenantID)
	return scanMembership(row)
}

func (r *membershipsRepo) ListMembershipsByUser(ctx context.Context, userID string) ([]domain.Membership, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE user_id = ? ORDER BY created_at`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMemberships(rows)
}

func (r *membershipsRepo) ListMembershipsByTenant(ctx context.Context, tenantID string) ([]domain.Membership, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE tenant_id = ? ORDER BY created_at`,
		tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMemberships(rows)
}

func (r *membershipsRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO memberships (id, user_id, tenant_id, role, is_default, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.UserID, m.TenantID, m.Role, m.IsDefault, now, now)
	return mapConstraint(err)
}

func (r *membershipsRepo) ClearDefault(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE memberships SET is_default = 0, updated_at = ? WHERE user_id = ? AND is_default = 1`,
		time.Now().UTC(), userID)
	return err
}

func (r *membershipsRepo) MarkDefault(ctx context.Context, membershipID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE memberships SET is_default = 1, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), membershipID)
	return affectedOrNotFound(res, err)
}

func collectMemberships(rows interface {
	rowScanner
	Next() bool
	Err() error
}) ([]domain.Membership, error) {
	var memberships []domain.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}
	return memberships, rows.Err()
}

func scanMembership(row rowScanner) (domain.Membership, error) {
	var m domain.Membership
	err := row.Scan(
		&m.ID, &m.UserID, &m.TenantID, &m.Role,
		&m.IsDefault, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	return m, nil
}
