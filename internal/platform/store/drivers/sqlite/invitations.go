package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/trialdesk/trialdesk/internal/platform/domain"
)

type invitationsRepo struct {
	db dbtx
}

const invitationColumns = `id, token_hash, kind, email, role, tenant_id, engagement_id,
	invited_by, status, expires_at, accepted_by, accepted_at, revoked_at, created_at, updated_at`

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invitations (id, token_hash, kind, email, role, tenant_id, engagement_id,
		     invited_by, status, expires_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.TokenHash, inv.Kind, inv.Email, inv.Role,
		mapStringNull(inv.TenantID), mapStringNull(inv.EngagementID),
		inv.InvitedBy, domain.InvitationStatusPending, inv.ExpiresAt.UTC(), now, now)
	return mapConstraint(err)
}

func (r *invitationsRepo) GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE token_hash = ?`, hash)
	return scanInvitation(row)
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE id = ?`, id)
	return scanInvitation(row)
}

func (r *invitationsRepo) ListInvitations(ctx context.Context, kind, tenantID string) ([]domain.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE kind = ?`
	args := []any{kind}
	if tenantID != "" {
		query += ` AND tenant_id = ?`
		args = append(args, tenantID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invitations []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

// MarkInvitationAccepted only succeeds while the row is still pending.
// The WHERE status guard plus the rows-affected check is what makes two
// concurrent accepts resolve to exactly one winner.
func (r *invitationsRepo) MarkInvitationAccepted(ctx context.Context, invitationID, acceptedBy string) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE invitations
		    SET status = ?, accepted_by = ?, accepted_at = ?, updated_at = ?
		  WHERE id = ? AND status = ?`,
		domain.InvitationStatusAccepted, acceptedBy, now, now,
		invitationID, domain.InvitationStatusPending)
	return affectedOrNotFound(res, err)
}

func (r *invitationsRepo) MarkInvitationRevoked(ctx context.Context, invitationID string) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE invitations
		    SET status = ?, revoked_at = ?, updated_at = ?
		  WHERE id = ? AND status = ?`,
		domain.InvitationStatusRevoked, now, now,
		invitationID, domain.InvitationStatusPending)
	return affectedOrNotFound(res, err)
}

func (r *invitationsRepo) ExpireOverdueInvitations(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invitations
		    SET status = ?, updated_at = ?
		  WHERE status = ? AND expires_at <= ?`,
		domain.InvitationStatusExpired, now.UTC(),
		domain.InvitationStatusPending, now.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanInvitation(row rowScanner) (domain.Invitation, error) {
	var (
		inv          domain.Invitation
		tenantID     sql.NullString
		engagementID sql.NullString
		acceptedBy   sql.NullString
		acceptedAt   sql.NullTime
		revokedAt    sql.NullTime
	)
	err := row.Scan(
		&inv.ID, &inv.TokenHash, &inv.Kind, &inv.Email, &inv.Role,
		&tenantID, &engagementID, &inv.InvitedBy, &inv.Status, &inv.ExpiresAt,
		&acceptedBy, &acceptedAt, &revokedAt, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}

	inv.TenantID = mapNullString(tenantID)
	inv.EngagementID = mapNullString(engagementID)
	inv.AcceptedBy = mapNullString(acceptedBy)
	inv.AcceptedAt = mapNullTimePtr(acceptedAt)
	inv.RevokedAt = mapNullTimePtr(revokedAt)
	return inv, nil
}
