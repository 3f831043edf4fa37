package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/trialdesk/trialdesk/internal/platform/domain"
)

type demoSignupsRepo struct {
	db dbtx
}

const demoSignupColumns = `id, email, company, verify_token_hash, setup_token_hash,
	verified, verified_at, completed, completed_at, tenant_id,
	verify_expires_at, setup_expires_at, created_at, updated_at`

func (r *demoSignupsRepo) CreateDemoSignup(ctx context.Context, d domain.DemoSignup) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO demo_signups (id, email, company, verify_token_hash,
		     verified, completed, verify_expires_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, 0, 0, ?, ?, ?)`,
		d.ID, d.Email, d.Company, d.VerifyTokenHash,
		d.VerifyExpiresAt.UTC(), now, now)
	return mapConstraint(err)
}

func (r *demoSignupsRepo) GetDemoSignupByVerifyTokenHash(ctx context.Context, hash string) (domain.DemoSignup, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+demoSignupColumns+` FROM demo_signups WHERE verify_token_hash = ?`, hash)
	return scanDemoSignup(row)
}

func (r *demoSignupsRepo) GetDemoSignupBySetupTokenHash(ctx context.Context, hash string) (domain.DemoSignup, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+demoSignupColumns+` FROM demo_signups WHERE setup_token_hash = ?`, hash)
	return scanDemoSignup(row)
}

func (r *demoSignupsRepo) GetOpenDemoSignupByEmail(ctx context.Context, email string) (domain.DemoSignup, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+demoSignupColumns+` FROM demo_signups
		  WHERE email = ? AND completed = 0
		  ORDER BY created_at DESC LIMIT 1`, email)
	return scanDemoSignup(row)
}

// MarkDemoVerified guards on verified = 0 so the verification token is
// single-use; replays observe ErrNotFound.
func (r *demoSignupsRepo) MarkDemoVerified(ctx context.Context, signupID, setupTokenHash string, setupExpiresAt time.Time) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE demo_signups
		    SET verified = 1, verified_at = ?, setup_token_hash = ?, setup_expires_at = ?, updated_at = ?
		  WHERE id = ? AND verified = 0`,
		now, setupTokenHash, setupExpiresAt.UTC(), now, signupID)
	return affectedOrNotFound(res, err)
}

// MarkDemoCompleted guards on verified = 1 AND completed = 0, rejecting
// both stage-skipping and replays.
func (r *demoSignupsRepo) MarkDemoCompleted(ctx context.Context, signupID, tenantID string) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE demo_signups
		    SET completed = 1, completed_at = ?, tenant_id = ?, updated_at = ?
		  WHERE id = ? AND verified = 1 AND completed = 0`,
		now, tenantID, now, signupID)
	return affectedOrNotFound(res, err)
}

func (r *demoSignupsRepo) DeleteDemoSignup(ctx context.Context, signupID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM demo_signups WHERE id = ?`, signupID)
	return err
}

func (r *demoSignupsRepo) DeleteExpiredDemoSignups(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM demo_signups
		  WHERE completed = 0
		    AND verify_expires_at <= ?
		    AND (setup_expires_at IS NULL OR setup_expires_at <= ?)`,
		now.UTC(), now.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanDemoSignup(row rowScanner) (domain.DemoSignup, error) {
	var (
		d              domain.DemoSignup
		setupTokenHash sql.NullString
		verifiedAt     sql.NullTime
		completedAt    sql.NullTime
		tenantID       sql.NullString
		setupExpiresAt sql.NullTime
	)
	err := row.Scan(
		&d.ID, &d.Email, &d.Company, &d.VerifyTokenHash, &setupTokenHash,
		&d.Verified, &verifiedAt, &d.Completed, &completedAt, &tenantID,
		&d.VerifyExpiresAt, &setupExpiresAt, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return domain.DemoSignup{}, mapNotFound(err)
	}

	d.SetupTokenHash = mapNullString(setupTokenHash)
	d.VerifiedAt = mapNullTimePtr(verifiedAt)
	d.CompletedAt = mapNullTimePtr(completedAt)
	d.TenantID = mapNullString(tenantID)
	d.SetupExpiresAt = mapNullTime(setupExpiresAt)
	return d, nil
}
