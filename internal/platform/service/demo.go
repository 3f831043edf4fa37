package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/trialdesk/trialdesk/internal/platform/domain"
	"github.com/trialdesk/trialdesk/internal/platform/store"
	"github.com/trialdesk/trialdesk/pkg/cryptox"
	"github.com/trialdesk/trialdesk/pkg/idx"
	"github.com/trialdesk/trialdesk/pkg/slogx"
)

const (
	// DemoVerifyTTL bounds how long the email verification link lives.
	DemoVerifyTTL = 24 * time.Hour
	// DemoSetupTTL bounds how long the password setup link lives after
	// verification.
	DemoSetupTTL = 48 * time.Hour
)

var ErrAccountExists = errors.New("an account already exists for this email")

// DemoService runs the self-service demo onboarding flow:
// request -> verify-email -> set-password. Each stage gates the next;
// the setup token only exists once verification succeeded, so the flow
// cannot be entered out of order.
type DemoService struct {
	Store store.Store
}

// RequestDemo records a demo signup and returns the raw email
// verification token. Delivery of that token is the caller's concern.
func (s *DemoService) RequestDemo(ctx context.Context, email, company string) (string, domain.DemoSignup, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", domain.DemoSignup{}, newValidationError("a valid email address is required")
	}
	company = strings.TrimSpace(company)
	if company == "" {
		return "", domain.DemoSignup{}, newValidationError("company name is required")
	}

	// 2. Reject emails that already have an account.
	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return "", domain.DemoSignup{}, ErrAccountExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return "", domain.DemoSignup{}, err
	}

	// 3. A repeated request supersedes any open signup for the same
	// email: the old row is removed so its tokens stop working.
	if prior, err := s.Store.DemoSignups().GetOpenDemoSignupByEmail(ctx, email); err == nil {
		if err := s.Store.DemoSignups().DeleteDemoSignup(ctx, prior.ID); err != nil {
			return "", domain.DemoSignup{}, err
		}
		log.Info("superseded open demo signup", slog.String("signup_id", prior.ID))
	} else if !errors.Is(err, store.ErrNotFound) {
		return "", domain.DemoSignup{}, err
	}

	// 4. Issue the verification token.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", domain.DemoSignup{}, err
	}

	signup := domain.DemoSignup{
		ID:              idx.New().String(),
		Email:           email,
		Company:         company,
		VerifyTokenHash: cryptox.FingerprintToken(token),
		VerifyExpiresAt: time.Now().Add(DemoVerifyTTL),
	}
	if err := s.Store.DemoSignups().CreateDemoSignup(ctx, signup); err != nil {
		log.Error("failed to create demo signup", slog.Any("error", err))
		return "", domain.DemoSignup{}, err
	}

	log.Info("demo signup requested",
		slog.String("signup_id", signup.ID),
		slog.String("company", company),
	)

	return token, signup, nil
}

// VerifyEmail confirms a signup's email address and returns the raw
// password setup token for the next stage.
func (s *DemoService) VerifyEmail(ctx context.Context, rawToken string) (string, domain.DemoSignup, error) {
	log := slogx.FromContext(ctx)

	if rawToken == "" {
		return "", domain.DemoSignup{}, ErrInvalidOrExpiredToken
	}

	signup, err := s.Store.DemoSignups().GetDemoSignupByVerifyTokenHash(ctx, cryptox.FingerprintToken(rawToken))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.DemoSignup{}, ErrInvalidOrExpiredToken
		}
		return "", domain.DemoSignup{}, err
	}

	if signup.Verified {
		return "", domain.DemoSignup{}, ErrAlreadyProcessed
	}
	if time.Now().After(signup.VerifyExpiresAt) {
		return "", domain.DemoSignup{}, ErrInvalidOrExpiredToken
	}

	setupToken, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", domain.DemoSignup{}, err
	}

	setupExpiry := time.Now().Add(DemoSetupTTL)
	err = s.Store.DemoSignups().MarkDemoVerified(ctx, signup.ID, cryptox.FingerprintToken(setupToken), setupExpiry)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Lost a race against another verification of the same token.
			return "", domain.DemoSignup{}, ErrAlreadyProcessed
		}
		return "", domain.DemoSignup{}, err
	}

	log.Info("demo signup verified", slog.String("signup_id", signup.ID))

	signup.Verified = true
	signup.SetupExpiresAt = setupExpiry
	return setupToken, signup, nil
}

// CompleteSignup consumes the setup token, sets the account password and
// provisions the demo tenant with an admin membership, all in one
// transaction.
func (s *DemoService) CompleteSignup(
	ctx context.Context,
	rawSetupToken string,
	password string,
	passwordConfirm string,
) (domain.User, domain.Tenant, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if err := validatePassword(password, passwordConfirm); err != nil {
		return domain.User{}, domain.Tenant{}, err
	}
	if rawSetupToken == "" {
		return domain.User{}, domain.Tenant{}, ErrInvalidOrExpiredToken
	}

	// 2. Look the signup up by setup token. The token only exists after
	// verify-email, so an unverified signup can never reach this stage.
	signup, err := s.Store.DemoSignups().GetDemoSignupBySetupTokenHash(ctx, cryptox.FingerprintToken(rawSetupToken))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.Tenant{}, ErrInvalidOrExpiredToken
		}
		return domain.User{}, domain.Tenant{}, err
	}

	if signup.Completed {
		return domain.User{}, domain.Tenant{}, ErrAlreadyProcessed
	}
	if !signup.Verified {
		return domain.User{}, domain.Tenant{}, ErrInvalidOrExpiredToken
	}
	if time.Now().After(signup.SetupExpiresAt) {
		return domain.User{}, domain.Tenant{}, ErrInvalidOrExpiredToken
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, domain.Tenant{}, err
	}

	// 3. Provision tenant, user and membership, and consume the signup.
	var (
		user   domain.User
		tenant domain.Tenant
	)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		tenant = domain.Tenant{
			ID:   idx.New().String(),
			Name: signup.Company,
			Slug: uniqueSlug(ctx, tx, signup.Company),
		}
		if err := tx.Tenants().CreateTenant(ctx, tenant); err != nil {
			return err
		}

		user = domain.User{
			ID:           idx.New().String(),
			Email:        signup.Email,
			FullName:     signup.Company + " admin",
			PasswordHash: hash,
		}
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}

		if err := tx.Memberships().CreateMembership(ctx, domain.Membership{
			ID:        idx.New().String(),
			UserID:    user.ID,
			TenantID:  tenant.ID,
			Role:      domain.RoleAdmin,
			IsDefault: true,
		}); err != nil {
			return err
		}

		if err := tx.DemoSignups().MarkDemoCompleted(ctx, signup.ID, tenant.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrAlreadyProcessed
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.User{}, domain.Tenant{}, err
	}

	log.Info("demo signup completed",
		slog.String("signup_id", signup.ID),
		slog.String("tenant_id", tenant.ID),
		slog.String("user_id", user.ID),
	)

	return user, tenant, nil
}
