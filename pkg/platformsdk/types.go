package platformsdk

import "time"

// Invitation namespaces. Each kind lives under its own URL prefix but
// shares the same lifecycle.
const (
	NamespacePlatform = "invitations"        // platform-admin grants
	NamespaceTenant   = "tenant-invitations" // tenant team members
	NamespacePOC      = "poc-invitations"    // POC engagement customers
)

// ============================================================================
// Error payload
// ============================================================================

// DetailResponse is the error payload shape used across the API.
type DetailResponse struct {
	// Detail is a human-readable description of what went wrong
	Detail string `json:"detail"`
}

// ============================================================================
// Auth
// ============================================================================

// LoginRequest is the body of POST /v1/auth/login. TenantID is optional;
// it selects the tenant to scope the session to and is re-verified
// server-side against the credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	TenantID string `json:"tenant_id,omitempty"`
}

// LoginResponse is either an issued session or a tenant-selection
// challenge, never both.
type LoginResponse struct {
	// SessionToken is the Bearer JWT; empty when selection is required
	SessionToken string `json:"session_token,omitempty"`

	// TokenType is always "Bearer" when a session was issued
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the session lifetime in seconds
	ExpiresIn int `json:"expires_in,omitempty"`

	// Tenant is the session's tenant scope; nil for platform-admin
	// sessions outside any tenant
	Tenant *TenantInfo `json:"tenant,omitempty"`

	// Role is the session's role within Tenant
	Role string `json:"role,omitempty"`

	// TenantSelectionRequired is set when the user belongs to several
	// tenants and named none; Tenants lists the choices
	TenantSelectionRequired bool           `json:"tenant_selection_required,omitempty"`
	Tenants                 []TenantChoice `json:"tenants,omitempty"`
}

// TenantChoice is one selectable membership in a tenant-selection
// challenge.
type TenantChoice struct {
	TenantID   string `json:"tenant_id"`
	TenantName string `json:"tenant_name"`
	Role       string `json:"role"`
	IsDefault  bool   `json:"is_default"`
}

// TenantInfo identifies a tenant in API responses.
type TenantInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// UserInfoResponse describes the authenticated user and their session
// scope.
type UserInfoResponse struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	FullName      string `json:"full_name"`
	PlatformAdmin bool   `json:"platform_admin,omitempty"`

	// Tenant and Role describe the current session's scope
	Tenant *TenantInfo `json:"tenant,omitempty"`
	Role   string      `json:"role,omitempty"`

	// Memberships lists every tenant the user belongs to
	Memberships []MembershipInfo `json:"memberships"`
}

// MembershipInfo is one tenant membership in a userinfo response.
type MembershipInfo struct {
	TenantID   string `json:"tenant_id"`
	TenantName string `json:"tenant_name"`
	Role       string `json:"role"`
	IsDefault  bool   `json:"is_default"`
}

// SetDefaultMembershipRequest is the body of PUT /v1/memberships/default.
type SetDefaultMembershipRequest struct {
	TenantID string `json:"tenant_id"`
}

// ChangePasswordRequest is the body of PUT /v1/userinfo/password. The
// current password is re-verified before the new one is stored.
type ChangePasswordRequest struct {
	CurrentPassword    string `json:"current_password"`
	NewPassword        string `json:"new_password"`
	NewPasswordConfirm string `json:"new_password_confirm"`
}

// TenantMemberInfo is one row of a tenant's member roster.
type TenantMemberInfo struct {
	UserID   string    `json:"user_id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// ListMembersResponse wraps GET /v1/members.
type ListMembersResponse struct {
	Members []TenantMemberInfo `json:"members"`
}

// ============================================================================
// Invitations
// ============================================================================

// MintInvitationRequest is the body of the kind-specific mint endpoints.
// Role applies to tenant and POC invitations; EngagementID only to POC
// invitations. A zero TTL falls back to the 7 day default; TTLs above 30
// days are capped.
type MintInvitationRequest struct {
	Email        string `json:"email"`
	Role         string `json:"role,omitempty"`
	EngagementID string `json:"engagement_id,omitempty"`
	TTLSeconds   int64  `json:"ttl_seconds,omitempty"`
}

// Invitation describes an invitation in API responses. The raw token is
// never included; it is returned exactly once at mint time.
type Invitation struct {
	ID           string     `json:"id"`
	Kind         string     `json:"kind"`
	Email        string     `json:"email"`
	Role         string     `json:"role,omitempty"`
	TenantID     string     `json:"tenant_id,omitempty"`
	EngagementID string     `json:"engagement_id,omitempty"`
	Status       string     `json:"status"`
	ExpiresAt    time.Time  `json:"expires_at"`
	AcceptedAt   *time.Time `json:"accepted_at,omitempty"`
	RevokedAt    *time.Time `json:"revoked_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// MintInvitationResponse carries the raw invitation token. This is the
// only time the token is ever returned; deliver it to the invitee out of
// band.
type MintInvitationResponse struct {
	InvitationToken string     `json:"invitation_token"`
	Invitation      Invitation `json:"invitation"`
}

// AcceptInvitationRequest is the body of the accept endpoints for new
// accounts.
type AcceptInvitationRequest struct {
	Token           string `json:"token"`
	FullName        string `json:"full_name"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// AcceptExistingRequest is the body of POST
// /v1/poc-invitations/accept-existing. The caller is authenticated; the
// session's email must match the invitation's.
type AcceptExistingRequest struct {
	Token string `json:"token"`
}

// AcceptInvitationResponse reports the account the invitation attached
// to.
type AcceptInvitationResponse struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	TenantID string `json:"tenant_id,omitempty"`
}

// ListInvitationsResponse wraps the admin listing endpoints.
type ListInvitationsResponse struct {
	Invitations []Invitation `json:"invitations"`
}

// ============================================================================
// Demo onboarding
// ============================================================================

// DemoRequestRequest is the body of POST /v1/demo/request.
type DemoRequestRequest struct {
	Email   string `json:"email"`
	Company string `json:"company"`
}

// DemoRequestResponse carries the raw email verification token.
type DemoRequestResponse struct {
	VerificationToken string    `json:"verification_token"`
	ExpiresAt         time.Time `json:"expires_at"`
}

// DemoVerifyResponse carries the raw password setup token, issued only
// once the email address is verified.
type DemoVerifyResponse struct {
	SetupToken string    `json:"setup_token"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// DemoSetPasswordRequest is the body of POST /v1/demo/set-password.
type DemoSetPasswordRequest struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// DemoSetPasswordResponse reports the provisioned demo account and
// tenant.
type DemoSetPasswordResponse struct {
	UserID string     `json:"user_id"`
	Email  string     `json:"email"`
	Tenant TenantInfo `json:"tenant"`
}

// ============================================================================
// Tenants and engagements
// ============================================================================

// CreateTenantRequest is the body of POST /v1/tenants. Slug is derived
// from Name when empty.
type CreateTenantRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// ListTenantsResponse wraps GET /v1/tenants.
type ListTenantsResponse struct {
	Tenants []TenantInfo `json:"tenants"`
}

// CreateEngagementRequest is the body of POST /v1/engagements. The
// tenant comes from the session scope.
type CreateEngagementRequest struct {
	Name         string `json:"name"`
	CustomerName string `json:"customer_name"`
}

// Engagement describes a POC engagement in API responses.
type Engagement struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenant_id"`
	Name         string    `json:"name"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListEngagementsResponse wraps GET /v1/engagements.
type ListEngagementsResponse struct {
	Engagements []Engagement `json:"engagements"`
}

// UpdateEngagementStatusRequest is the body of
// PATCH /v1/engagements/{id}/status.
type UpdateEngagementStatusRequest struct {
	Status string `json:"status"`
}

// ============================================================================
// Health
// ============================================================================

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// HealthResponse is returned by the /livez and /readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
