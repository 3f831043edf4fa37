package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/cors"

	"github.com/trialdesk/trialdesk/internal/platform/domain"
	"github.com/trialdesk/trialdesk/internal/platform/service"
	"github.com/trialdesk/trialdesk/internal/platform/store"
	"github.com/trialdesk/trialdesk/pkg/httpx"
	"github.com/trialdesk/trialdesk/pkg/jwtx"
	"github.com/trialdesk/trialdesk/pkg/slogx"

	_ "github.com/trialdesk/trialdesk/api/platform" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       *jwtx.Signer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	AuthService       *service.AuthService
	MembershipService *service.MembershipService
	InvitationService *service.InvitationService
	DemoService       *service.DemoService
	TenantService     *service.TenantService
	EngagementService *service.EngagementService
}

func NewRouter(
	signer *jwtx.Signer,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	allowedOrigins []string,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		cors.Handler(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerInvitations()
	r.registerDemo()
	r.registerTenants()
	r.registerEngagements()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Trialdesk Platform API
//	@version		0.1.0
//	@description	Multi-tenant POC management platform core: credential login with tenant
//	@description	selection, single-use invitation tokens (platform, tenant and POC customer),
//	@description	and self-service demo onboarding.
//	@description
//	@description				Sessions are Ed25519-signed JWTs scoped to at most one tenant.
//	@description				Error responses carry a single human-readable "detail" string.
//
//	@contact.name				Trialdesk Team
//	@contact.url				https://github.com/trialdesk/trialdesk
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	loginHandler := &LoginHandler{AuthService: r.AuthService}

	// POST /auth/login - strict rate limit by IP + email to slow down
	// credential stuffing without letting one address lock out an office IP
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIPAndBodyField(httpx.StrictLimit, "email"),
		),
	)

	userInfoHandler := &UserInfoHandler{
		Store:             r.store,
		MembershipService: r.MembershipService,
	}
	r.Mux.Handle("GET /v1/userinfo",
		httpx.Chain(userInfoHandler,
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	passwordHandler := &PasswordHandler{AuthService: r.AuthService}
	r.Mux.Handle("PUT /v1/userinfo/password",
		httpx.Chain(http.HandlerFunc(passwordHandler.HandleChange),
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)

	membershipHandler := &MembershipHandler{MembershipService: r.MembershipService}
	r.Mux.Handle("PUT /v1/memberships/default",
		httpx.Chain(http.HandlerFunc(membershipHandler.HandleSetDefault),
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/members",
		httpx.Chain(http.HandlerFunc(membershipHandler.HandleListMembers),
			httpx.AuthnMiddleware(r.signer),
			httpx.RequireTenant(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

// registerInvitations mounts the three invitation namespaces. They share
// one handler type and lifecycle; what differs is the kind, the URL
// prefix and who may mint/revoke/list.
func (r *Router) registerInvitations() {
	platform := &InvitationHandler{InvitationService: r.InvitationService, Kind: domain.InvitationKindPlatform}
	tenant := &InvitationHandler{InvitationService: r.InvitationService, Kind: domain.InvitationKindTenant}
	poc := &InvitationHandler{InvitationService: r.InvitationService, Kind: domain.InvitationKindEngagement}

	r.mountInvitations("invitations", platform,
		httpx.AuthnMiddleware(r.signer),
		httpx.RequirePlatformAdmin(),
	)
	r.mountInvitations("tenant-invitations", tenant,
		httpx.AuthnMiddleware(r.signer),
		httpx.RequireTenantRole(domain.RoleAdmin),
	)
	r.mountInvitations("poc-invitations", poc,
		httpx.AuthnMiddleware(r.signer),
		httpx.RequireTenantRole(domain.RoleAdmin, domain.RoleMember),
	)

	// POST /poc-invitations/accept-existing - authenticated but no role
	// requirement; the invitee may not belong to any tenant yet
	r.Mux.Handle("POST /v1/poc-invitations/accept-existing",
		httpx.Chain(http.HandlerFunc(poc.HandleAcceptExisting),
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

// mountInvitations wires one namespace's routes. adminChain guards the
// mint/revoke/list surface; validate and accept are public endpoints
// reached by invitees who have no session yet.
func (r *Router) mountInvitations(prefix string, h *InvitationHandler, adminChain ...httpx.Middleware) {
	secured := append([]httpx.Middleware{}, adminChain...)

	r.Mux.Handle("POST /v1/"+prefix,
		httpx.Chain(http.HandlerFunc(h.HandleMint),
			append(secured, httpx.RateLimitByUser(httpx.ModerateLimit))...,
		),
	)
	r.Mux.Handle("GET /v1/"+prefix,
		httpx.Chain(http.HandlerFunc(h.HandleList),
			append(secured, httpx.RateLimitByUser(httpx.ModerateLimit))...,
		),
	)
	r.Mux.Handle("POST /v1/"+prefix+"/{id}/revoke",
		httpx.Chain(http.HandlerFunc(h.HandleRevoke),
			append(secured, httpx.RateLimitByUser(httpx.ModerateLimit))...,
		),
	)

	// Public: token validation and acceptance, strict IP limits
	r.Mux.Handle("GET /v1/"+prefix+"/validate/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleValidate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/"+prefix+"/accept",
		httpx.Chain(http.HandlerFunc(h.HandleAccept),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerDemo() {
	h := &DemoHandler{DemoService: r.DemoService}

	// Public signup surface - strict IP rate limits throughout
	r.Mux.Handle("POST /v1/demo/request",
		httpx.Chain(http.HandlerFunc(h.HandleRequest),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("GET /v1/demo/verify-email",
		httpx.Chain(http.HandlerFunc(h.HandleVerifyEmail),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/demo/set-password",
		httpx.Chain(http.HandlerFunc(h.HandleSetPassword),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerTenants() {
	h := &TenantsHandler{TenantService: r.TenantService}

	securedAdmin := []httpx.Middleware{
		httpx.AuthnMiddleware(r.signer),
		httpx.RequirePlatformAdmin(),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	}

	r.Mux.Handle("POST /v1/tenants",
		httpx.Chain(http.HandlerFunc(h.HandleCreate), securedAdmin...))
	r.Mux.Handle("GET /v1/tenants",
		httpx.Chain(http.HandlerFunc(h.HandleList), securedAdmin...))

	// GET by id is open to members of that tenant too; the handler checks
	r.Mux.Handle("GET /v1/tenants/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerEngagements() {
	h := &EngagementsHandler{EngagementService: r.EngagementService}

	write := []httpx.Middleware{
		httpx.AuthnMiddleware(r.signer),
		httpx.RequireTenantRole(domain.RoleAdmin, domain.RoleMember),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	}
	read := []httpx.Middleware{
		httpx.AuthnMiddleware(r.signer),
		httpx.RequireTenant(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	}

	r.Mux.Handle("POST /v1/engagements",
		httpx.Chain(http.HandlerFunc(h.HandleCreate), write...))
	r.Mux.Handle("GET /v1/engagements",
		httpx.Chain(http.HandlerFunc(h.HandleList), read...))
	r.Mux.Handle("GET /v1/engagements/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet), read...))
	r.Mux.Handle("PATCH /v1/engagements/{id}/status",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateStatus), write...))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
