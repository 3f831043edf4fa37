package httpx

import "net/http"

// RequirePlatformAdmin rejects sessions without the platform-admin flag.
func RequirePlatformAdmin() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok || !claims.PlatformAdmin {
				WriteDetail(w, http.StatusForbidden, "platform administrator access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireTenant rejects sessions that are not scoped to a tenant.
// Platform admins without a tenant scope are rejected too: tenant data is
// only reachable through a session issued for that tenant.
func RequireTenant() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok || claims.TenantID == "" {
				WriteDetail(w, http.StatusForbidden, "tenant-scoped session required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireTenantRole rejects tenant sessions whose role is not one of the
// allowed roles.
func RequireTenantRole(allowed ...string) Middleware {
	want := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		want[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok || claims.TenantID == "" {
				WriteDetail(w, http.StatusForbidden, "tenant-scoped session required")
				return
			}
			if _, allowed := want[claims.Role]; !allowed {
				WriteDetail(w, http.StatusForbidden, "insufficient role for this operation")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
