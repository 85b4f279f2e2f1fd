package middleware

import "net/http"

// GatewayPolicy returns the ordered route policy for the edge gateway.
// Evaluated top to bottom, first match wins; anything unmatched is denied.
//
// The /users/** surface is deliberately public: the admin console and
// inter-service callers hit it without a gateway token today. Flipping it
// to Authenticated is a one-line change here.
func GatewayPolicy() []PolicyRule {
	return []PolicyRule{
		// Authentication endpoints
		{Pattern: "/auth/send-otp", Requirement: Public},
		{Pattern: "/auth/verify-otp", Requirement: Public},
		{Pattern: "/auth/admin-login", Requirement: Public},
		{Pattern: "/auth/refresh", Methods: []string{http.MethodPost}, Requirement: Authenticated},

		// Health probes
		{Pattern: "/health/**", Requirement: Public},
		{Pattern: "/health", Requirement: Public},

		// SPA pages and static assets
		{Pattern: "/", Requirement: Public},
		{Pattern: "/login", Requirement: Public},
		{Pattern: "/dashboard", Requirement: Public},
		{Pattern: "/admin", Requirement: Public},
		{Pattern: "/registration", Requirement: Public},
		{Pattern: "/kyc", Requirement: Public},
		{Pattern: "/static/**", Requirement: Public},
		{Pattern: "/css/**", Requirement: Public},
		{Pattern: "/js/**", Requirement: Public},
		{Pattern: "/images/**", Requirement: Public},
		{Pattern: "/favicon.ico", Requirement: Public},

		// API documentation
		{Pattern: "/swagger-ui/**", Requirement: Public},
		{Pattern: "/v3/api-docs/**", Requirement: Public},

		// User administration
		{Pattern: "/users/**", Requirement: Public},

		// Document proxy
		{Pattern: "/documents/**", Requirement: Authenticated},
	}
}
