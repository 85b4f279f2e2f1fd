package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/bankedge/gateway/internal/pkg/jwt"
	"github.com/bankedge/gateway/internal/pkg/models"
	"github.com/bankedge/gateway/internal/utils"
)

// Requirement is the outcome a policy rule demands for matching requests
type Requirement int

const (
	// Public allows the request unconditionally
	Public Requirement = iota
	// Authenticated allows the request only with a valid bearer token
	Authenticated
	// Deny rejects the request unconditionally
	Deny
)

// PolicyRule matches a route pattern plus an optional method set against a
// requirement. Patterns are exact paths, or prefixes ending in "/**".
type PolicyRule struct {
	Pattern     string
	Methods     []string
	Requirement Requirement
}

// AuthorizationGate evaluates the ordered policy once per request, before
// any handler runs. First matching rule wins; no match denies.
type AuthorizationGate struct {
	rules  []PolicyRule
	jwtCfg models.JWTConfig
}

// NewAuthorizationGate creates a gate over the given ordered policy
func NewAuthorizationGate(rules []PolicyRule, jwtCfg models.JWTConfig) *AuthorizationGate {
	return &AuthorizationGate{rules: rules, jwtCfg: jwtCfg}
}

// Middleware returns the Echo middleware enforcing the policy
func (g *AuthorizationGate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			method := c.Request().Method

			rule, matched := g.match(path, method)
			if !matched {
				return utils.ForbiddenResponse(c, "Access denied")
			}

			switch rule.Requirement {
			case Public:
				return next(c)
			case Authenticated:
				if err := g.authenticate(c); err != nil {
					return utils.UnauthorizedResponse(c, err.Error())
				}
				return next(c)
			default:
				return utils.ForbiddenResponse(c, "Access denied")
			}
		}
	}
}

func (g *AuthorizationGate) match(path, method string) (PolicyRule, bool) {
	for _, rule := range g.rules {
		if !matchPattern(rule.Pattern, path) {
			continue
		}
		if !matchMethod(rule.Methods, method) {
			continue
		}
		return rule, true
	}
	return PolicyRule{}, false
}

// authenticate validates the bearer token and stores the subject in the
// Echo context for handlers.
func (g *AuthorizationGate) authenticate(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return errAuthHeaderRequired
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return errAuthHeaderInvalid
	}

	claims, err := jwtpkg.ValidateToken(parts[1], g.jwtCfg.Secret)
	if err != nil {
		return errTokenInvalid
	}

	c.Set("user_id", claims.UserID)
	c.Set("username", claims.Username)
	c.Set("user_role", claims.Role)

	return nil
}

func matchPattern(pattern, path string) bool {
	if strings.HasSuffix(pattern, "/**") {
		prefix := strings.TrimSuffix(pattern, "/**")
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return pattern == path
}

func matchMethod(methods []string, method string) bool {
	if len(methods) == 0 {
		return true
	}
	for _, m := range methods {
		if m == method {
			return true
		}
	}
	return false
}

type gateError string

func (e gateError) Error() string { return string(e) }

const (
	errAuthHeaderRequired = gateError("Authorization header is required")
	errAuthHeaderInvalid  = gateError("Invalid authorization format")
	errTokenInvalid       = gateError("Invalid token")
)
