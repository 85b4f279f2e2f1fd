package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/bankedge/gateway/internal/pkg/models"
)

// Token validation failures. Callers can distinguish an unparseable token
// from a forged or an expired one.
var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenSignature = errors.New("token signature is invalid")
	ErrTokenExpired   = errors.New("token is expired")
)

// Claims represents standard JWT claims plus custom identity fields
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed token for the given user. The expiry horizon
// comes from configuration (24h policy by default).
func GenerateToken(user *models.User, cfg models.JWTConfig) (string, int64, error) {
	now := time.Now()
	expirationTime := now.Add(time.Duration(cfg.Expiration) * time.Minute)

	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expirationTime.Unix(), nil
}

// ValidateToken validates a token and returns its claims. Failures map to
// ErrTokenMalformed, ErrTokenSignature or ErrTokenExpired.
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, classifyError(err)
	}

	if !token.Valid {
		return nil, ErrTokenSignature
	}

	return claims, nil
}

// ExtractUser rebuilds the token subject from validated claims
func ExtractUser(claims *Claims) *models.User {
	return &models.User{
		ID:       claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}
}

// RefreshToken re-issues a token for the same subject with a fresh expiry
// window. The underlying credential is not re-verified: refresh is only as
// strong as the validity of the presented token.
func RefreshToken(tokenString string, cfg models.JWTConfig) (string, int64, error) {
	claims, err := ValidateToken(tokenString, cfg.Secret)
	if err != nil {
		return "", 0, err
	}
	return GenerateToken(ExtractUser(claims), cfg)
}

func classifyError(err error) error {
	var verr *jwt.ValidationError
	if !errors.As(err, &verr) {
		return ErrTokenMalformed
	}

	switch {
	case verr.Errors&jwt.ValidationErrorMalformed != 0:
		return ErrTokenMalformed
	case verr.Errors&jwt.ValidationErrorSignatureInvalid != 0:
		return ErrTokenSignature
	case verr.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0:
		return ErrTokenExpired
	default:
		return ErrTokenSignature
	}
}
