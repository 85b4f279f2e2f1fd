package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bankedge/gateway/internal/pkg/apperr"
	jwtpkg "github.com/bankedge/gateway/internal/pkg/jwt"
	"github.com/bankedge/gateway/internal/pkg/logger"
	"github.com/bankedge/gateway/internal/pkg/models"
	"github.com/bankedge/gateway/internal/utils"
)

// dummyPasswordHash keeps the bcrypt cost constant when the username does
// not resolve to an admin, so response timing does not reveal whether the
// account exists.
var dummyPasswordHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// SendOTP asks the SMS provider to deliver a code to the phone number and
// returns the provider session id.
func (u *UserUC) SendOTP(ctx context.Context, phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", apperr.Validation("Phone number is required")
	}
	if _, err := utils.NormalizePhone(phone); err != nil {
		return "", apperr.Validation("Invalid phone number format")
	}

	sessionID, err := u.otpGW.RequestCode(ctx, phone)
	if err != nil {
		return "", err
	}

	return sessionID, nil
}

// VerifyOTP checks the entered code against the provider session, resolves
// the customer identity (creating it on first login) and issues a token.
func (u *UserUC) VerifyOTP(ctx context.Context, req *models.OtpVerifyRequest) (*models.AuthResponse, error) {
	if req.Phone == "" || req.OTP == "" || req.SessionID == "" {
		return nil, apperr.Validation("phone, otp and sessionId are required")
	}

	nationalNumber, err := utils.NormalizePhone(req.Phone)
	if err != nil {
		return nil, apperr.Validation("Invalid phone number format")
	}

	valid, err := u.otpGW.VerifyCode(ctx, req.SessionID, req.OTP)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, apperr.Authentication("Invalid OTP")
	}

	user, created, err := u.userRepo.FindOrCreateByUsername(ctx, &models.User{
		Username: utils.CustomerUsername(nationalNumber),
		Role:     models.RoleCustomer,
		Enabled:  true,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to resolve customer identity", err)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user, u.cfg.JWT)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to generate token", err)
	}

	if created {
		u.publishEvent(ctx, user, true)
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}

// LoginAdmin verifies administrator credentials. Every failure mode yields
// the same caller-facing error so usernames cannot be enumerated.
func (u *UserUC) LoginAdmin(ctx context.Context, req *models.AdminLoginRequest) (*models.AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperr.Validation("username and password are required")
	}

	invalidCredentials := apperr.Authentication("Invalid username or password")

	user, err := u.userRepo.GetUserByUsername(ctx, req.Username)

	// Gate checks run before the password compare, and the compare runs
	// against a dummy hash when they fail, keeping timing flat.
	hash := dummyPasswordHash
	eligible := false
	var reason string
	switch {
	case err != nil:
		reason = "unknown user"
	case !strings.EqualFold(user.Role, models.RoleAdmin):
		reason = "not an admin"
	case !user.Enabled:
		reason = "account disabled"
	case user.PasswordHash == "":
		reason = "no credential on record"
	default:
		hash = []byte(user.PasswordHash)
		eligible = true
	}

	match := bcrypt.CompareHashAndPassword(hash, []byte(req.Password)) == nil

	if !eligible || !match {
		if reason == "" {
			reason = "password mismatch"
		}
		logger.Debug("Admin login rejected",
			logger.String("username", req.Username),
			logger.String("reason", reason))
		return nil, invalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user, u.cfg.JWT)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to generate token", err)
	}

	u.publishEvent(ctx, user, false)

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}

// RefreshToken re-issues a token with a fresh expiry window for a token
// that still validates. The underlying credential is not re-checked.
func (u *UserUC) RefreshToken(ctx context.Context, token string) (*models.AuthResponse, error) {
	claims, err := jwtpkg.ValidateToken(token, u.cfg.JWT.Secret)
	if err != nil {
		if errors.Is(err, jwtpkg.ErrTokenExpired) {
			return nil, apperr.Authentication("Token expired")
		}
		return nil, apperr.Authentication("Invalid token")
	}

	user := jwtpkg.ExtractUser(claims)
	newToken, expiresAt, err := jwtpkg.GenerateToken(user, u.cfg.JWT)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to generate token", err)
	}

	return &models.AuthResponse{
		Token:     newToken,
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}

// publishEvent fires an auth event without letting broker failures reach
// the caller.
func (u *UserUC) publishEvent(ctx context.Context, user *models.User, newUser bool) {
	if u.eventGW == nil {
		return
	}

	event := &models.AuthEvent{
		EventID:  uuid.New().String(),
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		NewUser:  newUser,
	}

	// Bounded so a stalled broker cannot hold up the login response path.
	pubCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	publish := u.eventGW.PublishAdminLogin
	if newUser {
		publish = u.eventGW.PublishCustomerRegistered
	}

	if err := publish(pubCtx, event); err != nil {
		logger.Warn("Auth event not published",
			logger.Int64("user_id", user.ID),
			logger.Err(err))
	}
}
