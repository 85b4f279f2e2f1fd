package users

import (
	"context"

	"github.com/bankedge/gateway/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_users.go -package=mocks github.com/bankedge/gateway/services/users AuthUC,UserUC,UserRepo,OtpGW,EventGW

// AuthUC defines the interface for authentication business logic
type AuthUC interface {
	// SendOTP asks the SMS provider to deliver a code and returns the
	// provider's session id for the later verify call
	SendOTP(ctx context.Context, phone string) (string, error)
	// VerifyOTP checks the code against the provider session and resolves
	// (or creates) the customer identity, returning a session token
	VerifyOTP(ctx context.Context, req *models.OtpVerifyRequest) (*models.AuthResponse, error)
	// LoginAdmin verifies administrator credentials and returns a session token
	LoginAdmin(ctx context.Context, req *models.AdminLoginRequest) (*models.AuthResponse, error)
	// RefreshToken re-issues a token with a fresh expiry for a valid token
	RefreshToken(ctx context.Context, token string) (*models.AuthResponse, error)
}

// UserUC defines the interface for user administration operations
type UserUC interface {
	CreateUser(ctx context.Context, req *models.UserRequest) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUserStatus(ctx context.Context, id int64, enabled bool) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// UserRepo defines the user repository interface
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// FindOrCreateByUsername returns the user with the given username,
	// creating it when absent; the bool reports whether a row was created.
	// Concurrent first-time creates for the same username must converge on
	// a single row.
	FindOrCreateByUsername(ctx context.Context, user *models.User) (*models.User, bool, error)
	UpdateEnabled(ctx context.Context, id int64, enabled bool) error
	DeleteUser(ctx context.Context, id int64) error
}

// OtpGW defines the SMS OTP provider gateway interface
type OtpGW interface {
	// RequestCode triggers an SMS send and returns the provider session id
	RequestCode(ctx context.Context, phone string) (string, error)
	// VerifyCode reports whether the code matches the session. Provider
	// failures surface as errors, never as false.
	VerifyCode(ctx context.Context, sessionID, code string) (bool, error)
}

// EventGW publishes auth events. Implementations must be safe to call even
// when the broker is unavailable; publish failures never fail a login.
type EventGW interface {
	PublishCustomerRegistered(ctx context.Context, event *models.AuthEvent) error
	PublishAdminLogin(ctx context.Context, event *models.AuthEvent) error
}
