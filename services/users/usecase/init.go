package usecase

import (
	"github.com/bankedge/gateway/internal/pkg/models"
	"github.com/bankedge/gateway/services/users"
)

// UserUC implements authentication and user administration business logic
type UserUC struct {
	userRepo users.UserRepo
	otpGW    users.OtpGW
	eventGW  users.EventGW
	cfg      *models.Config
}

// NewUserUC creates a new user usecase instance
func NewUserUC(
	userRepo users.UserRepo,
	otpGW users.OtpGW,
	eventGW users.EventGW,
	cfg *models.Config,
) *UserUC {
	return &UserUC{
		userRepo: userRepo,
		otpGW:    otpGW,
		eventGW:  eventGW,
		cfg:      cfg,
	}
}
