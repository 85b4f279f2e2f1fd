package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/bankedge/gateway/internal/pkg/apperr"
	"github.com/bankedge/gateway/internal/pkg/models"
)

// CreateUser provisions a user. Admin accounts require a password, which is
// stored only as a bcrypt hash.
func (u *UserUC) CreateUser(ctx context.Context, req *models.UserRequest) (*models.User, error) {
	if req.Username == "" {
		return nil, apperr.Validation("username is required")
	}

	role := strings.ToUpper(req.Role)
	if role != models.RoleCustomer && role != models.RoleAdmin {
		return nil, apperr.Validation("role must be CUSTOMER or ADMIN")
	}

	var passwordHash string
	if role == models.RoleAdmin {
		if req.Password == "" {
			return nil, apperr.Validation("password is required for admin users")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "Failed to hash password", err)
		}
		passwordHash = string(hash)
	}

	user := &models.User{
		Username:     req.Username,
		Role:         role,
		Enabled:      req.Enabled,
		PasswordHash: passwordHash,
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		if apperr.KindOf(err) == apperr.KindConflict {
			return nil, apperr.Conflict("User already exists")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to create user", err)
	}

	return user, nil
}

// GetUserByID retrieves a user by its numeric id
func (u *UserUC) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return u.userRepo.GetUserByID(ctx, id)
}

// GetUserByUsername retrieves a user by its unique username
func (u *UserUC) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if username == "" {
		return nil, apperr.Validation("username is required")
	}
	return u.userRepo.GetUserByUsername(ctx, username)
}

// UpdateUserStatus enables or disables a user
func (u *UserUC) UpdateUserStatus(ctx context.Context, id int64, enabled bool) (*models.User, error) {
	if err := u.userRepo.UpdateEnabled(ctx, id, enabled); err != nil {
		return nil, err
	}
	return u.userRepo.GetUserByID(ctx, id)
}

// DeleteUser removes a user by id
func (u *UserUC) DeleteUser(ctx context.Context, id int64) error {
	return u.userRepo.DeleteUser(ctx, id)
}
