package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/bankedge/gateway/internal/pkg/models"
)

// UserRepo implements the user repository over PostgreSQL
type UserRepo struct {
	db  *sqlx.DB
	cfg *models.Config
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		db:  db,
		cfg: cfg,
	}
}
