package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankedge/gateway/internal/pkg/apperr"
	"github.com/bankedge/gateway/internal/pkg/models"
)

func setupUserRepoTest(t *testing.T) (*UserRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &UserRepo{
		db:  sqlxDB,
		cfg: &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func userRows(id int64, username, role string, enabled bool, passwordHash string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "role", "enabled", "password_hash", "created_at"}).
		AddRow(id, username, role, enabled, passwordHash, time.Now())
}

func TestGetUserByUsername(t *testing.T) {
	testCases := []struct {
		name       string
		username   string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, user *models.User, err error)
	}{
		{
			name:     "Success",
			username: "admin",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs("admin").
					WillReturnRows(userRows(3, "admin", models.RoleAdmin, true, "$2a$10$hash"))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, int64(3), user.ID)
				assert.Equal(t, models.RoleAdmin, user.Role)
				assert.Equal(t, "$2a$10$hash", user.PasswordHash)
			},
		},
		{
			name:     "Not Found",
			username: "ghost",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs("ghost").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.Nil(t, user)
				assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
			},
		},
		{
			name:     "Database Error",
			username: "admin",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs("admin").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.Nil(t, user)
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to get user")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			user, err := repo.GetUserByUsername(context.Background(), tc.username)

			tc.assertFunc(t, user, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupUserRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("customer_9876543210", models.RoleCustomer, true, "", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

		user := &models.User{
			Username: "customer_9876543210",
			Role:     models.RoleCustomer,
			Enabled:  true,
		}

		err := repo.CreateUser(context.Background(), user)

		assert.NoError(t, err)
		assert.Equal(t, int64(11), user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Username", func(t *testing.T) {
		repo, mock, cleanup := setupUserRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

		err := repo.CreateUser(context.Background(), &models.User{
			Username: "customer_9876543210",
			Role:     models.RoleCustomer,
			Enabled:  true,
		})

		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})
}

func TestFindOrCreateByUsername(t *testing.T) {
	t.Run("Existing User", func(t *testing.T) {
		repo, mock, cleanup := setupUserRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs("customer_9876543210").
			WillReturnRows(userRows(11, "customer_9876543210", models.RoleCustomer, true, ""))

		user, created, err := repo.FindOrCreateByUsername(context.Background(), &models.User{
			Username: "customer_9876543210",
			Role:     models.RoleCustomer,
			Enabled:  true,
		})

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, int64(11), user.ID)
	})

	t.Run("New User", func(t *testing.T) {
		repo, mock, cleanup := setupUserRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs("customer_9876543210").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery("INSERT INTO users").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))

		user, created, err := repo.FindOrCreateByUsername(context.Background(), &models.User{
			Username: "customer_9876543210",
			Role:     models.RoleCustomer,
			Enabled:  true,
		})

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(12), user.ID)
	})

	t.Run("Lost Insert Race Returns Winner", func(t *testing.T) {
		repo, mock, cleanup := setupUserRepoTest(t)
		defer cleanup()

		// First read misses, the insert collides with a concurrent create,
		// and the winner's row is read back.
		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs("customer_9876543210").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})
		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs("customer_9876543210").
			WillReturnRows(userRows(13, "customer_9876543210", models.RoleCustomer, true, ""))

		user, created, err := repo.FindOrCreateByUsername(context.Background(), &models.User{
			Username: "customer_9876543210",
			Role:     models.RoleCustomer,
			Enabled:  true,
		})

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, int64(13), user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateEnabled(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupUserRepoTest(t)
		defer cleanup()

		mock.ExpectExec("UPDATE users SET enabled").
			WithArgs(false, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateEnabled(context.Background(), 3, false)

		assert.NoError(t, err)
	})

	t.Run("Not Found", func(t *testing.T) {
		repo, mock, cleanup := setupUserRepoTest(t)
		defer cleanup()

		mock.ExpectExec("UPDATE users SET enabled").
			WithArgs(true, int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateEnabled(context.Background(), 99, true)

		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupUserRepoTest(t)
		defer cleanup()

		mock.ExpectExec("DELETE FROM users").
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteUser(context.Background(), 3)

		assert.NoError(t, err)
	})

	t.Run("Not Found", func(t *testing.T) {
		repo, mock, cleanup := setupUserRepoTest(t)
		defer cleanup()

		mock.ExpectExec("DELETE FROM users").
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteUser(context.Background(), 99)

		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}
