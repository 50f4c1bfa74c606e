package repository

import (
	"context"
	"database/sql"

	"github.com/vfg2006/dealer-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/dealer-insights-api/internal/domain"
)

const (
	usersTable = "users"
)

// UserRepository é a superfície mínima consumida pelo provedor de
// identidade. O CRUD de contas fica em outro serviço.
type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.conn.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash, active, role_id, branch_id, store_id, deleted, created_at, updated_at FROM users WHERE email = $1 AND deleted = false",
		email,
	)

	return scanUser(row)
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int) (*domain.User, error) {
	row := r.conn.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash, active, role_id, branch_id, store_id, deleted, created_at, updated_at FROM users WHERE id = $1 AND deleted = false",
		userID,
	)

	return scanUser(row)
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.BranchID,
		&user.StoreID,
		&user.Deleted,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
