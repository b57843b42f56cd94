package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, address, phone_number, join_date, email, password_hash, is_admin, managed_store_id`

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (name, address, phone_number, join_date, email, password_hash, is_admin, managed_store_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		u.Name, u.Address, u.PhoneNumber, u.JoinDate, u.Email, u.PasswordHash, u.IsAdmin, u.ManagedStoreID,
	).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET name=$1, address=$2, phone_number=$3, email=$4, password_hash=$5, is_admin=$6, managed_store_id=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query,
		u.Name, u.Address, u.PhoneNumber, u.Email, u.PasswordHash, u.IsAdmin, u.ManagedStoreID, u.ID)
	return err
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	return r.queryUsers(ctx, query)
}

func (r *userRepository) ListRegular(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE is_admin = false ORDER BY id`
	return r.queryUsers(ctx, query)
}

func (r *userRepository) ListManagers(ctx context.Context, storeID int32) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE is_admin = true AND managed_store_id = $1 ORDER BY id`
	return r.queryUsers(ctx, query, storeID)
}

func (r *userRepository) CountManagers(ctx context.Context, storeID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM users WHERE is_admin = true AND managed_store_id = $1`
	err := r.db.QueryRowContext(ctx, query, storeID).Scan(&count)
	return count, err
}

func (r *userRepository) queryUsers(ctx context.Context, query string, args ...interface{}) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Address, &u.PhoneNumber, &u.JoinDate, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.ManagedStoreID); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func scanUser(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Name, &u.Address, &u.PhoneNumber, &u.JoinDate, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.ManagedStoreID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
