package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type storeRepository struct {
	db *sql.DB
}

func NewStoreRepository(db *sql.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(ctx context.Context, s *domain.Store) error {
	query := `INSERT INTO stores (store_name, address, phone_number) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, s.Name, s.Address, s.PhoneNumber).Scan(&s.ID)
}

func (r *storeRepository) GetByID(ctx context.Context, id int32) (*domain.Store, error) {
	s := &domain.Store{}
	query := `SELECT id, store_name, address, phone_number FROM stores WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.Address, &s.PhoneNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *storeRepository) List(ctx context.Context) ([]domain.Store, error) {
	query := `SELECT id, store_name, address, phone_number FROM stores ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []domain.Store
	for rows.Next() {
		var s domain.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.PhoneNumber); err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

func (r *storeRepository) Update(ctx context.Context, s *domain.Store) error {
	query := `UPDATE stores SET store_name=$1, address=$2, phone_number=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, s.Name, s.Address, s.PhoneNumber, s.ID)
	return err
}

func (r *storeRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM stores WHERE id = $1`, id)
	return err
}
