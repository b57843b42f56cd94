package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type vehicleTypeRepository struct {
	db *sql.DB
}

func NewVehicleTypeRepository(db *sql.DB) repository.VehicleTypeRepository {
	return &vehicleTypeRepository{db: db}
}

func (r *vehicleTypeRepository) Create(ctx context.Context, vt *domain.VehicleType) error {
	query := `INSERT INTO vehicle_types (brand, model, daily_rent_price) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, vt.Brand, vt.Model, vt.DailyRentPrice).Scan(&vt.ID)
}

func (r *vehicleTypeRepository) GetByID(ctx context.Context, id int32) (*domain.VehicleType, error) {
	vt := &domain.VehicleType{}
	query := `SELECT id, brand, model, daily_rent_price FROM vehicle_types WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&vt.ID, &vt.Brand, &vt.Model, &vt.DailyRentPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	return vt, nil
}

func (r *vehicleTypeRepository) List(ctx context.Context) ([]domain.VehicleType, error) {
	query := `SELECT id, brand, model, daily_rent_price FROM vehicle_types ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.VehicleType
	for rows.Next() {
		var vt domain.VehicleType
		if err := rows.Scan(&vt.ID, &vt.Brand, &vt.Model, &vt.DailyRentPrice); err != nil {
			return nil, err
		}
		types = append(types, vt)
	}
	return types, rows.Err()
}

func (r *vehicleTypeRepository) Update(ctx context.Context, vt *domain.VehicleType) error {
	query := `UPDATE vehicle_types SET brand=$1, model=$2, daily_rent_price=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, vt.Brand, vt.Model, vt.DailyRentPrice, vt.ID)
	return err
}

func (r *vehicleTypeRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vehicle_types WHERE id = $1`, id)
	return err
}

func (r *vehicleTypeRepository) CountVehicles(ctx context.Context, typeID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM vehicles WHERE type_id = $1`
	err := r.db.QueryRowContext(ctx, query, typeID).Scan(&count)
	return count, err
}
