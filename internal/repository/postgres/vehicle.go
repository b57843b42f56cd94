package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

// Vehicle reads join the type row so responses can embed it the way the
// API has always shaped vehicles.
const vehicleColumns = `v.id, v.type_id, v.store_id, v.manufacture_date,
	       t.id, t.brand, t.model, t.daily_rent_price`

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (type_id, store_id, manufacture_date) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, v.TypeID, v.StoreID, v.ManufactureDate).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{Type: &domain.VehicleType{}}
	query := `SELECT ` + vehicleColumns + ` FROM vehicles v JOIN vehicle_types t ON t.id = v.type_id WHERE v.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.TypeID, &v.StoreID, &v.ManufactureDate,
		&v.Type.ID, &v.Type.Brand, &v.Type.Model, &v.Type.DailyRentPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles v JOIN vehicle_types t ON t.id = v.type_id ORDER BY v.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v := domain.Vehicle{Type: &domain.VehicleType{}}
		if err := rows.Scan(
			&v.ID, &v.TypeID, &v.StoreID, &v.ManufactureDate,
			&v.Type.ID, &v.Type.Brand, &v.Type.Model, &v.Type.DailyRentPrice); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET type_id=$1, store_id=$2, manufacture_date=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, v.TypeID, v.StoreID, v.ManufactureDate, v.ID)
	return err
}

func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	return err
}
