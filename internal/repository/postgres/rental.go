package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, rental_date, rental_store_id, user_id, vehicle_id, vehicle_type_id, expected_return_date, return_store_id, status, is_overdue`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (rental_date, rental_store_id, user_id, vehicle_id, vehicle_type_id, expected_return_date, return_store_id, status, is_overdue)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		rt.RentalDate, rt.RentalStoreID, rt.UserID, rt.VehicleID, rt.VehicleTypeID,
		rt.ExpectedReturnDate, rt.ReturnStoreID, rt.Status, rt.IsOverdue,
	).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID, &rt.RentalDate, &rt.RentalStoreID, &rt.UserID, &rt.VehicleID, &rt.VehicleTypeID,
		&rt.ExpectedReturnDate, &rt.ReturnStoreID, &rt.Status, &rt.IsOverdue)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY id`
	return r.queryRentals(ctx, query)
}

func (r *rentalRepository) ListByStore(ctx context.Context, storeID int32) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE rental_store_id = $1 OR return_store_id = $1 ORDER BY id`
	return r.queryRentals(ctx, query, storeID)
}

func (r *rentalRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE user_id = $1 ORDER BY id`
	return r.queryRentals(ctx, query, userID)
}

func (r *rentalRepository) ListOverdue(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = 'active' AND is_overdue = true ORDER BY id`
	return r.queryRentals(ctx, query)
}

// AssignVehicle is the single statement that turns a pending rental
// active. The NOT EXISTS guard re-validates vehicle availability at write
// time so two concurrent approvals cannot both claim the same vehicle.
func (r *rentalRepository) AssignVehicle(ctx context.Context, rentalID, vehicleID int32) (bool, error) {
	query := `UPDATE rentals SET vehicle_id = $2, status = 'active'
	          WHERE id = $1 AND status = 'pending'
	            AND NOT EXISTS (
	                SELECT 1 FROM rentals
	                WHERE vehicle_id = $2 AND status IN ('pending', 'active')
	            )`
	res, err := r.db.ExecContext(ctx, query, rentalID, vehicleID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *rentalRepository) Transition(ctx context.Context, id int32, from, to domain.RentalStatus, newExpectedReturn *string) (bool, error) {
	var (
		res sql.Result
		err error
	)
	if newExpectedReturn != nil {
		query := `UPDATE rentals SET status = $3, is_overdue = false, expected_return_date = $4 WHERE id = $1 AND status = $2`
		res, err = r.db.ExecContext(ctx, query, id, from, to, *newExpectedReturn)
	} else {
		query := `UPDATE rentals SET status = $3, is_overdue = false WHERE id = $1 AND status = $2`
		res, err = r.db.ExecContext(ctx, query, id, from, to)
	}
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *rentalRepository) SetOverdue(ctx context.Context, id int32, overdue bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE rentals SET is_overdue = $2 WHERE id = $1`, id, overdue)
	return err
}

func (r *rentalRepository) RefreshOverdue(ctx context.Context, today string) (int64, int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE rentals SET is_overdue = true WHERE status = 'active' AND expected_return_date < $1 AND is_overdue = false`, today)
	if err != nil {
		return 0, 0, err
	}
	flagged, err := res.RowsAffected()
	if err != nil {
		return 0, 0, err
	}

	res, err = r.db.ExecContext(ctx,
		`UPDATE rentals SET is_overdue = false WHERE status = 'active' AND expected_return_date >= $1 AND is_overdue = true`, today)
	if err != nil {
		return flagged, 0, err
	}
	cleared, err := res.RowsAffected()
	return flagged, cleared, err
}

func (r *rentalRepository) HasInFlightByVehicle(ctx context.Context, vehicleID int32) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM rentals WHERE vehicle_id = $1 AND status IN ('pending', 'active'))`
	return r.exists(ctx, query, vehicleID)
}

func (r *rentalRepository) HasActiveByVehicle(ctx context.Context, vehicleID int32) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM rentals WHERE vehicle_id = $1 AND status = 'active')`
	return r.exists(ctx, query, vehicleID)
}

func (r *rentalRepository) HasInFlightByStore(ctx context.Context, storeID int32) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM rentals WHERE (rental_store_id = $1 OR return_store_id = $1) AND status IN ('pending', 'active'))`
	return r.exists(ctx, query, storeID)
}

func (r *rentalRepository) exists(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var found bool
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&found)
	return found, err
}

func (r *rentalRepository) queryRentals(ctx context.Context, query string, args ...interface{}) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(
			&rt.ID, &rt.RentalDate, &rt.RentalStoreID, &rt.UserID, &rt.VehicleID, &rt.VehicleTypeID,
			&rt.ExpectedReturnDate, &rt.ReturnStoreID, &rt.Status, &rt.IsOverdue); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
