package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type transferRepository struct {
	db *sql.DB
}

func NewTransferRepository(db *sql.DB) repository.TransferRepository {
	return &transferRepository{db: db}
}

const transferColumns = `id, vehicle_id, source_store_id, destination_store_id, transfer_date, status, approved_by, completed_date, notes`

func (r *transferRepository) Create(ctx context.Context, t *domain.VehicleTransfer) error {
	query := `INSERT INTO vehicle_transfers (vehicle_id, source_store_id, destination_store_id, transfer_date, status, notes)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		t.VehicleID, t.SourceStoreID, t.DestStoreID, t.TransferDate, t.Status, t.Notes,
	).Scan(&t.ID)
}

func (r *transferRepository) GetByID(ctx context.Context, id int32) (*domain.VehicleTransfer, error) {
	t := &domain.VehicleTransfer{}
	query := `SELECT ` + transferColumns + ` FROM vehicle_transfers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.VehicleID, &t.SourceStoreID, &t.DestStoreID, &t.TransferDate,
		&t.Status, &t.ApprovedBy, &t.CompletedDate, &t.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *transferRepository) List(ctx context.Context) ([]domain.VehicleTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM vehicle_transfers ORDER BY id`
	return r.queryTransfers(ctx, query)
}

func (r *transferRepository) ListByStore(ctx context.Context, storeID int32) ([]domain.VehicleTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM vehicle_transfers WHERE source_store_id = $1 OR destination_store_id = $1 ORDER BY id`
	return r.queryTransfers(ctx, query, storeID)
}

func (r *transferRepository) Transition(ctx context.Context, id int32, from, to domain.TransferStatus, approvedBy *int32) (bool, error) {
	var (
		res sql.Result
		err error
	)
	if approvedBy != nil {
		query := `UPDATE vehicle_transfers SET status = $3, approved_by = $4 WHERE id = $1 AND status = $2`
		res, err = r.db.ExecContext(ctx, query, id, from, to, *approvedBy)
	} else {
		query := `UPDATE vehicle_transfers SET status = $3 WHERE id = $1 AND status = $2`
		res, err = r.db.ExecContext(ctx, query, id, from, to)
	}
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Complete marks the transfer completed and moves the vehicle's home
// store in one transaction; relocation never becomes visible without the
// status change, and vice versa.
func (r *transferRepository) Complete(ctx context.Context, id int32, completedDate string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var vehicleID, destStoreID int32
	err = tx.QueryRowContext(ctx,
		`UPDATE vehicle_transfers SET status = 'completed', completed_date = $2
		 WHERE id = $1 AND status = 'approved'
		 RETURNING vehicle_id, destination_store_id`, id, completedDate,
	).Scan(&vehicleID, &destStoreID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE vehicles SET store_id = $2 WHERE id = $1`, vehicleID, destStoreID); err != nil {
		return false, err
	}

	return true, tx.Commit()
}

func (r *transferRepository) HasPendingByVehicle(ctx context.Context, vehicleID int32) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM vehicle_transfers WHERE vehicle_id = $1 AND status = 'pending')`
	return r.exists(ctx, query, vehicleID)
}

func (r *transferRepository) HasOpenByVehicle(ctx context.Context, vehicleID int32) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM vehicle_transfers WHERE vehicle_id = $1 AND status IN ('pending', 'approved'))`
	return r.exists(ctx, query, vehicleID)
}

func (r *transferRepository) exists(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var found bool
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&found)
	return found, err
}

func (r *transferRepository) queryTransfers(ctx context.Context, query string, args ...interface{}) ([]domain.VehicleTransfer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transfers []domain.VehicleTransfer
	for rows.Next() {
		var t domain.VehicleTransfer
		if err := rows.Scan(
			&t.ID, &t.VehicleID, &t.SourceStoreID, &t.DestStoreID, &t.TransferDate,
			&t.Status, &t.ApprovedBy, &t.CompletedDate, &t.Notes); err != nil {
			return nil, err
		}
		transfers = append(transfers, t)
	}
	return transfers, rows.Err()
}
