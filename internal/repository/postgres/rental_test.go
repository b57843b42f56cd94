package postgres_test

import (
	"context"
	"testing"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
	"fleetrent-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRentalRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success assigns returned id", func(t *testing.T) {
		rt := &domain.Rental{
			RentalDate:         "2026-09-01",
			RentalStoreID:      1,
			UserID:             2,
			VehicleTypeID:      3,
			ExpectedReturnDate: "2026-09-10",
			ReturnStoreID:      4,
			Status:             domain.RentalStatusPending,
		}

		mock.ExpectQuery("INSERT INTO rentals").
			WithArgs(rt.RentalDate, rt.RentalStoreID, rt.UserID, nil, rt.VehicleTypeID,
				rt.ExpectedReturnDate, rt.ReturnStoreID, rt.Status, rt.IsOverdue).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))

		err := repo.Create(ctx, rt)
		assert.NoError(t, err)
		assert.Equal(t, int32(100), rt.ID)
	})
}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Missing rental maps to ErrNoRows", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id").
			WithArgs(int32(42)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 42)
		assert.ErrorIs(t, err, repository.ErrNoRows)
	})

	t.Run("Null vehicle id scans to nil", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "rental_date", "rental_store_id", "user_id", "vehicle_id", "vehicle_type_id",
			"expected_return_date", "return_store_id", "status", "is_overdue",
		}).AddRow(100, "2026-09-01", 1, 2, nil, 3, "2026-09-10", 4, "pending", false)

		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id").
			WithArgs(int32(100)).
			WillReturnRows(rows)

		rt, err := repo.GetByID(ctx, 100)
		assert.NoError(t, err)
		assert.Nil(t, rt.VehicleID)
		assert.Equal(t, domain.RentalStatusPending, rt.Status)
	})
}

func TestRentalRepository_AssignVehicle(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Guard passes", func(t *testing.T) {
		mock.ExpectExec("UPDATE rentals SET vehicle_id").
			WithArgs(int32(100), int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.AssignVehicle(ctx, 100, 7)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Guard fails on zero rows", func(t *testing.T) {
		mock.ExpectExec("UPDATE rentals SET vehicle_id").
			WithArgs(int32(100), int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.AssignVehicle(ctx, 100, 7)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRentalRepository_Transition(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Status only", func(t *testing.T) {
		mock.ExpectExec("UPDATE rentals SET status").
			WithArgs(int32(100), domain.RentalStatusActive, domain.RentalStatusReturned).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.Transition(ctx, 100, domain.RentalStatusActive, domain.RentalStatusReturned, nil)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("With new return date", func(t *testing.T) {
		newDate := "2026-09-20"
		mock.ExpectExec("UPDATE rentals SET status").
			WithArgs(int32(100), domain.RentalStatusActive, domain.RentalStatusExtensionRequested, newDate).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.Transition(ctx, 100, domain.RentalStatusActive, domain.RentalStatusExtensionRequested, &newDate)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Stale status loses", func(t *testing.T) {
		mock.ExpectExec("UPDATE rentals SET status").
			WithArgs(int32(100), domain.RentalStatusActive, domain.RentalStatusReturned).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.Transition(ctx, 100, domain.RentalStatusActive, domain.RentalStatusReturned, nil)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRentalRepository_RefreshOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Flags stale and clears fresh", func(t *testing.T) {
		mock.ExpectExec("UPDATE rentals SET is_overdue = true").
			WithArgs("2026-09-01").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec("UPDATE rentals SET is_overdue = false").
			WithArgs("2026-09-01").
			WillReturnResult(sqlmock.NewResult(0, 1))

		flagged, cleared, err := repo.RefreshOverdue(ctx, "2026-09-01")
		assert.NoError(t, err)
		assert.Equal(t, int64(3), flagged)
		assert.Equal(t, int64(1), cleared)
	})
}

func TestRentalRepository_Exists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("HasInFlightByVehicle", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int32(7)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		found, err := repo.HasInFlightByVehicle(ctx, 7)
		assert.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("HasInFlightByStore", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int32(1)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		found, err := repo.HasInFlightByStore(ctx, 1)
		assert.NoError(t, err)
		assert.False(t, found)
	})
}
