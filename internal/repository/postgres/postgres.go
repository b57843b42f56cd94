package postgres

import (
	"database/sql"

	"fleetrent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.StoreRepository
	repository.VehicleTypeRepository
	repository.VehicleRepository
	repository.RentalRepository
	repository.TransferRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		UserRepository:        NewUserRepository(db),
		StoreRepository:       NewStoreRepository(db),
		VehicleTypeRepository: NewVehicleTypeRepository(db),
		VehicleRepository:     NewVehicleRepository(db),
		RentalRepository:      NewRentalRepository(db),
		TransferRepository:    NewTransferRepository(db),
	}
}
