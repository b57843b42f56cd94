package service_test

import (
	"context"

	"fleetrent-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) ListRegular(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) ListManagers(ctx context.Context, storeID int32) ([]domain.User, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) CountManagers(ctx context.Context, storeID int32) (int32, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).(int32), args.Error(1)
}

// MockStoreRepo
type MockStoreRepo struct {
	mock.Mock
}

func (m *MockStoreRepo) Create(ctx context.Context, store *domain.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}
func (m *MockStoreRepo) GetByID(ctx context.Context, id int32) (*domain.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}
func (m *MockStoreRepo) List(ctx context.Context) ([]domain.Store, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Store), args.Error(1)
}
func (m *MockStoreRepo) Update(ctx context.Context, store *domain.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}
func (m *MockStoreRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVehicleTypeRepo
type MockVehicleTypeRepo struct {
	mock.Mock
}

func (m *MockVehicleTypeRepo) Create(ctx context.Context, vt *domain.VehicleType) error {
	args := m.Called(ctx, vt)
	return args.Error(0)
}
func (m *MockVehicleTypeRepo) GetByID(ctx context.Context, id int32) (*domain.VehicleType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleType), args.Error(1)
}
func (m *MockVehicleTypeRepo) List(ctx context.Context) ([]domain.VehicleType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VehicleType), args.Error(1)
}
func (m *MockVehicleTypeRepo) Update(ctx context.Context, vt *domain.VehicleType) error {
	args := m.Called(ctx, vt)
	return args.Error(0)
}
func (m *MockVehicleTypeRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleTypeRepo) CountVehicles(ctx context.Context, typeID int32) (int32, error) {
	args := m.Called(ctx, typeID)
	return args.Get(0).(int32), args.Error(1)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, r *domain.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) List(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByStore(ctx context.Context, storeID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListOverdue(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) AssignVehicle(ctx context.Context, rentalID, vehicleID int32) (bool, error) {
	args := m.Called(ctx, rentalID, vehicleID)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentalRepo) Transition(ctx context.Context, id int32, from, to domain.RentalStatus, newExpectedReturn *string) (bool, error) {
	args := m.Called(ctx, id, from, to, newExpectedReturn)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentalRepo) SetOverdue(ctx context.Context, id int32, overdue bool) error {
	args := m.Called(ctx, id, overdue)
	return args.Error(0)
}
func (m *MockRentalRepo) RefreshOverdue(ctx context.Context, today string) (int64, int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}
func (m *MockRentalRepo) HasInFlightByVehicle(ctx context.Context, vehicleID int32) (bool, error) {
	args := m.Called(ctx, vehicleID)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentalRepo) HasActiveByVehicle(ctx context.Context, vehicleID int32) (bool, error) {
	args := m.Called(ctx, vehicleID)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentalRepo) HasInFlightByStore(ctx context.Context, storeID int32) (bool, error) {
	args := m.Called(ctx, storeID)
	return args.Bool(0), args.Error(1)
}

// MockTransferRepo
type MockTransferRepo struct {
	mock.Mock
}

func (m *MockTransferRepo) Create(ctx context.Context, t *domain.VehicleTransfer) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTransferRepo) GetByID(ctx context.Context, id int32) (*domain.VehicleTransfer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleTransfer), args.Error(1)
}
func (m *MockTransferRepo) List(ctx context.Context) ([]domain.VehicleTransfer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VehicleTransfer), args.Error(1)
}
func (m *MockTransferRepo) ListByStore(ctx context.Context, storeID int32) ([]domain.VehicleTransfer, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).([]domain.VehicleTransfer), args.Error(1)
}
func (m *MockTransferRepo) Transition(ctx context.Context, id int32, from, to domain.TransferStatus, approvedBy *int32) (bool, error) {
	args := m.Called(ctx, id, from, to, approvedBy)
	return args.Bool(0), args.Error(1)
}
func (m *MockTransferRepo) Complete(ctx context.Context, id int32, completedDate string) (bool, error) {
	args := m.Called(ctx, id, completedDate)
	return args.Bool(0), args.Error(1)
}
func (m *MockTransferRepo) HasPendingByVehicle(ctx context.Context, vehicleID int32) (bool, error) {
	args := m.Called(ctx, vehicleID)
	return args.Bool(0), args.Error(1)
}
func (m *MockTransferRepo) HasOpenByVehicle(ctx context.Context, vehicleID int32) (bool, error) {
	args := m.Called(ctx, vehicleID)
	return args.Bool(0), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentalApproved(ctx context.Context, email, name string, rentalID int32, returnDate string) error {
	args := m.Called(ctx, email, name, rentalID, returnDate)
	return args.Error(0)
}
func (m *MockEmailService) SendExtensionDecision(ctx context.Context, email, name string, rentalID int32, approved bool, returnDate string) error {
	args := m.Called(ctx, email, name, rentalID, approved, returnDate)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueReminder(ctx context.Context, email, name string, rentalID int32, dueDate string) error {
	args := m.Called(ctx, email, name, rentalID, dueDate)
	return args.Error(0)
}
