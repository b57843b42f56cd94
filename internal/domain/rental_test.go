package domain_test

import (
	"testing"
	"time"

	"fleetrent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRentalOverdueOn(t *testing.T) {
	today := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Active past due is overdue", func(t *testing.T) {
		rt := &domain.Rental{Status: domain.RentalStatusActive, ExpectedReturnDate: "2026-08-31"}
		assert.True(t, rt.OverdueOn(today))
	})

	t.Run("Due today is not overdue", func(t *testing.T) {
		rt := &domain.Rental{Status: domain.RentalStatusActive, ExpectedReturnDate: "2026-09-01"}
		assert.False(t, rt.OverdueOn(today))
	})

	t.Run("Future date is not overdue", func(t *testing.T) {
		rt := &domain.Rental{Status: domain.RentalStatusActive, ExpectedReturnDate: "2026-09-02"}
		assert.False(t, rt.OverdueOn(today))
	})

	t.Run("Only active rentals can be overdue", func(t *testing.T) {
		for _, status := range []domain.RentalStatus{
			domain.RentalStatusPending,
			domain.RentalStatusReturned,
			domain.RentalStatusCancelled,
			domain.RentalStatusExtensionRequested,
		} {
			rt := &domain.Rental{Status: status, ExpectedReturnDate: "2020-01-01"}
			assert.False(t, rt.OverdueOn(today), "status %s", status)
		}
	})
}

func TestRentalStatusPredicates(t *testing.T) {
	assert.True(t, domain.RentalStatusPending.InFlight())
	assert.True(t, domain.RentalStatusActive.InFlight())
	assert.False(t, domain.RentalStatusExtensionRequested.InFlight())
	assert.False(t, domain.RentalStatusReturned.InFlight())

	assert.True(t, domain.RentalStatusReturned.Terminal())
	assert.True(t, domain.RentalStatusCancelled.Terminal())
	assert.False(t, domain.RentalStatusActive.Terminal())

	assert.True(t, domain.TransferStatusPending.Open())
	assert.True(t, domain.TransferStatusApproved.Open())
	assert.False(t, domain.TransferStatusCompleted.Open())
	assert.False(t, domain.TransferStatusCancelled.Open())
}
