package jobs

import (
	"context"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
)

// RefreshOverdueRentals reconciles the overdue flag of every active rental
// against today's date. The read path recomputes the flag lazily, so this
// sweep only keeps listings fresh between reads.
func (jr *JobRunner) RefreshOverdueRentals() {
	jr.runWithRecovery("RefreshOverdueRentals", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format(domain.DateLayout)

		flagged, cleared, err := jr.store.RentalRepository.RefreshOverdue(ctx, today)
		if err != nil {
			logger.Error("Failed to refresh overdue rentals", "error", err)
			return
		}
		logger.Info("Refreshed overdue rentals", "flagged", flagged, "cleared", cleared)
	})
}

// SendOverdueReminders emails every user holding an overdue rental.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		overdue, err := jr.store.RentalRepository.ListOverdue(ctx)
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}

		sent := 0
		for _, rental := range overdue {
			user, err := jr.store.UserRepository.GetByID(ctx, rental.UserID)
			if err != nil {
				logger.Error("Failed to load user for overdue reminder",
					"rental_id", rental.ID, "user_id", rental.UserID, "error", err)
				continue
			}
			if err := jr.email.SendOverdueReminder(ctx, user.Email, user.Name, rental.ID, rental.ExpectedReturnDate); err != nil {
				logger.Error("Failed to send overdue reminder",
					"rental_id", rental.ID, "email", user.Email, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Sent overdue reminders", "overdue", len(overdue), "sent", sent)
	})
}
