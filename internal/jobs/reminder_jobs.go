package jobs

import (
	"context"
	"fmt"
	"time"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/logger"
)

// RemindPendingRequests nudges shopkeepers about rental requests that
// have sat unanswered longer than the configured stale age. Reminders
// only send messages; the rental itself is never transitioned.
func (jr *JobRunner) RemindPendingRequests() {
	jr.runWithRecovery("RemindPendingRequests", func() {
		ctx := context.Background()

		rentals, err := jr.store.RentalRepository.ListByStatus(ctx, domain.RentalStatusRequested)
		if err != nil {
			logger.Error("Failed to list pending requests", "error", err)
			return
		}

		cutoff := time.Now().Add(-time.Duration(jr.config.Scheduler.StaleRequestAgeHours) * time.Hour)
		count := 0
		for _, rt := range rentals {
			created, err := time.Parse(time.RFC3339, rt.CreatedOn)
			if err != nil || created.After(cutoff) {
				continue
			}
			content := fmt.Sprintf("Reminder: the rent request for \"%s\" (%s) is still waiting for your response.",
				rt.EquipmentName, rt.PlanTitle)
			if err := jr.notifier.Notify(ctx, rt.OwnerID, content, rt.PlanID); err != nil {
				logger.Error("Failed to send pending request reminder", "rental_id", rt.ID, "error", err)
				continue
			}
			count++
		}

		logger.Info("Sent pending request reminders", "count", count)
	})
}

// RemindPendingReturns nudges shopkeepers to confirm returns the renter
// has already reported.
func (jr *JobRunner) RemindPendingReturns() {
	jr.runWithRecovery("RemindPendingReturns", func() {
		ctx := context.Background()

		rentals, err := jr.store.RentalRepository.ListByStatus(ctx, domain.RentalStatusReturned)
		if err != nil {
			logger.Error("Failed to list pending returns", "error", err)
			return
		}

		count := 0
		for _, rt := range rentals {
			if !rt.IsReturnPending {
				continue
			}
			content := fmt.Sprintf("Reminder: \"%s\" (%s) has been returned and is waiting for your confirmation.",
				rt.EquipmentName, rt.PlanTitle)
			if err := jr.notifier.Notify(ctx, rt.OwnerID, content, rt.PlanID); err != nil {
				logger.Error("Failed to send pending return reminder", "rental_id", rt.ID, "error", err)
				continue
			}
			count++
		}

		logger.Info("Sent pending return reminders", "count", count)
	})
}
