package jobs

import (
	"context"
	"time"

	"autoloc-backend/internal/domain"
	"autoloc-backend/internal/logger"
)

// MarkOverdueReservations flags in-progress reservations whose scheduled
// return has passed. The reservation stays IN_PROGRESS until the check-in
// inspection completes it; this job surfaces the overdue ones.
func (jr *JobRunner) MarkOverdueReservations() {
	jr.runWithRecovery("MarkOverdueReservations", func() error {
		ctx := context.Background()

		reservations, err := jr.store.ReservationRepository.ListByStatus(ctx, domain.ReservationStatusInProgress)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		count := 0
		for _, r := range reservations {
			endsAt, err := r.EndsAt()
			if err != nil {
				logger.Error("Skipping reservation with unparseable return date",
					"reservation_id", r.ID, "error", err)
				continue
			}
			if !endsAt.Before(now) {
				continue
			}
			count++
			logger.Warn("Reservation past scheduled return",
				"reservation_id", r.ID,
				"vehicle_id", r.VehicleID,
				"client_id", r.ClientID,
				"end_date", r.EndDate,
				"end_time", r.EndTime)
		}

		logger.Info("Overdue reservation sweep done", "overdue", count, "in_progress", len(reservations))
		return nil
	})
}

// SendReturnReminders emails clients whose reservation ends tomorrow.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() error {
		ctx := context.Background()

		tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format(domain.DateLayout)

		reservations, err := jr.store.ReservationRepository.ListByStatus(ctx, domain.ReservationStatusInProgress)
		if err != nil {
			return err
		}

		sent := 0
		for _, r := range reservations {
			if r.EndDate != tomorrow {
				continue
			}

			client, err := jr.store.ClientRepository.GetByID(ctx, r.ClientID)
			if err != nil {
				logger.Error("Failed to load client for return reminder",
					"reservation_id", r.ID, "client_id", r.ClientID, "error", err)
				continue
			}
			vehicle, err := jr.store.VehicleRepository.GetByID(ctx, r.VehicleID)
			if err != nil {
				logger.Error("Failed to load vehicle for return reminder",
					"reservation_id", r.ID, "vehicle_id", r.VehicleID, "error", err)
				continue
			}

			if err := jr.services.Email.SendReturnReminder(ctx, client.Email, client.FullName(), vehicle.DisplayName(), r.EndDate); err != nil {
				logger.Error("Failed to send return reminder",
					"reservation_id", r.ID, "email", client.Email, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Return reminders sent", "count", sent)
		return nil
	})
}
