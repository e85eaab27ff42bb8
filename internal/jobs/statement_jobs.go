package jobs

import (
	"context"
	"time"

	"autoloc-backend/internal/domain"
	"autoloc-backend/internal/logger"
)

// SendOwnerStatements builds last month's payout statement for every
// revenue-share vehicle and emails it to the owner. Runs on the first of the
// month for the month just closed.
func (jr *JobRunner) SendOwnerStatements() {
	jr.runWithRecovery("SendOwnerStatements", func() error {
		ctx := context.Background()

		lastMonth := time.Now().UTC().AddDate(0, -1, 0)
		year, month := lastMonth.Year(), lastMonth.Month()

		vehicles, err := jr.store.VehicleRepository.List(ctx)
		if err != nil {
			return err
		}

		sent := 0
		for _, v := range vehicles {
			if v.Financing != domain.FinancingRevenueShare {
				continue
			}
			if v.OwnerEmail == "" {
				logger.Warn("Revenue-share vehicle has no owner email", "vehicle_id", v.ID)
				continue
			}

			statement, err := jr.services.Report.OwnerStatement(ctx, v.ID, year, month)
			if err != nil {
				logger.Error("Failed to build owner statement",
					"vehicle_id", v.ID, "year", year, "month", int(month), "error", err)
				continue
			}

			if err := jr.services.Email.SendOwnerStatement(ctx, v.OwnerEmail, v.OwnerName, v.DisplayName(), year, month, statement.Total); err != nil {
				logger.Error("Failed to send owner statement",
					"vehicle_id", v.ID, "email", v.OwnerEmail, "error", err)
				continue
			}
			sent++
			logger.Info("Owner statement sent",
				"vehicle_id", v.ID, "owner", v.OwnerName, "total", statement.Total)
		}

		logger.Info("Owner statements done", "sent", sent, "year", year, "month", int(month))
		return nil
	})
}
