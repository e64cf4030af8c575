package jobs

import (
	"context"
	"time"

	"equiprent-backend/internal/logger"
)

// CompleteExpiredRentals transitions approved rentals past their end date to
// completed so the catalog reflects equipment that should already be back.
func (jr *JobRunner) CompleteExpiredRentals() {
	jr.runWithRecovery("CompleteExpiredRentals", func() {
		ctx := context.Background()

		query := `
			UPDATE rental_contracts
			SET status = 'completed'
			WHERE status = 'approved'
			  AND end_date < $1
			RETURNING id, client_id, equipment_id, end_date
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to complete expired rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				id, clientID, equipmentID string
				endDate                   time.Time
			)
			if err := rows.Scan(&id, &clientID, &equipmentID, &endDate); err != nil {
				logger.Error("Failed to scan expired rental", "error", err)
				continue
			}
			count++
			logger.Debug("Completed expired rental",
				"rental_id", id,
				"client_id", clientID,
				"equipment_id", equipmentID,
				"end_date", endDate.Format("2006-01-02"))
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating expired rentals", "error", err)
			return
		}

		logger.Info("Completed expired rentals", "count", count)
	})
}
