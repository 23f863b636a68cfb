package repositories

import (
	"database/sql"

	intconfig "frotalog/internal/config"
	"frotalog/internal/domain"
)

type MaintenanceRepository struct {
	DB *sql.DB
}

func (r MaintenanceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r MaintenanceRepository) ListByUser(userID string) ([]domain.MaintenanceCost, error) {
	rows, err := r.db().Query(`
		SELECT id, user_id, COALESCE(vehicle_id,''), COALESCE(description,''),
		       COALESCE(amount,0), COALESCE(date,''), COALESCE(odometer,0)
		FROM maintenance_costs
		WHERE user_id = ?
		ORDER BY date DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.MaintenanceCost{}
	for rows.Next() {
		var m domain.MaintenanceCost
		if err := rows.Scan(&m.ID, &m.UserID, &m.VehicleID, &m.Description, &m.Amount, &m.Date, &m.Odometer); err != nil {
			return out, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// SumByVehicle feeds the vehicle aggregation with externally sourced costs.
func (r MaintenanceRepository) SumByVehicle(userID string) (map[string]float64, error) {
	rows, err := r.db().Query(`
		SELECT COALESCE(vehicle_id,''), COALESCE(SUM(amount),0)
		FROM maintenance_costs
		WHERE user_id = ?
		GROUP BY vehicle_id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]float64{}
	for rows.Next() {
		var vehicleID string
		var total float64
		if err := rows.Scan(&vehicleID, &total); err != nil {
			return out, err
		}
		out[vehicleID] = total
	}
	return out, rows.Err()
}

func (r MaintenanceRepository) Insert(m domain.MaintenanceCost) error {
	_, err := r.db().Exec(`
		INSERT INTO maintenance_costs (id, user_id, vehicle_id, description, amount, date, odometer)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.UserID, m.VehicleID, m.Description, m.Amount, m.Date, m.Odometer)
	return err
}

func (r MaintenanceRepository) Delete(userID, id string) error {
	res, err := r.db().Exec(`DELETE FROM maintenance_costs WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "maintenance cost"}
	}
	return nil
}
