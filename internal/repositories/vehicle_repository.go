package repositories

import (
	"database/sql"

	intconfig "frotalog/internal/config"
	"frotalog/internal/domain"
)

type VehicleRepository struct {
	DB *sql.DB
}

func (r VehicleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const vehicleColumns = `id, user_id, COALESCE(plate,''), COALESCE(model,''), COALESCE(year,0),
	COALESCE(type,'Próprio'), COALESCE(society_split_factor,100),
	COALESCE(total_km,0), COALESCE(last_maintenance_km,0)`

func scanVehicle(scan func(dest ...any) error) (domain.Vehicle, error) {
	var v domain.Vehicle
	err := scan(
		&v.ID, &v.UserID, &v.Plate, &v.Model, &v.Year,
		&v.Type, &v.SocietySplitFactor,
		&v.TotalKm, &v.LastMaintenanceKm,
	)
	return v, err
}

func (r VehicleRepository) ListByUser(userID string) ([]domain.Vehicle, error) {
	rows, err := r.db().Query(`
		SELECT `+vehicleColumns+`
		FROM vehicles
		WHERE user_id = ?
		ORDER BY plate ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows.Scan)
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// MapByID shapes the list into the lookup collection the aggregator expects.
func (r VehicleRepository) MapByID(userID string) (map[string]domain.Vehicle, error) {
	list, err := r.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.Vehicle, len(list))
	for _, v := range list {
		out[v.ID] = v
	}
	return out, nil
}

func (r VehicleRepository) GetByID(userID, id string) (domain.Vehicle, error) {
	row := r.db().QueryRow(`
		SELECT `+vehicleColumns+`
		FROM vehicles
		WHERE user_id = ? AND id = ?
	`, userID, id)

	v, err := scanVehicle(row.Scan)
	if err == sql.ErrNoRows {
		return v, domain.NotFoundError{Resource: "vehicle"}
	}
	return v, err
}

func (r VehicleRepository) Insert(v domain.Vehicle) error {
	_, err := r.db().Exec(`
		INSERT INTO vehicles (id, user_id, plate, model, year, type, society_split_factor, total_km, last_maintenance_km)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, v.ID, v.UserID, v.Plate, v.Model, v.Year, v.Type, v.SocietySplitFactor, v.TotalKm, v.LastMaintenanceKm)
	return err
}

func (r VehicleRepository) Update(v domain.Vehicle) error {
	res, err := r.db().Exec(`
		UPDATE vehicles SET plate=?, model=?, year=?, type=?, society_split_factor=?, total_km=?, last_maintenance_km=?
		WHERE user_id = ? AND id = ?
	`, v.Plate, v.Model, v.Year, v.Type, v.SocietySplitFactor, v.TotalKm, v.LastMaintenanceKm, v.UserID, v.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return nil
}

func (r VehicleRepository) Delete(userID, id string) error {
	res, err := r.db().Exec(`DELETE FROM vehicles WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return nil
}
