package repositories

import (
	"database/sql"

	intconfig "frotalog/internal/config"
	"frotalog/internal/domain"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripColumns = `id, user_id,
	COALESCE(origin,''), COALESCE(destination,''),
	COALESCE(vehicle_id,''), COALESCE(driver_id,''), COALESCE(shipper_id,''),
	COALESCE(departure_date,''), COALESCE(return_date,''), COALESCE(receipt_date,''),
	COALESCE(frete_seco,0), COALESCE(diarias,0), COALESCE(adiantamento,0),
	COALESCE(combustivel,0), COALESCE(liters_diesel,0), COALESCE(outras_despesas,0),
	COALESCE(total_km,0), COALESCE(status,'Pendente')`

func scanTrip(scan func(dest ...any) error) (domain.Trip, error) {
	var t domain.Trip
	err := scan(
		&t.ID, &t.UserID,
		&t.Origin, &t.Destination,
		&t.VehicleID, &t.DriverID, &t.ShipperID,
		&t.DepartureDate, &t.ReturnDate, &t.ReceiptDate,
		&t.FreteSeco, &t.Diarias, &t.Adiantamento,
		&t.Combustivel, &t.LitersDiesel, &t.OutrasDespesas,
		&t.TotalKm, &t.Status,
	)
	return t, err
}

// ListByUser returns every trip of the tenant, newest departure first.
func (r TripRepository) ListByUser(userID string) ([]domain.Trip, error) {
	rows, err := r.db().Query(`
		SELECT `+tripColumns+`
		FROM trips
		WHERE user_id = ?
		ORDER BY departure_date DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows.Scan)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TripRepository) GetByID(userID, id string) (domain.Trip, error) {
	row := r.db().QueryRow(`
		SELECT `+tripColumns+`
		FROM trips
		WHERE user_id = ? AND id = ?
	`, userID, id)

	t, err := scanTrip(row.Scan)
	if err == sql.ErrNoRows {
		return t, domain.NotFoundError{Resource: "trip"}
	}
	return t, err
}

func (r TripRepository) Insert(t domain.Trip) error {
	_, err := r.db().Exec(`
		INSERT INTO trips (
			id, user_id, origin, destination,
			vehicle_id, driver_id, shipper_id,
			departure_date, return_date, receipt_date,
			frete_seco, diarias, adiantamento, combustivel, liters_diesel, outras_despesas,
			total_km, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		t.ID, t.UserID, t.Origin, t.Destination,
		t.VehicleID, t.DriverID, t.ShipperID,
		t.DepartureDate, t.ReturnDate, t.ReceiptDate,
		t.FreteSeco, t.Diarias, t.Adiantamento, t.Combustivel, t.LitersDiesel, t.OutrasDespesas,
		t.TotalKm, t.Status,
	)
	return err
}

func (r TripRepository) Update(t domain.Trip) error {
	res, err := r.db().Exec(`
		UPDATE trips SET
			origin=?, destination=?,
			vehicle_id=?, driver_id=?, shipper_id=?,
			departure_date=?, return_date=?, receipt_date=?,
			frete_seco=?, diarias=?, adiantamento=?, combustivel=?, liters_diesel=?, outras_despesas=?,
			total_km=?, status=?
		WHERE user_id = ? AND id = ?
	`,
		t.Origin, t.Destination,
		t.VehicleID, t.DriverID, t.ShipperID,
		t.DepartureDate, t.ReturnDate, t.ReceiptDate,
		t.FreteSeco, t.Diarias, t.Adiantamento, t.Combustivel, t.LitersDiesel, t.OutrasDespesas,
		t.TotalKm, t.Status,
		t.UserID, t.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}

func (r TripRepository) UpdateStatus(userID, id string, status domain.TripStatus) error {
	res, err := r.db().Exec(`
		UPDATE trips SET status=? WHERE user_id = ? AND id = ?
	`, status, userID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}

func (r TripRepository) Delete(userID, id string) error {
	res, err := r.db().Exec(`DELETE FROM trips WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}
