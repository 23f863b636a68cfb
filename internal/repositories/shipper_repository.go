package repositories

import (
	"database/sql"

	intconfig "frotalog/internal/config"
	"frotalog/internal/domain"
)

type ShipperRepository struct {
	DB *sql.DB
}

func (r ShipperRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ShipperRepository) ListByUser(userID string) ([]domain.Shipper, error) {
	rows, err := r.db().Query(`
		SELECT id, user_id, COALESCE(name,''), COALESCE(avg_payment_days,0)
		FROM shippers
		WHERE user_id = ?
		ORDER BY name ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Shipper{}
	for rows.Next() {
		var s domain.Shipper
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.AvgPaymentDays); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r ShipperRepository) MapByID(userID string) (map[string]domain.Shipper, error) {
	list, err := r.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.Shipper, len(list))
	for _, s := range list {
		out[s.ID] = s
	}
	return out, nil
}

func (r ShipperRepository) GetByID(userID, id string) (domain.Shipper, error) {
	var s domain.Shipper
	err := r.db().QueryRow(`
		SELECT id, user_id, COALESCE(name,''), COALESCE(avg_payment_days,0)
		FROM shippers
		WHERE user_id = ? AND id = ?
	`, userID, id).Scan(&s.ID, &s.UserID, &s.Name, &s.AvgPaymentDays)
	if err == sql.ErrNoRows {
		return s, domain.NotFoundError{Resource: "shipper"}
	}
	return s, err
}

func (r ShipperRepository) Insert(s domain.Shipper) error {
	_, err := r.db().Exec(`
		INSERT INTO shippers (id, user_id, name, avg_payment_days)
		VALUES (?, ?, ?, ?)
	`, s.ID, s.UserID, s.Name, s.AvgPaymentDays)
	return err
}

func (r ShipperRepository) Update(s domain.Shipper) error {
	res, err := r.db().Exec(`
		UPDATE shippers SET name=?, avg_payment_days=?
		WHERE user_id = ? AND id = ?
	`, s.Name, s.AvgPaymentDays, s.UserID, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "shipper"}
	}
	return nil
}

func (r ShipperRepository) Delete(userID, id string) error {
	res, err := r.db().Exec(`DELETE FROM shippers WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "shipper"}
	}
	return nil
}
