package repositories

import (
	"database/sql"

	intconfig "frotalog/internal/config"
	"frotalog/internal/domain"
)

type DriverRepository struct {
	DB *sql.DB
}

func (r DriverRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func scanDriver(scan func(dest ...any) error) (domain.Driver, error) {
	var d domain.Driver
	var commFrete, commDiaria sql.NullFloat64
	err := scan(&d.ID, &d.UserID, &d.Name, &d.Phone, &commFrete, &commDiaria)
	if err != nil {
		return d, err
	}
	// NULL columns mean "use tenant default"; a stored zero stays zero.
	if commFrete.Valid || commDiaria.Valid {
		cc := &domain.CustomCommission{}
		if commFrete.Valid {
			v := commFrete.Float64
			cc.Frete = &v
		}
		if commDiaria.Valid {
			v := commDiaria.Float64
			cc.Diaria = &v
		}
		d.CustomCommission = cc
	}
	return d, nil
}

func (r DriverRepository) ListByUser(userID string) ([]domain.Driver, error) {
	rows, err := r.db().Query(`
		SELECT id, user_id, COALESCE(name,''), COALESCE(phone,''), comm_frete, comm_diaria
		FROM drivers
		WHERE user_id = ?
		ORDER BY name ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Driver{}
	for rows.Next() {
		d, err := scanDriver(rows.Scan)
		if err != nil {
			return out, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r DriverRepository) MapByID(userID string) (map[string]domain.Driver, error) {
	list, err := r.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.Driver, len(list))
	for _, d := range list {
		out[d.ID] = d
	}
	return out, nil
}

func (r DriverRepository) GetByID(userID, id string) (domain.Driver, error) {
	row := r.db().QueryRow(`
		SELECT id, user_id, COALESCE(name,''), COALESCE(phone,''), comm_frete, comm_diaria
		FROM drivers
		WHERE user_id = ? AND id = ?
	`, userID, id)

	d, err := scanDriver(row.Scan)
	if err == sql.ErrNoRows {
		return d, domain.NotFoundError{Resource: "driver"}
	}
	return d, err
}

func commissionValues(d domain.Driver) (any, any) {
	var frete, diaria any
	if cc := d.CustomCommission; cc != nil {
		if cc.Frete != nil {
			frete = *cc.Frete
		}
		if cc.Diaria != nil {
			diaria = *cc.Diaria
		}
	}
	return frete, diaria
}

func (r DriverRepository) Insert(d domain.Driver) error {
	frete, diaria := commissionValues(d)
	_, err := r.db().Exec(`
		INSERT INTO drivers (id, user_id, name, phone, comm_frete, comm_diaria)
		VALUES (?, ?, ?, ?, ?, ?)
	`, d.ID, d.UserID, d.Name, d.Phone, frete, diaria)
	return err
}

func (r DriverRepository) Update(d domain.Driver) error {
	frete, diaria := commissionValues(d)
	res, err := r.db().Exec(`
		UPDATE drivers SET name=?, phone=?, comm_frete=?, comm_diaria=?
		WHERE user_id = ? AND id = ?
	`, d.Name, d.Phone, frete, diaria, d.UserID, d.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "driver"}
	}
	return nil
}

func (r DriverRepository) Delete(userID, id string) error {
	res, err := r.db().Exec(`DELETE FROM drivers WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "driver"}
	}
	return nil
}
