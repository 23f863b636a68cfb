package repositories

import (
	"database/sql"

	intconfig "frotalog/internal/config"
	"frotalog/internal/domain"
)

type ProfileRepository struct {
	DB *sql.DB
}

func (r ProfileRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// DefaultConfig is used for tenants that never saved settings.
func DefaultConfig() domain.ProfileConfig {
	return domain.ProfileConfig{
		PercMotFrete:      10,
		PercMotDiaria:     30,
		ShowSocietyColumn: true,
		EnableTracking:    true,
	}
}

// GetConfig never fails on a missing row: a fresh tenant gets the defaults.
func (r ProfileRepository) GetConfig(userID string) (domain.ProfileConfig, error) {
	var cfg domain.ProfileConfig
	err := r.db().QueryRow(`
		SELECT COALESCE(perc_mot_frete,10), COALESCE(perc_mot_diaria,30),
		       COALESCE(show_society_column,1), COALESCE(enable_tracking,1)
		FROM profiles
		WHERE user_id = ?
	`, userID).Scan(&cfg.PercMotFrete, &cfg.PercMotDiaria, &cfg.ShowSocietyColumn, &cfg.EnableTracking)
	if err == sql.ErrNoRows {
		return DefaultConfig(), nil
	}
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (r ProfileRepository) UpsertConfig(userID string, cfg domain.ProfileConfig) error {
	_, err := r.db().Exec(`
		INSERT INTO profiles (user_id, perc_mot_frete, perc_mot_diaria, show_society_column, enable_tracking)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			perc_mot_frete=VALUES(perc_mot_frete),
			perc_mot_diaria=VALUES(perc_mot_diaria),
			show_society_column=VALUES(show_society_column),
			enable_tracking=VALUES(enable_tracking)
	`, userID, cfg.PercMotFrete, cfg.PercMotDiaria, cfg.ShowSocietyColumn, cfg.EnableTracking)
	return err
}
