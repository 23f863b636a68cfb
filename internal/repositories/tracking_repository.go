package repositories

import (
	"database/sql"

	intconfig "frotalog/internal/config"
	"frotalog/internal/domain"
)

type TrackingRepository struct {
	DB *sql.DB
}

func (r TrackingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r TrackingRepository) InsertPoints(points []domain.TrackingPoint) error {
	if len(points) == 0 {
		return nil
	}
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO tracking_points (id, user_id, driver_id, trip_id, latitude, longitude, speed_kmh, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, p := range points {
		if _, err := stmt.Exec(p.ID, p.UserID, p.DriverID, p.TripID, p.Latitude, p.Longitude, p.SpeedKmh, p.RecordedAt); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// LatestByDriver returns the most recent point per driver for the live map.
func (r TrackingRepository) LatestByDriver(userID string) ([]domain.TrackingPoint, error) {
	rows, err := r.db().Query(`
		SELECT p.id, p.user_id, p.driver_id, COALESCE(p.trip_id,''),
		       p.latitude, p.longitude, COALESCE(p.speed_kmh,0), p.recorded_at
		FROM tracking_points p
		JOIN (
			SELECT driver_id, MAX(recorded_at) AS recorded_at
			FROM tracking_points
			WHERE user_id = ?
			GROUP BY driver_id
		) last ON last.driver_id = p.driver_id AND last.recorded_at = p.recorded_at
		WHERE p.user_id = ?
		ORDER BY p.driver_id ASC
	`, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.TrackingPoint{}
	for rows.Next() {
		var p domain.TrackingPoint
		if err := rows.Scan(&p.ID, &p.UserID, &p.DriverID, &p.TripID, &p.Latitude, &p.Longitude, &p.SpeedKmh, &p.RecordedAt); err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
