package repositories

import (
	"database/sql"

	intconfig "frotalog/internal/config"
	"frotalog/internal/domain"
)

type SubscriptionRepository struct {
	DB *sql.DB
}

func (r SubscriptionRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const subscriptionColumns = `id, user_id, COALESCE(plan,''), COALESCE(status,'trialing'),
	COALESCE(external_id,''), COALESCE(renews_at,'')`

func (r SubscriptionRepository) GetByUser(userID string) (domain.Subscription, error) {
	var s domain.Subscription
	err := r.db().QueryRow(`
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE user_id = ?
	`, userID).Scan(&s.ID, &s.UserID, &s.Plan, &s.Status, &s.ExternalID, &s.RenewsAt)
	if err == sql.ErrNoRows {
		return s, domain.NotFoundError{Resource: "subscription"}
	}
	return s, err
}

func (r SubscriptionRepository) GetByExternalID(externalID string) (domain.Subscription, error) {
	var s domain.Subscription
	err := r.db().QueryRow(`
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE external_id = ?
	`, externalID).Scan(&s.ID, &s.UserID, &s.Plan, &s.Status, &s.ExternalID, &s.RenewsAt)
	if err == sql.ErrNoRows {
		return s, domain.NotFoundError{Resource: "subscription"}
	}
	return s, err
}

func (r SubscriptionRepository) Upsert(s domain.Subscription) error {
	_, err := r.db().Exec(`
		INSERT INTO subscriptions (id, user_id, plan, status, external_id, renews_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			plan=VALUES(plan), status=VALUES(status), external_id=VALUES(external_id), renews_at=VALUES(renews_at)
	`, s.ID, s.UserID, s.Plan, s.Status, s.ExternalID, s.RenewsAt)
	return err
}

func (r SubscriptionRepository) UpdateStatus(externalID, status, renewsAt string) error {
	res, err := r.db().Exec(`
		UPDATE subscriptions SET status=?, renews_at=? WHERE external_id = ?
	`, status, renewsAt, externalID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "subscription"}
	}
	return nil
}

// ListAll backs the admin billing screen.
func (r SubscriptionRepository) ListAll() ([]domain.Subscription, error) {
	rows, err := r.db().Query(`
		SELECT ` + subscriptionColumns + `
		FROM subscriptions
		ORDER BY user_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Subscription{}
	for rows.Next() {
		var s domain.Subscription
		if err := rows.Scan(&s.ID, &s.UserID, &s.Plan, &s.Status, &s.ExternalID, &s.RenewsAt); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
