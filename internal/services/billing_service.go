package services

import (
	"fmt"

	"frotalog/internal/domain"
	"frotalog/internal/repositories"
	"frotalog/internal/utils"

	"github.com/google/uuid"
)

// WebhookEvent is the payment provider's callback payload, already verified
// at the transport layer.
type WebhookEvent struct {
	Type           string `json:"type"`
	SubscriptionID string `json:"subscriptionId"`
	UserID         string `json:"userId"`
	Plan           string `json:"plan"`
	RenewsAt       string `json:"renewsAt"`
}

// BillingService applies provider webhook events to the local subscription
// record: trialing -> active -> past_due/canceled.
type BillingService struct {
	SubscriptionRepo repositories.SubscriptionRepository

	RequestID string
}

func statusForEvent(eventType string) (string, bool) {
	switch eventType {
	case "subscription_created":
		return "trialing", true
	case "payment_succeeded":
		return "active", true
	case "payment_failed":
		return "past_due", true
	case "subscription_canceled":
		return "canceled", true
	}
	return "", false
}

func (s BillingService) HandleWebhook(evt WebhookEvent) error {
	status, ok := statusForEvent(evt.Type)
	if !ok {
		return domain.ValidationError{Field: "type", Msg: fmt.Sprintf("evento desconhecido: %s", evt.Type)}
	}
	if evt.SubscriptionID == "" {
		return domain.ValidationError{Field: "subscriptionId", Msg: "obrigatório"}
	}

	utils.LogEvent(s.RequestID, "billing", "webhook", fmt.Sprintf("type=%s subscription=%s", evt.Type, evt.SubscriptionID))

	if evt.Type == "subscription_created" {
		if evt.UserID == "" {
			return domain.ValidationError{Field: "userId", Msg: "obrigatório"}
		}
		return s.SubscriptionRepo.Upsert(domain.Subscription{
			ID:         uuid.NewString(),
			UserID:     evt.UserID,
			Plan:       evt.Plan,
			Status:     status,
			ExternalID: evt.SubscriptionID,
			RenewsAt:   evt.RenewsAt,
		})
	}

	return s.SubscriptionRepo.UpdateStatus(evt.SubscriptionID, status, evt.RenewsAt)
}
