package handlers

import (
	"net/http"

	"frotalog/internal/http/middleware"
	"frotalog/internal/repositories"
	"frotalog/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/billing/webhook
// Called by the payment provider; not behind tenant auth.
func BillingWebhook(c *gin.Context) {
	var evt services.WebhookEvent
	if !BindJSONOrError(c, &evt) {
		return
	}

	svc := services.BillingService{RequestID: middleware.GetRequestID(c)}
	if err := svc.HandleWebhook(evt); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/billing/subscription
func GetSubscription(c *gin.Context) {
	userID := middleware.GetUserID(c)

	sub, err := repositories.SubscriptionRepository{}.GetByUser(userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// GET /api/admin/subscriptions
func ListSubscriptions(c *gin.Context) {
	out, err := repositories.SubscriptionRepository{}.ListAll()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao listar assinaturas", err)
		return
	}
	c.JSON(http.StatusOK, out)
}
