package handlers

import (
	"net/http"

	"frotalog/internal/http/middleware"
	"frotalog/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/insights
func GetInsights(c *gin.Context) {
	userID := middleware.GetUserID(c)

	svc := services.InsightsService{Dashboard: services.DashboardService{}}
	out, err := svc.Evaluate(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao gerar insights", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/insights/tips
func GetGoldenTips(c *gin.Context) {
	userID := middleware.GetUserID(c)

	svc := services.InsightsService{Dashboard: services.DashboardService{}}
	out, err := svc.Tips(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao gerar dicas", err)
		return
	}
	c.JSON(http.StatusOK, out)
}
