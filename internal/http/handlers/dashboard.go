package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"frotalog/internal/analytics"
	"frotalog/internal/http/middleware"
	"frotalog/internal/services"
	"frotalog/internal/utils"

	"github.com/gin-gonic/gin"
)

func dashboardService() services.DashboardService {
	return services.DashboardService{}
}

// GET /api/dashboard
func GetDashboard(c *gin.Context) {
	userID := middleware.GetUserID(c)

	view, err := dashboardService().Dashboard(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao montar dashboard", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /api/dashboard/monthly?months=12
func GetMonthlySeries(c *gin.Context) {
	userID := middleware.GetUserID(c)

	months := 6
	if raw := strings.TrimSpace(c.Query("months")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || (n != 6 && n != 12) {
			RespondError(c, http.StatusBadRequest, "months deve ser 6 ou 12", nil)
			return
		}
		months = n
	}

	svc := dashboardService()
	snap, err := svc.BuildSnapshot(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao carregar dados", err)
		return
	}
	sum := analytics.Aggregate(snap)

	c.JSON(http.StatusOK, gin.H{
		"months": analytics.MonthlySeries(sum, months, utils.NowUTC()),
		"margin": analytics.MarginRatio(sum.TotalLucro, sum.TotalBruto),
	})
}
