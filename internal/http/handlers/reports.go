package handlers

import (
	"net/http"
	"strings"

	"frotalog/internal/http/middleware"
	"frotalog/internal/services"
	"frotalog/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/trips/:id/receipt
func GetTripReceiptPDF(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := strings.TrimSpace(c.Param("id"))

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateTripReceipt(userID, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/reports/fleet
func GetFleetReportPDF(c *gin.Context) {
	userID := middleware.GetUserID(c)

	view, err := dashboardService().Dashboard(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao montar relatório", err)
		return
	}

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.BuildFleetReportPDF(view, utils.NowUTC())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao gerar PDF", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
