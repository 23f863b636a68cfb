package handlers

import (
	"net/http"
	"strings"

	"frotalog/internal/domain"
	"frotalog/internal/http/middleware"
	"frotalog/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GET /api/maintenance-costs
func ListMaintenanceCosts(c *gin.Context) {
	userID := middleware.GetUserID(c)
	out, err := repositories.MaintenanceRepository{}.ListByUser(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao listar custos de manutenção", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/maintenance-costs
func CreateMaintenanceCost(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var m domain.MaintenanceCost
	if !BindJSONOrError(c, &m) {
		return
	}
	if strings.TrimSpace(m.VehicleID) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "vehicleId", Msg: "obrigatório"})
		return
	}
	if m.Amount < 0 {
		RespondDomainError(c, domain.ValidationError{Field: "amount", Msg: "não pode ser negativo"})
		return
	}

	m.ID = uuid.NewString()
	m.UserID = userID

	if err := (repositories.MaintenanceRepository{}).Insert(m); err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao salvar custo", err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// DELETE /api/maintenance-costs/:id
func DeleteMaintenanceCost(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := strings.TrimSpace(c.Param("id"))

	if err := (repositories.MaintenanceRepository{}).Delete(userID, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
