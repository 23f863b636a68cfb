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

func validateVehicle(v *domain.Vehicle) error {
	v.Plate = strings.ToUpper(strings.TrimSpace(v.Plate))
	if v.Plate == "" {
		return domain.ValidationError{Field: "plate", Msg: "obrigatório"}
	}
	switch v.Type {
	case "":
		v.Type = domain.VehicleProprio
	case domain.VehicleProprio, domain.VehicleSociedade:
	default:
		return domain.ValidationError{Field: "type", Msg: "tipo deve ser Próprio ou Sociedade"}
	}
	if v.Type == domain.VehicleProprio {
		v.SocietySplitFactor = 100
	}
	if v.SocietySplitFactor < 0 || v.SocietySplitFactor > 100 {
		return domain.ValidationError{Field: "societySplitFactor", Msg: "deve estar entre 0 e 100"}
	}
	return nil
}

// GET /api/vehicles
func GetVehicles(c *gin.Context) {
	userID := middleware.GetUserID(c)
	out, err := repositories.VehicleRepository{}.ListByUser(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao listar veículos", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/vehicles
func CreateVehicle(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var v domain.Vehicle
	if !BindJSONOrError(c, &v) {
		return
	}
	if err := validateVehicle(&v); err != nil {
		RespondDomainError(c, err)
		return
	}

	v.ID = uuid.NewString()
	v.UserID = userID

	if err := (repositories.VehicleRepository{}).Insert(v); err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao salvar veículo", err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// PUT /api/vehicles/:id
func UpdateVehicle(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := strings.TrimSpace(c.Param("id"))

	var v domain.Vehicle
	if !BindJSONOrError(c, &v) {
		return
	}
	if err := validateVehicle(&v); err != nil {
		RespondDomainError(c, err)
		return
	}

	v.ID = id
	v.UserID = userID

	if err := (repositories.VehicleRepository{}).Update(v); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DELETE /api/vehicles/:id
func DeleteVehicle(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := strings.TrimSpace(c.Param("id"))

	if err := (repositories.VehicleRepository{}).Delete(userID, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
