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

func validateShipper(s *domain.Shipper) error {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return domain.ValidationError{Field: "name", Msg: "obrigatório"}
	}
	if s.AvgPaymentDays < 0 {
		return domain.ValidationError{Field: "avgPaymentDays", Msg: "não pode ser negativo"}
	}
	return nil
}

// GET /api/shippers
func GetShippers(c *gin.Context) {
	userID := middleware.GetUserID(c)
	out, err := repositories.ShipperRepository{}.ListByUser(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao listar embarcadores", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/shippers
func CreateShipper(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var s domain.Shipper
	if !BindJSONOrError(c, &s) {
		return
	}
	if err := validateShipper(&s); err != nil {
		RespondDomainError(c, err)
		return
	}

	s.ID = uuid.NewString()
	s.UserID = userID

	if err := (repositories.ShipperRepository{}).Insert(s); err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao salvar embarcador", err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// PUT /api/shippers/:id
func UpdateShipper(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := strings.TrimSpace(c.Param("id"))

	var s domain.Shipper
	if !BindJSONOrError(c, &s) {
		return
	}
	if err := validateShipper(&s); err != nil {
		RespondDomainError(c, err)
		return
	}

	s.ID = id
	s.UserID = userID

	if err := (repositories.ShipperRepository{}).Update(s); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// DELETE /api/shippers/:id
func DeleteShipper(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := strings.TrimSpace(c.Param("id"))

	if err := (repositories.ShipperRepository{}).Delete(userID, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
