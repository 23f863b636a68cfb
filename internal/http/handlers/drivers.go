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

func validateDriver(d *domain.Driver) error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return domain.ValidationError{Field: "name", Msg: "obrigatório"}
	}
	if cc := d.CustomCommission; cc != nil {
		if cc.Frete != nil && (*cc.Frete < 0 || *cc.Frete > 100) {
			return domain.ValidationError{Field: "customCommission.frete", Msg: "deve estar entre 0 e 100"}
		}
		if cc.Diaria != nil && (*cc.Diaria < 0 || *cc.Diaria > 100) {
			return domain.ValidationError{Field: "customCommission.diaria", Msg: "deve estar entre 0 e 100"}
		}
	}
	return nil
}

// GET /api/drivers
func GetDrivers(c *gin.Context) {
	userID := middleware.GetUserID(c)
	out, err := repositories.DriverRepository{}.ListByUser(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao listar motoristas", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/drivers
func CreateDriver(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var d domain.Driver
	if !BindJSONOrError(c, &d) {
		return
	}
	if err := validateDriver(&d); err != nil {
		RespondDomainError(c, err)
		return
	}

	d.ID = uuid.NewString()
	d.UserID = userID

	if err := (repositories.DriverRepository{}).Insert(d); err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao salvar motorista", err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// PUT /api/drivers/:id
func UpdateDriver(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := strings.TrimSpace(c.Param("id"))

	var d domain.Driver
	if !BindJSONOrError(c, &d) {
		return
	}
	if err := validateDriver(&d); err != nil {
		RespondDomainError(c, err)
		return
	}

	d.ID = id
	d.UserID = userID

	if err := (repositories.DriverRepository{}).Update(d); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// DELETE /api/drivers/:id
func DeleteDriver(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := strings.TrimSpace(c.Param("id"))

	if err := (repositories.DriverRepository{}).Delete(userID, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
