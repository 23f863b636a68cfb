package handlers

import (
	"net/http"

	"frotalog/internal/domain"
	"frotalog/internal/http/middleware"
	"frotalog/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/profile/config
func GetProfileConfig(c *gin.Context) {
	userID := middleware.GetUserID(c)
	cfg, err := repositories.ProfileRepository{}.GetConfig(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao carregar configurações", err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// PUT /api/profile/config
func UpdateProfileConfig(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var cfg domain.ProfileConfig
	if !BindJSONOrError(c, &cfg) {
		return
	}
	if cfg.PercMotFrete < 0 || cfg.PercMotFrete > 100 {
		RespondDomainError(c, domain.ValidationError{Field: "percMotFrete", Msg: "deve estar entre 0 e 100"})
		return
	}
	if cfg.PercMotDiaria < 0 || cfg.PercMotDiaria > 100 {
		RespondDomainError(c, domain.ValidationError{Field: "percMotDiaria", Msg: "deve estar entre 0 e 100"})
		return
	}

	if err := (repositories.ProfileRepository{}).UpsertConfig(userID, cfg); err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao salvar configurações", err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}
