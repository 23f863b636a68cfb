package handlers

import (
	"net/http"

	intconfig "frotalog/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "frotalog backend rodando"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "banco de dados indisponível: " + err.Error()})
		return
	}
	var count int
	err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha na consulta ao banco: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conexão com o banco OK", "users_in_db": count})
}
