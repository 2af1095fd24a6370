package handlers

import (
	"net/http"

	"tea/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest interpreter reachability snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
