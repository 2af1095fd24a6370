package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"tea/models"
	"tea/services/discovery"
	ai "tea/services/intelligence"
	"tea/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DiscoveryHandler exposes the food-discovery pipeline over HTTP.
type DiscoveryHandler struct {
	Service discovery.DiscoveryService
	Logger  *zap.Logger
}

func NewDiscoveryHandler(svc discovery.DiscoveryService, logger *zap.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{Service: svc, Logger: logger}
}

// HandleDiscovery serves POST /api/tea. Failed responses always carry a
// structured error object; degraded-but-successful pipelines still return
// 200 with at least one restaurant.
func (h *DiscoveryHandler) HandleDiscovery(c *gin.Context) {
	var req models.DiscoveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Warn("Invalid discovery request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	resp, err := h.Service.Discover(c.Request.Context(), req.Query)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DiscoveryHandler) respondError(c *gin.Context, err error) {
	var upstream *ai.UpstreamError
	switch {
	case errors.Is(err, discovery.ErrEmptyQuery):
		utils.JSONError(c, http.StatusBadRequest, "Missing 'query' in request body", "")
	case errors.Is(err, ai.ErrKeyMissing):
		utils.JSONError(c, http.StatusInternalServerError, "Interpreter API key missing on server", "")
	case errors.As(err, &upstream):
		h.Logger.Error("Interpreter unavailable", zap.Error(err))
		details := ""
		if upstream.Status > 0 {
			details = "interpreter status " + strconv.Itoa(upstream.Status)
		}
		utils.JSONError(c, http.StatusBadGateway, "Reasoning backend unavailable", details)
	default:
		h.Logger.Error("Unexpected discovery error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Unexpected TEA server error", "")
	}
}
