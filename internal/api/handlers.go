package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/ivasik-k7/leetcode-stats/internal/stats"

	"github.com/gin-gonic/gin"
)

type StatsService interface {
	GetStats(ctx context.Context, username string) *stats.Result
}

type Handlers struct {
	svc   StatsService
	cache *Cache
}

func NewHandlers(svc StatsService, cache *Cache) *Handlers {
	return &Handlers{
		svc:   svc,
		cache: cache,
	}
}

// GetStatistic serves GET /api/v1/statistic/:username. A missing username
// is rejected before any upstream call is made.
func (h *Handlers) GetStatistic(c *gin.Context) {
	username := c.Param("username")
	if strings.TrimSpace(username) == "" {
		MissingUsername(c)
		return
	}

	if res, ok := h.cache.Get(username); ok {
		c.JSON(http.StatusOK, res)
		return
	}

	res := h.svc.GetStats(c.Request.Context(), username)
	if !res.OK() {
		JSONDetail(c, http.StatusInternalServerError, res.Message)
		return
	}

	h.cache.Set(username, res)
	c.JSON(http.StatusOK, res)
}
