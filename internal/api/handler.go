// Package api exposes the distribution pipeline over HTTP.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/darkron008/Tip-and-hours-Calculator/internal/config"
	"github.com/darkron008/Tip-and-hours-Calculator/internal/distributor"
	"github.com/darkron008/Tip-and-hours-Calculator/internal/store"
)

// Handler holds the API's collaborators.
type Handler struct {
	cfg    *config.AppConfig
	store  *store.Store
	engine *distributor.Engine
}

// NewHandler creates the API handler.
func NewHandler(cfg *config.AppConfig, st *store.Store) *Handler {
	return &Handler{
		cfg:    cfg,
		store:  st,
		engine: distributor.NewEngine(),
	}
}

// RegisterRoutes wires the API endpoints.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)

	router.POST("/distribute", h.Distribute)

	router.GET("/runs", h.ListRuns)
	router.GET("/runs/:id", h.GetRun)
	router.GET("/runs/:id/download", h.DownloadRun)

	router.POST("/calc/tip", h.CalcTip)
	router.POST("/calc/pay", h.CalcPay)
}
