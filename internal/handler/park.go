package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taxipark/internal/domain"
	"taxipark/internal/service"
)

// ParkHandler handles HTTP requests for the park snapshot itself.
type ParkHandler struct {
	reportService *service.ReportService
}

// NewParkHandler creates a new ParkHandler.
func NewParkHandler(reportService *service.ReportService) *ParkHandler {
	return &ParkHandler{reportService: reportService}
}

// ParkResponse describes the current snapshot.
type ParkResponse struct {
	Version    string `json:"version"`
	LoadedAt   string `json:"loaded_at"`
	Drivers    int    `json:"drivers"`
	Passengers int    `json:"passengers"`
	Trips      int    `json:"trips"`
}

// GetPark handles GET /v1/park
func (h *ParkHandler) GetPark(c *gin.Context) {
	park, err := h.reportService.Snapshot()
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toParkResponse(park))
}

// Reload handles POST /v1/park/reload
func (h *ParkHandler) Reload(c *gin.Context) {
	park, err := h.reportService.Reload(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toParkResponse(park))
}

func toParkResponse(park *domain.TaxiPark) ParkResponse {
	return ParkResponse{
		Version:    park.Version,
		LoadedAt:   park.LoadedAt.Format(time.RFC3339),
		Drivers:    len(park.Drivers),
		Passengers: len(park.Passengers),
		Trips:      len(park.Trips),
	}
}
