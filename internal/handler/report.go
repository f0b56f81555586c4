package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taxipark/internal/service"
)

// ReportHandler handles HTTP requests for park reports.
type ReportHandler struct {
	reportService   *service.ReportService
	defaultMinTrips int
}

// NewReportHandler creates a new ReportHandler. defaultMinTrips is used when
// a request does not pass min_trips.
func NewReportHandler(reportService *service.ReportService, defaultMinTrips int) *ReportHandler {
	return &ReportHandler{
		reportService:   reportService,
		defaultMinTrips: defaultMinTrips,
	}
}

// DriversReport is the HTTP response for driver set reports.
type DriversReport struct {
	Count   int              `json:"count"`
	Drivers []DriverResponse `json:"drivers"`
}

// PassengersReport is the HTTP response for passenger set reports.
type PassengersReport struct {
	Count      int                 `json:"count"`
	Passengers []PassengerResponse `json:"passengers"`
}

// DurationPeriodReport is the HTTP response for the most frequent duration period.
type DurationPeriodReport struct {
	Period    *PeriodResponse       `json:"period"` // null when there are no trips
	Histogram []PeriodCountResponse `json:"histogram"`
}

// SummaryReport is the HTTP response for all park-wide reports.
type SummaryReport struct {
	FakeDrivers        DriversReport         `json:"fake_drivers"`
	MinTrips           int                   `json:"min_trips"`
	FaithfulPassengers PassengersReport      `json:"faithful_passengers"`
	SmartPassengers    PassengersReport      `json:"smart_passengers"`
	DurationPeriod     *PeriodResponse       `json:"duration_period"`
	DurationHistogram  []PeriodCountResponse `json:"duration_histogram"`
	Pareto             ParetoResponse        `json:"pareto"`
}

// FakeDrivers handles GET /v1/reports/fake-drivers
func (h *ReportHandler) FakeDrivers(c *gin.Context) {
	drivers, err := h.reportService.FakeDrivers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, DriversReport{
		Count:   len(drivers),
		Drivers: toDriverResponses(drivers),
	})
}

// FaithfulPassengers handles GET /v1/reports/faithful-passengers?min_trips=N
func (h *ReportHandler) FaithfulPassengers(c *gin.Context) {
	minTrips, ok := h.minTrips(c)
	if !ok {
		return
	}

	passengers, err := h.reportService.FaithfulPassengers(c.Request.Context(), minTrips)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, PassengersReport{
		Count:      len(passengers),
		Passengers: toPassengerResponses(passengers),
	})
}

// FrequentPassengers handles GET /v1/reports/drivers/:id/frequent-passengers
func (h *ReportHandler) FrequentPassengers(c *gin.Context) {
	driverID := c.Param("id")

	passengers, err := h.reportService.FrequentPassengers(c.Request.Context(), driverID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, PassengersReport{
		Count:      len(passengers),
		Passengers: toPassengerResponses(passengers),
	})
}

// SmartPassengers handles GET /v1/reports/smart-passengers
func (h *ReportHandler) SmartPassengers(c *gin.Context) {
	passengers, err := h.reportService.SmartPassengers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, PassengersReport{
		Count:      len(passengers),
		Passengers: toPassengerResponses(passengers),
	})
}

// DurationPeriod handles GET /v1/reports/duration-period
func (h *ReportHandler) DurationPeriod(c *gin.Context) {
	ctx := c.Request.Context()

	period, err := h.reportService.MostFrequentDurationPeriod(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	histogram, err := h.reportService.DurationHistogram(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, DurationPeriodReport{
		Period:    toPeriodResponse(period),
		Histogram: toHistogramResponse(histogram),
	})
}

// Pareto handles GET /v1/reports/pareto
func (h *ReportHandler) Pareto(c *gin.Context) {
	report, err := h.reportService.Pareto(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toParetoResponse(report))
}

// DriverIncomes handles GET /v1/reports/driver-incomes
func (h *ReportHandler) DriverIncomes(c *gin.Context) {
	incomes, err := h.reportService.DriverIncomes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]DriverIncomeResponse, 0, len(incomes))
	for _, di := range incomes {
		response = append(response, DriverIncomeResponse{
			Driver: DriverResponse{ID: di.Driver.ID, Name: di.Driver.Name},
			Income: di.Income,
		})
	}

	respondJSON(c, http.StatusOK, response)
}

// Summary handles GET /v1/reports/summary?min_trips=N
func (h *ReportHandler) Summary(c *gin.Context) {
	minTrips, ok := h.minTrips(c)
	if !ok {
		return
	}

	summary, err := h.reportService.Summary(c.Request.Context(), minTrips)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, SummaryReport{
		FakeDrivers: DriversReport{
			Count:   len(summary.FakeDrivers),
			Drivers: toDriverResponses(summary.FakeDrivers),
		},
		MinTrips: summary.MinTrips,
		FaithfulPassengers: PassengersReport{
			Count:      len(summary.FaithfulPassengers),
			Passengers: toPassengerResponses(summary.FaithfulPassengers),
		},
		SmartPassengers: PassengersReport{
			Count:      len(summary.SmartPassengers),
			Passengers: toPassengerResponses(summary.SmartPassengers),
		},
		DurationPeriod:    toPeriodResponse(summary.DurationPeriod),
		DurationHistogram: toHistogramResponse(summary.DurationHistogram),
		Pareto:            toParetoResponse(summary.Pareto),
	})
}

// minTrips reads the min_trips query parameter, writing a 400 response when it is malformed.
func (h *ReportHandler) minTrips(c *gin.Context) (int, bool) {
	raw := c.Query("min_trips")
	if raw == "" {
		return h.defaultMinTrips, true
	}

	minTrips, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "min_trips must be an integer"})
		return 0, false
	}
	return minTrips, true
}
