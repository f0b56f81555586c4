package handler

import (
	"taxipark/internal/analytics"
	"taxipark/internal/domain"
)

// DriverResponse is the HTTP response for driver data.
type DriverResponse struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// PassengerResponse is the HTTP response for passenger data.
type PassengerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// PeriodResponse is an inclusive duration range in minutes.
type PeriodResponse struct {
	From int `json:"from_minutes"`
	To   int `json:"to_minutes"`
}

// PeriodCountResponse is one histogram bucket.
type PeriodCountResponse struct {
	Period PeriodResponse `json:"period"`
	Trips  int            `json:"trips"`
}

// ParetoResponse contains the 80/20 check and its figures.
type ParetoResponse struct {
	Holds       bool    `json:"holds"`
	DriverCount int     `json:"driver_count"`
	TopCount    int     `json:"top_count"`
	TopIncome   float64 `json:"top_income"`
	TotalIncome float64 `json:"total_income"`
	Threshold   float64 `json:"threshold"`
}

// DriverIncomeResponse is one driver's income.
type DriverIncomeResponse struct {
	Driver DriverResponse `json:"driver"`
	Income float64        `json:"income"`
}

func toDriverResponses(drivers []domain.Driver) []DriverResponse {
	response := make([]DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		response = append(response, DriverResponse{ID: d.ID, Name: d.Name})
	}
	return response
}

func toPassengerResponses(passengers []domain.Passenger) []PassengerResponse {
	response := make([]PassengerResponse, 0, len(passengers))
	for _, p := range passengers {
		response = append(response, PassengerResponse{ID: p.ID, Name: p.Name})
	}
	return response
}

func toPeriodResponse(period *domain.DurationPeriod) *PeriodResponse {
	if period == nil {
		return nil
	}
	return &PeriodResponse{From: period.Start, To: period.End}
}

func toHistogramResponse(histogram []analytics.PeriodCount) []PeriodCountResponse {
	response := make([]PeriodCountResponse, 0, len(histogram))
	for _, pc := range histogram {
		response = append(response, PeriodCountResponse{
			Period: PeriodResponse{From: pc.Period.Start, To: pc.Period.End},
			Trips:  pc.Trips,
		})
	}
	return response
}

func toParetoResponse(report analytics.ParetoReport) ParetoResponse {
	return ParetoResponse{
		Holds:       report.Holds,
		DriverCount: report.DriverCount,
		TopCount:    report.TopCount,
		TopIncome:   report.TopIncome,
		TotalIncome: report.TotalIncome,
		Threshold:   report.Threshold,
	}
}
