package services

import (
	"time"

	"frotalog/internal/analytics"
	"frotalog/internal/repositories"
)

// DashboardService assembles the tenant snapshot and aggregates it. The
// computation itself is pure; this service only does the fetching.
type DashboardService struct {
	TripRepo        repositories.TripRepository
	VehicleRepo     repositories.VehicleRepository
	DriverRepo      repositories.DriverRepository
	ShipperRepo     repositories.ShipperRepository
	ProfileRepo     repositories.ProfileRepository
	MaintenanceRepo repositories.MaintenanceRepository

	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

type DashboardView struct {
	TotalBruto    float64 `json:"totalBruto"`
	TotalLucro    float64 `json:"totalLucro"`
	TotalComissao float64 `json:"totalComissao"`
	TotalKm       float64 `json:"totalKm"`
	TripCount     int     `json:"tripCount"`
	Margin        string  `json:"margin"`

	TopDriversByLucro    []analytics.EntityTotals  `json:"topDriversByLucro"`
	TopDriversByComissao []analytics.EntityTotals  `json:"topDriversByComissao"`
	TopVehicles          []analytics.EntityTotals  `json:"topVehicles"`
	TopRoutes            []analytics.RouteTotals   `json:"topRoutes"`
	TopShippers          []analytics.ShipperTotals `json:"topShippers"`

	Monthly   []analytics.MonthTotals `json:"monthly"`
	LossTrips []analytics.TripResult  `json:"lossTrips"`
}

func (s DashboardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// BuildSnapshot fetches every collection the aggregator needs, user-scoped.
func (s DashboardService) BuildSnapshot(userID string) (analytics.Snapshot, error) {
	var snap analytics.Snapshot

	trips, err := s.TripRepo.ListByUser(userID)
	if err != nil {
		return snap, err
	}
	vehicles, err := s.VehicleRepo.MapByID(userID)
	if err != nil {
		return snap, err
	}
	drivers, err := s.DriverRepo.MapByID(userID)
	if err != nil {
		return snap, err
	}
	shippers, err := s.ShipperRepo.MapByID(userID)
	if err != nil {
		return snap, err
	}
	cfg, err := s.ProfileRepo.GetConfig(userID)
	if err != nil {
		return snap, err
	}
	maintenance, err := s.MaintenanceRepo.SumByVehicle(userID)
	if err != nil {
		return snap, err
	}

	snap = analytics.Snapshot{
		Trips:                trips,
		Vehicles:             vehicles,
		Drivers:              drivers,
		Shippers:             shippers,
		Config:               cfg,
		MaintenanceByVehicle: maintenance,
	}
	return snap, nil
}

// Dashboard produces the main screen payload: totals, rankings, the rolling
// 6-month series and the loss-making trip list.
func (s DashboardService) Dashboard(userID string) (DashboardView, error) {
	snap, err := s.BuildSnapshot(userID)
	if err != nil {
		return DashboardView{}, err
	}
	sum := analytics.Aggregate(snap)

	return DashboardView{
		TotalBruto:    sum.TotalBruto,
		TotalLucro:    sum.TotalLucro,
		TotalComissao: sum.TotalComissao,
		TotalKm:       sum.TotalKm,
		TripCount:     len(sum.Results),
		Margin:        analytics.MarginRatio(sum.TotalLucro, sum.TotalBruto),

		TopDriversByLucro:    analytics.TopEntities(sum.Drivers, analytics.ByLucro, 5),
		TopDriversByComissao: analytics.TopEntities(sum.Drivers, analytics.ByComissao, 5),
		TopVehicles:          analytics.TopEntities(sum.Vehicles, analytics.ByLucro, 5),
		TopRoutes:            analytics.TopRoutes(sum.Routes, 5),
		TopShippers:          analytics.TopShippers(sum.Shippers, 5),

		Monthly:   analytics.MonthlySeries(sum, 6, s.now()),
		LossTrips: sum.LossTrips,
	}, nil
}
