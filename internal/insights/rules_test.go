package insights

import (
	"strings"
	"testing"
	"time"

	"frotalog/internal/analytics"
	"frotalog/internal/domain"
)

func snapshotWithTrips(trips []domain.Trip, vehicles map[string]domain.Vehicle) analytics.Snapshot {
	return analytics.Snapshot{
		Trips:    trips,
		Vehicles: vehicles,
		Drivers:  map[string]domain.Driver{"d1": {ID: "d1", Name: "João"}},
		Shippers: map[string]domain.Shipper{},
		Config:   domain.ProfileConfig{PercMotFrete: 10, PercMotDiaria: 30},
	}
}

func TestFuelEfficiencyBoundary(t *testing.T) {
	vehicles := map[string]domain.Vehicle{
		"v1": {ID: "v1", Plate: "ABC1D23", Type: domain.VehicleProprio},
	}

	// exactly 2.0 km/l: 400 km on 200 liters. Strictly below is required.
	snap := snapshotWithTrips([]domain.Trip{
		{ID: "t1", VehicleID: "v1", DriverID: "d1", DepartureDate: "2025-06-01",
			FreteSeco: 1000, TotalKm: 400, LitersDiesel: 200},
	}, vehicles)
	sum := analytics.Aggregate(snap)

	for _, in := range Evaluate(snap, sum, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)) {
		if in.Category == "combustivel" {
			t.Fatalf("2.0 km/l exactly must not trigger the fuel insight: %+v", in)
		}
	}

	// 1.99...: 399 km on 200 liters triggers
	snap.Trips[0].TotalKm = 399
	sum = analytics.Aggregate(snap)
	found := false
	for _, in := range Evaluate(snap, sum, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)) {
		if in.Category == "combustivel" {
			found = true
			if in.ImpactScore != 85 {
				t.Fatalf("fuel insight impact = %d, want 85", in.ImpactScore)
			}
			if in.Type != TypeNegative {
				t.Fatalf("fuel insight type = %s, want negative", in.Type)
			}
		}
	}
	if !found {
		t.Fatal("below 2.0 km/l must trigger the fuel insight")
	}
}

func TestFuelEfficiencySkipsSociedade(t *testing.T) {
	vehicles := map[string]domain.Vehicle{
		"v1": {ID: "v1", Plate: "XYZ9A88", Type: domain.VehicleSociedade, SocietySplitFactor: 50},
	}
	snap := snapshotWithTrips([]domain.Trip{
		{ID: "t1", VehicleID: "v1", DriverID: "d1", DepartureDate: "2025-06-01",
			FreteSeco: 1000, TotalKm: 100, LitersDiesel: 200},
	}, vehicles)
	sum := analytics.Aggregate(snap)

	for _, in := range Evaluate(snap, sum, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)) {
		if in.Category == "combustivel" {
			t.Fatalf("shared vehicle must not trigger the fuel insight: %+v", in)
		}
	}
}

func TestRevenueRunRateProjection(t *testing.T) {
	vehicles := map[string]domain.Vehicle{
		"v1": {ID: "v1", Type: domain.VehicleProprio},
	}
	// 10000 bruto by day 10 of a 30-day month projects to 30000
	snap := snapshotWithTrips([]domain.Trip{
		{ID: "t1", VehicleID: "v1", DriverID: "d1", DepartureDate: "2025-06-05", FreteSeco: 10000},
	}, vehicles)
	sum := analytics.Aggregate(snap)
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	var got *Insight
	for _, in := range Evaluate(snap, sum, now) {
		if in.Type == TypePrediction {
			cp := in
			got = &cp
		}
	}
	if got == nil {
		t.Fatal("run-rate insight missing for a month with revenue")
	}
	if got.ImpactScore != 90 {
		t.Fatalf("run-rate impact = %d, want 90", got.ImpactScore)
	}
	if !strings.Contains(got.Description, "R$ 30.000,00") {
		t.Fatalf("projection should be R$ 30.000,00, got %q", got.Description)
	}
}

func TestRevenueRunRateSkippedWithoutRevenue(t *testing.T) {
	snap := snapshotWithTrips(nil, map[string]domain.Vehicle{})
	sum := analytics.Aggregate(snap)

	for _, in := range Evaluate(snap, sum, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)) {
		if in.Type == TypePrediction {
			t.Fatalf("no revenue this month, projection must be skipped: %+v", in)
		}
	}
}

func TestTopDriverRevenueThreshold(t *testing.T) {
	vehicles := map[string]domain.Vehicle{"v1": {ID: "v1", Type: domain.VehicleProprio}}

	// exactly 50000 paid does not trigger
	snap := snapshotWithTrips([]domain.Trip{
		{ID: "t1", VehicleID: "v1", DriverID: "d1", DepartureDate: "2025-05-01",
			FreteSeco: 50000, Status: domain.StatusPago},
	}, vehicles)
	sum := analytics.Aggregate(snap)
	for _, in := range Evaluate(snap, sum, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)) {
		if in.Category == "motoristas" {
			t.Fatalf("50000 exactly must not trigger: %+v", in)
		}
	}

	// above the line, but only paid trips count
	snap.Trips = append(snap.Trips, domain.Trip{
		ID: "t2", VehicleID: "v1", DriverID: "d1", DepartureDate: "2025-05-02",
		FreteSeco: 1, Status: domain.StatusPago,
	}, domain.Trip{
		ID: "t3", VehicleID: "v1", DriverID: "d1", DepartureDate: "2025-05-03",
		FreteSeco: 99999, Status: domain.StatusPendente,
	})
	sum = analytics.Aggregate(snap)

	found := false
	for _, in := range Evaluate(snap, sum, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)) {
		if in.Category == "motoristas" {
			found = true
			if in.ImpactScore != 75 {
				t.Fatalf("driver insight impact = %d, want 75", in.ImpactScore)
			}
			if !strings.Contains(in.Title, "João") {
				t.Fatalf("driver insight should name the driver, got %q", in.Title)
			}
		}
	}
	if !found {
		t.Fatal("paid revenue above 50000 must trigger the driver insight")
	}
}

func TestEvaluateSortsByImpactDesc(t *testing.T) {
	vehicles := map[string]domain.Vehicle{
		"v1": {ID: "v1", Plate: "ABC1D23", Type: domain.VehicleProprio},
	}
	snap := snapshotWithTrips([]domain.Trip{
		{ID: "t1", VehicleID: "v1", DriverID: "d1", DepartureDate: "2025-06-01",
			FreteSeco: 60000, TotalKm: 100, LitersDiesel: 200, Status: domain.StatusPago},
	}, vehicles)
	sum := analytics.Aggregate(snap)

	out := Evaluate(snap, sum, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	if len(out) < 2 {
		t.Fatalf("expected multiple insights, got %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i].ImpactScore > out[i-1].ImpactScore {
			t.Fatalf("insights out of order at %d: %d after %d", i, out[i].ImpactScore, out[i-1].ImpactScore)
		}
	}
}

func TestEvaluateEmptySnapshot(t *testing.T) {
	snap := analytics.Snapshot{}
	sum := analytics.Aggregate(snap)

	out := Evaluate(snap, sum, time.Now().UTC())
	if len(out) != 0 {
		t.Fatalf("empty snapshot should yield no insights, got %d", len(out))
	}
}

func TestGoldenTipsAlwaysThree(t *testing.T) {
	now := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	empty := analytics.Snapshot{}
	tips := GoldenTips(empty, analytics.Aggregate(empty), now)
	if len(tips) != 3 {
		t.Fatalf("tips length = %d, want 3 even for an empty snapshot", len(tips))
	}
	for _, tip := range tips {
		if tip.Type != TypeNeutral {
			t.Fatalf("empty snapshot should yield neutral fallbacks, got %+v", tip)
		}
		if tip.ImpactScore != 40 {
			t.Fatalf("fallback impact = %d, want 40", tip.ImpactScore)
		}
	}
}

func TestGoldenTipsAnomalies(t *testing.T) {
	now := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	snap := analytics.Snapshot{
		Trips: []domain.Trip{
			{ID: "t1", VehicleID: "v1", DriverID: "d1", ShipperID: "s1",
				Destination: "Salvador", DepartureDate: "2025-06-01",
				FreteSeco: 9000, TotalKm: 1500},
		},
		Vehicles: map[string]domain.Vehicle{
			"v1": {ID: "v1", Plate: "OLD0A00", Year: 2008, TotalKm: 250000, Type: domain.VehicleProprio},
		},
		Drivers: map[string]domain.Driver{"d1": {ID: "d1", Name: "João"}},
		Shippers: map[string]domain.Shipper{
			"s1": {ID: "s1", Name: "Lenta Ltda", AvgPaymentDays: 45},
		},
		Config: domain.ProfileConfig{PercMotFrete: 10, PercMotDiaria: 30},
	}
	tips := GoldenTips(snap, analytics.Aggregate(snap), now)
	if len(tips) != 3 {
		t.Fatalf("tips length = %d, want 3", len(tips))
	}

	if tips[0].Type != TypePositive || !strings.Contains(tips[0].Title, "Salvador") {
		t.Fatalf("route tip should highlight Salvador, got %+v", tips[0])
	}
	if tips[1].Type != TypeNegative || !strings.Contains(tips[1].Title, "Lenta Ltda") {
		t.Fatalf("shipper tip should flag the slow payer, got %+v", tips[1])
	}
	if tips[2].Type != TypeNegative || !strings.Contains(tips[2].Title, "OLD0A00") {
		t.Fatalf("vehicle tip should flag the aging truck, got %+v", tips[2])
	}
}

func TestBestRouteTipRequiresKm(t *testing.T) {
	snap := analytics.Snapshot{
		Trips: []domain.Trip{
			{ID: "t1", Destination: "Recife", DepartureDate: "2025-06-01",
				FreteSeco: 5000, TotalKm: 1000},
		},
		Config: domain.ProfileConfig{PercMotFrete: 10, PercMotDiaria: 30},
	}
	// 1000 km exactly does not qualify (needs more than 1000)
	tip := bestRouteTip(analytics.Aggregate(snap))
	if tip.Type != TypeNeutral {
		t.Fatalf("1000 km exactly should fall back to neutral, got %+v", tip)
	}
}
