package analytics

import (
	"reflect"
	"testing"
	"time"

	"frotalog/internal/domain"
)

func testSnapshot() Snapshot {
	return Snapshot{
		Trips: []domain.Trip{
			{
				ID: "t1", VehicleID: "v1", DriverID: "d1", ShipperID: "s1",
				Destination: "São Paulo", DepartureDate: "2025-06-10",
				FreteSeco: 2000, Diarias: 200, Combustivel: 300, OutrasDespesas: 50,
				TotalKm: 500, LitersDiesel: 100, Status: domain.StatusPago,
			},
			{
				ID: "t2", VehicleID: "v1", DriverID: "d1", ShipperID: "s1",
				Destination: "são  paulo ", DepartureDate: "2025-07-02",
				FreteSeco: 1000, TotalKm: 600, LitersDiesel: 120, Status: domain.StatusPendente,
			},
			{
				// unresolved references and a loss
				ID: "t3", VehicleID: "missing", DriverID: "missing",
				Destination: "Curitiba", DepartureDate: "2025-07-15",
				FreteSeco: 100, Combustivel: 400, Status: domain.StatusPendente,
			},
		},
		Vehicles: map[string]domain.Vehicle{
			"v1": {ID: "v1", Plate: "ABC1D23", Type: domain.VehicleProprio},
		},
		Drivers: map[string]domain.Driver{
			"d1": {ID: "d1", Name: "João"},
		},
		Shippers: map[string]domain.Shipper{
			"s1": {ID: "s1", Name: "AgroLog"},
		},
		Config:               domain.ProfileConfig{PercMotFrete: 10, PercMotDiaria: 30},
		MaintenanceByVehicle: map[string]float64{"v1": 750},
	}
}

func TestAggregateTotalsIncludeUnresolved(t *testing.T) {
	sum := Aggregate(testSnapshot())

	// bruto: 2200 + 1000 + 100
	if sum.TotalBruto != 3300 {
		t.Fatalf("TotalBruto = %v, want 3300", sum.TotalBruto)
	}
	if len(sum.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(sum.Results))
	}

	// the unresolved trip lands under the sentinel key
	foundUnk := false
	for _, d := range sum.Drivers {
		if d.Key == domain.UnknownKey {
			foundUnk = true
			if d.Trips != 1 {
				t.Fatalf("unk driver trips = %d, want 1", d.Trips)
			}
		}
	}
	if !foundUnk {
		t.Fatal("unresolved trip missing from driver totals")
	}

	// but never ranks
	for _, d := range TopEntities(sum.Drivers, ByLucro, 10) {
		if d.Key == domain.UnknownKey {
			t.Fatal("unk key must not appear in rankings")
		}
	}
}

func TestAggregateRouteNormalization(t *testing.T) {
	sum := Aggregate(testSnapshot())

	var sp *RouteTotals
	for i := range sum.Routes {
		if sum.Routes[i].Key == "são paulo" {
			sp = &sum.Routes[i]
		}
	}
	if sp == nil {
		t.Fatal("normalized route key 'são paulo' not found")
	}
	if sp.Trips != 2 {
		t.Fatalf("route trips = %d, want 2 (case/space variants merged)", sp.Trips)
	}
	if sp.Destination != "São Paulo" {
		t.Fatalf("display destination = %q, want first-seen raw spelling", sp.Destination)
	}
}

func TestAggregateLossTrips(t *testing.T) {
	sum := Aggregate(testSnapshot())

	if len(sum.LossTrips) != 1 {
		t.Fatalf("expected 1 loss trip, got %d", len(sum.LossTrips))
	}
	if sum.LossTrips[0].Trip.ID != "t3" {
		t.Fatalf("loss trip = %s, want t3", sum.LossTrips[0].Trip.ID)
	}
}

func TestAggregateVehicleMaintenanceAndLiters(t *testing.T) {
	sum := Aggregate(testSnapshot())

	for _, v := range sum.Vehicles {
		if v.Key != "v1" {
			continue
		}
		if v.Maintenance != 750 {
			t.Fatalf("maintenance = %v, want 750", v.Maintenance)
		}
		if v.Liters != 220 {
			t.Fatalf("liters = %v, want 220", v.Liters)
		}
		if v.Km != 1100 {
			t.Fatalf("km = %v, want 1100", v.Km)
		}
		return
	}
	t.Fatal("vehicle v1 not aggregated")
}

func TestAggregateIdempotent(t *testing.T) {
	snap := testSnapshot()
	first := Aggregate(snap)
	second := Aggregate(snap)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("aggregating the same snapshot twice produced different output")
	}
}

func TestMarginRatioZeroGuard(t *testing.T) {
	if got := MarginRatio(0, 0); got != "0.0" {
		t.Fatalf("MarginRatio(0,0) = %q, want \"0.0\"", got)
	}
	if got := MarginRatio(50, 200); got != "25.0" {
		t.Fatalf("MarginRatio(50,200) = %q, want \"25.0\"", got)
	}

	empty := Aggregate(Snapshot{})
	if got := MarginRatio(empty.TotalLucro, empty.TotalBruto); got != "0.0" {
		t.Fatalf("empty snapshot margin = %q, want \"0.0\"", got)
	}
}

func TestTopEntitiesStableTieBreak(t *testing.T) {
	list := []EntityTotals{
		{Key: "a", Lucro: 100},
		{Key: "b", Lucro: 100},
		{Key: "c", Lucro: 200},
	}
	top := TopEntities(list, ByLucro, 3)
	if top[0].Key != "c" || top[1].Key != "a" || top[2].Key != "b" {
		t.Fatalf("unexpected order: %v", []string{top[0].Key, top[1].Key, top[2].Key})
	}
}

func TestMonthlySeriesWindow(t *testing.T) {
	sum := Aggregate(testSnapshot())
	ref := time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)

	series := MonthlySeries(sum, 6, ref)
	if len(series) != 6 {
		t.Fatalf("series length = %d, want 6", len(series))
	}
	if series[0].Key != "2025-02" || series[5].Key != "2025-07" {
		t.Fatalf("window bounds = %s..%s, want 2025-02..2025-07", series[0].Key, series[5].Key)
	}

	// June holds trip t1, July holds t2 and t3
	if series[4].Bruto != 2200 {
		t.Fatalf("2025-06 bruto = %v, want 2200", series[4].Bruto)
	}
	if series[5].Bruto != 1100 {
		t.Fatalf("2025-07 bruto = %v, want 1100", series[5].Bruto)
	}
	// empty months are zero-filled, not omitted
	if series[1].Bruto != 0 {
		t.Fatalf("empty month bruto = %v, want 0", series[1].Bruto)
	}
}
