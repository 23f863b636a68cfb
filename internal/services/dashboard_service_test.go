package services

import (
	"testing"
	"time"

	"frotalog/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDashboardEndToEnd(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("SELECT (.+) FROM trips").WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "origin", "destination",
			"vehicle_id", "driver_id", "shipper_id",
			"departure_date", "return_date", "receipt_date",
			"frete_seco", "diarias", "adiantamento",
			"combustivel", "liters_diesel", "outras_despesas",
			"total_km", "status",
		}).AddRow(
			"t1", "u1", "Sorriso", "Santos",
			"v1", "d1", "s1",
			"2025-06-10", "2025-06-14", "",
			2000.0, 200.0, 500.0,
			300.0, 100.0, 50.0,
			1100.0, "Pago",
		))

	mock.ExpectQuery("SELECT (.+) FROM vehicles").WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "plate", "model", "year",
			"type", "society_split_factor", "total_km", "last_maintenance_km",
		}).AddRow("v1", "u1", "ABC1D23", "Scania R450", 2019, "Próprio", 100.0, 250000.0, 240000.0))

	mock.ExpectQuery("SELECT (.+) FROM drivers").WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "name", "phone", "comm_frete", "comm_diaria",
		}).AddRow("d1", "u1", "João", "", nil, nil))

	mock.ExpectQuery("SELECT (.+) FROM shippers").WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "name", "avg_payment_days",
		}).AddRow("s1", "u1", "AgroLog", 28))

	mock.ExpectQuery("SELECT (.+) FROM profiles").WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{
			"perc_mot_frete", "perc_mot_diaria", "show_society_column", "enable_tracking",
		}).AddRow(10.0, 30.0, true, true))

	mock.ExpectQuery("SELECT (.+) FROM maintenance_costs").WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"vehicle_id", "total"}).AddRow("v1", 750.0))

	svc := DashboardService{
		TripRepo:        repositories.TripRepository{DB: db},
		VehicleRepo:     repositories.VehicleRepository{DB: db},
		DriverRepo:      repositories.DriverRepository{DB: db},
		ShipperRepo:     repositories.ShipperRepository{DB: db},
		ProfileRepo:     repositories.ProfileRepository{DB: db},
		MaintenanceRepo: repositories.MaintenanceRepository{DB: db},
		Now:             func() time.Time { return time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC) },
	}

	view, err := svc.Dashboard("u1")
	if err != nil {
		t.Fatalf("Dashboard error: %v", err)
	}

	if view.TripCount != 1 {
		t.Fatalf("TripCount = %d, want 1", view.TripCount)
	}
	if view.TotalBruto != 2200 {
		t.Fatalf("TotalBruto = %v, want 2200", view.TotalBruto)
	}
	// comissao 260, combustivel 300, outras 50 -> lucro 1590
	if view.TotalLucro != 1590 {
		t.Fatalf("TotalLucro = %v, want 1590", view.TotalLucro)
	}
	if len(view.TopDriversByLucro) != 1 || view.TopDriversByLucro[0].Name != "João" {
		t.Fatalf("unexpected driver ranking: %+v", view.TopDriversByLucro)
	}
	if view.TopVehicles[0].Maintenance != 750 {
		t.Fatalf("vehicle maintenance = %v, want 750", view.TopVehicles[0].Maintenance)
	}
	if len(view.Monthly) != 6 {
		t.Fatalf("monthly series length = %d, want 6", len(view.Monthly))
	}
	if view.Monthly[5].Key != "2025-07" || view.Monthly[4].Key != "2025-06" {
		t.Fatalf("monthly window wrong: %+v", view.Monthly)
	}
	if view.Monthly[4].Bruto != 2200 {
		t.Fatalf("June bruto = %v, want 2200", view.Monthly[4].Bruto)
	}
	if len(view.LossTrips) != 0 {
		t.Fatalf("no loss trips expected, got %d", len(view.LossTrips))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
