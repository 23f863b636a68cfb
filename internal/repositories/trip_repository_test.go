package repositories

import (
	"testing"

	"frotalog/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func tripRow(id, userID string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "origin", "destination",
		"vehicle_id", "driver_id", "shipper_id",
		"departure_date", "return_date", "receipt_date",
		"frete_seco", "diarias", "adiantamento",
		"combustivel", "liters_diesel", "outras_despesas",
		"total_km", "status",
	}).AddRow(
		id, userID, "Sorriso", "Santos",
		"v1", "d1", "s1",
		"2025-06-10", "2025-06-14", "",
		2000.0, 200.0, 500.0,
		300.0, 100.0, 50.0,
		1100.0, "Pago",
	)
}

func TestTripRepositoryListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM trips").
		WithArgs("u1").
		WillReturnRows(tripRow("t1", "u1"))

	repo := TripRepository{DB: db}
	out, err := repo.ListByUser("u1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 trip, got %d", len(out))
	}
	if out[0].Destination != "Santos" || out[0].FreteSeco != 2000 {
		t.Fatalf("unexpected trip: %+v", out[0])
	}
	if out[0].Status != domain.StatusPago {
		t.Fatalf("status = %s, want Pago", out[0].Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripRepositoryGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM trips").
		WithArgs("u1", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = TripRepository{DB: db}.GetByID("u1", "missing")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripRepositoryUpdateStatusNoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE trips SET status").
		WithArgs("Pago", "u1", "t1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = TripRepository{DB: db}.UpdateStatus("u1", "t1", domain.StatusPago)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError for zero affected rows, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripRepositoryInsertBindsAllColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	trip := domain.Trip{
		ID: "t1", UserID: "u1", Origin: "Sorriso", Destination: "Santos",
		VehicleID: "v1", DriverID: "d1", ShipperID: "s1",
		DepartureDate: "2025-06-10", ReturnDate: "2025-06-14",
		FreteSeco: 2000, Diarias: 200, Adiantamento: 500,
		Combustivel: 300, LitersDiesel: 100, OutrasDespesas: 50,
		TotalKm: 1100, Status: domain.StatusPendente,
	}

	mock.ExpectExec("INSERT INTO trips").
		WithArgs(
			trip.ID, trip.UserID, trip.Origin, trip.Destination,
			trip.VehicleID, trip.DriverID, trip.ShipperID,
			trip.DepartureDate, trip.ReturnDate, trip.ReceiptDate,
			trip.FreteSeco, trip.Diarias, trip.Adiantamento,
			trip.Combustivel, trip.LitersDiesel, trip.OutrasDespesas,
			trip.TotalKm, string(trip.Status),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := (TripRepository{DB: db}).Insert(trip); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
