package services

import (
	"testing"
	"time"

	"frotalog/internal/domain"
	"frotalog/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestTrackingRecordPositionsEmpty(t *testing.T) {
	svc := TrackingService{}
	out, err := svc.RecordPositions("u1", nil)
	if err != nil {
		t.Fatalf("empty batch should be a no-op, got %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no points, got %d", len(out))
	}
}

func TestTrackingRecordPositionsRequiresDriver(t *testing.T) {
	svc := TrackingService{}
	_, err := svc.RecordPositions("u1", []IncomingPoint{{Latitude: -15.6, Longitude: -56.1}})
	if !domain.IsValidation(err) {
		t.Fatalf("missing driverId should be a validation error, got %v", err)
	}
}

func TestTrackingRecordPositionsPersists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectPrepare("INSERT INTO tracking_points").
		ExpectExec().
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	fixed := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	svc := TrackingService{
		TrackingRepo: repositories.TrackingRepository{DB: db},
		Now:          func() time.Time { return fixed },
	}

	out, err := svc.RecordPositions("u1", []IncomingPoint{
		{DriverID: "d1", Latitude: -15.6, Longitude: -56.1, SpeedKmh: 82},
	})
	if err != nil {
		t.Fatalf("RecordPositions error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 point, got %d", len(out))
	}
	if out[0].ID == "" {
		t.Fatal("point id should be assigned")
	}
	if out[0].UserID != "u1" {
		t.Fatalf("point user = %s, want u1", out[0].UserID)
	}
	if out[0].RecordedAt != "2025-07-01 12:00:00" {
		t.Fatalf("recordedAt = %q, want the injected clock", out[0].RecordedAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
