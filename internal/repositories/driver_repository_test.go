package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDriverRepositoryNullCommissionStaysNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM drivers").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "name", "phone", "comm_frete", "comm_diaria",
		}).AddRow("d1", "u1", "João", "65999990000", nil, nil))

	out, err := DriverRepository{DB: db}.ListByUser("u1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 driver, got %d", len(out))
	}
	if out[0].CustomCommission != nil {
		t.Fatalf("both columns NULL should leave CustomCommission nil, got %+v", out[0].CustomCommission)
	}
}

func TestDriverRepositoryPartialCommission(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM drivers").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "name", "phone", "comm_frete", "comm_diaria",
		}).AddRow("d1", "u1", "João", "", 20.0, nil).
			AddRow("d2", "u1", "Maria", "", 0.0, 0.0))

	out, err := DriverRepository{DB: db}.ListByUser("u1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 drivers, got %d", len(out))
	}

	cc := out[0].CustomCommission
	if cc == nil || cc.Frete == nil || *cc.Frete != 20 {
		t.Fatalf("comm_frete=20 should survive the round trip, got %+v", cc)
	}
	if cc.Diaria != nil {
		t.Fatalf("NULL comm_diaria must stay nil so the tenant default applies, got %v", *cc.Diaria)
	}

	// a stored zero is an explicit zero, not a missing value
	cc = out[1].CustomCommission
	if cc == nil || cc.Frete == nil || *cc.Frete != 0 || cc.Diaria == nil || *cc.Diaria != 0 {
		t.Fatalf("stored zeros must come back as explicit zeros, got %+v", cc)
	}
}

func TestProfileRepositoryDefaultsOnMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM profiles").
		WithArgs("fresh-tenant").
		WillReturnRows(sqlmock.NewRows([]string{"perc_mot_frete"}))

	cfg, err := ProfileRepository{DB: db}.GetConfig("fresh-tenant")
	if err != nil {
		t.Fatalf("GetConfig error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("missing row should yield defaults, got %+v", cfg)
	}
	if cfg.PercMotFrete != 10 || cfg.PercMotDiaria != 30 {
		t.Fatalf("default percentages wrong: %+v", cfg)
	}
}
