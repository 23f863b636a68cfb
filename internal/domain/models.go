package domain

// TripStatus follows the payment lifecycle: Pendente -> Parcial -> Pago.
// Pago is terminal.
type TripStatus string

const (
	StatusPendente TripStatus = "Pendente"
	StatusParcial  TripStatus = "Parcial"
	StatusPago     TripStatus = "Pago"
)

// VehicleType distinguishes vehicles owned outright from profit-shared ones.
type VehicleType string

const (
	VehicleProprio   VehicleType = "Próprio"
	VehicleSociedade VehicleType = "Sociedade"
)

// Trip is an immutable snapshot of one logged freight trip. Monetary fields
// are raw float64 values; absent fields arrive as zero from the repository.
type Trip struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`

	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	VehicleID string `json:"vehicleId"`
	DriverID  string `json:"driverId"`
	ShipperID string `json:"shipperId"`

	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate"`
	ReceiptDate   string `json:"receiptDate"`

	FreteSeco      float64 `json:"freteSeco"`
	Diarias        float64 `json:"diarias"`
	Adiantamento   float64 `json:"adiantamento"`
	Combustivel    float64 `json:"combustivel"`
	LitersDiesel   float64 `json:"litersDiesel"`
	OutrasDespesas float64 `json:"outrasDespesas"`

	TotalKm float64 `json:"totalKm"`

	Status TripStatus `json:"status"`
}

type Vehicle struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`

	Plate string `json:"plate"`
	Model string `json:"model"`
	Year  int    `json:"year"`

	Type               VehicleType `json:"type"`
	SocietySplitFactor float64     `json:"societySplitFactor"`

	TotalKm           float64 `json:"totalKm"`
	LastMaintenanceKm float64 `json:"lastMaintenanceKm"`
}

// CustomCommission overrides the tenant default percentages. Fields are
// pointers: a nil field falls back to the profile default, zero means zero.
type CustomCommission struct {
	Frete  *float64 `json:"frete,omitempty"`
	Diaria *float64 `json:"diaria,omitempty"`
}

type Driver struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`

	Name  string `json:"name"`
	Phone string `json:"phone"`

	CustomCommission *CustomCommission `json:"customCommission,omitempty"`
}

type Shipper struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`

	Name           string `json:"name"`
	AvgPaymentDays int    `json:"avgPaymentDays"`
}

// ProfileConfig holds per-tenant settings consumed by the finance engine.
type ProfileConfig struct {
	PercMotFrete  float64 `json:"percMotFrete"`
	PercMotDiaria float64 `json:"percMotDiaria"`

	ShowSocietyColumn bool `json:"showSocietyColumn"`
	EnableTracking    bool `json:"enableTracking"`
}

type Profile struct {
	UserID string        `json:"userId"`
	Config ProfileConfig `json:"config"`
}

// FinancialResults is derived, never persisted, and produced fresh on every
// computation. It is a pure function of Trip, Vehicle, Driver and config.
type FinancialResults struct {
	TotalBruto        float64 `json:"totalBruto"`
	ComissaoMotorista float64 `json:"comissaoMotorista"`
	SaldoAReceber     float64 `json:"saldoAReceber"`
	LucroLiquidoReal  float64 `json:"lucroLiquidoReal"`
	LucroSociety      float64 `json:"lucroSociety"`
}

// MaintenanceCost is an externally sourced per-vehicle cost record. It feeds
// the vehicle aggregation but never the per-trip finance calculation.
type MaintenanceCost struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	VehicleID   string  `json:"vehicleId"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Odometer    float64 `json:"odometer"`
}

// TrackingPoint is one GPS sample ingested from the driver companion app.
type TrackingPoint struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	DriverID   string  `json:"driverId"`
	TripID     string  `json:"tripId,omitempty"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	SpeedKmh   float64 `json:"speedKmh"`
	RecordedAt string  `json:"recordedAt"`
}

// Subscription tracks the tenant's billing state, driven by provider webhooks.
type Subscription struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	Plan       string `json:"plan"`
	Status     string `json:"status"`
	ExternalID string `json:"externalId"`
	RenewsAt   string `json:"renewsAt"`
}
