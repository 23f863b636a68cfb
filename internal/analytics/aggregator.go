package analytics

import (
	"strings"

	"frotalog/internal/domain"
	"frotalog/internal/utils"
)

// Snapshot is the in-memory input of one aggregation run: the tenant's trips
// plus id-keyed lookup collections. Aggregation never mutates it, so running
// the same snapshot twice yields identical output.
type Snapshot struct {
	Trips    []domain.Trip
	Vehicles map[string]domain.Vehicle
	Drivers  map[string]domain.Driver
	Shippers map[string]domain.Shipper
	Config   domain.ProfileConfig

	// MaintenanceByVehicle carries externally sourced maintenance cost sums.
	MaintenanceByVehicle map[string]float64
}

// TripResult pairs a trip with its computed finance and resolved keys.
type TripResult struct {
	Trip       domain.Trip             `json:"trip"`
	Finance    domain.FinancialResults `json:"finance"`
	VehicleKey string                  `json:"vehicleKey"`
	DriverKey  string                  `json:"driverKey"`
	ShipperKey string                  `json:"shipperKey"`
}

// EntityTotals accumulates per-driver or per-vehicle running sums.
type EntityTotals struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Lucro       float64 `json:"lucro"`
	Bruto       float64 `json:"bruto"`
	Comissao    float64 `json:"comissao"`
	Km          float64 `json:"km"`
	Liters      float64 `json:"liters"`
	Maintenance float64 `json:"maintenance"`
	Trips       int     `json:"trips"`
}

type RouteTotals struct {
	Key         string  `json:"key"`
	Destination string  `json:"destination"`
	Lucro       float64 `json:"lucro"`
	Bruto       float64 `json:"bruto"`
	Km          float64 `json:"km"`
	Trips       int     `json:"trips"`
}

type ShipperTotals struct {
	Key   string  `json:"key"`
	Name  string  `json:"name"`
	Lucro float64 `json:"lucro"`
	Bruto float64 `json:"bruto"`
	Trips int     `json:"trips"`
}

type MonthTotals struct {
	Key   string  `json:"month"`
	Lucro float64 `json:"lucro"`
	Bruto float64 `json:"bruto"`
}

// Summary is the aggregated view of one snapshot. Entity slices keep
// first-seen order; unresolved references accumulate under the "unk" key and
// are counted in grand totals but excluded from rankings.
type Summary struct {
	TotalBruto    float64 `json:"totalBruto"`
	TotalLucro    float64 `json:"totalLucro"`
	TotalComissao float64 `json:"totalComissao"`
	TotalKm       float64 `json:"totalKm"`

	Results   []TripResult `json:"results"`
	LossTrips []TripResult `json:"lossTrips"`

	Drivers  []EntityTotals  `json:"drivers"`
	Vehicles []EntityTotals  `json:"vehicles"`
	Routes   []RouteTotals   `json:"routes"`
	Shippers []ShipperTotals `json:"shippers"`

	Monthly map[string]MonthTotals `json:"monthly"`
}

// NormalizeDestination folds case and whitespace so "São Paulo " and
// "são  paulo" land on the same route key.
func NormalizeDestination(s string) string {
	return strings.ToLower(utils.NormalizeSpace(s))
}

// Aggregate folds CalculateTripFinance over the snapshot. Trips with
// unresolvable references are computed against placeholder entities and
// never dropped.
func Aggregate(s Snapshot) Summary {
	sum := Summary{Monthly: map[string]MonthTotals{}}

	driverIdx := map[string]int{}
	vehicleIdx := map[string]int{}
	routeIdx := map[string]int{}
	shipperIdx := map[string]int{}

	for _, trip := range s.Trips {
		vref := domain.ResolveVehicle(s.Vehicles, trip.VehicleID)
		dref := domain.ResolveDriver(s.Drivers, trip.DriverID)
		sref := domain.ResolveShipper(s.Shippers, trip.ShipperID)

		fin := domain.CalculateTripFinance(trip, vref.Vehicle, dref.Driver, s.Config)
		res := TripResult{
			Trip:       trip,
			Finance:    fin,
			VehicleKey: vref.Key(),
			DriverKey:  dref.Key(),
			ShipperKey: sref.Key(),
		}
		sum.Results = append(sum.Results, res)

		sum.TotalBruto += fin.TotalBruto
		sum.TotalLucro += fin.LucroLiquidoReal
		sum.TotalComissao += fin.ComissaoMotorista
		sum.TotalKm += trip.TotalKm

		if fin.LucroLiquidoReal < 0 {
			sum.LossTrips = append(sum.LossTrips, res)
		}

		di, ok := driverIdx[res.DriverKey]
		if !ok {
			di = len(sum.Drivers)
			driverIdx[res.DriverKey] = di
			sum.Drivers = append(sum.Drivers, EntityTotals{Key: res.DriverKey, Name: dref.Driver.Name})
		}
		sum.Drivers[di].Lucro += fin.LucroLiquidoReal
		sum.Drivers[di].Bruto += fin.TotalBruto
		sum.Drivers[di].Comissao += fin.ComissaoMotorista
		sum.Drivers[di].Km += trip.TotalKm
		sum.Drivers[di].Trips++

		vi, ok := vehicleIdx[res.VehicleKey]
		if !ok {
			vi = len(sum.Vehicles)
			vehicleIdx[res.VehicleKey] = vi
			sum.Vehicles = append(sum.Vehicles, EntityTotals{
				Key:         res.VehicleKey,
				Name:        vref.Vehicle.Plate,
				Maintenance: s.MaintenanceByVehicle[res.VehicleKey],
			})
		}
		sum.Vehicles[vi].Lucro += fin.LucroLiquidoReal
		sum.Vehicles[vi].Bruto += fin.TotalBruto
		sum.Vehicles[vi].Comissao += fin.ComissaoMotorista
		sum.Vehicles[vi].Km += trip.TotalKm
		sum.Vehicles[vi].Liters += trip.LitersDiesel
		sum.Vehicles[vi].Trips++

		routeKey := NormalizeDestination(trip.Destination)
		ri, ok := routeIdx[routeKey]
		if !ok {
			ri = len(sum.Routes)
			routeIdx[routeKey] = ri
			// keep the first-seen raw spelling for display
			sum.Routes = append(sum.Routes, RouteTotals{Key: routeKey, Destination: trip.Destination})
		}
		sum.Routes[ri].Lucro += fin.LucroLiquidoReal
		sum.Routes[ri].Bruto += fin.TotalBruto
		sum.Routes[ri].Km += trip.TotalKm
		sum.Routes[ri].Trips++

		si, ok := shipperIdx[res.ShipperKey]
		if !ok {
			si = len(sum.Shippers)
			shipperIdx[res.ShipperKey] = si
			sum.Shippers = append(sum.Shippers, ShipperTotals{Key: res.ShipperKey, Name: sref.Shipper.Name})
		}
		sum.Shippers[si].Lucro += fin.LucroLiquidoReal
		sum.Shippers[si].Bruto += fin.TotalBruto
		sum.Shippers[si].Trips++

		if mk := monthOf(trip.DepartureDate); mk != "" {
			mt := sum.Monthly[mk]
			mt.Key = mk
			mt.Lucro += fin.LucroLiquidoReal
			mt.Bruto += fin.TotalBruto
			sum.Monthly[mk] = mt
		}
	}

	return sum
}

// monthOf slices the YYYY-MM bucket from a YYYY-MM-DD date string. Dates are
// compared as strings across the app, so no timezone handling applies.
func monthOf(date string) string {
	date = strings.TrimSpace(date)
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}
