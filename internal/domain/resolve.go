package domain

// UnknownKey groups aggregation rows whose vehicle/driver/shipper reference
// could not be resolved. They count toward totals but never rank.
const UnknownKey = "unk"

// VehicleRef is the result of resolving a trip's vehicle id. When the id is
// missing from the lookup collection, Vehicle holds the placeholder entity
// and Resolved is false; aggregation must not crash on either shape.
type VehicleRef struct {
	Vehicle  Vehicle
	Resolved bool
}

type DriverRef struct {
	Driver   Driver
	Resolved bool
}

type ShipperRef struct {
	Shipper  Shipper
	Resolved bool
}

// PlaceholderVehicle substitutes a missing vehicle reference. The split
// factor of 100 keeps LucroSociety equal to LucroLiquidoReal.
func PlaceholderVehicle() Vehicle {
	return Vehicle{Plate: "GENERIC", Type: VehicleProprio, SocietySplitFactor: 100}
}

func PlaceholderDriver() Driver {
	return Driver{Name: "Desconhecido"}
}

func PlaceholderShipper() Shipper {
	return Shipper{Name: "Desconhecido"}
}

func ResolveVehicle(vehicles map[string]Vehicle, id string) VehicleRef {
	if v, ok := vehicles[id]; ok {
		return VehicleRef{Vehicle: v, Resolved: true}
	}
	return VehicleRef{Vehicle: PlaceholderVehicle()}
}

func ResolveDriver(drivers map[string]Driver, id string) DriverRef {
	if d, ok := drivers[id]; ok {
		return DriverRef{Driver: d, Resolved: true}
	}
	return DriverRef{Driver: PlaceholderDriver()}
}

func ResolveShipper(shippers map[string]Shipper, id string) ShipperRef {
	if s, ok := shippers[id]; ok {
		return ShipperRef{Shipper: s, Resolved: true}
	}
	return ShipperRef{Shipper: PlaceholderShipper()}
}

// Key returns the aggregation key for the reference: the vehicle id when
// resolved, the unknown sentinel otherwise.
func (r VehicleRef) Key() string {
	if r.Resolved {
		return r.Vehicle.ID
	}
	return UnknownKey
}

func (r DriverRef) Key() string {
	if r.Resolved {
		return r.Driver.ID
	}
	return UnknownKey
}

func (r ShipperRef) Key() string {
	if r.Resolved {
		return r.Shipper.ID
	}
	return UnknownKey
}
