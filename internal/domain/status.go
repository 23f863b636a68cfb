package domain

// ValidStatusTransition enforces the payment lifecycle. A status can always
// stay where it is; Pago never moves back.
func ValidStatusTransition(from, to TripStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusPendente:
		return to == StatusParcial || to == StatusPago
	case StatusParcial:
		return to == StatusPago
	case StatusPago:
		return false
	default:
		return false
	}
}

// ParseTripStatus validates user-supplied status strings.
func ParseTripStatus(s string) (TripStatus, error) {
	switch TripStatus(s) {
	case StatusPendente, StatusParcial, StatusPago:
		return TripStatus(s), nil
	}
	return "", ValidationError{Field: "status", Msg: "status deve ser Pendente, Parcial ou Pago"}
}
