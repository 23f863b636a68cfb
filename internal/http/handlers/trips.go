package handlers

import (
	"net/http"
	"strings"

	"frotalog/internal/domain"
	"frotalog/internal/http/middleware"
	"frotalog/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TripWithFinance mirrors the list/detail payload: each trip travels with
// its freshly computed finance so the frontend never recalculates.
type TripWithFinance struct {
	Trip    domain.Trip             `json:"trip"`
	Finance domain.FinancialResults `json:"finance"`
}

func tripWithFinance(trip domain.Trip, vehicles map[string]domain.Vehicle, drivers map[string]domain.Driver, cfg domain.ProfileConfig) TripWithFinance {
	vref := domain.ResolveVehicle(vehicles, trip.VehicleID)
	dref := domain.ResolveDriver(drivers, trip.DriverID)
	return TripWithFinance{
		Trip:    trip,
		Finance: domain.CalculateTripFinance(trip, vref.Vehicle, dref.Driver, cfg),
	}
}

func tripLookups(c *gin.Context, userID string) (map[string]domain.Vehicle, map[string]domain.Driver, domain.ProfileConfig, bool) {
	vehicles, err := repositories.VehicleRepository{}.MapByID(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao carregar veículos", err)
		return nil, nil, domain.ProfileConfig{}, false
	}
	drivers, err := repositories.DriverRepository{}.MapByID(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao carregar motoristas", err)
		return nil, nil, domain.ProfileConfig{}, false
	}
	cfg, err := repositories.ProfileRepository{}.GetConfig(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao carregar configurações", err)
		return nil, nil, domain.ProfileConfig{}, false
	}
	return vehicles, drivers, cfg, true
}

// GET /api/trips
func GetTrips(c *gin.Context) {
	userID := middleware.GetUserID(c)

	trips, err := repositories.TripRepository{}.ListByUser(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao listar viagens", err)
		return
	}

	vehicles, drivers, cfg, ok := tripLookups(c, userID)
	if !ok {
		return
	}

	out := make([]TripWithFinance, 0, len(trips))
	for _, t := range trips {
		out = append(out, tripWithFinance(t, vehicles, drivers, cfg))
	}
	c.JSON(http.StatusOK, out)
}

func validateTrip(t *domain.Trip) error {
	t.Origin = strings.TrimSpace(t.Origin)
	t.Destination = strings.TrimSpace(t.Destination)
	if t.Destination == "" {
		return domain.ValidationError{Field: "destination", Msg: "obrigatório"}
	}
	if t.DepartureDate == "" {
		return domain.ValidationError{Field: "departureDate", Msg: "obrigatório"}
	}
	if t.Status == "" {
		t.Status = domain.StatusPendente
	} else if _, err := domain.ParseTripStatus(string(t.Status)); err != nil {
		return err
	}
	return nil
}

// POST /api/trips
func CreateTrip(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var t domain.Trip
	if !BindJSONOrError(c, &t) {
		return
	}
	if err := validateTrip(&t); err != nil {
		RespondDomainError(c, err)
		return
	}

	t.ID = uuid.NewString()
	t.UserID = userID

	if err := (repositories.TripRepository{}).Insert(t); err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao salvar viagem", err)
		return
	}

	vehicles, drivers, cfg, ok := tripLookups(c, userID)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, tripWithFinance(t, vehicles, drivers, cfg))
}

// PUT /api/trips/:id
func UpdateTrip(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		RespondError(c, http.StatusBadRequest, "id inválido", nil)
		return
	}

	var t domain.Trip
	if !BindJSONOrError(c, &t) {
		return
	}
	if err := validateTrip(&t); err != nil {
		RespondDomainError(c, err)
		return
	}

	t.ID = id
	t.UserID = userID

	if err := (repositories.TripRepository{}).Update(t); err != nil {
		RespondDomainError(c, err)
		return
	}

	vehicles, drivers, cfg, ok := tripLookups(c, userID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, tripWithFinance(t, vehicles, drivers, cfg))
}

type statusRequest struct {
	Status string `json:"status"`
}

// PUT /api/trips/:id/status
func UpdateTripStatus(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := strings.TrimSpace(c.Param("id"))

	var req statusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	next, err := domain.ParseTripStatus(req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	repo := repositories.TripRepository{}
	trip, err := repo.GetByID(userID, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if !domain.ValidStatusTransition(trip.Status, next) {
		RespondDomainError(c, domain.ConflictError{
			Resource: "trip",
			Msg:      "transição de status inválida: " + string(trip.Status) + " -> " + string(next),
		})
		return
	}

	if err := repo.UpdateStatus(userID, id, next); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "status": next})
}

// DELETE /api/trips/:id
func DeleteTrip(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := strings.TrimSpace(c.Param("id"))

	if err := (repositories.TripRepository{}).Delete(userID, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
