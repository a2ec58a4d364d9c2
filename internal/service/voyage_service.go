package service

import (
	"encoding/json"
	"errors"
	"time"

	"fleetcommander/internal/contract"
	"fleetcommander/internal/domain/entity"
	"fleetcommander/internal/domain/sqlite/repository"
	"fleetcommander/internal/navigation"
	"fleetcommander/internal/utils"
	"fleetcommander/internal/utils/apierror"
	"fleetcommander/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type VoyageRepository interface {
	Depart(ship *entity.Ship, rec *entity.VoyageRecord) error
	CompleteArrival(ship *entity.Ship) error
}

// CrewChecker verifies the crewing preconditions for a departure.
type CrewChecker interface {
	CanDepart(ship *entity.Ship) apierror.ErrorResponse
}

type DefaultVoyageService struct {
	VoyageRepo VoyageRepository
	ShipRepo   ShipRepository
	PortRepo   PortRepository
	CargoRepo  CargoRepository
	CrewRepo   CrewRepository
	Crew       CrewChecker
	Weather    WeatherRepository
	Validate   *validator.Validate
	Activity   *ActivityRecorder
}

func NewVoyageService(
	voyageRepo VoyageRepository,
	shipRepo ShipRepository,
	portRepo PortRepository,
	cargoRepo CargoRepository,
	crewRepo CrewRepository,
	crew CrewChecker,
	weather WeatherRepository,
	validate *validator.Validate,
	activity *ActivityRecorder,
) *DefaultVoyageService {
	return &DefaultVoyageService{
		VoyageRepo: voyageRepo,
		ShipRepo:   shipRepo,
		PortRepo:   portRepo,
		CargoRepo:  cargoRepo,
		CrewRepo:   crewRepo,
		Crew:       crew,
		Weather:    weather,
		Validate:   validate,
		Activity:   activity,
	}
}

// Depart sends a ship on a voyage. All voyage numbers are computed here from
// the port coordinates and the effective speed; the ship row, the voyage
// record and the cargo transitions are committed in one transaction.
func (s *DefaultVoyageService) Depart(shipID int64, req *contract.DepartRequest) (*contract.DepartResponse, apierror.ErrorResponse) {
	ship, err := s.ShipRepo.FindByID(shipID)
	if err != nil {
		log.Errorf("failed to fetch ship: %v", err)
		return nil, apierror.InternalServerError
	}
	if ship == nil {
		return nil, apierror.NewNotFound("ship", shipID)
	}
	return s.DepartShip(ship, req)
}

// DepartShip runs the departure for an already-loaded ship. Pending field
// edits on the struct ride along in the departure transaction, so a rejected
// departure persists nothing. Precondition order: already departed, then
// crewing, then destination.
func (s *DefaultVoyageService) DepartShip(ship *entity.Ship, req *contract.DepartRequest) (*contract.DepartResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if ship.OnVoyage() {
		return nil, apierror.NewConflict("ship %q is already on a voyage", ship.Name)
	}
	if apierr := s.Crew.CanDepart(ship); apierr != nil {
		return nil, apierr
	}
	if ship.PortID == 0 {
		return nil, apierror.NewConflict("ship %q is not moored at a port", ship.Name)
	}
	if req.DestinationPortID == ship.PortID {
		return nil, apierror.NewConflict("ship %q is already at port %d", ship.Name, req.DestinationPortID)
	}

	origin, err := s.PortRepo.FindByID(ship.PortID)
	if err != nil {
		log.Errorf("failed to fetch origin port: %v", err)
		return nil, apierror.InternalServerError
	}
	if origin == nil {
		return nil, apierror.NewNotFound("port", ship.PortID)
	}

	dest, err := s.PortRepo.FindByID(req.DestinationPortID)
	if err != nil {
		log.Errorf("failed to fetch destination port: %v", err)
		return nil, apierror.InternalServerError
	}
	if dest == nil {
		return nil, apierror.NewNotFound("port", req.DestinationPortID)
	}

	departedAt := utils.NowUTC()
	if req.DepartedAt != "" {
		departedAt, _ = utils.ParseTime(req.DepartedAt)
	}

	speed := ship.SpeedKnots
	if req.SpeedKnots > 0 {
		speed = req.SpeedKnots
	}

	distance := navigation.Haversine(origin.Lat, origin.Lon, dest.Lat, dest.Lon)
	hours, err := navigation.TravelHours(distance, speed)
	if err != nil {
		return nil, apierror.NewValidation("ship %q has no usable speed", ship.Name)
	}
	eta := navigation.ETA(departedAt, hours)

	rec := &entity.VoyageRecord{
		ID:                   uid.Generate(),
		Reference:            uuid.NewString(),
		ShipID:               ship.ID,
		FromPortID:           origin.ID,
		ToPortID:             dest.ID,
		DepartedAt:           utils.FormatTime(departedAt),
		PlannedDurationHours: hours,
		DistanceKm:           distance,
		CargoList:            s.cargoManifest(ship.ID),
		CrewList:             s.crewManifest(ship.ID),
		WeatherConditions:    s.originConditions(origin.ID),
	}

	// The ship's port_id holds the destination for the whole voyage; the
	// origin survives on the voyage record.
	ship.Status = entity.ShipStatusDeparted
	ship.PortID = dest.ID
	ship.DestinationPortID = dest.ID
	ship.DepartedAt = rec.DepartedAt
	ship.ETA = utils.FormatTime(eta)
	ship.VoyageDistanceKm = distance
	ship.SpeedKnots = speed

	if err := s.VoyageRepo.Depart(ship, rec); err != nil {
		if errors.Is(err, repository.ErrAlreadyDeparted) {
			return nil, apierror.NewConflict("ship %q is already on a voyage", ship.Name)
		}
		log.Errorf("failed to persist departure: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Activity.Info("voyage.departed", "ship", ship.ID,
		"ship %q departed %q for %q, %.0f km, eta %s", ship.Name, origin.Name, dest.Name, distance, ship.ETA)
	return &contract.DepartResponse{Ship: toShipResponse(ship), VoyageRef: rec.Reference}, nil
}

// ProcessArrivals docks every departed ship whose ETA has passed. Safe to call
// repeatedly: a docked ship drops out of the next sweep.
func (s *DefaultVoyageService) ProcessArrivals(now time.Time) (*contract.ProcessArrivalsResponse, apierror.ErrorResponse) {
	ships, err := s.ShipRepo.FindDeparted()
	if err != nil {
		log.Errorf("failed to fetch departed ships: %v", err)
		return nil, apierror.InternalServerError
	}

	processed := 0
	for _, ship := range ships {
		eta, ok := utils.ParseTime(ship.ETA)
		if !ok {
			log.Warnf("ship %d has unparseable eta %q, skipping", ship.ID, ship.ETA)
			s.Activity.Warn("voyage.bad_eta", "ship", ship.ID,
				"ship %q skipped by arrival sweep: bad eta %q", ship.Name, ship.ETA)
			continue
		}
		if eta.After(now) {
			continue
		}

		if err := s.VoyageRepo.CompleteArrival(ship); err != nil {
			log.Errorf("failed to complete arrival for ship %d: %v", ship.ID, err)
			continue
		}

		processed++
		s.Activity.Info("voyage.arrived", "ship", ship.ID,
			"ship %q arrived at port %d", ship.Name, ship.DestinationPortID)
	}

	return &contract.ProcessArrivalsResponse{Processed: processed}, nil
}

type crewManifestEntry struct {
	PersonID int64  `json:"person_id"`
	FullName string `json:"full_name"`
	Rank     string `json:"rank"`
}

type cargoManifestEntry struct {
	CargoID      int64   `json:"cargo_id"`
	Name         string  `json:"name"`
	WeightTonnes float64 `json:"weight_tonnes"`
}

// crewManifest snapshots the active crew as a JSON array. Manifest failures
// degrade to an empty list; they never block the departure.
func (s *DefaultVoyageService) crewManifest(shipID int64) string {
	members, err := s.CrewRepo.FindActiveMembersByShip(shipID)
	if err != nil {
		log.Errorf("failed to snapshot crew manifest: %v", err)
		return ""
	}

	entries := make([]crewManifestEntry, len(members))
	for i, m := range members {
		entries[i] = crewManifestEntry{
			PersonID: m.Person.ID,
			FullName: m.Person.FullName,
			Rank:     m.Person.Rank,
		}
	}
	return marshalManifest(entries)
}

func (s *DefaultVoyageService) cargoManifest(shipID int64) string {
	cargo, err := s.CargoRepo.FindByShip(shipID)
	if err != nil {
		log.Errorf("failed to snapshot cargo manifest: %v", err)
		return ""
	}

	entries := make([]cargoManifestEntry, 0, len(cargo))
	for _, c := range cargo {
		if c.Status != entity.CargoStatusLoaded {
			continue
		}
		entries = append(entries, cargoManifestEntry{CargoID: c.ID, Name: c.Name, WeightTonnes: c.WeightTonnes})
	}
	return marshalManifest(entries)
}

func (s *DefaultVoyageService) originConditions(portID int64) string {
	if s.Weather == nil {
		return ""
	}
	report, err := s.Weather.FindLatestByPort(portID)
	if err != nil || report == nil {
		return ""
	}
	return report.Conditions
}

func marshalManifest(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
