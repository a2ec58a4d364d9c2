package service

import (
	"testing"

	"fleetcommander/internal/domain/entity"
	"fleetcommander/internal/domain/sqlite"
	"fleetcommander/internal/domain/sqlite/repository"
	"fleetcommander/internal/utils/uid"
	"fleetcommander/internal/validators"

	"github.com/go-playground/validator/v10"
)

// testEnv wires every service against a fresh in-memory database.
type testEnv struct {
	Ports     *DefaultPortService
	Types     *DefaultShipTypeService
	Companies *DefaultCompanyService
	Ships     *DefaultShipService
	People    *DefaultPersonService
	Crew      *DefaultCrewService
	Voyages   *DefaultVoyageService
	Cargo     *DefaultCargoService
	Schedules *DefaultScheduleService
	Records   *DefaultVoyageRecordService
	Weather   *DefaultWeatherService

	ShipRepo   ShipRepository
	RecordRepo VoyageRecordRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	uid.Init(1)

	db, err := sqlite.Init(":memory:")
	if err != nil {
		t.Fatalf("failed to init database: %v", err)
	}

	validate := validator.New()
	_ = validate.RegisterValidation("timestamp", validators.Timestamp)
	_ = validate.RegisterValidation("clocktime", validators.ClockTime)
	_ = validate.RegisterValidation("shipstatus", validators.ShipStatus)
	_ = validate.RegisterValidation("rank", validators.Rank)
	_ = validate.RegisterValidation("typecode", validators.TypeCode)

	portRepo := repository.NewPortRepository(db)
	typeRepo := repository.NewShipTypeRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	shipRepo := repository.NewShipRepository(db)
	personRepo := repository.NewPersonRepository(db)
	crewRepo := repository.NewCrewRepository(db)
	cargoRepo := repository.NewCargoRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	recordRepo := repository.NewVoyageRecordRepository(db)
	voyageRepo := repository.NewVoyageRepository(db)
	weatherRepo := repository.NewWeatherRepository(db)
	logRepo := repository.NewActivityLogRepository(db)

	activity := NewActivityRecorder(logRepo)
	crewService := NewCrewService(crewRepo, personRepo, shipRepo, validate, activity)
	voyageService := NewVoyageService(voyageRepo, shipRepo, portRepo, cargoRepo, crewRepo, crewService, weatherRepo, validate, activity)

	return &testEnv{
		Ports:     NewPortService(portRepo, shipRepo, companyRepo, validate, activity),
		Types:     NewShipTypeService(typeRepo, shipRepo, validate, activity),
		Companies: NewCompanyService(companyRepo, portRepo, shipRepo, validate, activity),
		Ships:     NewShipService(shipRepo, crewRepo, cargoRepo, voyageService, validate, activity),
		People:    NewPersonService(personRepo, crewRepo, validate, activity),
		Crew:      crewService,
		Voyages:   voyageService,
		Cargo:     NewCargoService(cargoRepo, shipRepo, portRepo, validate, activity),
		Schedules: NewScheduleService(scheduleRepo, shipRepo, portRepo, validate, activity),
		Records:   NewVoyageRecordService(recordRepo, shipRepo, validate, activity),
		Weather:   NewWeatherService(weatherRepo, portRepo, validate, activity),

		ShipRepo:   shipRepo,
		RecordRepo: recordRepo,
	}
}

func (e *testEnv) mustShip(t *testing.T, ship *entity.Ship) *entity.Ship {
	t.Helper()
	if err := e.ShipRepo.Save(ship); err != nil {
		t.Fatalf("failed to seed ship: %v", err)
	}
	return ship
}
