package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"fleetcommander/internal/domain/sqlite"
	"fleetcommander/internal/domain/sqlite/repository"
	"fleetcommander/internal/http/handler"
	appmiddleware "fleetcommander/internal/http/middleware"
	"fleetcommander/internal/infrastructure/openweather"
	"fleetcommander/internal/service"
	"fleetcommander/internal/service/jobs"
	"fleetcommander/internal/utils/uid"
	"fleetcommander/internal/validators"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const (
	defaultDBPath      = "fleet.db"
	defaultAddr        = ":7070"
	defaultExportToken = "fleet-export-2025"

	arrivalSweepInterval = 1 * time.Minute
	weatherSweepInterval = 30 * time.Minute
)

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads from .env, absent in containers where vars come preset
	if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	uid.Init(machineID())

	db, err := sqlite.Init(envOr("DB_PATH", defaultDBPath))
	if err != nil {
		panic(err)
	}

	// Getting repos
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
	exportRepo := repository.NewExportRepository(db)

	// Getting services
	activity := service.NewActivityRecorder(logRepo)
	portService := service.NewPortService(portRepo, shipRepo, companyRepo, validate, activity)
	typeService := service.NewShipTypeService(typeRepo, shipRepo, validate, activity)
	companyService := service.NewCompanyService(companyRepo, portRepo, shipRepo, validate, activity)
	personService := service.NewPersonService(personRepo, crewRepo, validate, activity)
	crewService := service.NewCrewService(crewRepo, personRepo, shipRepo, validate, activity)
	voyageService := service.NewVoyageService(voyageRepo, shipRepo, portRepo, cargoRepo, crewRepo, crewService, weatherRepo, validate, activity)
	shipService := service.NewShipService(shipRepo, crewRepo, cargoRepo, voyageService, validate, activity)
	cargoService := service.NewCargoService(cargoRepo, shipRepo, portRepo, validate, activity)
	scheduleService := service.NewScheduleService(scheduleRepo, shipRepo, portRepo, validate, activity)
	recordService := service.NewVoyageRecordService(recordRepo, shipRepo, validate, activity)
	weatherService := service.NewWeatherService(weatherRepo, portRepo, validate, activity)
	logService := service.NewLogService(logRepo)
	exportService := service.NewExportService(exportRepo, activity)

	// Getting handlers
	portRoutes := handler.NewPortDefault(portService)
	typeRoutes := handler.NewShipTypeDefault(typeService)
	companyRoutes := handler.NewCompanyDefault(companyService)
	shipRoutes := handler.NewShipDefault(shipService, voyageService)
	personRoutes := handler.NewPersonDefault(personService, crewService)
	crewRoutes := handler.NewCrewDefault(crewService)
	cargoRoutes := handler.NewCargoDefault(cargoService)
	scheduleRoutes := handler.NewScheduleDefault(scheduleService)
	voyageRoutes := handler.NewVoyageDefault(recordService)
	weatherRoutes := handler.NewWeatherDefault(weatherService)
	logRoutes := handler.NewLogDefault(logService, exportService)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))

	// Ports
	e.GET("/api/ports", portRoutes.GetPorts)
	e.GET("/api/ports/:id", portRoutes.GetPort)
	e.POST("/api/ports", portRoutes.CreatePort)
	e.PUT("/api/ports/:id", portRoutes.UpdatePort)
	e.DELETE("/api/ports/:id", portRoutes.DeletePort)
	e.GET("/api/ports/:id/weather", weatherRoutes.GetPortWeather)

	// Ship types
	e.GET("/api/ship-types", typeRoutes.GetShipTypes)
	e.GET("/api/ship-types/:id", typeRoutes.GetShipType)
	e.POST("/api/ship-types", typeRoutes.CreateShipType)
	e.PUT("/api/ship-types/:id", typeRoutes.UpdateShipType)
	e.DELETE("/api/ship-types/:id", typeRoutes.DeleteShipType)

	// Companies
	e.GET("/api/companies", companyRoutes.GetCompanies)
	e.GET("/api/companies/:id", companyRoutes.GetCompany)
	e.POST("/api/companies", companyRoutes.CreateCompany)
	e.PUT("/api/companies/:id", companyRoutes.UpdateCompany)
	e.DELETE("/api/companies/:id", companyRoutes.DeleteCompany)
	e.GET("/api/companies/:id/ports", companyRoutes.GetCompanyPorts)
	e.POST("/api/companies/:id/ports", companyRoutes.AddCompanyPort)
	e.DELETE("/api/companies/:id/ports/:portId", companyRoutes.RemoveCompanyPort)
	e.GET("/api/companies/:id/ships", companyRoutes.GetCompanyShips)

	// Ships
	e.GET("/api/ships", shipRoutes.GetShips)
	e.GET("/api/ships/:id", shipRoutes.GetShip)
	e.POST("/api/ships", shipRoutes.CreateShip)
	e.PUT("/api/ships/:id", shipRoutes.UpdateShip)
	e.DELETE("/api/ships/:id", shipRoutes.DeleteShip)
	e.POST("/api/ships/:id/depart", shipRoutes.DepartShip)
	e.POST("/api/ships/process-arrivals", shipRoutes.ProcessArrivals)
	e.GET("/api/ships/:id/crew", crewRoutes.GetShipCrew)

	// People and crewing
	e.GET("/api/people", personRoutes.GetPeople)
	e.GET("/api/people/:id", personRoutes.GetPerson)
	e.POST("/api/people", personRoutes.CreatePerson)
	e.PUT("/api/people/:id", personRoutes.UpdatePerson)
	e.DELETE("/api/people/:id", personRoutes.DeletePerson)
	e.GET("/api/people/:id/assignment", personRoutes.GetAssignment)
	e.POST("/api/crew/assign", crewRoutes.Assign)
	e.POST("/api/crew/end", crewRoutes.EndAssignment)

	// Cargo
	e.GET("/api/cargo", cargoRoutes.GetCargo)
	e.GET("/api/cargo/:id", cargoRoutes.GetCargoItem)
	e.POST("/api/cargo", cargoRoutes.CreateCargo)
	e.PUT("/api/cargo/:id", cargoRoutes.UpdateCargo)
	e.DELETE("/api/cargo/:id", cargoRoutes.DeleteCargo)

	// Schedules
	e.GET("/api/schedules", scheduleRoutes.GetSchedules)
	e.GET("/api/schedules/:id", scheduleRoutes.GetSchedule)
	e.POST("/api/schedules", scheduleRoutes.CreateSchedule)
	e.PUT("/api/schedules/:id", scheduleRoutes.UpdateSchedule)
	e.DELETE("/api/schedules/:id", scheduleRoutes.DeleteSchedule)

	// Voyage history
	e.GET("/api/voyages", voyageRoutes.GetVoyages)
	e.GET("/api/voyages/:id", voyageRoutes.GetVoyage)
	e.POST("/api/voyages", voyageRoutes.CreateVoyage)
	e.PUT("/api/voyages/:id", voyageRoutes.UpdateVoyage)
	e.DELETE("/api/voyages/:id", voyageRoutes.DeleteVoyage)

	// Weather
	e.GET("/api/weather", weatherRoutes.GetWeather)
	e.POST("/api/weather", weatherRoutes.RecordWeather)

	// Logs and export
	e.GET("/api/logs", logRoutes.GetLogs)
	e.GET("/api/logs.csv", logRoutes.GetLogsCSV)
	e.GET("/api/export", logRoutes.Export,
		appmiddleware.NewExportAuthMiddleware(envOr("EXPORT_TOKEN", defaultExportToken)))

	// Docker Compose healthcheck
	e.GET("/health", handler.HealthCheck)

	// Background sweeps
	jobsCtx, stopJobs := context.WithCancel(context.Background())
	go jobs.NewArrivalSweeper(voyageService, arrivalSweepInterval).Start(jobsCtx)
	go jobs.NewWeatherSweeper(
		openweather.NewClient(os.Getenv("OPENWEATHER_API_KEY")),
		portRepo, weatherRepo, weatherSweepInterval,
	).Start(jobsCtx)

	go func() {
		if err := e.Start(envOr("LISTEN_ADDR", defaultAddr)); err != nil {
			log.Infof("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopJobs()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("forced shutdown: %v", err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("timestamp", validators.Timestamp)
	_ = validate.RegisterValidation("clocktime", validators.ClockTime)
	_ = validate.RegisterValidation("shipstatus", validators.ShipStatus)
	_ = validate.RegisterValidation("rank", validators.Rank)
	_ = validate.RegisterValidation("typecode", validators.TypeCode)
}

func envOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func machineID() int64 {
	raw := os.Getenv("MACHINE_ID")
	if raw == "" {
		return 1
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("invalid MACHINE_ID %q: %v", raw, err)
	}
	return id
}
