package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	deleteCourseHandler "github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers/delete_course"
	deleteLocationHandler "github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers/delete_location"
	filterLocationsHandler "github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers/filter_locations"
	getCompanyConfigHandler "github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers/get_company_config"
	getCourseRegistrationsHandler "github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers/get_course_registrations"
	getCoursesHandler "github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers/get_courses"
	getLocationsHandler "github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers/get_locations"
	registerCourseHandler "github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers/register_course"
	saveCourseHandler "github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers/save_course"
	saveLocationHandler "github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers/save_location"
	unregisterCourseHandler "github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers/unregister_course"
	updateCompanyConfigHandler "github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers/update_company_config"
	updateRegistrationStatusHandler "github.com/skillhub/SkillHub-SchedulingService/internal/api/handlers/update_registration_status"
	"github.com/skillhub/SkillHub-SchedulingService/internal/api/middleware"
	"github.com/skillhub/SkillHub-SchedulingService/internal/config"
	availabilityRepo "github.com/skillhub/SkillHub-SchedulingService/internal/infra/storage/availability"
	companyRepo "github.com/skillhub/SkillHub-SchedulingService/internal/infra/storage/company"
	courseRepo "github.com/skillhub/SkillHub-SchedulingService/internal/infra/storage/course"
	locationRepo "github.com/skillhub/SkillHub-SchedulingService/internal/infra/storage/location"
	registrationRepo "github.com/skillhub/SkillHub-SchedulingService/internal/infra/storage/registration"
	userRepo "github.com/skillhub/SkillHub-SchedulingService/internal/infra/storage/user"
	configurationService "github.com/skillhub/SkillHub-SchedulingService/internal/service/configuration"
	coursesService "github.com/skillhub/SkillHub-SchedulingService/internal/service/courses"
	locationsService "github.com/skillhub/SkillHub-SchedulingService/internal/service/locations"
	registrationsService "github.com/skillhub/SkillHub-SchedulingService/internal/service/registrations"
	filterLocationsUC "github.com/skillhub/SkillHub-SchedulingService/internal/usecase/filter_locations"
	"github.com/skillhub/SkillHub-SchedulingService/pkg/dbmetrics"
	"github.com/skillhub/SkillHub-SchedulingService/pkg/logger"
	"github.com/skillhub/SkillHub-SchedulingService/pkg/metrics"
	"github.com/skillhub/SkillHub-SchedulingService/pkg/simpletxmanager"
	"github.com/skillhub/SkillHub-SchedulingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SkillHub-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		locationRepository     *locationRepo.Repository
		companyRepository      *companyRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		courseRepository       *courseRepo.Repository
		registrationRepository *registrationRepo.Repository
		userRepository         *userRepo.Repository
	)

	// Интерфейс transaction manager (используется сервисами)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		locationRepository = locationRepo.NewRepository(wrappedDB)
		companyRepository = companyRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		courseRepository = courseRepo.NewRepository(wrappedDB)
		registrationRepository = registrationRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		locationRepository = locationRepo.NewRepository(db)
		companyRepository = companyRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		courseRepository = courseRepo.NewRepository(db)
		registrationRepository = registrationRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	coursesSvc := coursesService.New(
		courseRepository,
		availabilityRepository,
		locationRepository,
		txMgr,
		log,
	)
	locationsSvc := locationsService.New(
		locationRepository,
		availabilityRepository,
		coursesSvc,
		txMgr,
		log,
	)
	registrationsSvc := registrationsService.New(
		registrationRepository,
		courseRepository,
		userRepository,
		txMgr,
		log,
	)
	configurationSvc := configurationService.New(
		companyRepository,
		log,
	)

	// Инициализируем use cases
	filterLocationsUseCase := filterLocationsUC.NewUseCase(
		locationRepository,
		companyRepository,
		availabilityRepository,
		log,
	)

	// Инициализируем handlers
	filterLocations := filterLocationsHandler.NewHandler(filterLocationsUseCase, log)
	getLocations := getLocationsHandler.NewHandler(locationsSvc, log)
	saveLocation := saveLocationHandler.NewHandler(locationsSvc, log)
	deleteLocation := deleteLocationHandler.NewHandler(locationsSvc, log)
	getCourses := getCoursesHandler.NewHandler(coursesSvc, log)
	saveCourse := saveCourseHandler.NewHandler(coursesSvc, log)
	deleteCourse := deleteCourseHandler.NewHandler(coursesSvc, log)
	getCourseRegistrations := getCourseRegistrationsHandler.NewHandler(registrationsSvc, log)
	registerCourse := registerCourseHandler.NewHandler(registrationsSvc, log)
	unregisterCourse := unregisterCourseHandler.NewHandler(registrationsSvc, log)
	updateRegistrationStatus := updateRegistrationStatusHandler.NewHandler(registrationsSvc, log)
	getCompanyConfig := getCompanyConfigHandler.NewHandler(configurationSvc, log)
	updateCompanyConfig := updateCompanyConfigHandler.NewHandler(configurationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Подбор локаций со свободными стартовыми интервалами
	api.HandleFunc("/locations/filter", filterLocations.Handle).Methods(http.MethodGet)

	// Списки локаций и курсов
	api.HandleFunc("/locations", getLocations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courses", getCourses.Handle).Methods(http.MethodGet)

	// Конфигурация компании
	api.HandleFunc("/company", getCompanyConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Локации ---
	protected.HandleFunc("/locations", saveLocation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/locations/{locationId}", deleteLocation.Handle).Methods(http.MethodDelete)

	// --- Курсы ---
	protected.HandleFunc("/courses", saveCourse.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/courses/{courseId}", deleteCourse.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/courses/{courseId}/registrations", getCourseRegistrations.Handle).Methods(http.MethodGet)

	// --- Регистрации ---
	protected.HandleFunc("/registrations", registerCourse.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/registrations/{registrationId}", unregisterCourse.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/registrations/{registrationId}/status", updateRegistrationStatus.Handle).Methods(http.MethodPatch)

	// --- Конфигурация компании ---
	protected.HandleFunc("/company", updateCompanyConfig.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
