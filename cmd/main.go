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

	authLoginHandler "github.com/chrismblake-alt/meal-signup-app/internal/api/handlers/auth_login"
	blockedDatesHandler "github.com/chrismblake-alt/meal-signup-app/internal/api/handlers/blocked_dates"
	cancelSignupHandler "github.com/chrismblake-alt/meal-signup-app/internal/api/handlers/cancel_signup"
	createBatchSignupsHandler "github.com/chrismblake-alt/meal-signup-app/internal/api/handlers/create_batch_signups"
	exportSignupsHandler "github.com/chrismblake-alt/meal-signup-app/internal/api/handlers/export_signups"
	getAvailabilityHandler "github.com/chrismblake-alt/meal-signup-app/internal/api/handlers/get_availability"
	getSettingsHandler "github.com/chrismblake-alt/meal-signup-app/internal/api/handlers/get_settings"
	listSignupsHandler "github.com/chrismblake-alt/meal-signup-app/internal/api/handlers/list_signups"
	listStoriesHandler "github.com/chrismblake-alt/meal-signup-app/internal/api/handlers/list_stories"
	manageStoriesHandler "github.com/chrismblake-alt/meal-signup-app/internal/api/handlers/manage_stories"
	runDailySummaryHandler "github.com/chrismblake-alt/meal-signup-app/internal/api/handlers/run_daily_summary"
	runRemindersHandler "github.com/chrismblake-alt/meal-signup-app/internal/api/handlers/run_reminders"
	updateSettingsHandler "github.com/chrismblake-alt/meal-signup-app/internal/api/handlers/update_settings"
	"github.com/chrismblake-alt/meal-signup-app/internal/api/middleware"
	"github.com/chrismblake-alt/meal-signup-app/internal/config"
	adminUserRepo "github.com/chrismblake-alt/meal-signup-app/internal/infra/storage/adminuser"
	blockedDateRepo "github.com/chrismblake-alt/meal-signup-app/internal/infra/storage/blockeddate"
	settingsRepo "github.com/chrismblake-alt/meal-signup-app/internal/infra/storage/settings"
	signupRepo "github.com/chrismblake-alt/meal-signup-app/internal/infra/storage/signup"
	storyRepo "github.com/chrismblake-alt/meal-signup-app/internal/infra/storage/story"
	"github.com/chrismblake-alt/meal-signup-app/internal/integrations/mailer"
	"github.com/chrismblake-alt/meal-signup-app/internal/mail"
	authService "github.com/chrismblake-alt/meal-signup-app/internal/service/auth"
	blockedDatesService "github.com/chrismblake-alt/meal-signup-app/internal/service/blockeddates"
	settingsService "github.com/chrismblake-alt/meal-signup-app/internal/service/settings"
	signupsService "github.com/chrismblake-alt/meal-signup-app/internal/service/signups"
	storiesService "github.com/chrismblake-alt/meal-signup-app/internal/service/stories"
	cancelSignupUC "github.com/chrismblake-alt/meal-signup-app/internal/usecase/cancel_signup"
	createBatchSignupsUC "github.com/chrismblake-alt/meal-signup-app/internal/usecase/create_batch_signups"
	getOpenSlotsUC "github.com/chrismblake-alt/meal-signup-app/internal/usecase/get_open_slots"
	sendDailySummaryUC "github.com/chrismblake-alt/meal-signup-app/internal/usecase/send_daily_summary"
	sendRemindersUC "github.com/chrismblake-alt/meal-signup-app/internal/usecase/send_reminders"
	"github.com/chrismblake-alt/meal-signup-app/pkg/dbmetrics"
	"github.com/chrismblake-alt/meal-signup-app/pkg/logger"
	"github.com/chrismblake-alt/meal-signup-app/pkg/metrics"
	"github.com/chrismblake-alt/meal-signup-app/pkg/simpletxmanager"
	"github.com/chrismblake-alt/meal-signup-app/pkg/txmanager"
)

// notifier общий интерфейс отправки писем для usecase'ов
type notifier interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// countingNotifier оборачивает отправку писем счетчиком метрик
type countingNotifier struct {
	inner     notifier
	collector *metrics.Metrics
	emailType string
}

func (n *countingNotifier) Send(ctx context.Context, to, subject, htmlBody string) error {
	err := n.inner.Send(ctx, to, subject, htmlBody)
	if err != nil {
		n.collector.IncEmail(n.emailType, "error")
		return err
	}
	n.collector.IncEmail(n.emailType, "success")
	return nil
}

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

	log.Info("Starting meal-signup-app...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс площадки: в нем определяются "сегодня" и "завтра"
	location, err := time.LoadLocation(cfg.Site.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Site.Timezone, err)
	}

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

	// SMTP клиент
	mailClient := mailer.NewClient(
		cfg.Mail.Host,
		cfg.Mail.Port,
		cfg.Mail.User,
		cfg.Mail.Password,
		cfg.Mail.From,
		time.Duration(cfg.Mail.SendTimeout)*time.Second,
		log,
	)
	log.Info("SMTP client initialized (host=%s, port=%d, timeout=%ds)",
		cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.SendTimeout)

	// Сборщик писем с реквизитами организации
	emailBuilder := mail.NewBuilder(mail.Org{
		Name:           cfg.Site.OrgName,
		Address:        cfg.Site.OrgAddress,
		Phone:          cfg.Site.OrgPhone,
		BaseURL:        cfg.Site.BaseURL,
		DeliveryWindow: cfg.Site.DeliveryWindow,
	})

	// Отправители писем по типам (с метриками или без)
	var confirmationNotifier, reminderNotifier, summaryNotifier notifier
	confirmationNotifier = mailClient
	reminderNotifier = mailClient
	summaryNotifier = mailClient
	if cfg.Metrics.Enabled {
		confirmationNotifier = &countingNotifier{mailClient, metricsCollector, "confirmation"}
		reminderNotifier = &countingNotifier{mailClient, metricsCollector, "reminder"}
		summaryNotifier = &countingNotifier{mailClient, metricsCollector, "daily_summary"}
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		signupRepository      *signupRepo.Repository
		blockedDateRepository *blockedDateRepo.Repository
		settingsRepository    *settingsRepo.Repository
		storyRepository       *storyRepo.Repository
		adminUserRepository   *adminUserRepo.Repository
	)

	type txManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr txManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		signupRepository = signupRepo.NewRepository(wrappedDB)
		blockedDateRepository = blockedDateRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		storyRepository = storyRepo.NewRepository(wrappedDB)
		adminUserRepository = adminUserRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		signupRepository = signupRepo.NewRepository(db)
		blockedDateRepository = blockedDateRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		storyRepository = storyRepo.NewRepository(db)
		adminUserRepository = adminUserRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	signupsSvc := signupsService.NewService(signupRepository, log)
	settingsSvc := settingsService.NewService(
		settingsRepository,
		cfg.Site.DefaultKidCountMin,
		cfg.Site.DefaultKidCountMax,
		log,
	)
	storiesSvc := storiesService.NewService(storyRepository, log)
	blockedDatesSvc := blockedDatesService.NewService(blockedDateRepository, log)
	authSvc := authService.NewService(
		adminUserRepository,
		time.Duration(cfg.Admin.SessionTTLHours)*time.Hour,
		log,
	)

	// Bootstrap: первый администратор создается из конфигурации
	bootstrapCtx, cancelBootstrap := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authSvc.EnsureAdmin(bootstrapCtx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		cancelBootstrap()
		log.Fatal("Failed to bootstrap admin account: %v", err)
	}
	cancelBootstrap()

	// Инициализируем use cases
	createBatchSignupsUseCase := createBatchSignupsUC.NewUseCase(
		signupRepository,
		blockedDateRepository,
		settingsSvc,
		emailBuilder,
		confirmationNotifier,
		txMgr,
		log,
	)
	getOpenSlotsUseCase := getOpenSlotsUC.NewUseCase(signupRepository, blockedDateRepository, log)
	cancelSignupUseCase := cancelSignupUC.NewUseCase(signupRepository, log)
	sendRemindersUseCase := sendRemindersUC.NewUseCase(
		signupRepository,
		settingsSvc,
		emailBuilder,
		reminderNotifier,
		location,
		log,
	)
	sendDailySummaryUseCase := sendDailySummaryUC.NewUseCase(
		signupRepository,
		blockedDateRepository,
		emailBuilder,
		summaryNotifier,
		cfg.Mail.SummaryRecipient,
		location,
		log,
	)

	// Инициализируем handlers
	createBatchSignups := createBatchSignupsHandler.NewHandler(createBatchSignupsUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getOpenSlotsUseCase, log)
	cancelSignup := cancelSignupHandler.NewHandler(cancelSignupUseCase, signupsSvc, log)
	listStories := listStoriesHandler.NewHandler(storiesSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	authLogin := authLoginHandler.NewHandler(authSvc, log)
	runReminders := runRemindersHandler.NewHandler(sendRemindersUseCase, log)
	runDailySummary := runDailySummaryHandler.NewHandler(sendDailySummaryUseCase, log)
	listSignups := listSignupsHandler.NewHandler(signupsSvc, log)
	exportSignups := exportSignupsHandler.NewHandler(signupsSvc, log)
	blockedDates := blockedDatesHandler.NewHandler(blockedDatesSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	manageStories := manageStoriesHandler.NewHandler(storiesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.NewMetrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Пакетная заявка на даты
	api.HandleFunc("/signups/batch", createBatchSignups.Handle).Methods(http.MethodPost)

	// Прогноз свободных слотов
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Отмена по токену: просмотр и подтверждение
	api.HandleFunc("/cancel/{token}", cancelSignup.HandleLookup).Methods(http.MethodGet)
	api.HandleFunc("/cancel/{token}", cancelSignup.HandleCancel).Methods(http.MethodPost)

	// Публичный контент
	api.HandleFunc("/stories", listStories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)

	// Вход в админ-панель
	api.HandleFunc("/auth/login", authLogin.HandleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authLogin.HandleLogout).Methods(http.MethodPost)

	// ============================================================
	// CRON ROUTES (общий секрет планировщика)
	// ============================================================

	cron := api.PathPrefix("/cron").Subrouter()
	cron.Use(middleware.NewCronAuth(cfg.Cron.Secret, log))
	if cfg.Cron.Secret == "" {
		log.Warn("Cron secret is empty, cron endpoints are unprotected")
	}

	cron.HandleFunc("/reminders", runReminders.Handle).Methods(http.MethodPost)
	cron.HandleFunc("/daily-summary", runDailySummary.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют сессию администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.NewAdminAuth(authSvc, log))

	admin.HandleFunc("/signups", listSignups.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/export", exportSignups.Handle).Methods(http.MethodGet)

	admin.HandleFunc("/blocked-dates", blockedDates.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-dates", blockedDates.HandleBlock).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-dates/{date}", blockedDates.HandleUnblock).Methods(http.MethodDelete)

	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	admin.HandleFunc("/stories", manageStories.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/stories/{id}", manageStories.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/stories/{id}", manageStories.HandleDelete).Methods(http.MethodDelete)

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
