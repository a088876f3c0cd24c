package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gestorfin/dre-management/internal"
	"github.com/gestorfin/dre-management/internal/account"
	accountPostgres "github.com/gestorfin/dre-management/internal/account/postgres"
	"github.com/gestorfin/dre-management/internal/auth"
	authPostgres "github.com/gestorfin/dre-management/internal/auth/postgres"
	"github.com/gestorfin/dre-management/internal/company"
	companyPostgres "github.com/gestorfin/dre-management/internal/company/postgres"
	"github.com/gestorfin/dre-management/internal/costcenter"
	costcenterPostgres "github.com/gestorfin/dre-management/internal/costcenter/postgres"
	"github.com/gestorfin/dre-management/internal/entry"
	entryPostgres "github.com/gestorfin/dre-management/internal/entry/postgres"
	"github.com/gestorfin/dre-management/internal/paymentmethod"
	paymentmethodPostgres "github.com/gestorfin/dre-management/internal/paymentmethod/postgres"
	"github.com/gestorfin/dre-management/internal/report"
	reportPostgres "github.com/gestorfin/dre-management/internal/report/postgres"
	"github.com/gestorfin/dre-management/internal/transport/rest"
	"github.com/gestorfin/dre-management/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	// Monetary fields marshal as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	cfg := deps.Config
	log := deps.Logger

	tokenGen := auth.NewJWTTokenGenerator(
		cfg.Security.AccessTokenSecret,
		cfg.Security.RefreshTokenSecret,
		cfg.Security.AccessTokenDuration,
		cfg.Security.RefreshTokenDuration,
	)

	authService := auth.NewService(authPostgres.NewRepository(deps.GormDB), tokenGen, cfg.Security.BCryptCost, log)
	companyService := company.NewService(companyPostgres.NewCompanyRepository(deps.GormDB), log)
	accountService := account.NewService(accountPostgres.NewAccountRepository(deps.GormDB), companyService, log)
	costCenterRepo := costcenterPostgres.NewCostCenterRepository(deps.GormDB)
	costCenterService := costcenter.NewService(costCenterRepo, companyService, log)
	entryService := entry.NewService(
		entryPostgres.NewEntryRepository(deps.GormDB),
		companyService,
		costCenterRepo,
		accountService,
		authService,
		log,
	)
	paymentMethodService := paymentmethod.NewService(paymentmethodPostgres.NewPaymentMethodRepository(deps.GormDB), companyService, log)
	reportService := report.NewService(reportPostgres.NewReportRepository(deps.GormDB), companyService, log)

	handlers := rest.Handlers{
		Auth:          auth.NewHandler(authService),
		Company:       company.NewHandler(companyService),
		Account:       account.NewHandler(accountService),
		CostCenter:    costcenter.NewHandler(costCenterService),
		Entry:         entry.NewHandler(entryService),
		PaymentMethod: paymentmethod.NewHandler(paymentMethodService),
		Report:        report.NewHandler(reportService),
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, handlers, log)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.InitFrom(config.Logging.Level, config.Logging.Format)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.L(),
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
