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
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/auth"
	"github.com/frahmantamala/gym-management/internal/checkin"
	checkinpg "github.com/frahmantamala/gym-management/internal/checkin/postgres"
	"github.com/frahmantamala/gym-management/internal/class"
	classpg "github.com/frahmantamala/gym-management/internal/class/postgres"
	"github.com/frahmantamala/gym-management/internal/employee"
	employeepg "github.com/frahmantamala/gym-management/internal/employee/postgres"
	"github.com/frahmantamala/gym-management/internal/equipment"
	equipmentpg "github.com/frahmantamala/gym-management/internal/equipment/postgres"
	"github.com/frahmantamala/gym-management/internal/membership"
	membershippg "github.com/frahmantamala/gym-management/internal/membership/postgres"
	"github.com/frahmantamala/gym-management/internal/payment"
	paymentpg "github.com/frahmantamala/gym-management/internal/payment/postgres"
	"github.com/frahmantamala/gym-management/internal/role"
	rolepg "github.com/frahmantamala/gym-management/internal/role/postgres"
	"github.com/frahmantamala/gym-management/internal/stats"
	statspg "github.com/frahmantamala/gym-management/internal/stats/postgres"
	"github.com/frahmantamala/gym-management/internal/transport"
	"github.com/frahmantamala/gym-management/internal/transport/rest"
	"github.com/frahmantamala/gym-management/internal/user"
	userpg "github.com/frahmantamala/gym-management/internal/user/postgres"
	"github.com/frahmantamala/gym-management/pkg/logger"
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
	GormDB *gorm.DB
	SqlxDB *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

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
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.SqlxDB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies) {
	lg := deps.Logger
	base := transport.NewBaseHandler(lg)

	roleRepo := rolepg.NewRoleRepository(deps.GormDB)
	roleService := role.NewService(roleRepo, lg)

	userRepo := userpg.NewUserRepository(deps.GormDB)
	userService := user.NewService(userRepo, roleService, lg, deps.Config.Security.BCryptCost)

	tokenGen := auth.NewJWTTokenGenerator(
		deps.Config.Security.AccessTokenSecret,
		deps.Config.Security.RefreshTokenSecret,
	)
	if d := deps.Config.Security.AccessTokenDuration; d > 0 {
		tokenGen.AccessTokenTTL = d
	}
	if d := deps.Config.Security.RefreshTokenDuration; d > 0 {
		tokenGen.RefreshTokenTTL = d
	}
	authService := auth.NewService(userRepo, tokenGen, lg)

	membershipRepo := membershippg.NewMembershipRepository(deps.GormDB)
	membershipService := membership.NewService(membershipRepo, roleService, lg)

	employeeRepo := employeepg.NewEmployeeRepository(deps.GormDB)
	employeeService := employee.NewService(employeeRepo, roleService, lg)

	checkinRepo := checkinpg.NewCheckInRepository(deps.GormDB)
	checkinService := checkin.NewService(checkinRepo, lg)

	paymentRepo := paymentpg.NewPaymentRepository(deps.GormDB)
	paymentService := payment.NewService(paymentRepo, lg)

	classRepo := classpg.NewClassRepository(deps.GormDB)
	classService := class.NewService(classRepo, lg)

	equipmentRepo := equipmentpg.NewEquipmentRepository(deps.GormDB)
	equipmentService := equipment.NewService(equipmentRepo, lg)

	statsRepo := statspg.NewStatsRepository(deps.SqlxDB)
	statsService := stats.NewService(statsRepo, lg)

	handlers := rest.Handlers{
		Auth:       auth.NewHandler(base, authService),
		User:       user.NewHandler(base, userService),
		Membership: membership.NewHandler(base, membershipService),
		Employee:   employee.NewHandler(base, employeeService),
		CheckIn:    checkin.NewHandler(base, checkinService),
		Payment:    payment.NewHandler(base, paymentService),
		Class:      class.NewHandler(base, classService),
		Equipment:  equipment.NewHandler(base, equipmentService),
		Stats:      stats.NewHandler(base, statsService),
	}

	rest.RegisterAllRoutes(deps.Router, deps.SqlxDB.DB, handlers, deps.Config.Observability.Metrics, lg)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Format, config.Observability.Logging.Level)

	gormDB, sqlxDB, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.L(),
		GormDB: gormDB,
		SqlxDB: sqlxDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB opens one pgx connection pool and hands it to both gorm (CRUD,
// transactions) and sqlx (raw analytical SQL).
func initDB(cfg internal.DatabaseConfig) (*gorm.DB, *sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn: dbConn.DB,
	}), &gorm.Config{})
	if err != nil {
		_ = dbConn.Close()
		return nil, nil, fmt.Errorf("failed to open gorm over pgx pool: %w", err)
	}

	return gormDB, dbConn, nil
}
