package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"littlelemon/api"
	"littlelemon/cmd"
	"littlelemon/internal/adapters/out/auth"
	"littlelemon/internal/adapters/out/postgres"
	"littlelemon/internal/adapters/out/postgres/migrations"
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/identity"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	command := "serve"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	switch command {
	case "serve":
		err = serve(ctx, configs, logger)
	case "migrate":
		err = migrate(ctx, configs, logger)
	case "createuser":
		err = createUser(ctx, configs, logger, os.Args[2:])
	default:
		err = fmt.Errorf("unknown command %q, want serve, migrate or createuser", command)
	}
	stop()

	if err != nil {
		log.Fatal(err)
	}
}

func serve(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	if err := migrate(ctx, configs, logger); err != nil {
		return err
	}

	db, closeDB, err := openDB(configs)
	if err != nil {
		return err
	}
	defer closeDB()

	doc, err := api.Load(ctx)
	if err != nil {
		return err
	}

	limiter, closeLimiter, err := cmd.NewRateLimiter(ctx, configs, logger)
	if err != nil {
		return err
	}
	defer closeLimiter()

	app, err := cmd.NewCompositionRoot(configs, db, limiter, cmd.NewOrderNotifier(configs, logger), logger)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := app.CreateRouter(doc)
	if err != nil {
		return err
	}
	e.Logger.SetLevel(log.INFO)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "port", configs.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("shutting down")
	return e.Shutdown(shutdownCtx)
}

func migrate(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	pool, err := pgxpool.New(ctx, configs.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect for migrations: %w", err)
	}
	defer pool.Close()

	_, err = migrations.Apply(ctx, pool, logger)
	return err
}

// createUser provisions an account, optionally in role groups:
//
//	app createuser -username mario -email mario@example.com -password secret -groups manager
func createUser(ctx context.Context, configs cmd.Config, logger *slog.Logger, args []string) error {
	flags := flag.NewFlagSet("createuser", flag.ContinueOnError)
	username := flags.String("username", "", "account name")
	email := flags.String("email", "", "email address")
	password := flags.String("password", "", "password")
	groupList := flags.String("groups", "", "comma separated role groups: manager, delivery-crew")
	if err := flags.Parse(args); err != nil {
		return err
	}

	var groups []identity.Group
	for _, slug := range strings.Split(*groupList, ",") {
		if slug = strings.TrimSpace(slug); slug == "" {
			continue
		}
		g, err := identity.ParseGroupSlug(slug)
		if err != nil {
			return err
		}
		groups = append(groups, g)
	}

	db, closeDB, err := openDB(configs)
	if err != nil {
		return err
	}
	defer closeDB()

	command, err := commands.NewCreateUserCommand(*username, *email, *password, groups...)
	if err != nil {
		return err
	}
	uowFactory := postgres.NewGormUnitOfWorkFactory(db)
	handler := commands.NewCreateUserCommandHandler(
		cmd.FuncIdentityUoWFactory(func() commands.IdentityUoW { return uowFactory.Create() }),
		auth.NewArgon2Hasher(),
	)
	id, err := handler.Handle(ctx, command)
	if err != nil {
		return err
	}

	logger.Info("user created", "id", id, "username", *username)
	return nil
}

func openDB(configs cmd.Config) (*gorm.DB, func(), error) {
	db, err := gorm.Open(gormpostgres.Open(configs.DatabaseURL()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	return db, func() { _ = sqlDB.Close() }, nil
}
