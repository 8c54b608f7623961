package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todoapi/internal/handlers"
	"todoapi/internal/logger"
	"todoapi/internal/repository"
	"todoapi/internal/repository/db"
	"todoapi/internal/seeder"
	"todoapi/internal/server"
	"todoapi/internal/service"

	"github.com/spf13/viper"
)

func main() {
	seedMode := flag.String("seed", "", "seed the database (all|users|todos|clean) and exit")
	flag.Parse()

	// load config.yml
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level"))

	// open DB
	sqlDB, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	authCfg := loadAuthConfig(log)

	if *seedMode != "" {
		runSeeder(repos, authCfg, *seedMode, log)
		return
	}

	services := service.NewService(repos, authCfg)
	apiHandler := handlers.NewHandler(services, log, handlers.CookieOptions{
		MaxAge: authCfg.TokenTTL,
		Secure: viper.GetString("env") == "production",
	})

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.SetDefault("auth.token_ttl", service.DefaultTokenTTL)
	viper.SetDefault("auth.bcrypt_cost", service.DefaultBcryptCost)
	return viper.ReadInConfig()
}

// loadAuthConfig reads the auth block; the signing key is the one setting
// with no usable default.
func loadAuthConfig(log *logger.Logger) service.AuthConfig {
	key := viper.GetString("auth.signing_key")
	if key == "" {
		log.Fatalw("auth.signing_key is not set in config")
	}
	return service.AuthConfig{
		SigningKey: key,
		TokenTTL:   viper.GetDuration("auth.token_ttl"),
		BcryptCost: viper.GetInt("auth.bcrypt_cost"),
	}
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "app.db")
		dbPath = "app.db"
	}
	return db.InitDB(dbPath)
}

// runSeeder populates or cleans the database and exits.
func runSeeder(repos *repository.Repository, authCfg service.AuthConfig, mode string, log *logger.Logger) {
	s := seeder.New(repos, service.NewPasswordHasher(authCfg.BcryptCost), log)
	if err := s.Run(context.Background(), mode); err != nil {
		log.Fatalw("seeding failed", "mode", mode, "err", err)
	}
	log.Infow("seeding finished", "mode", mode)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
