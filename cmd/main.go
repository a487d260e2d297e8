package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"wiser_schedule/internal/handlers"
	"wiser_schedule/internal/logger"
	"wiser_schedule/internal/repository"
	"wiser_schedule/internal/repository/db"
	"wiser_schedule/internal/server"
	"wiser_schedule/internal/service"
	"wiser_schedule/internal/timeline"

	_ "wiser_schedule/docs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

// @title           Wiser Schedule API
// @version         1.0
// @description     Slot timeline editor for heating, on/off, lighting and shutter schedules.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml plus .env overrides
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// open DB
	conn, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	signingKey := viper.GetString("jwt.signing_key")
	if signingKey == "" {
		log.Fatalw("jwt.signing_key is not set; refusing to issue unsigned tokens")
	}

	step := viper.GetInt("editor.step_minutes")
	if step <= 0 {
		step = timeline.DefaultStepMinutes
	}

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, signingKey, step)
	apiHandler := handlers.NewHandler(services, log, corsOrigins()...)

	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

// loadConfig reads configs/config.yml and lets environment variables override
// file values. A local .env file is applied first when present.
func loadConfig() error {
	_ = godotenv.Load()

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.SetEnvPrefix("wiser")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "wiser.db")
		dbPath = "wiser.db"
	}
	return db.InitDB(dbPath)
}

func corsOrigins() []string {
	var origins []string
	for _, o := range viper.GetStringSlice("cors.origins") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
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
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
