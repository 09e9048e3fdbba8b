package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"member_site/internal/handlers"
	"member_site/internal/logger"
	"member_site/internal/repository"
	"member_site/internal/repository/db"
	"member_site/internal/server"
	"member_site/internal/service"

	"github.com/spf13/viper"
)

func main() {
	// load config.yml first so the log level comes from it
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level"))

	// open DB
	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(database)
	services := service.NewService(repos)
	apiHandler := handlers.NewHandler(services, log)

	router := apiHandler.InitRoutes()
	router.LoadHTMLGlob(templatesGlob())
	router.Static("/static", staticDir())

	// start HTTP server
	srv := &server.Server{}
	go func() {
		port := viper.GetString("port")
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, router); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
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

func templatesGlob() string {
	if glob := viper.GetString("templates.glob"); glob != "" {
		return glob
	}
	return "web/templates/*.html"
}

func staticDir() string {
	if dir := viper.GetString("static.dir"); dir != "" {
		return dir
	}
	return "web/static"
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
