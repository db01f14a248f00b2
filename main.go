package main

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"shopreorder/config"
	"shopreorder/database"
	"shopreorder/orders"
)

var appTemplate *template.Template

func main() {
	env := config.LoadEnv()
	setupLogging(env)

	config.SetPath(env.ConfigPath)
	if _, err := config.LoadConfig(); err != nil {
		log.Warn().Err(err).Str("path", env.ConfigPath).Msg("failed to load config file, using defaults")
	}

	log.Info().Str("dsn", env.DBDSN).Msg("connecting to database")
	dbConn, err := database.Open(env.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("db open error")
	}
	defer dbConn.Close()

	ctrl, err := orders.NewController(dbConn)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to restore snapshot")
	}

	appTemplate, err = template.ParseFiles("static/index.html")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse index.html")
	}
	log.Info().Msg("HTML templates loaded and parsed")

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/",
		http.FileServer(http.Dir("./static"))))
	mux.HandleFunc("/", indexHandler)
	SetupRoutes(mux, ctrl, env)

	addr := ":" + env.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           corsHandler(env)(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", "http://localhost"+addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start error")
		}
	}()

	if env.OpenBrowser {
		launcher.Open("http://localhost" + addr)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func setupLogging(env config.Env) {
	level, err := zerolog.ParseLevel(env.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if env.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

// corsHandler allows the page's own origin unless ALLOWED_ORIGINS says
// otherwise.
func corsHandler(env config.Env) func(http.Handler) http.Handler {
	origins := env.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:" + env.Port, "http://127.0.0.1:" + env.Port}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
