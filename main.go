package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// DayKeyZone must resolve even in containers without a system zone
	// database.
	_ "time/tzdata"

	"github.com/gin-contrib/cors"
	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
	"golang.org/x/time/rate"
)

func main() {
	_ = godotenv.Load()

	app := newApp()
	router := app.setupRouter()
	app.startServer(router)
}

// newApp loads configuration, the word catalog and the leaderboard
// store from the environment.
func newApp() *App {
	isProduction := os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production"
	logInfo("Starting hexle in %s mode", map[bool]string{true: "production", false: "development"}[isProduction])

	location, err := time.LoadLocation(DayKeyZone)
	if err != nil {
		logWarn("Failed to load zone %s: %v, falling back to UTC", DayKeyZone, err)
		location = time.UTC
	}

	catalog := LoadCatalog(getEnvString("WORDS_FILE", "data/words.json"))
	logInfo("Catalog ready with %d words", catalog.Len())

	app := &App{
		Catalog:        catalog,
		Location:       location,
		Now:            time.Now,
		RevealSolution: getEnvBool("REVEAL_SOLUTION"),
		IsProduction:   isProduction,
		StartTime:      time.Now(),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		LimiterMap:     make(map[string]*rate.Limiter),
	}
	app.Store, app.StoreKind = openLeaderboardStore(context.Background())
	return app
}

// openLeaderboardStore picks the leaderboard backend from the
// environment: Postgres when DATABASE_URL is set, otherwise a local
// JSON file. An unreachable database leaves the leaderboard explicitly
// unconfigured instead of crashing the service.
func openLeaderboardStore(ctx context.Context) (LeaderboardStore, string) {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		store, err := NewPostgresStore(ctx, databaseURL)
		if err != nil {
			logWarn("Leaderboard database unavailable: %v", err)
			return nil, "none"
		}
		logInfo("Leaderboard backed by Postgres")
		return store, "postgres"
	}

	path := getEnvString("LEADERBOARD_FILE", "data/leaderboard.json")
	logInfo("Leaderboard backed by file: %s", path)
	return NewFileStore(path), "file"
}

// setupRouter builds the Gin engine with middleware and routes.
func (app *App) setupRouter() *gin.Engine {
	router := gin.Default()

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))
	router.Use(requestIDMiddleware())
	// The frontend is served from a different origin.
	router.Use(cors.Default())
	// Daily state must never be cached: a stale day_index or
	// leaderboard would survive the midnight rollover.
	router.Use(cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	}))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.GET(RouteRoot, app.rootHandler)
	router.GET(RouteHealth, app.healthzHandler)
	router.GET(RouteDailyWordCheck, app.dailyWordCheckHandler)
	router.POST(RouteValidate, app.rateLimitMiddleware(), app.validateHandler)
	router.POST(RouteGuess, app.rateLimitMiddleware(), app.guessHandler)
	router.GET(RouteLeaderboard, app.leaderboardGetHandler)
	router.POST(RouteLeaderboard, app.rateLimitMiddleware(), app.leaderboardPostHandler)

	return router
}

// startServer runs the HTTP server with graceful shutdown on SIGINT/SIGTERM.
func (app *App) startServer(router *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		if pg, ok := app.Store.(*PostgresStore); ok {
			pg.Close()
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
