package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	app := NewApp()
	logInfo("Starting Ordlek in %s mode", map[bool]string{true: "production", false: "development"}[app.IsProduction])

	if err := app.loadWords(getEnvString("WORDS_FILE", "data/words.json")); err != nil {
		logFatal("Failed to load words: %v", err)
	}
	logInfo("Loaded %d words from dictionary", len(app.WordList))

	go app.sessionCleanupLoop()

	router := app.setupRouter()
	startServer(router)
}

// setupRouter wires middleware and routes for both games.
func (app *App) setupRouter() *gin.Engine {
	router := gin.Default()

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))
	router.Use(requestIDMiddleware())
	router.Use(applyCacheHeaders)

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.GET(RouteHangman, app.hangmanStateHandler)
	router.POST(RouteHangmanGuess, app.rateLimitMiddleware(), app.hangmanGuessHandler)
	router.POST(RouteHangmanNew, app.rateLimitMiddleware(), app.hangmanNewHandler)

	router.GET(RouteWordle, app.wordleStateHandler)
	router.POST(RouteWordleLetter, app.rateLimitMiddleware(), app.wordleLetterHandler)
	router.POST(RouteWordleDelete, app.rateLimitMiddleware(), app.wordleDeleteHandler)
	router.POST(RouteWordleGuess, app.rateLimitMiddleware(), app.wordleGuessHandler)
	router.POST(RouteWordleNew, app.rateLimitMiddleware(), app.wordleNewHandler)

	router.GET(RouteHealthz, app.healthzHandler)
	return router
}

// sessionCleanupLoop periodically removes aged-out session files.
func (app *App) sessionCleanupLoop() {
	ticker := time.NewTicker(app.SessionTimeout / 4)
	defer ticker.Stop()
	for range ticker.C {
		if err := app.cleanupOldSessions(app.SessionTimeout); err != nil {
			logWarn("Session cleanup failed: %v", err)
		}
	}
}

func startServer(router *gin.Engine) {
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
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
