package main

import (
	"os"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// App holds all shared application state: the word list, both games'
// session maps, and the per-client rate limiters.
type App struct {
	WordList    []string
	WordSet     map[string]struct{}
	AlphabetSet map[rune]struct{}

	WordleSessions  map[string]*WordleState
	HangmanSessions map[string]*HangmanState
	SessionMutex    sync.RWMutex

	LimiterMap   map[string]*rate.Limiter
	LimiterMutex sync.Mutex

	IsProduction   bool
	StartTime      time.Time
	SessionDir     string
	SessionTimeout time.Duration
	CookieMaxAge   time.Duration
	NoticeTTL      time.Duration
	RateLimitRPS   int
	RateLimitBurst int
}

// NewApp builds an App with configuration read from the environment.
func NewApp() *App {
	return &App{
		AlphabetSet:     buildAlphabetSet(),
		WordleSessions:  make(map[string]*WordleState),
		HangmanSessions: make(map[string]*HangmanState),
		LimiterMap:      make(map[string]*rate.Limiter),
		IsProduction:    os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production",
		StartTime:       time.Now(),
		SessionDir:      getEnvString("SESSION_DIR", "data/sessions"),
		SessionTimeout:  getEnvDuration("SESSION_TIMEOUT", 2*time.Hour),
		CookieMaxAge:    getEnvDuration("COOKIE_MAX_AGE", 2*time.Hour),
		NoticeTTL:       getEnvDuration("NOTICE_TTL", 3*time.Second),
		RateLimitRPS:    getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 10),
	}
}

// buildAlphabetSet builds the recognized-letter set from Alphabet.
func buildAlphabetSet() map[rune]struct{} {
	set := make(map[rune]struct{}, len(Alphabet))
	for _, r := range Alphabet {
		set[r] = struct{}{}
	}
	return set
}

// isRecognizedLetter reports whether r belongs to the game alphabet.
func (app *App) isRecognizedLetter(r rune) bool {
	_, ok := app.AlphabetSet[r]
	return ok
}
