package main

import (
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

// hangmanStateHandler returns the current Hangman snapshot for the session.
func (app *App) hangmanStateHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	game := app.getHangmanState(ctx, sessionID)
	c.JSON(http.StatusOK, app.hangmanSnapshot(game))
}

// hangmanGuessHandler applies a letter guess to the session's Hangman game.
// Unrecognized input never reaches the engine; it is reported and dropped
// here at the boundary, where the input is also uppercased exactly once.
func (app *App) hangmanGuessHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	game := app.getHangmanState(ctx, sessionID)

	letter, ok := app.normalizeLetter(c.PostForm("letter"))
	if !ok {
		logWarn("Session %s submitted unrecognized input: %q", sessionID, c.PostForm("letter"))
		c.JSON(http.StatusOK, gin.H{
			"error":    ErrorNotALetter,
			"snapshot": app.hangmanSnapshot(game),
		})
		return
	}

	app.guessHangmanLetter(ctx, sessionID, game, letter)
	if err := app.saveHangmanSession(sessionID, game); err != nil {
		logWarn("Failed to persist Hangman session %s: %v", sessionID, err)
	}
	c.JSON(http.StatusOK, app.hangmanSnapshot(game))
}

// hangmanNewHandler starts a fresh Hangman game with a new random word.
func (app *App) hangmanNewHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	game := app.createNewHangman(ctx, sessionID)
	if err := app.saveHangmanSession(sessionID, game); err != nil {
		logWarn("Failed to persist Hangman session %s: %v", sessionID, err)
	}
	c.JSON(http.StatusOK, app.hangmanSnapshot(game))
}

// wordleStateHandler returns the current Wordle snapshot for the session.
func (app *App) wordleStateHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	game := app.getWordleState(ctx, sessionID)
	c.JSON(http.StatusOK, app.wordleSnapshot(game))
}

// wordleLetterHandler appends a letter to the in-progress guess.
func (app *App) wordleLetterHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	game := app.getWordleState(ctx, sessionID)

	letter, ok := app.normalizeLetter(c.PostForm("letter"))
	if !ok {
		logWarn("Session %s submitted unrecognized input: %q", sessionID, c.PostForm("letter"))
		c.JSON(http.StatusOK, gin.H{
			"error":    ErrorNotALetter,
			"snapshot": app.wordleSnapshot(game),
		})
		return
	}

	game.appendLetter([]rune(letter)[0])
	c.JSON(http.StatusOK, app.wordleSnapshot(game))
}

// wordleDeleteHandler removes the last letter of the in-progress guess.
func (app *App) wordleDeleteHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	game := app.getWordleState(ctx, sessionID)
	game.deleteLetter()
	c.JSON(http.StatusOK, app.wordleSnapshot(game))
}

// wordleGuessHandler submits the buffered guess for scoring.
func (app *App) wordleGuessHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	game := app.getWordleState(ctx, sessionID)

	if err := app.submitWordleGuess(ctx, sessionID, game); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"error":    err.Error(),
			"snapshot": app.wordleSnapshot(game),
		})
		return
	}
	if err := app.saveWordleSession(sessionID, game); err != nil {
		logWarn("Failed to persist Wordle session %s: %v", sessionID, err)
	}
	c.JSON(http.StatusOK, app.wordleSnapshot(game))
}

// wordleNewHandler starts a fresh Wordle game with a new random word.
func (app *App) wordleNewHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	game := app.createNewWordle(ctx, sessionID)
	if err := app.saveWordleSession(sessionID, game); err != nil {
		logWarn("Failed to persist Wordle session %s: %v", sessionID, err)
	}
	c.JSON(http.StatusOK, app.wordleSnapshot(game))
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"env":          map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"words_loaded": len(app.WordList),
		"uptime":       formatUptime(uptime),
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}

// normalizeLetter trims and uppercases raw input and accepts it only when
// it is a single letter of the game alphabet. This is the one place input
// case is normalized, so the engines only ever see uppercase.
func (app *App) normalizeLetter(input string) (string, bool) {
	letter := strings.ToUpper(strings.TrimSpace(input))
	if utf8.RuneCountInString(letter) != 1 {
		return "", false
	}
	r := []rune(letter)[0]
	if !app.isRecognizedLetter(r) {
		return "", false
	}
	return letter, true
}
