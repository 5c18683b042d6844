package main

import (
	"context"
	"strings"
	"time"

	"github.com/samber/lo"
)

// guessHangmanLetter applies a single letter guess. Terminal phases and
// repeated letters are no-ops; the letter is assumed uppercased and inside
// the alphabet, which the handler boundary guarantees.
func (app *App) guessHangmanLetter(ctx context.Context, sessionID string, game *HangmanState, letter string) {
	reqID, _ := ctx.Value(requestIDKey).(string)

	if game.Phase != PhasePlaying {
		logWarn("Session %s attempted guess on finished game", sessionID)
		return
	}
	if game.GuessedLetters[letter] {
		logInfo("Session %s repeated letter: %s", sessionID, letter)
		return
	}

	game.GuessedLetters[letter] = true
	game.LastAccessTime = time.Now()

	if strings.Contains(game.SessionWord, letter) {
		game.KeyboardHints[letter] = HintCorrect
		if app.isWordFullyGuessed(game) {
			game.Phase = PhaseWon
			if reqID != "" {
				logInfo("[request_id=%v] Player won! Target word was: %s", reqID, game.SessionWord)
			} else {
				logInfo("Player won! Target word was: %s", game.SessionWord)
			}
		}
	} else {
		game.KeyboardHints[letter] = HintWrong
		game.WrongGuesses++
		if game.WrongGuesses >= MaxWrongGuesses {
			game.Phase = PhaseLost
			if reqID != "" {
				logInfo("[request_id=%v] Player lost. Target word was: %s", reqID, game.SessionWord)
			} else {
				logInfo("Player lost. Target word was: %s", game.SessionWord)
			}
		}
	}

	if game.Phase != PhasePlaying {
		game.TargetWord = game.SessionWord
	}
}

// isWordFullyGuessed reports whether every distinct letter of the session
// word has been guessed.
func (app *App) isWordFullyGuessed(game *HangmanState) bool {
	return lo.EveryBy([]rune(game.SessionWord), func(r rune) bool {
		return game.GuessedLetters[string(r)]
	})
}

// createNewHangman initializes a fresh Hangman session and stores it.
func (app *App) createNewHangman(ctx context.Context, sessionID string) *HangmanState {
	word := app.getRandomWord(ctx)
	logInfo("New Hangman game for session %s with word: %s", sessionID, word)
	game := &HangmanState{
		SessionWord:    word,
		TargetWord:     "",
		GuessedLetters: make(map[string]bool),
		WrongGuesses:   0,
		Phase:          PhasePlaying,
		KeyboardHints:  make(map[string]string),
		LastAccessTime: time.Now(),
	}
	app.SessionMutex.Lock()
	app.HangmanSessions[sessionID] = game
	app.SessionMutex.Unlock()
	return game
}

// hangmanSnapshot builds the rendering view of a session: the masked word,
// remaining chances and keyboard hints. The target word is included only
// once the game is over.
func (app *App) hangmanSnapshot(game *HangmanState) HangmanSnapshot {
	masked := lo.Map([]rune(game.SessionWord), func(r rune, _ int) string {
		if game.GuessedLetters[string(r)] {
			return string(r)
		}
		return "_"
	})
	return HangmanSnapshot{
		MaskedWord:    strings.Join(masked, ""),
		WrongGuesses:  game.WrongGuesses,
		ChancesLeft:   MaxWrongGuesses - game.WrongGuesses,
		Phase:         game.Phase,
		TargetWord:    game.TargetWord,
		KeyboardHints: game.KeyboardHints,
	}
}
