package main

// Game configuration constants
const (
	MaxGuesses      = 6 // Maximum number of Wordle guesses per game
	WordLength      = 5 // Length of the word to guess, in letters
	MaxWrongGuesses = 6 // Hangman wrong guesses before the game is lost
	MaxNotices      = 6 // Most transient notices retained at once
)

// Alphabet is the full recognized alphabet: the base Latin letters plus the
// three Swedish letters. Input outside this set is filtered before it
// reaches the engines.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZÅÄÖ"

// Verdict constants for a scored Wordle letter
const (
	VerdictCorrect = "correct"
	VerdictPresent = "present"
	VerdictAbsent  = "absent"
)

// Hangman keyboard hint constants
const (
	HintCorrect = "correct"
	HintWrong   = "wrong"
)

// Phase constants for both games
const (
	PhasePlaying = "playing"
	PhaseWon     = "won"
	PhaseLost    = "lost"
)

// Session configuration constants
const (
	SessionCookieName = "session_id"
)

// Route constants
const (
	RouteHangman      = "/hangman"
	RouteHangmanGuess = "/hangman/guess"
	RouteHangmanNew   = "/hangman/new"
	RouteWordle       = "/wordle"
	RouteWordleLetter = "/wordle/letter"
	RouteWordleDelete = "/wordle/delete"
	RouteWordleGuess  = "/wordle/guess"
	RouteWordleNew    = "/wordle/new"
	RouteHealthz      = "/healthz"
)

// Error message constants
const (
	ErrorGameOver      = "Game is over."
	ErrorInvalidLength = "Word must be 5 letters."
	ErrorNotInWordList = "Not a word."
	ErrorNotALetter    = "Not a recognized letter."
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)
