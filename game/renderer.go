package game

// Renderer is everything the controller needs from a user interface.
type Renderer interface {
	SetTargetPosition(x, y, radius float64)

	SetScoreText(s string)
	SetTimeText(s string)
	SetCountdownText(s string)
	SetFinalScoreText(s string)
	SetHighScoreText(s string)
	SetDifficultyText(s string)

	ShowPlayButton()
	HidePlayButton()
	ShowPlayAgainButton()
	HidePlayAgainButton()

	EnableClickHandling()
	DisableClickHandling()
}

// Hooks are optional callbacks for side effects such as sound.
type Hooks struct {
	OnHit       func(score int)
	OnRoundOver func(score, highScore int, newRecord bool)
}
