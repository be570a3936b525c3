package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/meghashyamc/clickcircle/geometry"
	"github.com/meghashyamc/clickcircle/logger"
)

const (
	tickInterval      = time.Second
	goLabelDuration   = 500 * time.Millisecond
	countdownGoText   = "Go!"
	timeUpText        = "Time's up!"
	difficultyTextFmt = "Difficulty: %s"
)

// Controller owns all mutable game state. Every method must be called from
// the goroutine that drives the Scheduler.
type Controller struct {
	settings  Settings
	renderer  Renderer
	scheduler Scheduler
	rng       *rand.Rand
	logger    logger.Logger
	hooks     Hooks

	state              GameState
	difficulty         Difficulty
	score              int
	timeRemaining      int
	countdownRemaining int
	target             Target
	highScores         *HighScoreTracker

	countdownTimer pendingTimer
	gameTimer      pendingTimer
	relocateTimer  pendingTimer
	goLabelTimer   pendingTimer
}

func NewController(settings Settings, renderer Renderer, scheduler Scheduler, rng *rand.Rand, log logger.Logger, hooks Hooks) *Controller {
	c := &Controller{
		settings:           settings,
		renderer:           renderer,
		scheduler:          scheduler,
		rng:                rng,
		logger:             log,
		hooks:              hooks,
		state:              GameStateIdle,
		difficulty:         settings.Difficulty,
		timeRemaining:      settings.RoundDuration,
		countdownRemaining: settings.CountdownDuration,
		target:             Target{Radius: float64(settings.TargetRadius)},
		highScores:         NewHighScoreTracker(),
	}

	c.showIdle()
	c.renderer.SetHighScoreText(c.highScores.Text())
	c.renderer.SetDifficultyText(fmt.Sprintf(difficultyTextFmt, c.difficulty))
	c.moveTarget()

	c.logger.Info("controller initialized", "difficulty", c.difficulty, "roundDuration", settings.RoundDuration)
	return c
}

// Start begins the countdown for a new round. Ignored unless idle.
func (c *Controller) Start() {
	if c.state != GameStateIdle {
		c.logger.Debug("start ignored", "state", c.state)
		return
	}

	c.score = 0
	c.timeRemaining = c.settings.RoundDuration
	c.countdownRemaining = c.settings.CountdownDuration
	c.renderer.SetScoreText(scoreText(c.score))
	c.renderer.SetTimeText(timeText(c.timeRemaining))
	c.renderer.HidePlayButton()
	c.setState(GameStateCountdown)

	c.renderer.SetCountdownText(countdownText(c.countdownRemaining))
	c.countdownTimer.replace(c.scheduler, tickInterval, c.countdownTick)
}

func (c *Controller) countdownTick() {
	c.countdownRemaining--
	if c.countdownRemaining > 0 {
		c.renderer.SetCountdownText(countdownText(c.countdownRemaining))
		c.countdownTimer.replace(c.scheduler, tickInterval, c.countdownTick)
		return
	}

	c.renderer.SetCountdownText(countdownGoText)
	c.goLabelTimer.replace(c.scheduler, goLabelDuration, func() {
		c.renderer.SetCountdownText("")
	})

	c.setState(GameStatePlaying)
	c.renderer.EnableClickHandling()
	if _, ok := c.settings.RelocationInterval(c.difficulty); ok {
		c.relocate()
	}
	c.gameTimer.replace(c.scheduler, tickInterval, c.gameTick)
}

func (c *Controller) gameTick() {
	c.timeRemaining--
	c.renderer.SetTimeText(timeText(c.timeRemaining))
	if c.timeRemaining <= 0 {
		c.endRound()
		return
	}
	c.gameTimer.replace(c.scheduler, tickInterval, c.gameTick)
}

// Click handles a press at canvas coordinates (x, y) and reports whether it
// hit the target. Ignored unless a round is being played.
func (c *Controller) Click(x, y float64) bool {
	if c.state != GameStatePlaying {
		return false
	}

	if !c.target.IsHit(geometry.Vector{X: x, Y: y}) {
		c.logger.Debug("target missed", "x", x, "y", y, "target", c.target.Position)
		return false
	}

	c.score++
	c.renderer.SetScoreText(scoreText(c.score))
	c.logger.Debug("target hit", "score", c.score)
	if c.hooks.OnHit != nil {
		c.hooks.OnHit(c.score)
	}

	// A hit restarts the relocation clock.
	if _, ok := c.settings.RelocationInterval(c.difficulty); ok {
		c.relocate()
	}
	return true
}

func (c *Controller) endRound() {
	c.setState(GameStateRoundOver)
	c.renderer.DisableClickHandling()
	c.relocateTimer.cancel(c.scheduler)
	c.gameTimer.cancel(c.scheduler)

	c.renderer.SetTimeText(timeUpText)
	c.renderer.SetFinalScoreText(fmt.Sprintf("Final Score: %d", c.score))

	newRecord := c.highScores.Submit(c.score)
	if newRecord {
		c.logger.Debug("new high score achieved", "score", c.score)
		c.renderer.SetHighScoreText(c.highScores.Text())
	}
	c.renderer.ShowPlayAgainButton()

	c.logger.Info("round over", "score", c.score, "highScore", c.highScores.Best(), "difficulty", c.difficulty)
	if c.hooks.OnRoundOver != nil {
		c.hooks.OnRoundOver(c.score, c.highScores.Best(), newRecord)
	}
}

// Reset returns a finished round to the pre-game screen. Ignored unless the
// round is over.
func (c *Controller) Reset() {
	if c.state != GameStateRoundOver {
		c.logger.Debug("reset ignored", "state", c.state)
		return
	}

	c.cancelTimers()
	c.score = 0
	c.timeRemaining = c.settings.RoundDuration
	c.countdownRemaining = c.settings.CountdownDuration
	c.setState(GameStateIdle)
	c.showIdle()
	c.moveTarget()
}

// SetDifficulty may be called in any state. It takes effect at the next
// relocation scheduling decision.
func (c *Controller) SetDifficulty(d Difficulty) {
	if d == c.difficulty {
		return
	}
	c.logger.Debug("difficulty changed", "from", c.difficulty, "to", d)
	c.difficulty = d
	c.renderer.SetDifficultyText(fmt.Sprintf(difficultyTextFmt, d))
}

// relocate moves the target and, while playing with a relocating difficulty,
// schedules the next move in place of any pending one.
func (c *Controller) relocate() {
	c.moveTarget()

	interval, ok := c.settings.RelocationInterval(c.difficulty)
	if c.state != GameStatePlaying || !ok {
		c.relocateTimer.cancel(c.scheduler)
		return
	}
	c.relocateTimer.replace(c.scheduler, interval, c.relocate)
}

func (c *Controller) moveTarget() {
	c.target.relocate(c.rng, c.settings.SpawnArea())
	c.renderer.SetTargetPosition(c.target.Position.X, c.target.Position.Y, c.target.Radius)
}

func (c *Controller) showIdle() {
	c.renderer.SetScoreText(scoreText(c.score))
	c.renderer.SetTimeText(timeText(c.timeRemaining))
	c.renderer.SetCountdownText("")
	c.renderer.SetFinalScoreText("")
	c.renderer.DisableClickHandling()
	c.renderer.HidePlayAgainButton()
	c.renderer.ShowPlayButton()
}

func (c *Controller) cancelTimers() {
	c.countdownTimer.cancel(c.scheduler)
	c.gameTimer.cancel(c.scheduler)
	c.relocateTimer.cancel(c.scheduler)
	c.goLabelTimer.cancel(c.scheduler)
}

func (c *Controller) setState(next GameState) {
	c.logger.Debug("state changed", "from", c.state, "to", next)
	c.state = next
}

func (c *Controller) State() GameState {
	return c.state
}

func (c *Controller) Difficulty() Difficulty {
	return c.difficulty
}

func (c *Controller) Score() int {
	return c.score
}

func (c *Controller) HighScore() int {
	return c.highScores.Best()
}

func (c *Controller) TimeRemaining() int {
	return c.timeRemaining
}

func (c *Controller) CountdownRemaining() int {
	return c.countdownRemaining
}

func (c *Controller) Target() Target {
	return c.target
}

func scoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

func timeText(seconds int) string {
	return fmt.Sprintf("Time Left: %ds", seconds)
}

func countdownText(seconds int) string {
	return fmt.Sprintf("Starting in: %d", seconds)
}
