// Package terminal draws the game into a terminal and takes mouse clicks on
// the grid. The canvas is scaled so that each cell covers a fixed patch of
// logical canvas units.
package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/meghashyamc/clickcircle/game"
	"github.com/meghashyamc/clickcircle/geometry"
	"github.com/meghashyamc/clickcircle/logger"
)

const (
	statusLines = 6
	frameTime   = 16 * time.Millisecond // ~60 FPS
)

var (
	canvasStyle    = tcell.StyleDefault.Background(tcell.ColorWhite)
	targetStyle    = tcell.StyleDefault.Foreground(tcell.ColorBlue).Background(tcell.ColorWhite)
	borderStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	labelStyle     = tcell.StyleDefault
	bannerStyle    = tcell.StyleDefault.Bold(true)
	highScoreStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

type Screen struct {
	screen     tcell.Screen
	settings   game.Settings
	scheduler  *game.TickScheduler
	controller *game.Controller
	logger     logger.Logger

	target           game.Target
	clicksEnabled    bool
	playVisible      bool
	playAgainVisible bool
	mouseDown        bool
	quit             bool

	scoreText      string
	timeText       string
	countdownText  string
	finalScoreText string
	highScoreText  string
	difficultyText string
}

func NewScreen(settings game.Settings, scheduler *game.TickScheduler, log logger.Logger) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	return newScreen(screen, settings, scheduler, log)
}

func newScreen(screen tcell.Screen, settings game.Settings, scheduler *game.TickScheduler, log logger.Logger) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	return &Screen{
		screen:    screen,
		settings:  settings,
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// Attach connects the controller that drives this screen. It must be called
// before Run.
func (s *Screen) Attach(controller *game.Controller) {
	s.controller = controller
}

// Run reads input and advances the game until the player quits. Input is
// read on a separate goroutine but handled here, so the controller only ever
// runs on this goroutine.
func (s *Screen) Run() error {
	defer s.screen.Fini()
	s.logger.Info("starting terminal game")

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	last := time.Now()
	s.draw()
	for !s.quit {
		select {
		case ev := <-events:
			s.handleEvent(ev)

		case now := <-ticker.C:
			s.scheduler.Advance(now.Sub(last))
			last = now
			s.draw()
		}
	}

	s.logger.Info("terminal game closed")
	return nil
}

func (s *Screen) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			s.quit = true
			return
		}
		if ev.Key() == tcell.KeyRune {
			s.handleRune(ev.Rune())
		}

	case *tcell.EventMouse:
		// Holding the button produces a stream of events; act on the press only.
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !s.mouseDown {
			col, row := ev.Position()
			s.handleClick(col, row)
		}
		s.mouseDown = pressed

	case *tcell.EventResize:
		s.screen.Sync()
	}
}

func (s *Screen) handleRune(r rune) {
	switch r {
	case 'q':
		s.quit = true
	case 'p', ' ':
		if s.playVisible {
			s.controller.Start()
		}
	case 'r':
		if s.playAgainVisible {
			s.controller.Reset()
		}
	case '1':
		s.controller.SetDifficulty(game.DifficultyEasy)
	case '2':
		s.controller.SetDifficulty(game.DifficultyMedium)
	case '3':
		s.controller.SetDifficulty(game.DifficultyHard)
	}
}

func (s *Screen) handleClick(col, row int) {
	if !s.clicksEnabled {
		return
	}
	p, ok := s.toCanvas(col, row)
	if !ok {
		return
	}
	s.controller.Click(p.X, p.Y)
}

// grid returns the number of columns and rows the canvas occupies.
func (s *Screen) grid() (cols, rows int) {
	width, height := s.screen.Size()
	return max(width, 1), max(height-statusLines, 1)
}

// toCanvas maps a cell to the canvas point at its centre.
func (s *Screen) toCanvas(col, row int) (geometry.Vector, bool) {
	cols, rows := s.grid()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return geometry.Vector{}, false
	}
	cellWidth := float64(s.settings.Width) / float64(cols)
	cellHeight := float64(s.settings.Height) / float64(rows)
	return geometry.Vector{
		X: (float64(col) + 0.5) * cellWidth,
		Y: (float64(row) + 0.5) * cellHeight,
	}, true
}

// toCell maps a canvas point to the cell containing it.
func (s *Screen) toCell(p geometry.Vector) (col, row int) {
	cols, rows := s.grid()
	col = int(p.X * float64(cols) / float64(s.settings.Width))
	row = int(p.Y * float64(rows) / float64(s.settings.Height))
	return min(col, cols-1), min(row, rows-1)
}

func (s *Screen) draw() {
	s.screen.Clear()
	cols, rows := s.grid()

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			s.screen.SetContent(col, row, ' ', nil, canvasStyle)
		}
	}
	s.drawTarget()

	for col := 0; col < cols; col++ {
		s.screen.SetContent(col, rows, '─', nil, borderStyle)
	}
	s.drawText(0, rows+1, labelStyle, fmt.Sprintf("%s   %s   %s", s.scoreText, s.timeText, s.difficultyText))

	banner := s.countdownText
	if len(s.finalScoreText) > 0 {
		banner = s.finalScoreText
	}
	s.drawText(0, rows+2, bannerStyle, banner)
	s.drawText(0, rows+3, labelStyle, s.helpText())
	s.drawText(max(cols-len(s.highScoreText)-1, 0), rows+4, highScoreStyle, s.highScoreText)

	s.screen.Show()
}

func (s *Screen) drawTarget() {
	if s.target.Radius <= 0 {
		return
	}
	cols, rows := s.grid()
	// Paint every cell whose centre falls inside the circle, and always the
	// cell under the centre so tiny targets stay visible.
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p, _ := s.toCanvas(col, row)
			if p.Sub(s.target.Position).Magnitude() <= s.target.Radius {
				s.screen.SetContent(col, row, '█', nil, targetStyle)
			}
		}
	}
	col, row := s.toCell(s.target.Position)
	s.screen.SetContent(col, row, '█', nil, targetStyle)
}

func (s *Screen) drawText(x, y int, style tcell.Style, str string) {
	for i, r := range []rune(str) {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (s *Screen) helpText() string {
	switch {
	case s.playVisible:
		return "[p] play   [1] easy  [2] medium  [3] hard   [q] quit"
	case s.playAgainVisible:
		return "[r] play again   [1] easy  [2] medium  [3] hard   [q] quit"
	default:
		return "click the circle!   [q] quit"
	}
}

func (s *Screen) SetTargetPosition(x, y, radius float64) {
	s.target = game.Target{Position: geometry.Vector{X: x, Y: y}, Radius: radius}
}

func (s *Screen) SetScoreText(str string)      { s.scoreText = str }
func (s *Screen) SetTimeText(str string)       { s.timeText = str }
func (s *Screen) SetCountdownText(str string)  { s.countdownText = str }
func (s *Screen) SetFinalScoreText(str string) { s.finalScoreText = str }
func (s *Screen) SetHighScoreText(str string)  { s.highScoreText = str }
func (s *Screen) SetDifficultyText(str string) { s.difficultyText = str }

func (s *Screen) ShowPlayButton()      { s.playVisible = true }
func (s *Screen) HidePlayButton()      { s.playVisible = false }
func (s *Screen) ShowPlayAgainButton() { s.playAgainVisible = true }
func (s *Screen) HidePlayAgainButton() { s.playAgainVisible = false }

func (s *Screen) EnableClickHandling()  { s.clicksEnabled = true }
func (s *Screen) DisableClickHandling() { s.clicksEnabled = false }
