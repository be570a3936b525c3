package display

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/clickcircle/assets"
	"github.com/meghashyamc/clickcircle/game"
	"github.com/meghashyamc/clickcircle/geometry"
	"github.com/meghashyamc/clickcircle/logger"
)

const (
	defaultPanelHeight = 220
	panelMargin        = 20
)

var (
	canvasColor    = color.RGBA{255, 255, 255, 255}
	panelColor     = color.RGBA{240, 240, 240, 255}
	targetColor    = color.RGBA{0, 0, 255, 255}
	outlineColor   = color.RGBA{0, 0, 0, 255}
	labelColor     = color.RGBA{20, 20, 30, 255}
	highScoreColor = color.RGBA{220, 0, 0, 255}
)

// Window is the ebiten frontend. It shows what the controller tells it to and
// forwards mouse and keyboard input back.
type Window struct {
	title       string
	width       int
	height      int
	panelHeight int
	scheduler   *game.TickScheduler
	controller  *game.Controller
	logger      logger.Logger

	target        game.Target
	clicksEnabled bool

	scoreText      string
	timeText       string
	countdownText  string
	finalScoreText string
	highScoreText  string
	difficultyText string

	playButton       *Button
	playAgainButton  *Button
	difficultyButton map[game.Difficulty]*Button
}

func NewWindow(settings game.Settings, title string, panelHeight int, scheduler *game.TickScheduler, log logger.Logger) *Window {
	if panelHeight <= 0 {
		panelHeight = defaultPanelHeight
	}

	w := &Window{
		title:            title,
		width:            settings.Width,
		height:           settings.Height,
		panelHeight:      panelHeight,
		scheduler:        scheduler,
		logger:           log,
		difficultyButton: make(map[game.Difficulty]*Button, len(game.Difficulties)),
	}

	top := float64(settings.Height)
	buttonX := float64(settings.Width)/2 - 60
	w.playButton = NewButton(geometry.NewRect(buttonX, top+80, 120, 36), "Play")
	w.playAgainButton = NewButton(geometry.NewRect(buttonX, top+80, 120, 36), "Play Again")
	w.playAgainButton.visible = false

	for i, d := range game.Difficulties {
		rect := geometry.NewRect(200+float64(i)*90, top+135, 80, 30)
		w.difficultyButton[d] = NewButton(rect, d.String())
	}
	w.selectDifficulty(settings.Difficulty)

	return w
}

// Attach connects the controller that drives this window. It must be called
// before Run.
func (w *Window) Attach(controller *game.Controller) {
	w.controller = controller
	w.selectDifficulty(controller.Difficulty())
}

func (w *Window) Run() error {
	w.logger.Info("starting game window", "width", w.width, "height", w.height+w.panelHeight)
	w.setupWindow()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(w)
}

func (w *Window) setupWindow() {
	ebiten.SetWindowSize(w.width, w.height+w.panelHeight)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

func (w *Window) Update() error {
	w.scheduler.Advance(time.Second / time.Duration(ebiten.TPS()))

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if w.playButton.visible {
			w.controller.Start()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if w.playAgainButton.visible {
			w.controller.Reset()
		}
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		w.setDifficulty(game.DifficultyEasy)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		w.setDifficulty(game.DifficultyMedium)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		w.setDifficulty(game.DifficultyHard)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		w.handleClick(float64(x), float64(y))
	}

	return nil
}

// handleClick routes a left click: buttons first, then the canvas.
func (w *Window) handleClick(x, y float64) {
	switch {
	case w.playButton.IsClicked(x, y):
		w.controller.Start()
		return
	case w.playAgainButton.IsClicked(x, y):
		w.controller.Reset()
		return
	}

	for d, b := range w.difficultyButton {
		if b.IsClicked(x, y) {
			w.setDifficulty(d)
			return
		}
	}

	canvas := geometry.NewRect(0, 0, float64(w.width), float64(w.height))
	if w.clicksEnabled && canvas.Contains(geometry.Vector{X: x, Y: y}) {
		w.controller.Click(x, y)
	}
}

func (w *Window) setDifficulty(d game.Difficulty) {
	w.controller.SetDifficulty(d)
	w.selectDifficulty(d)
}

func (w *Window) selectDifficulty(d game.Difficulty) {
	for candidate, b := range w.difficultyButton {
		b.selected = candidate == d
	}
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(panelColor)
	vector.DrawFilledRect(screen, 0, 0, float32(w.width), float32(w.height), canvasColor, false)

	// Target
	x, y, r := float32(w.target.Position.X), float32(w.target.Position.Y), float32(w.target.Radius)
	vector.DrawFilledCircle(screen, x, y, r, targetColor, true)
	vector.StrokeCircle(screen, x, y, r, 1, outlineColor, true)

	top := float64(w.height)
	drawLabel(screen, w.scoreText, assets.LabelFont, panelMargin, top+10, labelColor)
	drawLabel(screen, w.timeText, assets.LabelFont, float64(w.width)/2, top+10, labelColor)

	// The countdown and the final score never show at the same time.
	banner := w.countdownText
	if len(w.finalScoreText) > 0 {
		banner = w.finalScoreText
	}
	drawLabel(screen, banner, assets.BannerFont, panelMargin, top+42, labelColor)

	w.playButton.Draw(screen)
	w.playAgainButton.Draw(screen)

	drawLabel(screen, w.difficultyText, assets.LabelFont, panelMargin, top+140, labelColor)
	for _, d := range game.Difficulties {
		w.difficultyButton[d].Draw(screen)
	}

	hsWidth, hsHeight := text.Measure(w.highScoreText, assets.HighFont, 0)
	drawLabel(screen, w.highScoreText, assets.HighFont,
		float64(w.width)-hsWidth-10, float64(w.height+w.panelHeight)-hsHeight-10, highScoreColor)
}

func drawLabel(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, col color.Color) {
	if len(s) == 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, face, op)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return w.width, w.height + w.panelHeight
}

func (w *Window) SetTargetPosition(x, y, radius float64) {
	w.target = game.Target{Position: geometry.Vector{X: x, Y: y}, Radius: radius}
}

func (w *Window) SetScoreText(s string)      { w.scoreText = s }
func (w *Window) SetTimeText(s string)       { w.timeText = s }
func (w *Window) SetCountdownText(s string)  { w.countdownText = s }
func (w *Window) SetFinalScoreText(s string) { w.finalScoreText = s }
func (w *Window) SetHighScoreText(s string)  { w.highScoreText = s }
func (w *Window) SetDifficultyText(s string) { w.difficultyText = s }

func (w *Window) ShowPlayButton()      { w.playButton.visible = true }
func (w *Window) HidePlayButton()      { w.playButton.visible = false }
func (w *Window) ShowPlayAgainButton() { w.playAgainButton.visible = true }
func (w *Window) HidePlayAgainButton() { w.playAgainButton.visible = false }

func (w *Window) EnableClickHandling()  { w.clicksEnabled = true }
func (w *Window) DisableClickHandling() { w.clicksEnabled = false }
