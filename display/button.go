package display

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/clickcircle/assets"
	"github.com/meghashyamc/clickcircle/geometry"
)

var (
	buttonFill         = color.RGBA{225, 225, 225, 255}
	buttonSelectedFill = color.RGBA{70, 130, 180, 255}
	buttonBorder       = color.RGBA{40, 40, 40, 255}
	buttonText         = color.RGBA{20, 20, 30, 255}
	buttonSelectedText = color.RGBA{240, 240, 240, 255}
)

type Button struct {
	rect     geometry.Rect
	label    string
	visible  bool
	selected bool
}

func NewButton(rect geometry.Rect, label string) *Button {
	return &Button{
		rect:    rect,
		label:   label,
		visible: true,
	}
}

// IsClicked reports whether a press at (x, y) lands on a visible button.
func (b *Button) IsClicked(x, y float64) bool {
	return b.visible && b.rect.Contains(geometry.Vector{X: x, Y: y})
}

func (b *Button) Draw(screen *ebiten.Image) {
	if !b.visible {
		return
	}

	fill, textColor := buttonFill, buttonText
	if b.selected {
		fill, textColor = buttonSelectedFill, buttonSelectedText
	}

	x, y := float32(b.rect.X), float32(b.rect.Y)
	w, h := float32(b.rect.Width), float32(b.rect.Height)
	vector.DrawFilledRect(screen, x, y, w, h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, 1, buttonBorder, false)

	labelWidth, labelHeight := text.Measure(b.label, assets.ButtonFont, 0)
	center := b.rect.Center()
	op := &text.DrawOptions{}
	op.GeoM.Translate(center.X-labelWidth/2, center.Y-labelHeight/2)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, b.label, assets.ButtonFont, op)
}
