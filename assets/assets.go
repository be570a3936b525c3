package assets

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	LabelFont  *text.GoTextFace
	ButtonFont *text.GoTextFace
	BannerFont *text.GoTextFace
	HighFont   *text.GoTextFace
)

func init() {
	regular := loadFontSource(goregular.TTF)
	bold := loadFontSource(gobold.TTF)

	LabelFont = &text.GoTextFace{Source: regular, Size: 16}
	ButtonFont = &text.GoTextFace{Source: regular, Size: 16}
	BannerFont = &text.GoTextFace{Source: regular, Size: 20}
	HighFont = &text.GoTextFace{Source: bold, Size: 16}
}

func loadFontSource(ttf []byte) *text.GoTextFaceSource {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		panic(err)
	}
	return source
}
