package logo

import (
	"image"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
)

const (
	monogramInk   = "#252525"
	monogramPaper = "#FFFFFF"
)

// Monogram draws initials in white on a dark rounded square.
// Blank initials yield an empty square.
func Monogram(initials string, size int) image.Image {
	if size <= 0 {
		size = 480
	}
	initials = strings.ToUpper(strings.TrimSpace(initials))

	dc := gg.NewContext(size, size)
	defer func() {
		_ = dc.Close()
	}()

	s := float64(size)
	dc.SetHexColor(monogramInk)
	dc.DrawRoundedRectangle(0, 0, s, s, s*0.18)
	_ = dc.Fill()

	if initials != "" {
		source, err := text.NewFontSource(gobold.TTF)
		if err == nil {
			dc.SetFont(source.Face(s * 0.42))
			dc.SetHexColor(monogramPaper)
			dc.DrawStringAnchored(initials, s/2, s/2, 0.5, 0.35)
		}
	}

	return dc.Image()
}
