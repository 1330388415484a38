package renderer

import (
	"strings"
	"unicode"

	"github.com/gogpu/gg/text"
)

// Article template geometry, in pixels.
const (
	logoHeight     = 240
	logoMargin     = 40
	logoNudgeX     = -15
	logoNudgeY     = 5
	bannerTop      = logoMargin + logoHeight + logoMargin
	bannerPadX     = 60
	bannerPadY     = 50
	accentRule     = 6
	titleLeading   = 1.2
	defaultLogoFit = 0.8
	defaultNudgeX  = -25
	defaultNudgeY  = 5
)

// Ellipsis marks a title clamped to the line limit.
const Ellipsis = "…"

// wrapTitle breaks title into at most maxLines lines no wider than maxWidth.
// When the title needs more lines, the last kept line ends with Ellipsis.
func wrapTitle(title string, face text.Face, maxWidth float64, maxLines int) []string {
	title = strings.Join(strings.Fields(title), " ")
	if title == "" {
		return nil
	}

	wrapped := text.WrapText(title, face, maxWidth, text.WrapWordChar)
	lines := make([]string, 0, len(wrapped))
	for _, w := range wrapped {
		if l := strings.TrimSpace(w.Text); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) <= maxLines {
		return lines
	}

	lines = lines[:maxLines]
	lines[maxLines-1] = ellipsize(lines[maxLines-1], face, maxWidth)
	return lines
}

// ellipsize appends Ellipsis to line, dropping trailing runes until it fits.
func ellipsize(line string, face text.Face, maxWidth float64) string {
	runes := []rune(line)
	for len(runes) > 0 {
		candidate := strings.TrimRightFunc(string(runes), unicode.IsSpace) + Ellipsis
		if face.Advance(candidate) <= maxWidth {
			return candidate
		}
		runes = runes[:len(runes)-1]
	}
	return Ellipsis
}

// fitWithin scales (w, h) to fit inside (maxW, maxH), preserving aspect ratio.
func fitWithin(w, h, maxW, maxH float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	scale := maxW / w
	if s := maxH / h; s < scale {
		scale = s
	}
	return w * scale, h * scale
}
