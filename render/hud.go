package render

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/river-raid/engine"
)

// HUD is the status line and banner overlay; it implements engine.UI
// Calls arrive from the session tick and Draw runs on the same goroutine
type HUD struct {
	clock engine.Clock

	score, high     int
	lives, maxLives int
	paused, over    bool

	message string
	expires time.Time
}

var _ engine.UI = (*HUD)(nil)

func NewHUD(clock engine.Clock) *HUD {
	return &HUD{clock: clock}
}

func (h *HUD) ScoreChanged(score, high int) {
	h.score, h.high = score, high
}

func (h *HUD) LivesChanged(lives, max int) {
	h.lives, h.maxLives = lives, max
	// A reset restores lives; the previous game over banner goes with it
	if lives > 0 {
		h.over = false
	}
}

func (h *HUD) GameOver(score, high int) {
	h.score, h.high = score, high
	h.over = true
}

// Message shows text until d has elapsed on the HUD clock; a newer message replaces it
func (h *HUD) Message(text string, d time.Duration) {
	h.message = text
	h.expires = h.clock.Now().Add(d)
}

func (h *HUD) PauseChanged(paused bool) { h.paused = paused }

// ActiveMessage returns the current message while it has not expired
func (h *HUD) ActiveMessage() (string, bool) {
	if h.message == "" || !h.clock.Now().Before(h.expires) {
		return "", false
	}
	return h.message, true
}

func (h *HUD) Score() (score, high int) { return h.score, h.high }
func (h *HUD) Lives() (lives, max int)  { return h.lives, h.maxLives }
func (h *HUD) Paused() bool             { return h.paused }
func (h *HUD) Over() bool               { return h.over }

// StatusLine formats the top row
func (h *HUD) StatusLine() string {
	lost := max(h.maxLives-h.lives, 0)
	hearts := strings.Repeat("♥", max(h.lives, 0)) + strings.Repeat("·", lost)
	return fmt.Sprintf(" SCORE %06d  HI %06d  LIVES %s", h.score, h.high, hearts)
}

// Draw renders the status line, the transient message and any banner
func (h *HUD) Draw(screen tcell.Screen, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	bar := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusBar)
	for x := 0; x < width; x++ {
		screen.SetContent(x, 0, ' ', nil, bar)
	}
	line := h.StatusLine()
	drawText(screen, 0, 0, width, line, bar)
	// Hearts in their own color
	if i := strings.Index(line, "LIVES "); i >= 0 {
		start := utf8.RuneCountInString(line[:i+len("LIVES ")])
		for n := 0; n < h.lives && start+n < width; n++ {
			screen.SetContent(start+n, 0, '♥', nil, bar.Foreground(RgbLives))
		}
	}

	mid := height / 2
	banner := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbBanner).Bold(true)
	switch {
	case h.over:
		drawCentred(screen, mid-1, width, " GAME OVER ", banner)
		drawCentred(screen, mid, width, fmt.Sprintf(" SCORE %d  HI %d ", h.score, h.high), banner)
		drawCentred(screen, mid+1, width, " r: restart  q: quit ", banner)
	case h.paused:
		drawCentred(screen, mid-1, width, " PAUSED ", banner)
	}

	if msg, ok := h.ActiveMessage(); ok {
		style := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbMessage)
		drawCentred(screen, mid+3, width, " "+msg+" ", style)
	}
}

// drawText writes s from (x, y), clipped at width
func drawText(screen tcell.Screen, x, y, width int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= width {
			return
		}
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func drawCentred(screen tcell.Screen, y, width int, s string, style tcell.Style) {
	n := utf8.RuneCountInString(s)
	x := max((width-n)/2, 0)
	drawText(screen, x, y, width, s, style)
}
