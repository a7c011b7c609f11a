package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/akovalev/fridayfall/internal/core"
	"github.com/akovalev/fridayfall/internal/leaderboard"
)

// Visual characters for rendering
const (
	GoodChar   = '$'
	BadChar    = 'X'
	PlayerChar = '█'
	HeartChar  = '♥'
)

var slotColors = [...]core.Color{core.ColorBrightCyan, core.ColorYellow}

func slotColor(slot int) core.Color {
	if slot >= 0 && slot < len(slotColors) {
		return slotColors[slot]
	}
	return core.ColorWhite
}

// Render draws the current phase onto the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	switch g.phase {
	case PhaseModeSelect:
		g.renderModeSelect(dst)
	case PhasePlaying:
		g.renderPlaying(dst)
	case PhaseNameEntry:
		g.renderNameEntry(dst)
	case PhaseGameOver:
		g.renderGameOver(dst)
	}
}

// renderModeSelect draws the title screen with the mode picker and the
// current leaderboard.
func (g *Game) renderModeSelect(dst *core.Screen) {
	dst.DrawTextCentered(1, "B L A C K   F R I D A Y")
	dst.DrawTextCentered(2, "grab the deals, dodge the junk")

	one := "  1 PLAYER  "
	two := "  2 PLAYERS  "
	if g.menuSelection == leaderboard.ModeSingle {
		one = "> 1 PLAYER <"
	} else {
		two = "> 2 PLAYERS <"
	}
	gap := "     "
	line := one + gap + two
	x := (dst.Width() - len(line)) / 2
	dst.DrawTextColored(x, 4, one, pickerColor(g.menuSelection == leaderboard.ModeSingle))
	dst.DrawTextColored(x+len(one)+len(gap), 4, two, pickerColor(g.menuSelection == leaderboard.ModeTwo))

	dst.DrawTextCentered(6, "←/→ choose   enter start   1/2 quick start")

	g.renderTopScores(dst, 8, 5)
}

func pickerColor(selected bool) core.Color {
	if selected {
		return core.ColorBrightGreen
	}
	return core.ColorGray
}

// renderTopScores draws up to limit leaderboard rows starting at row y.
func (g *Game) renderTopScores(dst *core.Screen, y, limit int) {
	top := g.board.Top(limit)
	if len(top) == 0 {
		dst.DrawTextCentered(y, "no scores yet")
		return
	}

	dst.DrawTextCentered(y, "- TOP SCORES -")
	for i, e := range top {
		row := fmt.Sprintf("%2d. %s  %6d  %s", i+1, e.Name, e.Score, e.Mode)
		x := (dst.Width() - len(row)) / 2
		dst.DrawTextColored(x, y+1+i, row, rankColor(i))
	}
}

func rankColor(rank int) core.Color {
	switch rank {
	case 0:
		return core.ColorYellow
	case 1:
		return core.ColorBrightWhite
	default:
		return core.ColorDefault
	}
}

// renderPlaying draws the HUD row, the playfield border, and the field
// contents scaled from logical field coordinates to screen cells.
func (g *Game) renderPlaying(dst *core.Screen) {
	r := g.round
	if r == nil {
		return
	}

	// HUD: one segment per slot, plus the difficulty multiplier on the right
	var hud strings.Builder
	for _, p := range r.Players {
		if hud.Len() > 0 {
			hud.WriteString("   ")
		}
		hearts := strings.Repeat(string(HeartChar), p.Health)
		fmt.Fprintf(&hud, "P%d %5d %s", p.Slot+1, p.Score, hearts)
	}
	dst.DrawText(1, 0, hud.String())

	mult := fmt.Sprintf("x%.1f", r.Difficulty)
	dst.DrawText(dst.Width()-len(mult)-1, 0, mult)

	// Playfield box under the HUD
	boxX, boxY := 0, 1
	boxW, boxH := dst.Width(), dst.Height()-1
	if boxW < 4 || boxH < 4 {
		return
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)

	innerX, innerY := boxX+1, boxY+1
	innerW, innerH := boxW-2, boxH-2

	toCellX := func(lx float64) int {
		return innerX + int(lx/r.tuning.fieldW*float64(innerW))
	}
	toCellY := func(ly float64) int {
		return innerY + int(ly/r.tuning.fieldH*float64(innerH))
	}

	for _, obj := range r.Objects {
		if obj.Y < 0 {
			continue
		}
		ch, col := GoodChar, core.ColorBrightGreen
		if obj.Kind == BadItem {
			ch, col = BadChar, core.ColorBrightRed
		}
		dst.SetColored(toCellX(obj.X), toCellY(obj.Y), ch, col)
	}

	pw := core.Max(2, int(r.tuning.playerW/r.tuning.fieldW*float64(innerW)))
	for _, p := range r.Players {
		cx, cy := toCellX(p.X), toCellY(p.Y)
		col := slotColor(p.Slot)
		dst.FillRect(cx, cy, pw, 1, PlayerChar, col)
		dst.DrawTextColored(cx, cy+1, fmt.Sprintf("P%d", p.Slot+1), col)
	}
}

// renderNameEntry draws the letter editor for the front pending score.
func (g *Game) renderNameEntry(dst *core.Screen) {
	cur, ok := g.entry.current()
	if !ok {
		return
	}

	dst.DrawTextCentered(2, "ENTER YOUR NAME")
	who := fmt.Sprintf("PLAYER %d - %d PTS", cur.Slot+1, cur.Score)
	x := (dst.Width() - len([]rune(who))) / 2
	dst.DrawTextColored(x, 4, who, slotColor(cur.Slot))

	// Letters spaced out, caret under the active one
	const spacing = 4
	name := g.entry.Name()
	startX := (dst.Width() - (len(name)-1)*spacing - 1) / 2
	for i, c := range name {
		col := core.ColorWhite
		if i == g.entry.cursor {
			col = core.ColorBrightGreen
		}
		dst.SetColored(startX+i*spacing, 6, c, col)
	}
	dst.SetColored(startX+g.entry.cursor*spacing, 7, '^', core.ColorBrightGreen)

	dst.DrawTextCentered(9, "↑/↓ letter   ←/→ position   enter confirm")
}

// renderGameOver draws final scores and the refreshed leaderboard.
func (g *Game) renderGameOver(dst *core.Screen) {
	dst.DrawTextColored((dst.Width()-9)/2, 1, "GAME OVER", core.ColorBrightRed)

	// Finals are archived in elimination order; show them by slot instead
	finals := append([]FinalScore(nil), g.finals...)
	sort.Slice(finals, func(i, j int) bool { return finals[i].Slot < finals[j].Slot })

	y := 3
	for _, f := range finals {
		row := fmt.Sprintf("PLAYER %d  %6d", f.Slot+1, f.Score)
		x := (dst.Width() - len(row)) / 2
		dst.DrawTextColored(x, y, row, slotColor(f.Slot))
		y++
	}

	g.renderTopScores(dst, y+1, 5)

	dst.DrawTextCentered(dst.Height()-2, "1/2 play again   enter menu")
}
