package render

import (
	"fmt"

	"github.com/lixenwraith/chase/engine"
	"github.com/lixenwraith/chase/protocol"
)

// OverlayRenderer shows lobby hints and the end-of-session notice
type OverlayRenderer struct{}

func (r *OverlayRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	lines := overlayText(ctx.Snap)
	if len(lines) == 0 {
		return
	}

	top := ctx.Grid.Rows/2 - len(lines)/2
	for i, line := range lines {
		x := (ctx.ScreenWidth - len([]rune(line))) / 2
		buf.Text(max(x, 0), top+i, line, RgbOverlayText, RgbOverlayBg)
	}
}

func overlayText(snap engine.Snapshot) []string {
	switch snap.Phase {
	case "connecting":
		return []string{" Waiting for opponent... ", " Esc to quit "}
	case "lobby":
		return []string{" Opponent connected ", " c: play chaser   t: play target "}
	}

	switch snap.Outcome {
	case engine.OutcomeCaught:
		verdict := " Caught! "
		if snap.Role == protocol.RoleChaser {
			verdict = " Target caught! "
		}
		return []string{verdict, fmt.Sprintf(" Final score %d ", snap.FinalScore), " Esc to quit "}
	case engine.OutcomeSessionLost:
		return []string{" Connection lost ", " Esc to quit "}
	case engine.OutcomeOpponentLeft:
		return []string{" Opponent left the game ", " Esc to quit "}
	}
	return nil
}
