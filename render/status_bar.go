package render

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/chase/ability"
	"github.com/lixenwraith/chase/protocol"
	"github.com/lixenwraith/chase/status"
)

// StatusBarRenderer draws role, score, ability and link counters below the playfield
type StatusBarRenderer struct {
	sent     *atomic.Int64
	received *atomic.Int64
	dropped  *atomic.Int64
}

func NewStatusBarRenderer(reg *status.Registry) *StatusBarRenderer {
	return &StatusBarRenderer{
		sent:     reg.Ints.Get(status.KeyMsgSent),
		received: reg.Ints.Get(status.KeyMsgReceived),
		dropped:  reg.Ints.Get(status.KeyMsgDropped),
	}
}

func (s *StatusBarRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	snap := ctx.Snap
	y := ctx.StatusY()
	buf.FillRow(y, RgbStatusBg)

	x := buf.Text(0, y, " CHASE ", RgbStatusBg, RgbStatusText)
	x++

	switch snap.Role {
	case protocol.RoleChaser:
		x = buf.Text(x, y, " CHASER ", RgbStatusBg, RgbRoleChaser)
	case protocol.RoleTarget:
		x = buf.Text(x, y, " TARGET ", RgbStatusBg, RgbRoleTarget)
	default:
		x = buf.Text(x, y, " "+snap.Phase+" ", RgbStatusText, RgbStatusBg)
	}
	x++

	if snap.Opponent != "" {
		x = buf.Text(x, y, "vs "+snap.Opponent, RgbStatusText, RgbStatusBg)
		x += 2
	}

	x = buf.Text(x, y, fmt.Sprintf("score %d", snap.Score), RgbStatusText, RgbStatusBg)
	x += 2

	if snap.Ability != ability.None {
		x = buf.Text(x, y, fmt.Sprintf("%s %.1fs", snap.Ability, snap.Remaining.Seconds()), RgbAbility, RgbStatusBg)
		x += 2
	}
	if snap.TimeScale > 0 && snap.TimeScale < 1 {
		x = buf.Text(x, y, fmt.Sprintf("x%.1f", snap.TimeScale), RgbWarning, RgbStatusBg)
		x += 2
	}

	if s.sent != nil {
		net := fmt.Sprintf("tx %d rx %d", s.sent.Load(), s.received.Load())
		if d := s.dropped.Load(); d > 0 {
			net += fmt.Sprintf(" drop %d", d)
		}
		buf.Text(max(ctx.ScreenWidth-len(net)-1, x), y, net, RgbStatusText, RgbStatusBg)
	}
}
