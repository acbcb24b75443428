package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/chase/ability"
	"github.com/lixenwraith/chase/component"
	"github.com/lixenwraith/chase/parameter"
	"github.com/lixenwraith/chase/physics"
	"github.com/lixenwraith/chase/protocol"
	"github.com/lixenwraith/chase/vmath"
)

func testBounds() vmath.Rect {
	return vmath.Viewport(parameter.ViewportWidth, parameter.ViewportHeight)
}

func lastOf(msgs []protocol.Message, t protocol.MessageType) (protocol.Message, bool) {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Type == t {
			return msgs[i], true
		}
	}
	return protocol.Message{}, false
}

func TestChaserSimClampsPointerMove(t *testing.T) {
	s := NewChaserSim(testBounds(), 1)
	s.Apply(protocol.Message{Type: protocol.MsgPointerMove, Payload: &protocol.PointerMove{X: 5000, Y: -20}}, 0)

	got := s.World().Target()
	if got.X != 900 || got.Y != 0 {
		t.Errorf("Expected target at (900,0), got %+v", got)
	}
}

func TestChaserSimRejectsNonFinitePointer(t *testing.T) {
	s := NewChaserSim(testBounds(), 1)
	s.Apply(protocol.Message{Type: protocol.MsgPointerMove, Payload: &protocol.PointerMove{X: math.NaN(), Y: math.Inf(1)}}, 0)

	got := s.World().Target()
	if got.X != 0 || got.Y != 600 {
		t.Fatalf("Expected target at (0,600), got %+v", got)
	}

	for i := 0; i < 5; i++ {
		s.Tick(Frame{Now: time.Duration(i) * parameter.FrameUpdateInterval, Dt: 1})
	}
	c := s.World().Chaser()
	if math.IsNaN(c.Rotation) || math.IsNaN(c.X) || math.IsNaN(c.Y) {
		t.Errorf("Expected finite chaser state, got %+v", *c)
	}
}

func TestChaserSimClampsNonFiniteLine(t *testing.T) {
	s := NewChaserSim(testBounds(), 1)
	s.Apply(protocol.Message{Type: protocol.MsgCursorLine, Payload: &protocol.CursorLine{
		X1: math.NaN(), Y1: 100, X2: 200, Y2: math.Inf(-1),
	}}, 0)

	snap := s.Tick(Frame{Now: 16 * time.Millisecond, Dt: 1})
	if len(snap.Lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(snap.Lines))
	}
	l := snap.Lines[0]
	if l.X1 != 0 || l.Y1 != 100 || l.X2 != 200 || l.Y2 != 0 {
		t.Errorf("Expected line (0,100)-(200,0), got %+v", l)
	}
}

func TestChaserSimCatchEndsRound(t *testing.T) {
	s := NewChaserSim(testBounds(), 1)
	c := s.World().Chaser()
	s.Apply(protocol.Message{Type: protocol.MsgPointerMove, Payload: &protocol.PointerMove{X: c.X + 10, Y: c.Y}}, 0)

	snap := s.Tick(Frame{Now: 50 * time.Millisecond, Dt: 1})
	if !snap.GameOver {
		t.Fatal("Expected game over on contact")
	}

	out := s.Outbound()
	if len(out) < 2 {
		t.Fatalf("Expected chaser-move and game-over, got %d messages", len(out))
	}
	if out[len(out)-1].Type != protocol.MsgGameOver {
		t.Errorf("Expected game-over last, got %s", out[len(out)-1].Type)
	}
	if out[len(out)-2].Type != protocol.MsgChaserMove {
		t.Errorf("Expected final chaser-move before game-over, got %s", out[len(out)-2].Type)
	}

	over, score := s.Over()
	if !over || score != snap.FinalScore {
		t.Errorf("Expected over with score %d, got %v %d", snap.FinalScore, over, score)
	}

	// Frozen after the end
	before := *s.World().Chaser()
	s.Tick(Frame{Now: time.Second, Dt: 1, Controls: physics.Input{Right: true}})
	if *s.World().Chaser() != before {
		t.Error("Expected chaser frozen after game over")
	}
	if len(s.Outbound()) != 0 {
		t.Error("Expected no messages after game over")
	}
}

func TestChaserSimCloneContactEndsRound(t *testing.T) {
	s := NewChaserSim(testBounds(), 1)
	w := s.World()
	tp := w.Target()
	w.clones.Replace([]component.Clone{{ID: 1, X: tp.X + 10, Y: tp.Y, Lifetime: parameter.CloneLifetime}})

	snap := s.Tick(Frame{Now: 16 * time.Millisecond, Dt: 1})
	if !snap.GameOver {
		t.Fatal("Expected game over on clone contact")
	}
	out := s.Outbound()
	if len(out) == 0 || out[len(out)-1].Type != protocol.MsgGameOver {
		t.Fatalf("Expected game-over last, got %v", out)
	}
	if over, _ := s.Over(); !over {
		t.Error("Expected round over")
	}
}

func TestChaserSimLandsOnReceivedLine(t *testing.T) {
	s := NewChaserSim(testBounds(), 1)
	c := s.World().Chaser()
	c.Y, c.VY, c.OnSurface = 200, 0, component.SurfaceNone
	s.Apply(protocol.Message{Type: protocol.MsgCursorLine, Payload: &protocol.CursorLine{
		X1: c.X - 75, Y1: 260, X2: c.X + 75, Y2: 260,
	}}, 0)

	for i := 1; i <= 60; i++ {
		s.Tick(Frame{Now: time.Duration(i) * parameter.FrameUpdateInterval, Dt: 1})
		if c.OnSurface == component.SurfaceLine {
			break
		}
	}
	if c.OnSurface != component.SurfaceLine {
		t.Fatalf("Expected chaser standing on the line, got %v at y=%f", c.OnSurface, c.Y)
	}
	if c.Y >= 260 {
		t.Errorf("Expected chaser above the line, got y=%f", c.Y)
	}
}

func TestChaserSimIgnoresPointerAfterGameOver(t *testing.T) {
	s := NewChaserSim(testBounds(), 1)
	c := s.World().Chaser()
	s.Apply(protocol.Message{Type: protocol.MsgPointerMove, Payload: &protocol.PointerMove{X: c.X + 10, Y: c.Y}}, 0)
	if snap := s.Tick(Frame{Now: 16 * time.Millisecond, Dt: 1}); !snap.GameOver {
		t.Fatal("Expected game over on contact")
	}

	before := s.World().Target()
	s.Apply(protocol.Message{Type: protocol.MsgPointerMove, Payload: &protocol.PointerMove{X: 10, Y: 10}}, time.Second)
	if got := s.World().Target(); got != before {
		t.Errorf("Expected target to stay at %+v, got %+v", before, got)
	}
}

func TestChaserSimScoreAccrues(t *testing.T) {
	s := NewChaserSim(testBounds(), 1)
	s.Tick(Frame{Now: 0, Dt: 1})
	snap := s.Tick(Frame{Now: time.Second, Dt: 1})
	if snap.Score != 10 {
		t.Errorf("Expected score 10 after one second, got %d", snap.Score)
	}
}

func TestChaserSimEmitsAbilityStart(t *testing.T) {
	s := NewChaserSim(testBounds(), 1)
	snap := s.Tick(Frame{Now: 0, Dt: 1, Activate: ability.Grow})
	if snap.Ability != ability.Grow {
		t.Errorf("Expected Grow active, got %s", snap.Ability)
	}
	if snap.Chaser.Size != parameter.GrowMultiplier {
		t.Errorf("Expected size %f, got %f", parameter.GrowMultiplier, snap.Chaser.Size)
	}

	msg, ok := lastOf(s.Outbound(), protocol.MsgAbility)
	if !ok {
		t.Fatal("Expected ability message")
	}
	if msg.Payload.(*protocol.AbilityStart).Ability != "GROW" {
		t.Errorf("Expected GROW, got %s", msg.Payload.(*protocol.AbilityStart).Ability)
	}

	// Cooldown blocks a second activation
	s.Tick(Frame{Now: 100 * time.Millisecond, Dt: 1, Activate: ability.Grow})
	if _, ok := lastOf(s.Outbound(), protocol.MsgAbility); ok {
		t.Error("Expected no ability message during cooldown")
	}
}

func TestChaserSimTimeSlowAnnounced(t *testing.T) {
	s := NewChaserSim(testBounds(), 1)
	snap := s.Tick(Frame{Now: 0, Dt: 1, Activate: ability.TimeSlow})
	if snap.TimeScale != parameter.TimeSlowScale {
		t.Errorf("Expected time scale %f, got %f", parameter.TimeSlowScale, snap.TimeScale)
	}
	msg, ok := lastOf(s.Outbound(), protocol.MsgTimeScale)
	if !ok {
		t.Fatal("Expected time-scale message")
	}
	if msg.Payload.(*protocol.TimeScale).Scale != parameter.TimeSlowScale {
		t.Errorf("Unexpected scale payload %+v", msg.Payload)
	}
}

func TestChaserSimLinesExpire(t *testing.T) {
	s := NewChaserSim(testBounds(), 1)
	s.Apply(protocol.Message{Type: protocol.MsgCursorLine, Payload: &protocol.CursorLine{X1: 100, Y1: 100, X2: 200, Y2: 100}}, 0)

	snap := s.Tick(Frame{Now: 100 * time.Millisecond, Dt: 1})
	if len(snap.Lines) != 1 {
		t.Fatalf("Expected 1 live line, got %d", len(snap.Lines))
	}

	snap = s.Tick(Frame{Now: parameter.LineTTL + time.Millisecond, Dt: 1})
	if len(snap.Lines) != 0 {
		t.Errorf("Expected expired line removed, got %d", len(snap.Lines))
	}
}

func TestTargetSimMirrorsChaserMove(t *testing.T) {
	cs := NewChaserSim(testBounds(), 1)
	ts := NewTargetSim(testBounds())

	for i := 0; i < 10; i++ {
		cs.Tick(Frame{Now: time.Duration(i) * parameter.FrameUpdateInterval, Dt: 1, Controls: physics.Input{Right: true}})
	}
	msg, ok := lastOf(cs.Outbound(), protocol.MsgChaserMove)
	if !ok {
		t.Fatal("Expected chaser-move")
	}

	ts.Apply(msg, 0)
	if ts.World().chaser != cs.World().chaser {
		t.Errorf("Expected mirrored chaser %+v, got %+v", cs.World().chaser, ts.World().chaser)
	}
	if ts.World().score != cs.World().score {
		t.Errorf("Expected score %d, got %d", cs.World().score, ts.World().score)
	}
}

func TestTargetSimPointerAndLines(t *testing.T) {
	s := NewTargetSim(testBounds())

	s.Tick(Frame{Now: 0, Dt: 1, Pointer: vmath.V2(100, 100), PointerPressed: true, PointerMoved: true})
	s.Tick(Frame{Now: 16 * time.Millisecond, Dt: 1, Pointer: vmath.V2(100, 150), PointerPressed: true, PointerMoved: true})

	out := s.Outbound()
	move, ok := lastOf(out, protocol.MsgPointerMove)
	if !ok {
		t.Fatal("Expected pointer-move")
	}
	if p := move.Payload.(*protocol.PointerMove); p.X != 100 || p.Y != 150 {
		t.Errorf("Expected pointer at (100,150), got %+v", p)
	}

	line, ok := lastOf(out, protocol.MsgCursorLine)
	if !ok {
		t.Fatal("Expected cursor-line")
	}
	l := line.Payload.(*protocol.CursorLine)
	if l.X1 != 100 || l.Y1 != 100 || l.X2 != 100 || l.Y2 != 150 {
		t.Errorf("Unexpected line %+v", l)
	}
	if n := len(s.World().lines.Lines()); n != 1 {
		t.Errorf("Expected local line, got %d", n)
	}
}

func TestTargetSimTimeSlowDilutesPointer(t *testing.T) {
	s := NewTargetSim(testBounds())
	s.Tick(Frame{Now: 0, Dt: 1, Pointer: vmath.V2(100, 100), PointerMoved: true})
	s.Apply(protocol.Message{Type: protocol.MsgTimeScale, Payload: &protocol.TimeScale{Scale: 0.4}}, 0)

	s.Tick(Frame{Now: 16 * time.Millisecond, Dt: 1, Pointer: vmath.V2(200, 100), PointerMoved: true})
	got := s.World().Target()
	if math.Abs(got.X-140) > 1e-9 {
		t.Errorf("Expected diluted x=140, got %f", got.X)
	}
}

func TestTargetSimPullReemitsPointer(t *testing.T) {
	s := NewTargetSim(testBounds())
	s.Tick(Frame{Now: 0, Dt: 1, Pointer: vmath.V2(300, 300), PointerMoved: true})
	s.Outbound()

	s.Apply(protocol.Message{Type: protocol.MsgPullCursor, Payload: &protocol.PullCursor{DX: -10, DY: 5}}, 0)
	msg, ok := lastOf(s.Outbound(), protocol.MsgPointerMove)
	if !ok {
		t.Fatal("Expected pointer-move after pull")
	}
	if p := msg.Payload.(*protocol.PointerMove); p.X != 290 || p.Y != 305 {
		t.Errorf("Expected (290,305), got %+v", p)
	}
}

func TestTargetSimIgnoresAfterGameOver(t *testing.T) {
	s := NewTargetSim(testBounds())
	s.Apply(protocol.Message{Type: protocol.MsgGameOver, Payload: &protocol.GameOver{Score: 7}}, 0)
	s.Apply(protocol.Message{Type: protocol.MsgChaserMove, Payload: &protocol.ChaserMove{Score: 99}}, 0)

	over, score := s.Over()
	if !over || score != 7 {
		t.Errorf("Expected over with 7, got %v %d", over, score)
	}
	if snap := s.Tick(Frame{Now: time.Second, Dt: 1}); snap.Score != 7 {
		t.Errorf("Expected score 7 after late message, got %d", snap.Score)
	}
}

func TestTargetSimAbilityTimer(t *testing.T) {
	s := NewTargetSim(testBounds())
	s.Apply(protocol.Message{Type: protocol.MsgAbility, Payload: &protocol.AbilityStart{Ability: "DASH"}}, 0)

	snap := s.Tick(Frame{Now: 0, Dt: 1})
	if snap.Ability != ability.Dash {
		t.Fatalf("Expected Dash, got %s", snap.Ability)
	}
	if snap.Remaining != parameter.DashDuration-parameter.AbilityTickDecrement {
		t.Errorf("Expected %v remaining, got %v", parameter.DashDuration-parameter.AbilityTickDecrement, snap.Remaining)
	}
}

func TestSoloSimMovesTargetLocally(t *testing.T) {
	s := NewSoloSim(testBounds(), 3)
	if s.Role() != protocol.RoleTarget {
		t.Errorf("Expected target role, got %s", s.Role())
	}

	snap := s.Tick(Frame{Now: 0, Dt: 1, Pointer: vmath.V2(800, 100), PointerMoved: true})
	if snap.Target.X != 800 || snap.Target.Y != 100 {
		t.Errorf("Expected target at (800,100), got %+v", snap.Target)
	}
	if out := s.Outbound(); out != nil {
		t.Errorf("Expected no outbound in solo, got %d", len(out))
	}
}

func TestSoloSimAutopilotHomes(t *testing.T) {
	s := NewSoloSim(testBounds(), 3)
	start := s.World().chaser.X

	var snap Snapshot
	for i := 0; i < 30; i++ {
		snap = s.Tick(Frame{Now: time.Duration(i) * parameter.FrameUpdateInterval, Dt: 1})
		if snap.GameOver {
			break
		}
	}
	if snap.Chaser.X <= start {
		t.Errorf("Expected chaser to move toward target, x %f -> %f", start, snap.Chaser.X)
	}
}
