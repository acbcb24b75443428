package ability

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/chase/component"
	"github.com/lixenwraith/chase/parameter"
	"github.com/lixenwraith/chase/vmath"
)

// mockWorld records effect calls
type mockWorld struct {
	chaser    component.Chaser
	target    vmath.Vec2
	rng       *vmath.FastRand
	clones    int
	waves     int
	timeScale float64
	pulled    vmath.Vec2
}

func newMockWorld() *mockWorld {
	return &mockWorld{
		chaser:    component.Chaser{X: 100, Y: 500, Size: 1, Opacity: 1},
		target:    vmath.V2(400, 500),
		rng:       vmath.NewFastRand(7),
		timeScale: 1,
	}
}

func (m *mockWorld) Chaser() *component.Chaser { return &m.chaser }
func (m *mockWorld) Target() vmath.Vec2 { return m.target }
func (m *mockWorld) Bounds() vmath.Rect { return vmath.Viewport(900, 600) }
func (m *mockWorld) Rand() *vmath.FastRand { return m.rng }
func (m *mockWorld) SpawnClones(vmath.Vec2) { m.clones++ }
func (m *mockWorld) SpawnShockwaves(vmath.Vec2) { m.waves++ }
func (m *mockWorld) SetTimeScale(s float64) { m.timeScale = s }
func (m *mockWorld) PullTarget(d vmath.Vec2) {
	m.pulled = vmath.V2Add(m.pulled, d)
}

func TestDashCooldownWindow(t *testing.T) {
	s := NewSystem()
	ms := time.Millisecond

	if !s.Activate(Dash, 0) {
		t.Fatal("Expected first dash to activate")
	}
	expiry := s.Expiry(Dash)
	if expiry != 3000*ms {
		t.Errorf("Expected expiry 3000ms, got %v", expiry)
	}

	// Let the dash run out so only the cooldown gates the next request
	w := newMockWorld()
	for s.Active() != None {
		s.Tick(w, 1)
	}

	if s.Activate(Dash, 1000*ms) {
		t.Error("Expected dash rejected during cooldown")
	}
	if s.Expiry(Dash) != expiry {
		t.Errorf("Rejected request mutated expiry: %v", s.Expiry(Dash))
	}

	if !s.Activate(Dash, 3001*ms) {
		t.Error("Expected dash to activate after cooldown")
	}
}

func TestActivateWhileActiveIsNoOp(t *testing.T) {
	s := NewSystem()
	s.Activate(Grow, 0)
	before := s.Expiry(Ghost)

	if s.Activate(Ghost, 10*time.Second) {
		t.Error("Expected activation rejected while another ability is active")
	}
	if s.Active() != Grow {
		t.Errorf("Expected Grow to remain active, got %v", s.Active())
	}
	if s.Expiry(Ghost) != before {
		t.Error("Rejected request mutated cooldown")
	}
}

func TestActivateNoneRejected(t *testing.T) {
	s := NewSystem()
	if s.Activate(None, 0) || s.Activate(kindCount, 0) {
		t.Error("Expected invalid kinds rejected")
	}
}

func TestOneShotFiresOnce(t *testing.T) {
	s := NewSystem()
	w := newMockWorld()
	s.Activate(Clone, 0)

	for i := 0; i < 10; i++ {
		s.Tick(w, 1)
	}
	if w.clones != 1 {
		t.Errorf("Expected one clone spawn, got %d", w.clones)
	}
}

func TestDurationCountdown(t *testing.T) {
	s := NewSystem()
	w := newMockWorld()
	s.Activate(Teleport, 0)

	ticks := 0
	var ended Kind
	for s.Active() != None {
		ended = s.Tick(w, 1)
		ticks++
	}
	// 200ms / 16ms rounds up to 13 ticks
	if ticks != 13 {
		t.Errorf("Expected 13 ticks, got %d", ticks)
	}
	if ended != Teleport {
		t.Errorf("Expected Teleport reported on exit, got %v", ended)
	}
}

func TestTimeSlowRestores(t *testing.T) {
	s := NewSystem()
	w := newMockWorld()
	s.Activate(TimeSlow, 0)

	s.Tick(w, 1)
	if w.timeScale != parameter.TimeSlowScale {
		t.Errorf("Expected scale %f, got %f", parameter.TimeSlowScale, w.timeScale)
	}
	for s.Active() != None {
		s.Tick(w, 1)
	}
	if w.timeScale != 1 {
		t.Errorf("Expected scale restored to 1, got %f", w.timeScale)
	}
}

func TestVortexPullsEveryTick(t *testing.T) {
	s := NewSystem()
	w := newMockWorld()
	s.Activate(Vortex, 0)

	s.Tick(w, 1)
	s.Tick(w, 1)
	// Chaser is to the left of the target
	if math.Abs(w.pulled.X+2*parameter.VortexPull) > 1e-9 || math.Abs(w.pulled.Y) > 1e-9 {
		t.Errorf("Expected pull (%f,0), got %+v", -2*parameter.VortexPull, w.pulled)
	}
}

func TestSuperJumpAndDashImpulse(t *testing.T) {
	s := NewSystem()
	w := newMockWorld()
	w.chaser.OnSurface = component.SurfaceGround
	s.Activate(SuperJump, 0)
	s.Tick(w, 1)
	if w.chaser.VY != -parameter.SuperJumpVY || math.Abs(w.chaser.VX-parameter.SuperJumpVX) > 1e-9 {
		t.Errorf("Unexpected super jump velocity (%f,%f)", w.chaser.VX, w.chaser.VY)
	}
	if w.chaser.OnSurface != component.SurfaceNone {
		t.Error("Expected chaser airborne after super jump")
	}

	s = NewSystem()
	w = newMockWorld()
	s.Activate(Dash, 0)
	s.Tick(w, 1)
	if math.Abs(w.chaser.VX-parameter.DashSpeed) > 1e-9 {
		t.Errorf("Expected dash speed %f, got %f", parameter.DashSpeed, w.chaser.VX)
	}
}

func TestTeleportStaysInBounds(t *testing.T) {
	for seed := uint64(1); seed < 50; seed++ {
		s := NewSystem()
		w := newMockWorld()
		w.rng = vmath.NewFastRand(seed)
		w.target = vmath.V2(890, 10)
		s.Activate(Teleport, 0)
		s.Tick(w, 1)

		p := w.chaser.Pos()
		if p.X < parameter.ChaserSize || p.X > 900-parameter.ChaserSize || p.Y < parameter.ChaserSize || p.Y > 600-parameter.ChaserSize {
			t.Fatalf("Teleport escaped bounds with seed %d: %+v", seed, p)
		}
	}
}

func TestMultipliersPure(t *testing.T) {
	for _, k := range Kinds() {
		size, opacity := SizeMultiplier(k), OpacityMultiplier(k)
		if k == Grow && size != 1.8 {
			t.Errorf("Expected Grow size 1.8, got %f", size)
		}
		if k != Grow && size != 1 {
			t.Errorf("Expected size 1 for %v, got %f", k, size)
		}
		if k == Ghost && opacity != 0.5 {
			t.Errorf("Expected Ghost opacity 0.5, got %f", opacity)
		}
		if k != Ghost && opacity != 1 {
			t.Errorf("Expected opacity 1 for %v, got %f", k, opacity)
		}
	}
}

func TestKindNames(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("Expected %v round trip, got %v", k, got)
		}
	}
	if _, ok := ParseKind("FLY"); ok {
		t.Error("Expected unknown name rejected")
	}
	if FromSlot(1) != SuperJump || FromSlot(9) != TimeSlow || FromSlot(10) != None {
		t.Error("Slot mapping mismatch")
	}
}

func TestTimerMirror(t *testing.T) {
	var tm Timer
	tm.Start(Ghost)
	if tm.Remaining != parameter.GhostDuration {
		t.Errorf("Expected %v, got %v", parameter.GhostDuration, tm.Remaining)
	}
	for i := 0; i < 200; i++ {
		tm.Tick()
	}
	if tm.Kind != None {
		t.Errorf("Expected timer cleared, got %v", tm.Kind)
	}
}
