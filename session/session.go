package session

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/chase/engine"
	"github.com/lixenwraith/chase/event"
	"github.com/lixenwraith/chase/input"
	"github.com/lixenwraith/chase/parameter"
	"github.com/lixenwraith/chase/protocol"
	"github.com/lixenwraith/chase/status"
	"github.com/lixenwraith/chase/vmath"
)

// Sender is the outbound half of the channel
type Sender interface {
	Send(msgType uint8, payload []byte) bool
}

// Config holds per-session settings
type Config struct {
	Name string

	// Host wins simultaneous conflicting role claims
	Host bool

	// Claim is sent as soon as the lobby opens, RoleNone waits for a claim key
	Claim protocol.Role

	Bounds vmath.Rect
	Seed   uint64
}

// Session is the role controller: it negotiates roles, selects the simulator and bridges it to the channel
// All methods run on the frame loop goroutine
type Session struct {
	cfg     Config
	sender  Sender
	clock   engine.TimeProvider
	tracker *input.Tracker

	phase    Phase
	role     protocol.Role
	opponent string
	outcome  engine.Outcome

	sim     engine.Simulator
	stepper *engine.Stepper
	last    engine.Snapshot

	// Cached metric pointers
	ticks     *atomic.Int64
	ignored   *atomic.Int64
	score     *atomic.Int64
	lines     *atomic.Int64
	clones    *atomic.Int64
	timeScale *status.AtomicFloat
	phaseStr  *status.AtomicString
	roleStr   *status.AtomicString
	oppStr    *status.AtomicString
	abilStr   *status.AtomicString
}

// New creates a networked session waiting for the channel to open
func New(cfg Config, sender Sender, clock engine.TimeProvider, reg *status.Registry) *Session {
	s := &Session{
		cfg:       cfg,
		sender:    sender,
		clock:     clock,
		tracker:   input.NewTracker(parameter.KeyHoldWindow),
		ticks:     reg.Ints.Get(status.KeyTicks),
		ignored:   reg.Ints.Get(status.KeyMsgIgnored),
		score:     reg.Ints.Get(status.KeyScore),
		lines:     reg.Ints.Get(status.KeyLinesLive),
		clones:    reg.Ints.Get(status.KeyClonesLive),
		timeScale: reg.Floats.Get(status.KeyTimeScale),
		phaseStr:  reg.Strings.Get(status.KeyPhase),
		roleStr:   reg.Strings.Get(status.KeyRole),
		oppStr:    reg.Strings.Get(status.KeyOpponent),
		abilStr:   reg.Strings.Get(status.KeyAbility),
	}
	s.last = engine.Snapshot{Bounds: cfg.Bounds, TimeScale: 1}
	s.setPhase(PhaseConnecting)
	return s
}

// NewSolo creates a local session against the autopilot, already playing
func NewSolo(cfg Config, clock engine.TimeProvider, reg *status.Registry) *Session {
	s := New(cfg, nil, clock, reg)
	s.opponent = "autopilot"
	s.oppStr.Store(s.opponent)
	s.begin(protocol.RoleTarget, engine.NewSoloSim(cfg.Bounds, cfg.Seed))
	return s
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) Role() protocol.Role {
	return s.role
}

func (s *Session) Opponent() string {
	return s.opponent
}

func (s *Session) Outcome() engine.Outcome {
	return s.outcome
}

// HandleEvent folds one queued event into the session, false stops the loop
func (s *Session) HandleEvent(ev event.GameEvent) bool {
	switch ev.Type {
	case event.EventQuit:
		s.Quit()
		return false

	case event.EventChannelOpen:
		if s.phase != PhaseConnecting {
			return true
		}
		s.setPhase(PhaseLobby)
		s.send(protocol.MsgJoin, &protocol.Hello{Name: s.cfg.Name})
		if s.cfg.Claim != protocol.RoleNone {
			s.ClaimRole(s.cfg.Claim)
		}

	case event.EventChannelClosed:
		reason := ""
		if p, ok := ev.Payload.(*event.ChannelClosedPayload); ok {
			reason = p.Reason
		}
		log.Printf("session: channel closed in %s: %s", s.phase, reason)
		s.finish(engine.OutcomeSessionLost)

	case event.EventMessage:
		p, ok := ev.Payload.(*event.MessagePayload)
		if !ok {
			return true
		}
		msg, err := protocol.Decode(protocol.MessageType(p.Type), p.Data)
		if err != nil {
			s.ignored.Add(1)
			log.Printf("session: ignoring message 0x%02x: %v", p.Type, err)
			return true
		}
		s.handle(msg)

	case event.EventControl:
		c, ok := ev.Payload.(input.Control)
		if !ok {
			return true
		}
		switch c {
		case input.ControlClaimChaser:
			s.ClaimRole(protocol.RoleChaser)
		case input.ControlClaimTarget:
			s.ClaimRole(protocol.RoleTarget)
		default:
			s.tracker.Press(c, s.clock.Now())
		}

	case event.EventPointer:
		if p, ok := ev.Payload.(*event.PointerPayload); ok {
			s.tracker.Pointer(vmath.V2(p.X, p.Y), p.Pressed)
		}
	}
	return true
}

// ClaimRole takes r locally and announces it, only in the lobby
func (s *Session) ClaimRole(r protocol.Role) {
	if s.phase != PhaseLobby || r == protocol.RoleNone {
		return
	}
	s.send(protocol.MsgSelectRole, &protocol.SelectRole{Role: r.String()})
	s.start(r)
}

// Quit ends the session locally and tells the opponent
func (s *Session) Quit() {
	if s.phase == PhaseOver {
		return
	}
	if s.phase != PhaseConnecting {
		s.send(protocol.MsgLeave, nil)
	}
	s.finish(engine.OutcomeQuit)
}

func (s *Session) handle(msg protocol.Message) {
	if s.phase == PhaseOver {
		s.ignored.Add(1)
		return
	}

	switch msg.Type {
	case protocol.MsgJoin:
		s.setOpponent(msg.Payload.(*protocol.Hello).Name)
		s.send(protocol.MsgWelcome, &protocol.Hello{Name: s.cfg.Name})

	case protocol.MsgWelcome:
		s.setOpponent(msg.Payload.(*protocol.Hello).Name)

	case protocol.MsgSelectRole:
		s.onSelectRole(protocol.ParseRole(msg.Payload.(*protocol.SelectRole).Role))

	case protocol.MsgLeave:
		log.Printf("session: %s left", s.opponent)
		s.finish(engine.OutcomeOpponentLeft)

	default:
		if s.phase != PhasePlaying {
			s.ignored.Add(1)
			return
		}
		s.sim.Apply(msg, s.roundTime())
	}
}

// onSelectRole takes the complement of the opponent's claim
// When both claimed the same role at once, the host keeps its claim and the joining side yields
func (s *Session) onSelectRole(theirs protocol.Role) {
	if theirs == protocol.RoleNone {
		s.ignored.Add(1)
		return
	}
	mine := theirs.Complement()
	switch {
	case s.role == protocol.RoleNone:
		if s.phase == PhaseLobby {
			s.start(mine)
		}
	case s.role == mine:
		// Already consistent
	case s.cfg.Host:
		log.Printf("session: conflicting claim %s, keeping ours", theirs)
	default:
		log.Printf("session: conflicting claim %s, yielding to host", theirs)
		s.start(mine)
	}
}

func (s *Session) start(r protocol.Role) {
	var sim engine.Simulator
	switch r {
	case protocol.RoleChaser:
		sim = engine.NewChaserSim(s.cfg.Bounds, s.cfg.Seed)
	case protocol.RoleTarget:
		sim = engine.NewTargetSim(s.cfg.Bounds)
	default:
		return
	}
	s.begin(r, sim)
}

func (s *Session) begin(r protocol.Role, sim engine.Simulator) {
	s.role = r
	s.roleStr.Store(r.String())
	s.sim = sim
	s.stepper = engine.NewStepper(s.clock.Now())
	s.tracker.Reset()
	s.setPhase(PhasePlaying)
	log.Printf("session: playing as %s against %q", r, s.opponent)
}

// finish enters the terminal phase, the first outcome sticks
func (s *Session) finish(o engine.Outcome) {
	if s.phase == PhaseOver {
		return
	}
	s.outcome = o
	s.setPhase(PhaseOver)
	log.Printf("session: over (%s)", o)
}

// Tick advances the simulator by one frame and flushes its outbound messages
func (s *Session) Tick(now time.Time) (engine.Snapshot, bool) {
	s.ticks.Add(1)

	if s.phase == PhasePlaying {
		dt, roundNow := s.stepper.Step(now)
		f := s.tracker.Frame(now)
		f.Now = roundNow
		f.Dt = dt

		s.last = s.sim.Tick(f)
		s.flush()

		if over, _ := s.sim.Over(); over {
			s.finish(engine.OutcomeCaught)
		}
		s.record(s.last)
	}

	snap := s.last
	snap.Role = s.role
	snap.Phase = s.phase.String()
	snap.Opponent = s.opponent
	snap.Outcome = s.outcome
	return snap, true
}

func (s *Session) roundTime() time.Duration {
	if s.stepper == nil {
		return 0
	}
	return s.stepper.Elapsed(s.clock.Now())
}

func (s *Session) flush() {
	for _, msg := range s.sim.Outbound() {
		s.send(msg.Type, msg.Payload)
	}
}

func (s *Session) send(t protocol.MessageType, payload any) {
	if s.sender == nil {
		return
	}
	data, err := protocol.Encode(protocol.Message{Type: t, Payload: payload})
	if err != nil {
		log.Printf("session: encode %s: %v", t, err)
		return
	}
	if !s.sender.Send(uint8(t), data) {
		log.Printf("session: send %s refused, waiting for close", t)
	}
}

func (s *Session) setPhase(p Phase) {
	s.phase = p
	s.phaseStr.Store(p.String())
}

func (s *Session) setOpponent(name string) {
	s.opponent = name
	s.oppStr.Store(name)
}

func (s *Session) record(snap engine.Snapshot) {
	s.score.Store(int64(snap.Score))
	s.lines.Store(int64(len(snap.Lines)))
	s.clones.Store(int64(len(snap.Clones)))
	s.timeScale.Set(snap.TimeScale)
	s.abilStr.Store(snap.Ability.String())
}
