package audio

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/chase/ability"
	"github.com/lixenwraith/chase/engine"
	"github.com/lixenwraith/chase/protocol"
)

const sampleRate = beep.SampleRate(48000)

// Cue is a sound triggered by a snapshot transition
type Cue int

const (
	CueRoundStart Cue = iota
	CueAbility
	CueClones
	CueShockwave
	CueCaught
	CueSessionLost
	CueOpponentLeft
)

var cueNames = [...]string{
	CueRoundStart:   "round-start",
	CueAbility:      "ability",
	CueClones:       "clones",
	CueShockwave:    "shockwave",
	CueCaught:       "caught",
	CueSessionLost:  "session-lost",
	CueOpponentLeft: "opponent-left",
}

func (c Cue) String() string {
	if c >= 0 && int(c) < len(cueNames) {
		return cueNames[c]
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// Detect lists the cues for the transition from prev to cur
func Detect(prev, cur engine.Snapshot) []Cue {
	var cues []Cue
	if cur.Phase == "playing" && prev.Phase != "playing" {
		cues = append(cues, CueRoundStart)
	}
	if cur.Ability != ability.None && cur.Ability != prev.Ability {
		cues = append(cues, CueAbility)
	}
	if len(cur.Clones) > len(prev.Clones) {
		cues = append(cues, CueClones)
	}
	if len(cur.Waves) > len(prev.Waves) {
		cues = append(cues, CueShockwave)
	}
	if cur.Outcome != prev.Outcome {
		switch cur.Outcome {
		case engine.OutcomeCaught:
			cues = append(cues, CueCaught)
		case engine.OutcomeSessionLost:
			cues = append(cues, CueSessionLost)
		case engine.OutcomeOpponentLeft:
			cues = append(cues, CueOpponentLeft)
		}
	}
	return cues
}

// Build synthesizes the streamer for a cue
// Ability cues are pitched by kind, caught cues rise for the chaser and fall for the target
func Build(c Cue, s engine.Snapshot, vol float64) beep.Streamer {
	ms := time.Millisecond
	switch c {
	case CueRoundStart:
		return Sequence(sampleRate, vol,
			Note{Freq: 523.25, Duration: 80 * ms},
			Note{Freq: 783.99, Duration: 120 * ms})
	case CueAbility:
		freq := 440 * math.Pow(2, float64(s.Ability)/12)
		return Sequence(sampleRate, vol, Note{Freq: freq, Duration: 90 * ms, Wave: WaveSquare})
	case CueClones:
		return Chord(sampleRate, vol,
			Note{Freq: 659.25, Duration: 150 * ms},
			Note{Freq: 987.77, Duration: 150 * ms})
	case CueShockwave:
		return Sequence(sampleRate, vol,
			Note{Freq: 110, Duration: 60 * ms, Wave: WaveSaw},
			Note{Freq: 82.41, Duration: 120 * ms, Wave: WaveSaw})
	case CueCaught:
		low, high := Note{Freq: 392, Duration: 150 * ms}, Note{Freq: 784, Duration: 250 * ms}
		if s.Role == protocol.RoleTarget {
			return Sequence(sampleRate, vol, high, low)
		}
		return Sequence(sampleRate, vol, low, high)
	case CueSessionLost, CueOpponentLeft:
		return Sequence(sampleRate, vol,
			Note{Freq: 220, Duration: 200 * ms, Wave: WaveSquare},
			Note{Freq: 164.81, Duration: 300 * ms, Wave: WaveSquare})
	}
	return nil
}

// Cues plays sounds for gameplay transitions
// It is an engine.Presenter, a disabled or uninitialized Cues only tracks state
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool

	prev   engine.Snapshot
	primed bool
	played map[Cue]int
}

func NewCues(volume float64) *Cues {
	return &Cues{
		mixer:  &beep.Mixer{},
		volume: volume,
		played: make(map[Cue]int),
	}
}

// Initialize opens the audio device and starts the mixer
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close silences pending cues and releases the device
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

func (c *Cues) Present(s engine.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.primed {
		c.prev, c.primed = s, true
		return
	}
	for _, cue := range Detect(c.prev, s) {
		c.played[cue]++
		if !c.initialized {
			continue
		}
		st := Build(cue, s, c.volume)
		if st == nil {
			continue
		}
		speaker.Lock()
		c.mixer.Add(st)
		speaker.Unlock()
		log.Printf("audio: %s", cue)
	}
	c.prev = s
}

// Played reports how many times cue fired
func (c *Cues) Played(cue Cue) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played[cue]
}
