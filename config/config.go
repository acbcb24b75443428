// Package config resolves run settings from defaults, a .env file, CHASE_* variables and flags
// Later sources win: flags over environment over .env over defaults
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/chase/network"
	"github.com/lixenwraith/chase/parameter"
	"github.com/lixenwraith/chase/protocol"
	"github.com/lixenwraith/chase/session"
	"github.com/lixenwraith/chase/vmath"
)

// DefaultEnvFile is read from the working directory when present
const DefaultEnvFile = ".env"

// Mode selects how the session is established
type Mode uint8

const (
	ModeSolo Mode = iota // Autopilot chaser, local target
	ModeHost             // Listen for one opponent
	ModeJoin             // Dial a host
)

func (m Mode) String() string {
	switch m {
	case ModeHost:
		return "host"
	case ModeJoin:
		return "join"
	default:
		return "solo"
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "solo", "":
		return ModeSolo, nil
	case "host":
		return ModeHost, nil
	case "join":
		return ModeJoin, nil
	default:
		return ModeSolo, fmt.Errorf("unknown mode %q", s)
	}
}

// Config holds resolved settings for one run
type Config struct {
	Mode      Mode
	Transport network.TransportKind
	Address   string
	Name      string
	Role      protocol.Role

	Width  float64
	Height float64

	FrameInterval time.Duration
	Seed          uint64

	Debug  bool
	Audio  bool
	Volume float64

	ConnectTimeout    time.Duration
	ReadTimeout       time.Duration
	HeartbeatInterval time.Duration
}

func Default() *Config {
	net := network.DefaultConfig()
	return &Config{
		Mode:              ModeSolo,
		Transport:         net.Transport,
		Address:           net.Address,
		Name:              "player",
		Width:             parameter.ViewportWidth,
		Height:            parameter.ViewportHeight,
		FrameInterval:     parameter.FrameUpdateInterval,
		Audio:             true,
		Volume:            0.5,
		ConnectTimeout:    net.ConnectTimeout,
		ReadTimeout:       net.ReadTimeout,
		HeartbeatInterval: net.HeartbeatInterval,
	}
}

// Load resolves the config for the process, args excludes the program name
func Load(args []string) (*Config, error) {
	return LoadFrom(DefaultEnvFile, args, os.LookupEnv)
}

// LoadFrom resolves the config from envFile, lookup and args
// A missing envFile is not an error
func LoadFrom(envFile string, args []string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	dotenv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: read %s: %w", envFile, err)
	}
	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(get); err != nil {
		return nil, err
	}
	if err := cfg.applyFlags(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(get func(string) (string, bool)) error {
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := get(key); ok {
			*dst = v
		}
	}
	parse := func(key string, fn func(string) error) {
		if v, ok := get(key); ok {
			if err := fn(v); err != nil {
				errs = append(errs, fmt.Errorf("config: %s: %w", key, err))
			}
		}
	}

	parse("CHASE_MODE", func(v string) (err error) { c.Mode, err = ParseMode(v); return })
	parse("CHASE_TRANSPORT", func(v string) (err error) { c.Transport, err = network.ParseTransport(v); return })
	str("CHASE_ADDR", &c.Address)
	str("CHASE_NAME", &c.Name)
	parse("CHASE_ROLE", func(v string) (err error) { c.Role, err = parseRole(v); return })
	parse("CHASE_WIDTH", func(v string) (err error) { c.Width, err = strconv.ParseFloat(v, 64); return })
	parse("CHASE_HEIGHT", func(v string) (err error) { c.Height, err = strconv.ParseFloat(v, 64); return })
	parse("CHASE_FRAME", func(v string) (err error) { c.FrameInterval, err = time.ParseDuration(v); return })
	parse("CHASE_SEED", func(v string) (err error) { c.Seed, err = strconv.ParseUint(v, 10, 64); return })
	parse("CHASE_DEBUG", func(v string) (err error) { c.Debug, err = strconv.ParseBool(v); return })
	parse("CHASE_AUDIO", func(v string) (err error) { c.Audio, err = strconv.ParseBool(v); return })
	parse("CHASE_VOLUME", func(v string) (err error) { c.Volume, err = strconv.ParseFloat(v, 64); return })
	parse("CHASE_CONNECT_TIMEOUT", func(v string) (err error) { c.ConnectTimeout, err = time.ParseDuration(v); return })
	parse("CHASE_READ_TIMEOUT", func(v string) (err error) { c.ReadTimeout, err = time.ParseDuration(v); return })
	parse("CHASE_HEARTBEAT", func(v string) (err error) { c.HeartbeatInterval, err = time.ParseDuration(v); return })

	return errors.Join(errs...)
}

func (c *Config) applyFlags(args []string) error {
	fs := flag.NewFlagSet("chase", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	mode := fs.String("mode", c.Mode.String(), "Session mode: solo, host, join")
	transport := fs.String("transport", c.Transport.String(), "Link transport: tcp, ws")
	role := fs.String("role", roleFlag(c.Role), "Role to claim on join: chaser, target, or empty to pick in the lobby")
	fs.StringVar(&c.Address, "addr", c.Address, "Address to listen on (host) or dial (join)")
	fs.StringVar(&c.Name, "name", c.Name, "Display name sent to the opponent")
	fs.Float64Var(&c.Width, "width", c.Width, "Viewport width in pixels")
	fs.Float64Var(&c.Height, "height", c.Height, "Viewport height in pixels")
	fs.DurationVar(&c.FrameInterval, "frame", c.FrameInterval, "Frame interval")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Random seed, 0 picks one from the clock")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Write a debug log under logs/")
	fs.BoolVar(&c.Audio, "audio", c.Audio, "Play sound cues")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "Sound cue volume 0..1")
	fs.DurationVar(&c.ConnectTimeout, "connect-timeout", c.ConnectTimeout, "Dial timeout")
	fs.DurationVar(&c.ReadTimeout, "read-timeout", c.ReadTimeout, "Silence before the link is declared lost")
	fs.DurationVar(&c.HeartbeatInterval, "heartbeat", c.HeartbeatInterval, "Keepalive interval")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	var err error
	if c.Mode, err = ParseMode(*mode); err != nil {
		return fmt.Errorf("config: -mode: %w", err)
	}
	if c.Transport, err = network.ParseTransport(*transport); err != nil {
		return fmt.Errorf("config: -transport: %w", err)
	}
	if c.Role, err = parseRole(*role); err != nil {
		return fmt.Errorf("config: -role: %w", err)
	}
	return nil
}

// Validate rejects settings the game cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Width < parameter.ChaserSize*2 || c.Height < parameter.ChaserSize*2:
		return fmt.Errorf("config: viewport %.0fx%.0f too small", c.Width, c.Height)
	case c.FrameInterval <= 0:
		return fmt.Errorf("config: frame interval must be positive, got %v", c.FrameInterval)
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("config: volume must be within 0..1, got %g", c.Volume)
	case c.Mode != ModeSolo && c.Address == "":
		return fmt.Errorf("config: %s mode requires an address", c.Mode)
	case c.HeartbeatInterval <= 0 || c.ReadTimeout <= c.HeartbeatInterval:
		return fmt.Errorf("config: read timeout %v must exceed heartbeat %v", c.ReadTimeout, c.HeartbeatInterval)
	}
	return nil
}

// Bounds is the viewport rectangle anchored at the origin
func (c *Config) Bounds() vmath.Rect {
	return vmath.Viewport(c.Width, c.Height)
}

// Network derives the transport settings, nil in solo mode
func (c *Config) Network() *network.Config {
	if c.Mode == ModeSolo {
		return nil
	}
	nc := network.DefaultConfig()
	nc.Role = network.RolePeer
	if c.Mode == ModeHost {
		nc.Role = network.RoleHost
	}
	nc.Transport = c.Transport
	nc.Address = c.Address
	nc.ConnectTimeout = c.ConnectTimeout
	nc.ReadTimeout = c.ReadTimeout
	nc.HeartbeatInterval = c.HeartbeatInterval
	return nc
}

// Session derives the session settings
func (c *Config) Session(seed uint64) session.Config {
	return session.Config{
		Name:   c.Name,
		Host:   c.Mode == ModeHost,
		Claim:  c.Role,
		Bounds: c.Bounds(),
		Seed:   seed,
	}
}

func parseRole(s string) (protocol.Role, error) {
	if s == "" || s == "none" {
		return protocol.RoleNone, nil
	}
	r := protocol.ParseRole(s)
	if r == protocol.RoleNone {
		return r, fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

func roleFlag(r protocol.Role) string {
	if r == protocol.RoleNone {
		return ""
	}
	return r.String()
}
