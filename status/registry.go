package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the loop and the transport
const (
	KeyTicks       = "engine.ticks"
	KeyTimeScale   = "engine.time_scale"
	KeyMsgSent     = "net.sent"
	KeyMsgReceived = "net.received"
	KeyMsgIgnored  = "net.ignored"
	KeyMsgDropped  = "net.dropped"
	KeyPhase       = "session.phase"
	KeyRole        = "session.role"
	KeyOpponent    = "session.opponent"
	KeyAbility     = "chaser.ability"
	KeyScore       = "chaser.score"
	KeyLinesLive   = "world.lines"
	KeyClonesLive  = "world.clones"
)

// Registry groups metrics by value type
// Producers cache the pointer returned by Get and write the atomic directly
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of registered metrics of all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Summary formats every metric as sorted key=value pairs, used for the session end log line
func (r *Registry) Summary() string {
	var b strings.Builder
	r.Ints.Range(func(key string, v *atomic.Int64) {
		fmt.Fprintf(&b, "%s=%d ", key, v.Load())
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		fmt.Fprintf(&b, "%s=%.2f ", key, v.Get())
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		fmt.Fprintf(&b, "%s=%s ", key, v.Load())
	})
	return strings.TrimSpace(b.String())
}
