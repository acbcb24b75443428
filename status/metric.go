package status

import (
	"math"
	"slices"
	"sync"
	"sync/atomic"
)

// MetricMap holds named metrics of type T, created on first Get
// Callers keep the returned pointer and update it without further lookups
type MetricMap[T any] struct {
	items sync.Map // string -> *T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

func (m *MetricMap[T]) Get(key string) *T {
	if v, ok := m.items.Load(key); ok {
		return v.(*T)
	}
	v, _ := m.items.LoadOrStore(key, new(T))
	return v.(*T)
}

func (m *MetricMap[T]) Has(key string) bool {
	_, ok := m.items.Load(key)
	return ok
}

// Range visits metrics sorted by key
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	var keys []string
	m.items.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	slices.Sort(keys)
	for _, k := range keys {
		fn(k, m.Get(k))
	}
}

func (m *MetricMap[T]) Count() int {
	n := 0
	m.items.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// AtomicFloat is a float64 gauge, zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) { f.bits.Store(math.Float64bits(val)) }
func (f *AtomicFloat) Get() float64 { return math.Float64frombits(f.bits.Load()) }

// MaxStringLen caps stored strings so the status line stays one row
const MaxStringLen = 24

// AtomicString holds a capped string, zero value reads ""
type AtomicString struct {
	v atomic.Value
}

func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.v.Store(val)
}

func (s *AtomicString) Load() string {
	val, _ := s.v.Load().(string)
	return val
}
