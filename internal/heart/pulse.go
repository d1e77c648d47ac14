package heart

import "math"

const (
	// Hue drifts around its base as sin(0.5 t); the drift phase wraps
	// every 4pi seconds so nothing grows without bound.
	hueDriftAmp  = 0.06
	hueDriftRate = 0.5
)

// Oscillator owns the pulse phase. It advances by a fixed step per
// tick and wraps within one pulse period, so Scale stays inside
// [1-depth, 1+depth] for any number of ticks.
type Oscillator struct {
	period  float64 // seconds per pulse cycle
	depth   float64 // scale amplitude around 1.0
	baseHue float64
	dt      float64 // seconds per tick

	phase      float64 // in [0, period)
	driftPhase float64 // in [0, 2pi/hueDriftRate)
}

// NewOscillator builds a pulse clock ticking dt seconds per Advance.
func NewOscillator(period, depth, baseHue, dt float64) *Oscillator {
	if period <= 0 {
		period = 1.2
	}
	if dt <= 0 {
		dt = 1.0 / 60
	}
	return &Oscillator{period: period, depth: depth, baseHue: baseHue, dt: dt}
}

// Advance moves the phase forward by one fixed step, wrapping.
func (o *Oscillator) Advance() {
	o.phase += o.dt
	for o.phase >= o.period {
		o.phase -= o.period
	}
	driftPeriod := 2 * math.Pi / hueDriftRate
	o.driftPhase += o.dt
	for o.driftPhase >= driftPeriod {
		o.driftPhase -= driftPeriod
	}
}

// Phase returns seconds into the current pulse cycle, in [0, period).
func (o *Oscillator) Phase() float64 { return o.phase }

// Step returns the fixed per-tick phase increment.
func (o *Oscillator) Step() float64 { return o.dt }

// Scale returns the current size multiplier, oscillating in
// [1-depth, 1+depth].
func (o *Oscillator) Scale() float64 {
	return 1.0 + o.depth*math.Sin(2*math.Pi*o.phase/o.period)
}

// Hue returns the current fill hue in [0, 1), drifting slowly around
// the base hue.
func (o *Oscillator) Hue() float64 {
	return wrap01(o.baseHue + hueDriftAmp*math.Sin(hueDriftRate*o.driftPhase))
}
