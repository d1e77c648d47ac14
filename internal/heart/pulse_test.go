package heart

import (
	"math"
	"testing"

	. "github.com/onsi/gomega"
)

func TestScaleStaysWithinBounds(t *testing.T) {
	g := NewWithT(t)
	osc := NewOscillator(1.2, 0.12, 0, 1.0/60)

	for i := 0; i < 5000; i++ {
		g.Expect(osc.Scale()).To(BeNumerically(">=", 0.88-1e-9))
		g.Expect(osc.Scale()).To(BeNumerically("<=", 1.12+1e-9))
		osc.Advance()
	}
}

func TestPhaseAdvancesByFixedStep(t *testing.T) {
	g := NewWithT(t)
	osc := NewOscillator(1.2, 0.12, 0, 0.01)

	prev := osc.Phase()
	for i := 0; i < 1000; i++ {
		osc.Advance()
		cur := osc.Phase()
		diff := cur - prev
		if diff < 0 {
			diff += 1.2 // wrapped
		}
		g.Expect(diff).To(BeNumerically("~", 0.01, 1e-9))
		prev = cur
	}
}

func TestPhaseWraps(t *testing.T) {
	g := NewWithT(t)
	osc := NewOscillator(0.5, 0.12, 0, 0.1)

	for i := 0; i < 10000; i++ {
		osc.Advance()
		g.Expect(osc.Phase()).To(BeNumerically(">=", 0.0))
		g.Expect(osc.Phase()).To(BeNumerically("<", 0.5))
	}
}

func TestHueStaysInUnitInterval(t *testing.T) {
	g := NewWithT(t)
	// Base hue near the wrap point exercises the modulo
	osc := NewOscillator(1.2, 0.12, 0.99, 1.0/30)

	for i := 0; i < 5000; i++ {
		h := osc.Hue()
		g.Expect(h).To(BeNumerically(">=", 0.0))
		g.Expect(h).To(BeNumerically("<", 1.0))
		osc.Advance()
	}
}

func TestDegenerateParamsFallBack(t *testing.T) {
	osc := NewOscillator(0, 0.12, 0, 0)
	osc.Advance()
	if osc.Phase() <= 0 || math.IsNaN(osc.Scale()) {
		t.Error("expected sane defaults for zero period/dt")
	}
}
