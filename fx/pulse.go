package fx

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"berry-snake/game/types"
)

const (
	dimIntensity    = 0.3
	brightIntensity = 1.0

	slowHalfPeriod = 0.5  // seconds, fresh berry
	fastHalfPeriod = 0.08 // seconds, berry about to vanish
)

// BerryPulse fades the berry in and out, faster as its lifetime runs out.
type BerryPulse struct {
	tween   *gween.Tween
	dimming bool
	current float32
	cycles  int
}

func NewBerryPulse() *BerryPulse {
	p := &BerryPulse{current: brightIntensity, dimming: true}
	p.tween = p.next(types.BerryLifetime)
	return p
}

// Update advances the pulse by dt and returns the intensity in [0.3, 1].
func (p *BerryPulse) Update(dt, remaining time.Duration) float32 {
	cur, finished := p.tween.Update(float32(dt.Seconds()))
	p.current = clamp(cur)
	if finished {
		p.dimming = !p.dimming
		p.cycles++
		p.tween = p.next(remaining)
	}
	return p.current
}

// Intensity is the last value returned by Update.
func (p *BerryPulse) Intensity() float32 {
	return p.current
}

// Reset restarts the pulse for a freshly spawned berry.
func (p *BerryPulse) Reset() {
	p.current = brightIntensity
	p.dimming = true
	p.cycles = 0
	p.tween = p.next(types.BerryLifetime)
}

func (p *BerryPulse) next(remaining time.Duration) *gween.Tween {
	frac := float32(remaining) / float32(types.BerryLifetime)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	half := fastHalfPeriod + (slowHalfPeriod-fastHalfPeriod)*frac

	if p.dimming {
		return gween.New(brightIntensity, dimIntensity, half, ease.InOutQuad)
	}
	return gween.New(dimIntensity, brightIntensity, half, ease.InOutQuad)
}

func clamp(v float32) float32 {
	if v < dimIntensity {
		return dimIntensity
	}
	if v > brightIntensity {
		return brightIntensity
	}
	return v
}
