package scroll

import "time"

// RefFrame is the frame duration the decay constants are tuned for.
const RefFrame = time.Second / 60

// Config tunes the controller. Out-of-range fields fall back to the
// defaults.
type Config struct {
	// DragThreshold is the pointer travel, in pointer units, past which a
	// press becomes a drag and the following click is swallowed.
	DragThreshold float64
	// Gain converts a per-millisecond release velocity into a per-frame
	// displacement.
	Gain float64
	// Decay multiplies the momentum velocity once per reference frame.
	Decay float64
	// SettleVelocity ends momentum once |velocity| drops to or below it.
	SettleVelocity float64
	// GlideSpeed is the per-frame interpolation factor of smooth scrolls.
	GlideSpeed float64
	// GlideEpsilon is the distance at which a smooth scroll lands exactly.
	GlideEpsilon float64
	// FrameCoupled applies Decay once per callback regardless of elapsed
	// time, instead of scaling it to RefFrame.
	FrameCoupled bool
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		DragThreshold:  6,
		Gain:           20,
		Decay:          0.92,
		SettleVelocity: 0.5,
		GlideSpeed:     0.12,
		GlideEpsilon:   0.5,
	}
}

// withDefaults replaces unusable values with the stock tuning. A decay
// outside (0, 1) would never settle.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.DragThreshold < 0 {
		c.DragThreshold = d.DragThreshold
	}
	if c.Gain <= 0 {
		c.Gain = d.Gain
	}
	if c.Decay <= 0 || c.Decay >= 1 {
		c.Decay = d.Decay
	}
	if c.SettleVelocity <= 0 {
		c.SettleVelocity = d.SettleVelocity
	}
	if c.GlideSpeed <= 0 || c.GlideSpeed > 1 {
		c.GlideSpeed = d.GlideSpeed
	}
	if c.GlideEpsilon <= 0 {
		c.GlideEpsilon = d.GlideEpsilon
	}
	return c
}

// frames converts elapsed time into reference frames.
func (c Config) frames(dt time.Duration) float64 {
	if c.FrameCoupled || dt <= 0 {
		return 1
	}
	return float64(dt) / float64(RefFrame)
}
