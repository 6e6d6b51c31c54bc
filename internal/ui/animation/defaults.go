package animation

import (
	"image/color"
	"time"
)

// DefaultConfig returns the alert blink timing and colors.
func DefaultConfig() Config {
	return Config{
		Interval:  500 * time.Millisecond,
		Highlight: color.NRGBA{R: 0xd3, G: 0x2f, B: 0x2f, A: 0xff},
		Normal:    color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}
