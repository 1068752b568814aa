// Package config holds the board settings kept in the Fyne preferences store.
package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// AppID is the Fyne application identifier; preferences are stored under it.
const AppID = "io.shapeboard.app"

const (
	keyWindowWidth   = "window.width"
	keyWindowHeight  = "window.height"
	keyLabelDelayMS  = "label.delay_ms"
	keyLabelTextSize = "label.text_size"
	keyLabelInset    = "label.inset"
	keySeed          = "random.seed"
)

// Config stores the tunable board settings.
type Config struct {
	WindowWidth   float32
	WindowHeight  float32
	LabelDelay    time.Duration
	LabelTextSize float32
	LabelInset    float32
	Seed          int64 // 0 seeds from the clock
}

// Default returns the settings used when nothing is stored.
func Default() Config {
	return Config{
		WindowWidth:   1024,
		WindowHeight:  768,
		LabelDelay:    3 * time.Second,
		LabelTextSize: 40,
		LabelInset:    30,
	}
}

// Load reads the settings from p, falling back to Default for missing keys.
func Load(p fyne.Preferences) Config {
	d := Default()
	return Config{
		WindowWidth:   float32(p.FloatWithFallback(keyWindowWidth, float64(d.WindowWidth))),
		WindowHeight:  float32(p.FloatWithFallback(keyWindowHeight, float64(d.WindowHeight))),
		LabelDelay:    time.Duration(p.IntWithFallback(keyLabelDelayMS, int(d.LabelDelay/time.Millisecond))) * time.Millisecond,
		LabelTextSize: float32(p.FloatWithFallback(keyLabelTextSize, float64(d.LabelTextSize))),
		LabelInset:    float32(p.FloatWithFallback(keyLabelInset, float64(d.LabelInset))),
		Seed:          int64(p.IntWithFallback(keySeed, 0)),
	}
}

// SaveWindowSize remembers the last window size.
func SaveWindowSize(p fyne.Preferences, size fyne.Size) {
	p.SetFloat(keyWindowWidth, float64(size.Width))
	p.SetFloat(keyWindowHeight, float64(size.Height))
}

// RandomSeed returns the configured random seed, or one derived from now.
func (c Config) RandomSeed(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}
