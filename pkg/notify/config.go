package notify

import (
	"time"

	"github.com/dmitrymomot/notifykit/pkg/config"
)

// Config carries the tunables of the facade, loadable from the environment
// through pkg/config.
type Config struct {
	// DefaultDelay is the trigger interval used when an Add call supplies
	// no trigger: "deliver almost immediately".
	DefaultDelay time.Duration `env:"NOTIFY_DEFAULT_DELAY" envDefault:"100ms"`

	// VibrateOffset is added to DefaultDelay when scheduling the one-shot
	// vibration side effect.
	VibrateOffset time.Duration `env:"NOTIFY_VIBRATE_OFFSET" envDefault:"1s"`

	// BusBufferSize is the subscription buffer applied to the event bus
	// NewWithHub constructs.
	BusBufferSize int `env:"NOTIFY_BUS_BUFFER" envDefault:"16"`
}

// LoadConfig reads the facade configuration from the environment.
//
//	cfg, err := notify.LoadConfig()
//	svc, err := notify.New(center, notify.WithConfig(cfg))
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
