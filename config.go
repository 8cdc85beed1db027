package clientgen

import (
	"fmt"
	"net/url"
	"runtime"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config holds the configuration of a render pass.
type Config struct {
	// Target selects the output language (e.g. "dart").
	Target string `validate:"required"`

	// Workers bounds the number of classes rendered at once.
	// Default: GOMAXPROCS.
	Workers int `validate:"gte=1,lte=1024"`

	// FailFast aborts the pass on the first failing class. Otherwise a
	// failing class is recorded and the others still render.
	FailFast bool

	// Indent is the text written once per nesting level.
	// Default: two spaces.
	Indent string `validate:"excludesall=\r\n"`

	// Overrides replace conventions values; see conventions.ApplyOverrides.
	Overrides url.Values
}

// Validate reports the first invalid field of c.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// applyConfigDefaults returns a copy of cfg with unset fields defaulted.
func applyConfigDefaults(cfg Config) Config {
	if cfg.Target == "" {
		cfg.Target = DefaultTarget
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.Indent == "" {
		cfg.Indent = "  "
	}
	return cfg
}
