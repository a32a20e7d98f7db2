package sheetengine

import "github.com/rs/zerolog"

// Option configures a Sheet at construction time. The only knob exposed today is the logger;
// everything else the engine needs is either a fixed constant or derived state, so a
// functional-options constructor is all the configuration surface calls for.
type Option func(*Sheet)

// WithLogger injects a zerolog.Logger the sheet uses for Debug-level diagnostics: cycle
// rejections and cache-invalidation sweeps. Library consumers who don't opt in get
// zerolog.Nop(), so the dependency costs nothing until used.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Sheet) {
		s.log = logger
	}
}
