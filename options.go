package shaderpurge

import (
	"io"

	"github.com/spf13/afero"
)

// WithFs sets a custom filesystem for the purger.
// This is primarily useful for testing with in-memory filesystems.
//
// Example:
//
//	p := shaderpurge.New(shaderpurge.WithFs(afero.NewMemMapFs()))
func WithFs(fs afero.Fs) Option {
	return func(p *Purger) {
		p.fs = fs
	}
}

// WithRegistry sets the registry used to locate the Steam installation.
// The default reads the Windows registry; use a MapRegistry in tests.
func WithRegistry(registry Registry) Option {
	return func(p *Purger) {
		p.registry = registry
	}
}

// WithLookupEnv sets the function used to read environment variables.
// The default is os.LookupEnv.
func WithLookupEnv(lookupEnv LookupEnvFunc) Option {
	return func(p *Purger) {
		p.lookupEnv = lookupEnv
	}
}

// WithLogger sets the logger that receives status lines.
func WithLogger(logger *Logger) Option {
	return func(p *Purger) {
		p.log = logger
	}
}

// WithOutput is a shorthand for WithLogger(NewLogger(w)).
func WithOutput(w io.Writer) Option {
	return func(p *Purger) {
		p.log = NewLogger(w)
	}
}
