package shaderpurge

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Purger discovers shader caches and deletes their contents.
// It holds no state between runs; every method may be called repeatedly.
type Purger struct {
	fs        afero.Fs
	registry  Registry
	lookupEnv LookupEnvFunc
	log       *Logger
}

// LookupEnvFunc reads an environment variable, reporting whether it is set.
type LookupEnvFunc func(key string) (string, bool)

// Option defines a function that configures a Purger.
type Option func(*Purger)

// New creates a purger backed by the OS filesystem, the system registry,
// the process environment and a logger writing to stdout.
func New(options ...Option) *Purger {
	p := &Purger{
		fs:        afero.NewOsFs(),
		registry:  NewSystemRegistry(),
		lookupEnv: os.LookupEnv,
		log:       NewLogger(os.Stdout),
	}

	// Apply options
	for _, option := range options {
		option(p)
	}

	return p
}

// Run launches the Steam, DirectX and OpenGL cleanups concurrently and waits
// for all of them before returning the aggregated summary.
func (p *Purger) Run(ctx context.Context) Summary {
	tasks := []func(context.Context) TaskReport{
		p.CleanSteam,
		p.CleanDirectX,
		p.CleanOpenGL,
	}

	reports := make([]TaskReport, len(tasks))
	var g errgroup.Group
	for i, task := range tasks {
		g.Go(func() error {
			reports[i] = task(ctx)
			return nil
		})
	}
	_ = g.Wait()

	summary := Summarize(reports...)
	p.log.Summaryf("Reclaimed %s across %d directories", humanize.Bytes(uint64(summary.FreedBytes)), summary.Dirs)
	return summary
}

// env returns the value of an environment variable, or ErrEnvNotSet when it
// is unset or empty.
func (p *Purger) env(key string) (string, error) {
	value, ok := p.lookupEnv(key)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s", ErrEnvNotSet, key)
	}
	return value, nil
}
