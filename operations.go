package shaderpurge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// List returns the immediate entries of dir that are of the given kind,
// sorted by name.
func (p *Purger) List(dir string, kind EntryKind) ([]Candidate, error) {
	infos, err := afero.ReadDir(p.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var candidates []Candidate
	for _, info := range infos {
		if kindOf(info) != kind {
			continue
		}
		candidates = append(candidates, Candidate{Name: info.Name(), Kind: kind})
	}
	return candidates, nil
}

// Purge deletes every candidate inside dir. Each candidate gets exactly one
// delete attempt, directories recursively. The attempts run concurrently
// and a failed attempt never stops the others; failures are only tallied
// in the result.
//
// Once every attempt has settled, dir is listed again to compute
// RemovedEstimate. A canceled ctx stops attempts that have not started yet;
// those count as failed.
func (p *Purger) Purge(ctx context.Context, dir string, candidates []Candidate) PurgeResult {
	result := PurgeResult{
		Dir:   dir,
		Found: len(candidates),
	}

	outcomes := make([]error, len(candidates))
	sizes := make([]int64, len(candidates))

	var g errgroup.Group
	for i, c := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i] = err
				return nil
			}
			path := filepath.Join(dir, c.Name)
			sizes[i], _ = p.entrySize(path)
			outcomes[i] = p.remove(path, c.Kind)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for i, err := range outcomes {
		if err != nil {
			result.Failed++
			errs = append(errs, fmt.Errorf("%s: %w", candidates[i].Name, err))
			continue
		}
		result.Removed++
		result.FreedBytes += sizes[i]
	}
	result.Err = newPurgeError(dir, errs)
	if result.Err != nil {
		p.log.Debugf("%v", result.Err)
	}

	result.RemovedEstimate = result.Found - p.countRemaining(dir, candidates)
	return result
}

// remove deletes a single entry according to its kind.
func (p *Purger) remove(path string, kind EntryKind) error {
	switch kind {
	case KindDir:
		return p.fs.RemoveAll(path)
	case KindFile:
		return p.fs.Remove(path)
	default:
		return fmt.Errorf("refusing to remove %s entry %s", kind, path)
	}
}

// countRemaining re-lists dir and counts the entries that still have the
// kind of some candidate. An unreadable dir counts as empty.
func (p *Purger) countRemaining(dir string, candidates []Candidate) int {
	kinds := make(map[EntryKind]bool)
	for _, c := range candidates {
		kinds[c.Kind] = true
	}

	infos, err := afero.ReadDir(p.fs, dir)
	if err != nil {
		return 0
	}

	remaining := 0
	for _, info := range infos {
		if kinds[kindOf(info)] {
			remaining++
		}
	}
	if remaining > len(candidates) {
		remaining = len(candidates)
	}
	return remaining
}

// kindOf classifies a directory entry.
func kindOf(info os.FileInfo) EntryKind {
	switch {
	case info.IsDir():
		return KindDir
	case info.Mode().IsRegular():
		return KindFile
	default:
		return KindOther
	}
}
