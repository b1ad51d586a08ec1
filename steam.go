package shaderpurge

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Registry keys holding the Steam install path, in lookup order. The first
// is where 64-bit Windows redirects the 32-bit Steam client; the second is
// the native location on 32-bit Windows.
var steamRegistryKeys = []string{
	`SOFTWARE\WOW6432Node\Valve\Steam`,
	`SOFTWARE\Valve\Steam`,
}

const steamInstallPathValue = "InstallPath"

// CleanSteam purges the shadercache directory of every Steam library.
// Libraries are purged concurrently; a library without a shader cache is
// skipped without affecting the others.
func (p *Purger) CleanSteam(ctx context.Context) TaskReport {
	report := TaskReport{Task: TaskSteam}

	installPath, err := p.steamInstallPath()
	if err != nil {
		p.log.Debugf("steam: %v", err)
		p.log.Skipf("Could not find steam path, skipping Steam cleanup")
		return report.skip(err)
	}

	p.log.Infof("Found steam directory: %s", installPath)
	p.log.Infof("Getting SteamLibrary directories")

	libraries, err := p.steamLibraries(installPath)
	if err != nil {
		p.log.Debugf("steam: %v", err)
		p.log.Skipf("Could not parse SteamLibrary directories, skipping Steam cleanup")
		return report.skip(err)
	}

	results := make([]*PurgeResult, len(libraries))
	var g errgroup.Group
	for i, library := range libraries {
		g.Go(func() error {
			results[i] = p.cleanSteamLibrary(ctx, library)
			return nil
		})
	}
	_ = g.Wait()

	for i, result := range results {
		if result == nil {
			report.SkippedDirs = append(report.SkippedDirs, steamShaderCache(libraries[i]))
			continue
		}
		report.Results = append(report.Results, *result)
	}
	return report
}

// steamInstallPath reads the Steam install directory from the registry.
func (p *Purger) steamInstallPath() (string, error) {
	var errs []error
	for _, key := range steamRegistryKeys {
		values, err := p.registry.EnumerateValues(LocalMachine, key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if path, ok := stringValue(values, steamInstallPathValue); ok {
			return path, nil
		}
		errs = append(errs, fmt.Errorf("%w: %v\\%s\\%s", ErrValueNotFound, LocalMachine, key, steamInstallPathValue))
	}
	return "", errors.Join(errs...)
}

// steamLibraries reads the library paths listed in the install's manifest.
func (p *Purger) steamLibraries(installPath string) ([]string, error) {
	manifestPath := filepath.Join(installPath, "steamapps", "libraryfolders.vdf")

	f, err := p.fs.Open(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	folders, err := ParseLibraryFolders(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", manifestPath, err)
	}
	return folders.Paths(), nil
}

// cleanSteamLibrary purges one library's shader cache. It returns nil if
// the cache could not be listed.
func (p *Purger) cleanSteamLibrary(ctx context.Context, library string) *PurgeResult {
	p.log.Infof("Found folder path: %s", library)

	shaderCache := steamShaderCache(library)
	apps, err := p.List(shaderCache, KindDir)
	if err != nil {
		p.log.Debugf("steam: %v", err)
		p.log.Skipf("No shadercache in %s, skipping", library)
		return nil
	}

	names := make([]string, len(apps))
	for i, app := range apps {
		names[i] = app.Name
	}
	p.log.Infof("Found %d shadercache folders, deleting shadercache/%s", len(apps), strings.Join(names, "|"))

	result := p.Purge(ctx, shaderCache, apps)
	p.log.Successf("Removed %d shadercache folders from %s", result.Removed, library)
	return &result
}

func steamShaderCache(library string) string {
	return filepath.Join(library, "steamapps", "shadercache")
}
