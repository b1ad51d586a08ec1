package shaderpurge

import (
	"context"
	"path/filepath"
)

// fixedCache describes an NVIDIA shader cache at a fixed location below a
// directory named by an environment variable.
type fixedCache struct {
	task    Task
	envVar  string
	subPath []string
	kind    EntryKind

	noEnv   string // logged when envVar is unset
	noDir   string // logged when the cache cannot be listed
	found   string // takes the candidate count
	removed string // takes the removed count
}

var directXCache = fixedCache{
	task:    TaskDirectX,
	envVar:  "USERPROFILE",
	subPath: []string{"AppData", "LocalLow", "NVIDIA", "PerDriverVersion", "DXCache"},
	kind:    KindFile,
	noEnv:   "Could not get UserProfile environment variable, skipping DirectX cleanup",
	noDir:   "Could not read/write to DXCache",
	found:   "Found %d shaders in DXCache, deleting",
	removed: "Removed %d shader files from DXCache",
}

var openGLCache = fixedCache{
	task:    TaskOpenGL,
	envVar:  "LOCALAPPDATA",
	subPath: []string{"NVIDIA", "GLCache"},
	kind:    KindDir,
	noEnv:   "Could not get LocalAppData environment variable, skipping NVIDIA GL cleanup",
	noDir:   "Could not read/write to GLCache",
	found:   "Found %d shader folders in GLCache, deleting",
	removed: "Removed %d shaders from GLCache",
}

// CleanDirectX deletes the files of the NVIDIA DirectX shader cache under
// %USERPROFILE%. Subdirectories are left alone.
func (p *Purger) CleanDirectX(ctx context.Context) TaskReport {
	return p.cleanFixed(ctx, directXCache)
}

// CleanOpenGL deletes the subdirectories of the NVIDIA OpenGL shader cache
// under %LOCALAPPDATA%. Loose files are left alone.
func (p *Purger) CleanOpenGL(ctx context.Context) TaskReport {
	return p.cleanFixed(ctx, openGLCache)
}

func (p *Purger) cleanFixed(ctx context.Context, cache fixedCache) TaskReport {
	report := TaskReport{Task: cache.task}

	root, err := p.env(cache.envVar)
	if err != nil {
		p.log.Skipf("%s", cache.noEnv)
		return report.skip(err)
	}

	dir := filepath.Join(append([]string{root}, cache.subPath...)...)
	candidates, err := p.List(dir, cache.kind)
	if err != nil {
		p.log.Debugf("%s: %v", cache.task, err)
		p.log.Skipf("%s", cache.noDir)
		report.SkippedDirs = append(report.SkippedDirs, dir)
		return report.skip(err)
	}

	p.log.Infof(cache.found, len(candidates))
	result := p.Purge(ctx, dir, candidates)
	p.log.Successf(cache.removed, result.Removed)

	report.Results = append(report.Results, result)
	return report
}
