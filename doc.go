/*
Package shaderpurge finds and deletes stale GPU shader caches on Windows.

Shader caches are compiled GPU programs that Steam and the NVIDIA driver keep
on disk to avoid recompiling them. They are safe to delete and are rebuilt on
demand, but they grow without bound. shaderpurge reclaims that space.

# Overview

Three independent cleanup tasks discover cache locations and hand what they
find to a shared Bulk Purge:

  - Steam: the install directory is read from the registry, the library
    list from steamapps/libraryfolders.vdf, and every subdirectory of each
    library's steamapps/shadercache is removed.
  - DirectX: every file in %USERPROFILE%\AppData\LocalLow\NVIDIA\PerDriverVersion\DXCache
    is removed.
  - OpenGL: every subdirectory of %LOCALAPPDATA%\NVIDIA\GLCache is removed.

A source that is missing (no registry value, no environment variable, no
manifest, no cache directory) skips its task, or for Steam just the one
library, with a status line. Nothing aborts the run.

# Basic Usage

	p := shaderpurge.New()
	summary := p.Run(context.Background())
	fmt.Printf("freed %d bytes\n", summary.FreedBytes)

Run starts the three tasks concurrently and waits for all of them. Each task
can also be run on its own:

	report := p.CleanDirectX(ctx)
	for _, r := range report.Results {
	    fmt.Println(r.Dir, r.Found, r.Removed)
	}

# Bulk Purge

Purge gives every candidate exactly one delete attempt. Attempts run
concurrently and a failed attempt (a locked file, a vanished directory) is
counted but never stops the batch:

	candidates, err := p.List(dir, shaderpurge.KindDir)
	if err != nil {
	    return err
	}
	result := p.Purge(ctx, dir, candidates)
	if result.Err != nil {
	    var pe *shaderpurge.PurgeError
	    errors.As(result.Err, &pe) // pe.Errors holds one error per failed entry
	}

PurgeResult carries exact Removed and Failed counts, and RemovedEstimate,
which is derived by listing the directory again after the purge.

# Configuration Options

Every collaborator can be replaced, which is how the tests run on any OS:

	p := shaderpurge.New(
	    shaderpurge.WithFs(afero.NewMemMapFs()),
	    shaderpurge.WithRegistry(shaderpurge.MapRegistry{...}),
	    shaderpurge.WithLookupEnv(func(k string) (string, bool) { ... }),
	    shaderpurge.WithOutput(&buf),
	)

# Error Handling

The package defines these sentinel errors:

  - ErrKeyNotFound, ErrValueNotFound: the Steam registry entry is missing
  - ErrRegistryUnsupported: the system registry was used outside Windows
  - ErrNoLibraryFolders: the Steam manifest has no libraryfolders section
  - ErrEnvNotSet: USERPROFILE or LOCALAPPDATA is unset

They appear as TaskReport.Reason when a task is skipped.
*/
package shaderpurge
