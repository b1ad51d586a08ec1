package shaderpurge_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/gophersatwork/shaderpurge"
	"github.com/spf13/afero"
)

const manifest = `"libraryfolders"
{
	"0"
	{
		"path"		"/Program Files (x86)/Steam"
		"label"		"Main"
		"apps"
		{
			"620"		"12345"
		}
	}
	"1"
	{
		"path"		"/SteamLibrary"
		"label"		"Games"
	}
	"2"
	{
		"path"		"/OldDrive"
		"label"		"Unplugged"
	}
}
`

// TestPurgeWorkstation runs every cleanup against a populated machine and
// then runs again to check that nothing is left to do.
func TestPurgeWorkstation(t *testing.T) {
	isDebug := false // Set to true when you want to troubleshoot issues visually.
	memFs := afero.NewMemMapFs()

	files := map[string]string{
		"/Program Files (x86)/Steam/steamapps/libraryfolders.vdf":                        manifest,
		"/Program Files (x86)/Steam/steamapps/shadercache/620/fozpipelinesv6/cache.foz": "0123456789",
		"/SteamLibrary/steamapps/shadercache/1091500/nvidiav1/GLCache/cache.bin":        "0123456789",
		"/SteamLibrary/steamapps/shadercache/570/DxCache/cache.bin":                     "0123456789",
		"/Users/player/AppData/LocalLow/NVIDIA/PerDriverVersion/DXCache/a.bin":          "01234",
		"/Users/player/AppData/LocalLow/NVIDIA/PerDriverVersion/DXCache/b.bin":          "01234",
		"/Users/player/AppData/Local/NVIDIA/GLCache/2a9f/e3c1/0001.bin":                 "0123456789",
		"/Users/player/AppData/Local/NVIDIA/GLCache/README.txt":                         "keep me",
	}
	for path, content := range files {
		if err := memFs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := afero.WriteFile(memFs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}

	registry := shaderpurge.MapRegistry{
		shaderpurge.LocalMachine: {
			`SOFTWARE\WOW6432Node\Valve\Steam`: {
				{Name: "InstallPath", Data: "/Program Files (x86)/Steam"},
			},
		},
	}
	env := map[string]string{
		"USERPROFILE":  "/Users/player",
		"LOCALAPPDATA": "/Users/player/AppData/Local",
	}

	var out bytes.Buffer
	logger := shaderpurge.NewLogger(&out)
	logger.DisableColor()

	p := shaderpurge.New(
		shaderpurge.WithFs(memFs),
		shaderpurge.WithRegistry(registry),
		shaderpurge.WithLookupEnv(func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		}),
		shaderpurge.WithLogger(logger),
	)

	if isDebug {
		printDirTree(memFs, "/")
	}

	summary := p.Run(context.Background())

	if isDebug {
		spew.Dump(summary)
		fmt.Println(out.String())
		printDirTree(memFs, "/")
	}

	// Steam: two libraries purged (1 + 2 apps), /OldDrive skipped.
	// DirectX: 2 files. OpenGL: 1 folder.
	if summary.Dirs != 4 || summary.Found != 6 || summary.Removed != 6 || summary.Failed != 0 {
		t.Errorf("Unexpected summary: dirs=%d found=%d removed=%d failed=%d",
			summary.Dirs, summary.Found, summary.Removed, summary.Failed)
	}
	if summary.FreedBytes != 50 {
		t.Errorf("Expected 50 freed bytes, got %d", summary.FreedBytes)
	}
	if summary.Skipped != 0 {
		t.Errorf("Expected no skipped tasks, got %d", summary.Skipped)
	}

	if exists, _ := afero.Exists(memFs, "/Users/player/AppData/Local/NVIDIA/GLCache/README.txt"); !exists {
		t.Error("Stray file in GLCache was deleted")
	}
	if exists, _ := afero.Exists(memFs, "/Program Files (x86)/Steam/steamapps/libraryfolders.vdf"); !exists {
		t.Error("Steam manifest was deleted")
	}
	if !strings.Contains(out.String(), "No shadercache in /OldDrive, skipping") {
		t.Errorf("Expected /OldDrive to be skipped, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Reclaimed 50 B across 4 directories") {
		t.Errorf("Expected the summary line, got:\n%s", out.String())
	}

	// Idempotence: a second run finds nothing.
	again := p.Run(context.Background())
	if again.Found != 0 || again.Removed != 0 {
		t.Errorf("Expected a second run to find nothing, got found=%d removed=%d", again.Found, again.Removed)
	}
}

func printDirTree(fs afero.Fs, root string) {
	_ = afero.Walk(fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil || p == root {
			return err
		}

		depth := strings.Count(p, string(os.PathSeparator))
		indent := strings.Repeat("  ", depth-1)
		if info.IsDir() {
			fmt.Printf("%s%s/\n", indent, info.Name())
		} else {
			fmt.Printf("%s%s (%d bytes)\n", indent, info.Name(), info.Size())
		}
		return nil
	})
}
