package shaderpurge

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/andygrunwald/vdf"
)

const libraryFoldersKey = "libraryfolders"

// LibraryFolder is one entry of Steam's libraryfolders.vdf.
// Only Path is used; the remaining fields are kept as Steam writes them.
type LibraryFolder struct {
	Path                     string            // Library root; empty if the record has none
	Label                    string            // User-chosen name
	ContentID                string            // Steam content id
	TotalSize                string            // Disk size in bytes
	UpdateCleanBytesTally    string            // Bytes freed by updates
	TimeLastUpdateCorruption string            // Unix time of last corrupt update
	Apps                     map[string]string // App id -> installed size
}

// LibraryFolders maps the opaque numeric keys of the manifest to records.
type LibraryFolders map[string]LibraryFolder

// ParseLibraryFolders reads a libraryfolders.vdf manifest.
//
// Both layouts Steam has used are accepted: the current one, where every
// numeric key holds a nested record, and the legacy one, where a numeric key
// maps straight to a path. Non-numeric scalar keys of the legacy layout
// (TimeNextStatsReport, ContentStatsID) are ignored.
//
// Returns ErrNoLibraryFolders if the manifest has no libraryfolders section.
func ParseLibraryFolders(r io.Reader) (LibraryFolders, error) {
	parsed, err := vdf.NewParser(r).Parse()
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	section, ok := lookupMap(parsed, libraryFoldersKey)
	if !ok {
		return nil, ErrNoLibraryFolders
	}

	folders := make(LibraryFolders, len(section))
	for key, value := range section {
		switch v := value.(type) {
		case map[string]interface{}:
			folders[key] = decodeLibraryFolder(v)
		case string:
			if isNumeric(key) {
				folders[key] = LibraryFolder{Path: v}
			}
		}
	}
	return folders, nil
}

// Paths returns the library paths of all records that have one, in key
// order. Paths are cleaned and duplicates, compared case-insensitively as
// Windows does, are dropped.
func (lf LibraryFolders) Paths() []string {
	keys := make([]string, 0, len(lf))
	for k := range lf {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})

	seen := make(map[string]bool, len(keys))
	var paths []string
	for _, k := range keys {
		path := lf[k].Path
		if path == "" {
			continue
		}
		path = filepath.Clean(path)
		norm := strings.ToLower(path)
		if seen[norm] {
			continue
		}
		seen[norm] = true
		paths = append(paths, path)
	}
	return paths
}

func decodeLibraryFolder(m map[string]interface{}) LibraryFolder {
	folder := LibraryFolder{
		Path:                     stringField(m, "path"),
		Label:                    stringField(m, "label"),
		ContentID:                stringField(m, "contentid"),
		TotalSize:                stringField(m, "totalsize"),
		UpdateCleanBytesTally:    stringField(m, "update_clean_bytes_tally"),
		TimeLastUpdateCorruption: stringField(m, "time_last_update_corruption"),
	}

	if apps, ok := lookupMap(m, "apps"); ok {
		folder.Apps = make(map[string]string, len(apps))
		for id, size := range apps {
			if s, ok := size.(string); ok {
				folder.Apps[id] = s
			}
		}
	}
	return folder
}

// lookupMap finds a nested section by case-insensitive key.
func lookupMap(m map[string]interface{}, key string) (map[string]interface{}, bool) {
	for k, v := range m {
		if !strings.EqualFold(k, key) {
			continue
		}
		section, ok := v.(map[string]interface{})
		return section, ok
	}
	return nil, false
}

func stringField(m map[string]interface{}, key string) string {
	for k, v := range m {
		if strings.EqualFold(k, key) {
			s, _ := v.(string)
			return s
		}
	}
	return ""
}

func isNumeric(s string) bool {
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}
