package shaderpurge

import (
	"errors"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
)

const libraryFoldersVDF = `"libraryfolders"
{
	"0"
	{
		"path"		"/steam"
		"label"		"Main"
		"contentid"		"7263416027658468000"
		"totalsize"		"0"
		"update_clean_bytes_tally"		"1234"
		"time_last_update_corruption"		"0"
		"apps"
		{
			"228980"		"346014604"
			"570"		"38241329521"
		}
	}
	"1"
	{
		"path"		"/games/SteamLibrary"
		"label"		"Games"
		"contentid"		"2839487128394871234"
		"totalsize"		"1000204886016"
		"update_clean_bytes_tally"		"0"
		"time_last_update_corruption"		"0"
		"apps"
		{
			"1091500"		"70122468520"
		}
	}
}
`

const legacyLibraryFoldersVDF = `"LibraryFolders"
{
	"TimeNextStatsReport"		"1561832478"
	"ContentStatsID"		"-158337411110787451"
	"1"		"/games/Library"
	"2"		"/mnt/more"
}
`

// TestParseLibraryFolders tests decoding of the current manifest layout
func TestParseLibraryFolders(t *testing.T) {
	isDebug := false // Set to true when you want to troubleshoot issues visually.

	folders, err := ParseLibraryFolders(strings.NewReader(libraryFoldersVDF))
	if err != nil {
		t.Fatalf("ParseLibraryFolders failed: %v", err)
	}

	if isDebug {
		spew.Dump(folders)
	}

	want := LibraryFolders{
		"0": {
			Path:                     "/steam",
			Label:                    "Main",
			ContentID:                "7263416027658468000",
			TotalSize:                "0",
			UpdateCleanBytesTally:    "1234",
			TimeLastUpdateCorruption: "0",
			Apps:                     map[string]string{"228980": "346014604", "570": "38241329521"},
		},
		"1": {
			Path:                     "/games/SteamLibrary",
			Label:                    "Games",
			ContentID:                "2839487128394871234",
			TotalSize:                "1000204886016",
			UpdateCleanBytesTally:    "0",
			TimeLastUpdateCorruption: "0",
			Apps:                     map[string]string{"1091500": "70122468520"},
		},
	}
	if diff := deep.Equal(folders, want); diff != nil {
		for _, d := range diff {
			t.Error(d)
		}
	}
}

// TestParseLegacyLibraryFolders tests decoding of the pre-2021 manifest layout
func TestParseLegacyLibraryFolders(t *testing.T) {
	folders, err := ParseLibraryFolders(strings.NewReader(legacyLibraryFoldersVDF))
	if err != nil {
		t.Fatalf("ParseLibraryFolders failed: %v", err)
	}

	want := []string{"/games/Library", "/mnt/more"}
	if diff := deep.Equal(folders.Paths(), want); diff != nil {
		t.Errorf("Unexpected paths: %v", diff)
	}
}

// TestParseLibraryFoldersMissingSection tests manifests without libraryfolders
func TestParseLibraryFoldersMissingSection(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{
			name:  "Other top-level section",
			input: "\"config\"\n{\n\t\"path\"\t\t\"/steam\"\n}\n",
		},
		{
			name:  "Not at top level",
			input: "\"manifest\"\n{\n\t\"libraryfolders\"\t\t\"/steam\"\n}\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLibraryFolders(strings.NewReader(tc.input))
			if !errors.Is(err, ErrNoLibraryFolders) {
				t.Errorf("Expected ErrNoLibraryFolders, got %v", err)
			}
		})
	}
}

// TestLibraryFoldersPaths tests path extraction from parsed records
func TestLibraryFoldersPaths(t *testing.T) {
	testCases := []struct {
		name    string
		folders LibraryFolders
		want    []string
	}{
		{
			name: "Records without a path are dropped",
			folders: LibraryFolders{
				"0": {Path: "/steam"},
				"1": {Label: "broken"},
				"2": {Path: "/games"},
			},
			want: []string{"/steam", "/games"},
		},
		{
			name: "Ordered by numeric key",
			folders: LibraryFolders{
				"10": {Path: "/ten"},
				"2":  {Path: "/two"},
				"0":  {Path: "/zero"},
			},
			want: []string{"/zero", "/two", "/ten"},
		},
		{
			name: "Duplicates are dropped case-insensitively",
			folders: LibraryFolders{
				"0": {Path: "/Steam"},
				"1": {Path: "/steam/"},
				"2": {Path: "/STEAM/library/.."},
			},
			want: []string{"/Steam"},
		},
		{
			name:    "Empty",
			folders: LibraryFolders{},
			want:    nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := deep.Equal(tc.folders.Paths(), tc.want); diff != nil {
				for _, d := range diff {
					t.Error(d)
				}
			}
		})
	}
}
