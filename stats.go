package shaderpurge

import (
	"os"

	"github.com/spf13/afero"
)

// Summary aggregates the reports of a run.
type Summary struct {
	Tasks      int   // Number of tasks that ran
	Skipped    int   // Tasks that ended before purging anything
	Dirs       int   // Directories purged
	Found      int   // Candidates found across all directories
	Removed    int   // Candidates removed
	Failed     int   // Candidates that could not be removed
	FreedBytes int64 // Bytes reclaimed

	Reports []TaskReport
}

// Summarize folds task reports into a Summary.
func Summarize(reports ...TaskReport) Summary {
	summary := Summary{
		Tasks:   len(reports),
		Reports: reports,
	}

	for _, report := range reports {
		if report.Skipped {
			summary.Skipped++
		}
		for _, result := range report.Results {
			summary.Dirs++
			summary.Found += result.Found
			summary.Removed += result.Removed
			summary.Failed += result.Failed
			summary.FreedBytes += result.FreedBytes
		}
	}

	return summary
}

// entrySize calculates the total size of a file, or of all files below a
// directory.
func (p *Purger) entrySize(path string) (int64, error) {
	var size int64

	err := afero.Walk(p.fs, path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			size += info.Size()
		}
		return nil
	})

	return size, err
}
