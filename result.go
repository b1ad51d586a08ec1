package shaderpurge

// Task names one of the cleanup tasks.
type Task string

const (
	TaskSteam   Task = "steam"
	TaskDirectX Task = "directx"
	TaskOpenGL  Task = "opengl"
)

// EntryKind tags a directory entry at discovery time.
type EntryKind int

const (
	KindOther EntryKind = iota // symlinks, devices and anything else never purged
	KindFile
	KindDir
)

// String returns a human-readable name for the kind.
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	default:
		return "other"
	}
}

// Candidate is an immediate entry of a cache directory selected for deletion.
type Candidate struct {
	Name string
	Kind EntryKind
}

// PurgeResult describes one Bulk Purge of a single directory.
type PurgeResult struct {
	Dir   string // Directory that was purged
	Found int    // Number of candidates handed to the purge

	// RemovedEstimate is Found minus the number of candidates still listed
	// in Dir after the purge. It is a heuristic: entries created or deleted
	// by other processes while the purge runs skew it.
	RemovedEstimate int

	Removed    int   // Delete attempts that returned no error
	Failed     int   // Delete attempts that returned an error
	FreedBytes int64 // Bytes held by successfully removed entries

	// Err is a *PurgeError listing every failed delete, or nil.
	Err error
}

// TaskReport is the outcome of one cleanup task.
type TaskReport struct {
	Task    Task
	Skipped bool  // The task ended before purging anything
	Reason  error // Why the task was skipped

	// SkippedDirs lists cache directories that could not be enumerated.
	// For Steam a missing library cache skips only that library.
	SkippedDirs []string

	Results []PurgeResult
}

// skip marks the report as skipped and returns it.
func (r TaskReport) skip(reason error) TaskReport {
	r.Skipped = true
	r.Reason = reason
	return r
}
