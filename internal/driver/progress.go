package driver

import "time"

// ProgressStatus is the state of one file in a FormatPaths run.
type ProgressStatus uint8

const (
	// ProgressQueued is sent for every file before work starts.
	ProgressQueued ProgressStatus = iota
	ProgressWorking
	ProgressDone
	ProgressError
)

func (s ProgressStatus) String() string {
	switch s {
	case ProgressQueued:
		return "queued"
	case ProgressWorking:
		return "working"
	case ProgressDone:
		return "done"
	case ProgressError:
		return "error"
	default:
		return "unknown"
	}
}

// ProgressEvent describes a file changing state.
type ProgressEvent struct {
	Path    string
	Index   int
	Total   int
	Status  ProgressStatus
	Changed bool
	Cached  bool
	Err     error
	Elapsed time.Duration
}

// ProgressFunc receives events from worker goroutines concurrently.
type ProgressFunc func(ProgressEvent)

func (f ProgressFunc) emit(ev ProgressEvent) {
	if f != nil {
		f(ev)
	}
}
