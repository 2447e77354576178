package lint

import "errors"

// Violation is a single style issue reported by the engine.
// Line is 1-based, Offset is a 0-based character offset into the line.
type Violation struct {
	Line   int    `json:"line"`
	Offset int    `json:"offset"`
	Code   string `json:"code"`
	Text   string `json:"text"`
}

// Reporter receives violations from the engine while a file is analyzed.
// A Reporter instance must not be shared between checks that run at the same time.
type Reporter interface {
	// InitFile resets the reporter for a new document.
	InitFile(filename string, lines []string, lineOffset int)

	// Error records one violation.
	Error(v Violation)

	// FileErrors returns the number of violations recorded since InitFile.
	FileErrors() int
}

var (
	// ErrNoConfig is returned by FindConfig when no configuration location can be determined.
	ErrNoConfig = errors.New("no configuration file location")

	// ErrNoReporter is returned when InputFile is called without a Reporter.
	ErrNoReporter = errors.New("no reporter configured")
)
