package interfaces

import (
	"context"
)

// FileResult holds the outcome of rewriting a single file.
// A failed file carries Err and a zero count; a processed file carries its
// substitution count and whether the content was written back.
type FileResult struct {
	Path     string
	Count    int
	Modified bool
	Err      error
}

// Locator discovers candidate template files under a root directory.
type Locator interface {
	FindCandidates(root string) ([]string, error)
}

// Rewriter applies the icon mapping to a single file.
type Rewriter interface {
	RewriteFile(ctx context.Context, path string) FileResult
}

// Reporter accumulates per-file results and prints the run summary.
type Reporter interface {
	FileDone(root string, res FileResult)
	Summarize()
}

// RunRecorder persists the outcome of a run for later inspection.
type RunRecorder interface {
	RecordRun(ctx context.Context, root string, dryRun bool, results []FileResult) (int64, error)
}
