package report

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/kyokomi/emoji/v2"

	"github.com/haytac/fa2emoji/pkg/interfaces"
)

const rule = "=================================================="

// Console accumulates run counters and prints the human-readable report.
// It is the only place the run's totals live; per-file results are handed in
// one at a time and summed here.
type Console struct {
	out io.Writer

	filesScanned  int
	filesModified int
	totalChanges  int
	errorCount    int
}

// NewConsole creates a reporter writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Start prints the run header.
func (c *Console) Start(found int) {
	emoji.Fprintln(c.out, ":rocket: FontAwesome to Emoji Converter")
	io.WriteString(c.out, rule+"\n")
	emoji.Fprintf(c.out, ":open_file_folder: Found %d template files to process\n\n", found)
}

// FileDone records one file's outcome and prints its line, if it earned one:
// files with replacements and files that errored are shown, untouched files
// only bump the scanned counter.
func (c *Console) FileDone(root string, res interfaces.FileResult) {
	c.filesScanned++

	if res.Err != nil {
		c.errorCount++
		emoji.Fprintf(c.out, ":x: Error processing %s: %v\n", res.Path, res.Err)
		return
	}
	if res.Count > 0 {
		c.totalChanges += res.Count
		if res.Modified {
			c.filesModified++
		}
		emoji.Fprintf(c.out, ":white_check_mark: %s: %d icons replaced\n", relativeTo(root, res.Path), res.Count)
	}
}

// Summarize prints the closing totals and the manual-review note for icon
// classes built from template expressions, which no static table can catch.
func (c *Console) Summarize() {
	io.WriteString(c.out, "\n"+rule+"\n")
	emoji.Fprintln(c.out, ":sparkles: Complete!")
	emoji.Fprintf(c.out, ":bar_chart: Files modified: %d\n", c.filesModified)
	emoji.Fprintf(c.out, ":arrows_counterclockwise: Total icons replaced: %d\n", c.totalChanges)
	if c.errorCount > 0 {
		emoji.Fprintf(c.out, ":x: Files with errors: %d\n", c.errorCount)
	}
	emoji.Fprintln(c.out, "\n:bulb: Note: Dynamic icons (variables) need manual review!")
	io.WriteString(c.out, "   Example: fa-<%= statusIcon %>\n")
}

// Totals exposes the accumulated counters for history recording.
func (c *Console) Totals() (filesScanned, filesModified, totalChanges, errorCount int) {
	return c.filesScanned, c.filesModified, c.totalChanges, c.errorCount
}

// relativeTo renders path relative to the parent of root, matching the
// "views/index.ejs" shape of the report lines.
func relativeTo(root, path string) string {
	base := filepath.Dir(strings.TrimSuffix(root, string(filepath.Separator)))
	if rel, err := filepath.Rel(base, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}
