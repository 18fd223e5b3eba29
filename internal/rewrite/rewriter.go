package rewrite

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/haytac/fa2emoji/internal/icons"
	"github.com/haytac/fa2emoji/pkg/interfaces"
)

// spinnerGlyph replaces the animated spinner element. No trailing space: the
// spinner usually sits alone inside a button or status line.
const spinnerGlyph = "⏳"

// spinPattern matches the exact animated-spinner class. It runs before the
// generic passes; otherwise the generic fa-spinner pass consumes the element
// first and leaves a trailing space behind.
var spinPattern = regexp.MustCompile(`<i\s+class="fas\s+fa-spinner\s+fa-spin"[^>]*></i>`)

type iconPass struct {
	class  string
	emoji  string
	narrow *regexp.Regexp
	broad  *regexp.Regexp
}

// IconRewriter replaces FontAwesome icon elements with emoji, file by file.
// Patterns are compiled once at construction and shared across files.
type IconRewriter struct {
	passes []iconPass
	dryRun bool
}

// NewIconRewriter builds a rewriter for the given table. Table order is
// preserved: it is the replacement precedence.
func NewIconRewriter(table icons.Table, dryRun bool) *IconRewriter {
	passes := make([]iconPass, 0, len(table))
	for _, m := range table {
		class := regexp.QuoteMeta(m.Class)
		passes = append(passes, iconPass{
			class: m.Class,
			emoji: m.Emoji,
			// Narrow: class attribute starts with a style prefix (fas/far/fab)
			// followed by the icon as the first token, optionally more tokens,
			// optionally an inline style, no inner text. Trailing whitespace
			// is folded into the match so the emoji gets exactly one space.
			narrow: regexp.MustCompile(`<i\s+class="fa[srb]\s+` + class + `(?:\s+[^"]*)?"\s*(?:style="[^"]*")?\s*></i>\s*`),
			// Broad: the icon may sit anywhere inside the class value.
			broad: regexp.MustCompile(`<i\s+class="[^"]*fa[srb]\s+` + class + `[^"]*"\s*(?:style="[^"]*")?\s*></i>\s*`),
		})
	}
	return &IconRewriter{passes: passes, dryRun: dryRun}
}

// Rewrite applies all passes to content and returns the new content plus the
// substitution count. Counts are taken before each replacement; when the broad
// pass re-matches a span the narrow pass already handled, both are counted.
// That imprecision is inherited behavior and the count is only a progress
// indicator.
func (r *IconRewriter) Rewrite(content string) (string, int) {
	content = spinPattern.ReplaceAllLiteralString(content, spinnerGlyph)

	changes := 0
	for _, p := range r.passes {
		if n := len(p.narrow.FindAllStringIndex(content, -1)); n > 0 {
			content = p.narrow.ReplaceAllLiteralString(content, p.emoji+" ")
			changes += n
		}
		if n := len(p.broad.FindAllStringIndex(content, -1)); n > 0 {
			content = p.broad.ReplaceAllLiteralString(content, p.emoji+" ")
			changes += n
		}
	}
	return content, changes
}

// RewriteFile loads path, rewrites its content, and writes it back in place
// when anything changed. Read, decode, and write failures are confined to the
// file: they come back inside the FileResult, never as a run-level error.
func (r *IconRewriter) RewriteFile(ctx context.Context, path string) interfaces.FileResult {
	res := interfaces.FileResult{Path: path}

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("reading %s: %w", path, err)
		return res
	}
	if !utf8.Valid(raw) {
		res.Err = fmt.Errorf("reading %s: content is not valid UTF-8", path)
		return res
	}

	original := string(raw)
	rewritten, count := r.Rewrite(original)
	res.Count = count

	if rewritten == original {
		return res
	}

	if r.dryRun {
		log.Debug().Str("path", path).Int("count", count).Msg("Dry run, skipping write")
		res.Modified = true
		return res
	}

	// In-place overwrite, no temp-and-rename. A kill mid-run leaves already
	// written files modified and the rest untouched.
	if err := os.WriteFile(path, []byte(rewritten), 0644); err != nil {
		res.Count = 0
		res.Err = fmt.Errorf("writing %s: %w", path, err)
		return res
	}
	res.Modified = true
	return res
}
