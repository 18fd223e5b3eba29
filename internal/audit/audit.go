// Package audit finds icon markup the rewriter cannot handle: class values
// assembled from template expressions and icon classes missing from the
// mapping table. It reads templates through an HTML tokenizer and never
// mutates anything.
package audit

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/haytac/fa2emoji/internal/icons"
)

// Reasons a class value gets flagged.
const (
	ReasonDynamic = "dynamic"
	ReasonUnknown = "unknown"
)

// Finding is one icon usage needing manual follow-up.
type Finding struct {
	Path   string
	Tag    string
	Class  string
	Icon   string // the offending fa-* token; empty for dynamic classes
	Reason string
}

// modifier classes that ride along with an icon and never name one
var modifiers = map[string]bool{
	"fa-spin": true, "fa-pulse": true, "fa-fw": true, "fa-border": true,
	"fa-xs": true, "fa-sm": true, "fa-lg": true,
	"fa-2x": true, "fa-3x": true, "fa-4x": true, "fa-5x": true,
	"fa-flip-horizontal": true, "fa-flip-vertical": true,
	"fa-rotate-90": true, "fa-rotate-180": true, "fa-rotate-270": true,
}

// Scanner inspects templates against a mapping table.
type Scanner struct {
	known map[string]bool
}

// NewScanner creates a scanner treating the table's classes as handled.
func NewScanner(table icons.Table) *Scanner {
	known := make(map[string]bool, len(table))
	for _, m := range table {
		known[m.Class] = true
	}
	return &Scanner{known: known}
}

// ScanFile audits a single template file.
func (s *Scanner) ScanFile(path string) ([]Finding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return s.Scan(f, path)
}

// Scan audits template content, attributing findings to path.
func (s *Scanner) Scan(r io.Reader, path string) ([]Finding, error) {
	var findings []Finding

	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return findings, nil
			}
			return findings, fmt.Errorf("tokenizing %s: %w", path, z.Err())
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			for _, attr := range tok.Attr {
				if attr.Key != "class" || !strings.Contains(attr.Val, "fa-") {
					continue
				}
				findings = append(findings, s.inspect(path, tok.Data, attr.Val)...)
			}
		}
	}
}

func (s *Scanner) inspect(path, tag, class string) []Finding {
	// A template expression anywhere in the class value means the icon name
	// is only known at render time.
	if strings.Contains(class, "<%") || strings.Contains(class, "%>") {
		return []Finding{{Path: path, Tag: tag, Class: class, Reason: ReasonDynamic}}
	}

	var findings []Finding
	for _, token := range strings.Fields(class) {
		if !strings.HasPrefix(token, "fa-") || modifiers[token] || s.known[token] {
			continue
		}
		findings = append(findings, Finding{
			Path: path, Tag: tag, Class: class, Icon: token, Reason: ReasonUnknown,
		})
	}
	return findings
}
