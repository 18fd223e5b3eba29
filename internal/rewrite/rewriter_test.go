package rewrite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haytac/fa2emoji/internal/icons"
)

func newRewriter(t *testing.T) *IconRewriter {
	t.Helper()
	return NewIconRewriter(icons.Default(), false)
}

func TestRewriteNarrowForm(t *testing.T) {
	r := newRewriter(t)

	out, count := r.Rewrite(`<i class="fas fa-trash"></i>`)
	assert.Equal(t, "🗑️ ", out)
	assert.Equal(t, 1, count)
}

func TestRewriteWithInlineStyle(t *testing.T) {
	r := newRewriter(t)

	out, count := r.Rewrite(`<i class="fas fa-save" style="color:red"></i>`)
	assert.Equal(t, "💾 ", out)
	assert.Equal(t, 1, count)
}

func TestRewriteFoldsTrailingWhitespace(t *testing.T) {
	r := newRewriter(t)

	out, _ := r.Rewrite(`<i class="fas fa-trash"></i>   Delete`)
	assert.Equal(t, "🗑️ Delete", out)
}

func TestRewriteBroadForm(t *testing.T) {
	r := newRewriter(t)

	// Icon not in first position after the prefix token.
	out, count := r.Rewrite(`<i class="btn-icon fas fa-save"></i>`)
	assert.Equal(t, "💾 ", out)
	assert.Equal(t, 1, count)

	// Extra class tokens after the icon.
	out, count = r.Rewrite(`<i class="fas fa-save extra-class"></i>`)
	assert.Equal(t, "💾 ", out)
	assert.Equal(t, 1, count)
}

func TestRewriteIdempotent(t *testing.T) {
	r := newRewriter(t)

	first, count := r.Rewrite(`<p><i class="fas fa-edit"></i></p>`)
	assert.Equal(t, 1, count)

	second, count := r.Rewrite(first)
	assert.Equal(t, first, second)
	assert.Equal(t, 0, count)
}

func TestRewriteLeavesUnknownMarkupAlone(t *testing.T) {
	r := newRewriter(t)

	in := `<i class="fas fa-<%= statusIcon %>"></i> <span>plain</span>`
	out, count := r.Rewrite(in)
	assert.Equal(t, in, out)
	assert.Equal(t, 0, count)
}

func TestRewriteSpinnerSpecialCase(t *testing.T) {
	r := newRewriter(t)

	// The spin pass runs before the generic passes: exact glyph, no trailing
	// space, and the generic fa-spinner pass never sees the element.
	out, count := r.Rewrite(`<i class="fas fa-spinner fa-spin"></i>`)
	assert.Equal(t, "⏳", out)
	assert.Equal(t, 0, count)

	// A bare spinner still goes through the generic pass.
	out, count = r.Rewrite(`<i class="fas fa-spinner"></i>`)
	assert.Equal(t, "⏳ ", out)
	assert.Equal(t, 1, count)
}

func TestRewriteMultipleIcons(t *testing.T) {
	r := newRewriter(t)

	in := `<button><i class="fas fa-save"></i>Save</button>` +
		`<button><i class="fas fa-trash"></i>Delete</button>` +
		`<button><i class="fas fa-trash"></i>Drop</button>`
	out, count := r.Rewrite(in)
	assert.Equal(t, `<button>💾 Save</button><button>🗑️ Delete</button><button>🗑️ Drop</button>`, out)
	assert.Equal(t, 3, count)
}

func TestRewriteFileWritesBackOnlyWhenChanged(t *testing.T) {
	r := newRewriter(t)
	dir := t.TempDir()

	changed := filepath.Join(dir, "changed.ejs")
	require.NoError(t, os.WriteFile(changed, []byte(`<i class="fas fa-trash"></i>`), 0644))

	res := r.RewriteFile(context.Background(), changed)
	require.NoError(t, res.Err)
	assert.Equal(t, 1, res.Count)
	assert.True(t, res.Modified)

	data, err := os.ReadFile(changed)
	require.NoError(t, err)
	assert.Equal(t, "🗑️ ", string(data))

	untouched := filepath.Join(dir, "untouched.ejs")
	original := `<h1>No icons here</h1>`
	require.NoError(t, os.WriteFile(untouched, []byte(original), 0644))

	res = r.RewriteFile(context.Background(), untouched)
	require.NoError(t, res.Err)
	assert.Zero(t, res.Count)
	assert.False(t, res.Modified)

	data, err = os.ReadFile(untouched)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestRewriteFileDryRun(t *testing.T) {
	r := NewIconRewriter(icons.Default(), true)
	dir := t.TempDir()

	path := filepath.Join(dir, "view.ejs")
	original := `<i class="fas fa-save"></i>`
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))

	res := r.RewriteFile(context.Background(), path)
	require.NoError(t, res.Err)
	assert.Equal(t, 1, res.Count)
	assert.True(t, res.Modified)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data), "dry run must not write")
}

func TestRewriteFileErrorsAreConfined(t *testing.T) {
	r := newRewriter(t)

	res := r.RewriteFile(context.Background(), filepath.Join(t.TempDir(), "missing.ejs"))
	require.Error(t, res.Err)
	assert.Zero(t, res.Count)
	assert.False(t, res.Modified)
}

func TestRewriteFileRejectsInvalidUTF8(t *testing.T) {
	r := newRewriter(t)
	path := filepath.Join(t.TempDir(), "binary.ejs")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x41}, 0644))

	res := r.RewriteFile(context.Background(), path)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "UTF-8")
}
