package audit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haytac/fa2emoji/internal/icons"
)

func scan(t *testing.T, content string) []Finding {
	t.Helper()
	findings, err := NewScanner(icons.Default()).Scan(strings.NewReader(content), "test.ejs")
	require.NoError(t, err)
	return findings
}

func TestScanFlagsDynamicClasses(t *testing.T) {
	findings := scan(t, `<i class="fas fa-<%= statusIcon %>"></i>`)

	require.Len(t, findings, 1)
	assert.Equal(t, ReasonDynamic, findings[0].Reason)
	assert.Equal(t, "i", findings[0].Tag)
	assert.Contains(t, findings[0].Class, "<%= statusIcon %>")
}

func TestScanFlagsUnknownIcons(t *testing.T) {
	findings := scan(t, `<span class="fas fa-dragon fa-lg"></span>`)

	require.Len(t, findings, 1)
	assert.Equal(t, ReasonUnknown, findings[0].Reason)
	assert.Equal(t, "fa-dragon", findings[0].Icon)
	assert.Equal(t, "span", findings[0].Tag)
}

func TestScanIgnoresKnownIconsAndModifiers(t *testing.T) {
	findings := scan(t, `
		<i class="fas fa-save"></i>
		<i class="fas fa-spinner fa-spin"></i>
		<div class="not-an-icon"></div>`)

	assert.Empty(t, findings)
}

func TestScanMultipleFindings(t *testing.T) {
	findings := scan(t, `
		<i class="fas fa-<%= icon %>"></i>
		<i class="far fa-unicorn"></i>`)

	require.Len(t, findings, 2)
	assert.Equal(t, ReasonDynamic, findings[0].Reason)
	assert.Equal(t, ReasonUnknown, findings[1].Reason)
}
