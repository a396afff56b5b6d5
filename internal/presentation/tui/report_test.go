package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Pass("doc.yaml")
	p.Fail("doc.yaml[1]", `field "name": required`)
	p.Field("tag", "number")
	p.Summary(2, 1)

	want := strings.Join([]string{
		"PASS doc.yaml",
		"FAIL doc.yaml[1]",
		`     field "name": required`,
		"tag: number",
		"2 checked, 1 failed",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestNewRenderer_Plain(t *testing.T) {
	render, err := NewRenderer(false, 80)
	require.NoError(t, err)

	out, err := render("# Tags\n\n| Tag | Set |\n|-----|-----|\n| string | primary |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Tags")
	assert.Contains(t, out, "string")
}
