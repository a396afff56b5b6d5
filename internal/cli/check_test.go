package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/typeguard/internal/metrics"
	"github.com/aretw0/typeguard/pkg/schema"
)

const personSchema = `
name: string
age: number?
tags:
  - label: string
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.yaml", personSchema)

	t.Run("all pass", func(t *testing.T) {
		doc := writeFile(t, dir, "ok.json", `{"name": "Al", "age": 30, "tags": [{"label": "x"}]}`)
		var out bytes.Buffer

		res, err := Check(context.Background(), CheckOptions{
			SchemaPath: schemaPath,
			Documents:  []string{doc},
			Out:        &out,
		})
		require.NoError(t, err)
		assert.Equal(t, CheckResult{Checked: 1, Failed: 0}, res)
		assert.Contains(t, out.String(), "PASS "+doc)
		assert.Contains(t, out.String(), "1 checked, 0 failed")
	})

	t.Run("top-level arrays are checked per element", func(t *testing.T) {
		doc := writeFile(t, dir, "people.yaml", `
- name: Al
  tags: []
- name: Al
  age: old
  tags: []
- {}
`)
		var out bytes.Buffer

		res, err := Check(context.Background(), CheckOptions{
			SchemaPath: schemaPath,
			Documents:  []string{doc},
			Out:        &out,
		})
		assert.ErrorIs(t, err, ErrCheckFailed)
		assert.Equal(t, 3, res.Checked)
		assert.Equal(t, 2, res.Failed)

		lines := out.String()
		assert.Contains(t, lines, "PASS "+doc+"[0]")
		assert.Contains(t, lines, "FAIL "+doc+"[1]")
		assert.Contains(t, lines, `field "age": expected number, got string`)
		assert.Contains(t, lines, "FAIL "+doc+"[2]")
		assert.Contains(t, lines, `field "name": required`)
	})

	t.Run("multi document stream from stdin", func(t *testing.T) {
		var out bytes.Buffer
		stdin := strings.NewReader("name: A\ntags: []\n---\nname: B\ntags: []\n")

		res, err := Check(context.Background(), CheckOptions{
			SchemaPath: schemaPath,
			Stdin:      stdin,
			Out:        &out,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Checked)
		assert.Contains(t, out.String(), "PASS -#1")
		assert.Contains(t, out.String(), "PASS -#2")
	})

	t.Run("falsy document", func(t *testing.T) {
		var out bytes.Buffer
		res, err := Check(context.Background(), CheckOptions{
			SchemaPath: schemaPath,
			Documents:  []string{"-"},
			Stdin:      strings.NewReader("false\n"),
			Out:        &out,
		})
		assert.ErrorIs(t, err, ErrCheckFailed)
		assert.Equal(t, 1, res.Failed)
		assert.Contains(t, out.String(), "candidate is falsy")
	})

	t.Run("metrics", func(t *testing.T) {
		rec := metrics.NewRecorder()
		doc := writeFile(t, dir, "mixed.json", `[{"name": "a", "tags": []}, {"name": 1, "tags": []}]`)

		_, err := Check(context.Background(), CheckOptions{
			SchemaPath: schemaPath,
			Documents:  []string{doc},
			Metrics:    rec,
		})
		assert.ErrorIs(t, err, ErrCheckFailed)

		path := filepath.Join(t.TempDir(), "check.prom")
		require.NoError(t, rec.WriteFile(path))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `typeguard_candidates_checked_total{schema="person"} 2`)
		assert.Contains(t, string(data), `typeguard_candidates_failed_total{schema="person"} 1`)
		assert.Contains(t, string(data), "typeguard_documents_read_total 1")
	})
}

func TestCheck_SchemaErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.yaml", "name: string\nkind: array\n")
	doc := writeFile(t, dir, "doc.json", `{"name": "x"}`)

	_, err := Check(context.Background(), CheckOptions{SchemaPath: bad, Documents: []string{doc}})
	assert.ErrorIs(t, err, schema.ErrSchema)

	var out bytes.Buffer
	res, err := Check(context.Background(), CheckOptions{
		SchemaPath: bad,
		Documents:  []string{doc},
		Lenient:    true,
		Out:        &out,
	})
	assert.ErrorIs(t, err, ErrCheckFailed, "lenient fields never validate")
	assert.Equal(t, 1, res.Failed)
	assert.Contains(t, out.String(), "unsupported field spec array")

	_, err = Check(context.Background(), CheckOptions{SchemaPath: filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)
}

func TestCheck_DocumentErrors(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.yaml", personSchema)

	_, err := Check(context.Background(), CheckOptions{
		SchemaPath: schemaPath,
		Documents:  []string{filepath.Join(dir, "missing.json")},
	})
	assert.ErrorContains(t, err, "failed to read document")

	empty := writeFile(t, dir, "empty.yaml", "")
	_, err = Check(context.Background(), CheckOptions{
		SchemaPath: schemaPath,
		Documents:  []string{empty},
	})
	assert.ErrorContains(t, err, "no documents found")

	broken := writeFile(t, dir, "broken.json", `{"name": `)
	_, err = Check(context.Background(), CheckOptions{
		SchemaPath: schemaPath,
		Documents:  []string{broken},
	})
	assert.ErrorContains(t, err, "failed to decode document 1")
}

func TestCheck_Cancelled(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.yaml", personSchema)
	doc := writeFile(t, dir, "ok.json", `{"name": "Al", "tags": []}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Check(ctx, CheckOptions{SchemaPath: schemaPath, Documents: []string{doc}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Checked)
}
