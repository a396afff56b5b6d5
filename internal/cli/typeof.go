package cli

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/typeguard/internal/presentation/tui"
	"github.com/aretw0/typeguard/pkg/guard"
)

// Description holds what the guards say about one decoded literal.
type Description struct {
	Literal   string
	TypeOf    guard.Tag
	Satisfies []guard.Tag
}

// Describe decodes a YAML or JSON literal and classifies it.
func Describe(literal string) (Description, error) {
	var value any
	if err := yaml.Unmarshal([]byte(literal), &value); err != nil {
		return Description{}, fmt.Errorf("failed to decode %q: %w", literal, err)
	}

	d := Description{Literal: literal, TypeOf: guard.TypeOf(value)}
	reg := guard.Default()
	for _, tag := range reg.Tags() {
		if ok, _ := reg.Is(value, tag); ok {
			d.Satisfies = append(d.Satisfies, tag)
		}
	}
	return d, nil
}

// TypeOf prints a description of every literal.
func TypeOf(out io.Writer, color bool, literals []string) error {
	printer := tui.NewPrinter(out, color)
	for i, literal := range literals {
		d, err := Describe(literal)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		printer.Field("literal", d.Literal)
		printer.Field("typeof", string(d.TypeOf))
		printer.Field("satisfies", joinTags(d.Satisfies))
	}
	return nil
}

func joinTags(tags []guard.Tag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
