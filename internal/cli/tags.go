package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/typeguard/internal/presentation/tui"
	"github.com/aretw0/typeguard/pkg/guard"
)

var tagNotes = map[guard.Tag]string{
	guard.TagString:    "kind string, or a pointer to one",
	guard.TagNumber:    "integer, float or json.Number, or a pointer to one",
	guard.TagBigInt:    "*big.Int",
	guard.TagBoolean:   "kind bool, or a pointer to one",
	guard.TagSymbol:    "*guard.Symbol",
	guard.TagUndefined: "the nil interface",
	guard.TagObject:    "maps, structs, slices and non-nil pointers",
	guard.TagFunction:  "non-nil func values",
	guard.TagNever:     "nothing",
	guard.TagUnknown:   "everything",
	guard.TagNull:      "nil and typed nils",
	guard.TagTrue:      "the literal true",
	guard.TagFalse:     "the literal false",
	guard.TagArray:     "non-nil slices and arrays",
	guard.TagPromise:   "channels and guard.Awaitable values",
	guard.TagDate:      "time.Time",
	guard.TagRegExp:    "nothing, regexps are not guarded",
	guard.TagTypeOf:    "a string naming a builtin tag",
	guard.TagKeyOf:     "strings, numbers and symbols",
	guard.TagClass:     "reflect.Type or a constructor func",
	guard.TagAny:       "everything",
}

// TagsMarkdown lists the tags of the default registry as a Markdown table.
func TagsMarkdown() string {
	primary := guard.Primary()

	var b strings.Builder
	b.WriteString("# Type tags\n\n")
	b.WriteString("| Tag | Set | Accepts |\n")
	b.WriteString("|-----|-----|---------|\n")
	for _, tag := range guard.Default().Tags() {
		set := "unusual"
		if _, ok := primary[tag]; ok {
			set = "primary"
		}
		note, ok := tagNotes[tag]
		if !ok {
			note = "custom guard"
		}
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", tag, set, note)
	}
	return b.String()
}

// Tags renders the tag table to out.
func Tags(out io.Writer, color bool, width int) error {
	render, err := tui.NewRenderer(color, width)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	rendered, err := render(TagsMarkdown())
	if err != nil {
		return fmt.Errorf("failed to render tags: %w", err)
	}
	_, err = io.WriteString(out, rendered)
	return err
}
