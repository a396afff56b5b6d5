package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"
)

const stdinName = "-"

// candidate is one value to validate, labelled for reporting.
type candidate struct {
	label string
	value any
}

// readSource returns the raw bytes of a document argument.
func readSource(name string, stdin io.Reader) ([]byte, error) {
	if name == stdinName {
		if stdin == nil {
			return nil, fmt.Errorf("no stdin available")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return data, nil
}

// decodeDocuments decodes every document of a YAML stream. JSON input is a
// single YAML document.
func decodeDocuments(data []byte) ([]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var docs []any
	for {
		var doc any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode document %d: %w", len(docs)+1, err)
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents found")
	}
	return docs, nil
}

// expand turns decoded documents into candidates. Top-level sequences are
// validated element by element.
func expand(name string, docs []any) []candidate {
	var out []candidate
	for i, doc := range docs {
		label := name
		if len(docs) > 1 {
			label = fmt.Sprintf("%s#%d", name, i+1)
		}

		rv := reflect.ValueOf(doc)
		if rv.Kind() != reflect.Slice {
			out = append(out, candidate{label: label, value: doc})
			continue
		}
		for j := 0; j < rv.Len(); j++ {
			out = append(out, candidate{
				label: fmt.Sprintf("%s[%d]", label, j),
				value: rv.Index(j).Interface(),
			})
		}
	}
	return out
}
