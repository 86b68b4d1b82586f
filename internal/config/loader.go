package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Stdin is the path that makes Load read from os.Stdin.
const Stdin = "-"

// Load reads and validates the document at path. A path of "-" reads stdin.
func Load(path string) (*Document, error) {
	var (
		data []byte
		err  error
	)
	if path == Stdin {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	doc, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document from r and validates it. Unknown keys are
// rejected. An empty input yields an empty graph.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
