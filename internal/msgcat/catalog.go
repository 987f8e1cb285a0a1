// Package msgcat loads user-facing strings from an embedded YAML catalog,
// optionally overridden by YAML files in a directory.
package msgcat

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	yaml "gopkg.in/yaml.v3"
)

//go:embed messages.en.yaml
var defaultFiles embed.FS

const defaultFile = "messages.en.yaml"

// Message keys used by the game.
const (
	KeyBoardTitle  = "board.title"
	KeyBoardToPlay = "board.to_play"
	KeySideWhite   = "side.white"
	KeySideBlack   = "side.black"
	KeyMoveInvalid = "move.invalid"
	KeyReadError   = "input.read_error"
)

var (
	// ErrTemplateNotFound is returned by Render for unknown or blank keys.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrUnknownKey is returned by New when an override names a key the
	// embedded catalog does not define.
	ErrUnknownKey = errors.New("unknown message key")
)

// Catalog maps dot-keys to compiled templates. It is read-only after New.
// Missing template fields are errors, so callers keep a fallback.
type Catalog struct {
	templates map[string]*template.Template
}

// New loads the embedded messages, overlays every *.yaml/*.yml file in
// overrideDir in name order (later files win) and compiles the result.
func New(overrideDir string) (*Catalog, error) {
	raw, err := defaultFiles.ReadFile(defaultFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded messages: %w", err)
	}
	texts, err := flatten(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", defaultFile, err)
	}

	if dir := strings.TrimSpace(overrideDir); dir != "" {
		if err := overlayDir(texts, dir); err != nil {
			return nil, err
		}
	}

	c := &Catalog{templates: make(map[string]*template.Template, len(texts))}
	for key, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		t, err := template.New(key).Option("missingkey=error").Parse(text)
		if err != nil {
			return nil, fmt.Errorf("compile %s: %w", key, err)
		}
		c.templates[key] = t
	}
	return c, nil
}

func overlayDir(texts map[string]string, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read message dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml":
			if !e.IsDir() {
				names = append(names, e.Name())
			}
		}
	}
	slices.Sort(names)

	for _, name := range names {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		overrides, err := flatten(raw)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		for key, text := range overrides {
			if _, ok := texts[key]; !ok {
				return fmt.Errorf("%s: %w %q", name, ErrUnknownKey, key)
			}
			texts[key] = text
		}
	}
	return nil
}

// flatten turns nested YAML mappings into dot-keys. Every leaf must be a string.
func flatten(raw []byte) (map[string]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	if len(doc.Content) == 0 {
		return out, nil
	}
	if err := walk(doc.Content[0], "", out); err != nil {
		return nil, err
	}
	return out, nil
}

func walk(n *yaml.Node, prefix string, out map[string]string) error {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			if prefix != "" {
				key = prefix + "." + key
			}
			if err := walk(n.Content[i+1], key, out); err != nil {
				return err
			}
		}
		return nil
	case yaml.ScalarNode:
		if prefix == "" {
			return errors.New("top level must be a mapping")
		}
		if n.ShortTag() != "!!str" {
			return fmt.Errorf("line %d: %s is %s, want a string", n.Line, prefix, n.ShortTag())
		}
		out[prefix] = n.Value
		return nil
	default:
		return fmt.Errorf("line %d: unsupported value at %q", n.Line, prefix)
	}
}

// Render executes the template stored under key with data.
func (c *Catalog) Render(key string, data any) (string, error) {
	if c == nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, key)
	}
	t, ok := c.templates[strings.TrimSpace(key)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, key)
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Text renders key and returns fallback when the template is missing or fails.
func (c *Catalog) Text(key string, data any, fallback string) string {
	s, err := c.Render(key, data)
	if err != nil {
		return fallback
	}
	return s
}
