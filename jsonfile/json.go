// Package jsonfile implements reading and writing of JSON catalog
// documents.
//
// The expected file format is a root object with a required string
// "locale" field; every other root field is a top-level context object.
// Inside a context, string values are translations, null values are
// pending entries awaiting translation, and nested objects are
// sub-contexts:
//
//	{
//	    "locale": "de-AT",
//	    "Menu": {
//	        "File": "Datei",
//	        "Edit": null,
//	        "Settings": {
//	            "General": "Allgemein"
//	        }
//	    }
//	}
//
// Output is pretty-printed with explicit nulls so pending entries stay
// visible in diffs and round-trip unchanged.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tobiazsh/jengua/catalog"
)

// BackupSuffix is appended to a catalog file's name when Write moves the
// previous version aside.
const BackupSuffix = ".bak"

// StructureError describes a malformed catalog document. Field and
// Context locate the offending entry; Context is empty for root-level
// problems.
type StructureError struct {
	Field   string
	Context string
	Reason  string
}

func (e *StructureError) Error() string {
	msg := "invalid catalog document"
	if e.Context != "" {
		msg += fmt.Sprintf(": context %q", e.Context)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(": field %q", e.Field)
	}
	return msg + ": " + e.Reason
}

// Load reads and parses a JSON catalog document.
func Load(path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// Parse parses JSON catalog data. The document structure is validated
// before the tree is built; a malformed document yields a
// *StructureError naming the offending field and its enclosing context.
func Parse(data []byte) (*catalog.Catalog, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return nil, &StructureError{Reason: "root is not an object"}
	}

	locale, ok := obj["locale"].(string)
	if !ok {
		return nil, &StructureError{Field: "locale", Reason: "missing or not a string"}
	}
	if locale == "" {
		return nil, &StructureError{Field: "locale", Reason: "must not be empty"}
	}

	cat := catalog.New(locale)
	for name, value := range obj {
		if name == "locale" {
			continue
		}
		sub, ok := value.(map[string]any)
		if !ok {
			return nil, &StructureError{Field: name, Reason: "top-level context is not an object"}
		}
		ctx, err := parseContext(name, sub)
		if err != nil {
			return nil, err
		}
		cat.AddContext(ctx)
	}
	return cat, nil
}

// parseContext builds a context node from a decoded JSON object,
// recursing into nested objects.
func parseContext(key string, obj map[string]any) (*catalog.Context, error) {
	ctx := catalog.NewContext(key)
	for name, value := range obj {
		switch v := value.(type) {
		case nil:
			ctx.Set(name, catalog.Pending())
		case string:
			ctx.Set(name, catalog.Translated(v))
		case map[string]any:
			child, err := parseContext(name, v)
			if err != nil {
				return nil, err
			}
			ctx.AddChild(child)
		default:
			return nil, &StructureError{
				Field:   name,
				Context: key,
				Reason:  fmt.Sprintf("value is %T, not a string, null, or object", value),
			}
		}
	}
	return ctx, nil
}

// Marshal serializes a catalog to the document format: 4-space indented,
// locale first, then the top-level contexts sorted by key. Inside each
// context, translation entries come before sub-contexts, both sorted.
// Pending entries are written as explicit nulls.
func Marshal(c *catalog.Catalog) ([]byte, error) {
	var b strings.Builder
	b.WriteString("{\n")
	b.WriteString(fmt.Sprintf("    \"locale\": %s", jsonString(c.Code())))

	for _, name := range c.TopLevel() {
		ctx, _ := c.GetContext(name)
		b.WriteString(",\n")
		b.WriteString(fmt.Sprintf("    %s: ", jsonString(name)))
		writeContext(&b, ctx, 1)
	}

	b.WriteString("\n}\n")
	return []byte(b.String()), nil
}

// writeContext serializes one context object at the given indent depth.
func writeContext(b *strings.Builder, ctx *catalog.Context, depth int) {
	keys := ctx.Keys()
	children := ctx.ChildKeys()
	if len(keys) == 0 && len(children) == 0 {
		b.WriteString("{}")
		return
	}

	indent := strings.Repeat("    ", depth+1)
	b.WriteString("{\n")

	written := 0
	total := len(keys) + len(children)

	for _, k := range keys {
		v, _ := ctx.Lookup(k)
		b.WriteString(indent)
		b.WriteString(jsonString(k))
		b.WriteString(": ")
		if text, ok := v.Text(); ok {
			b.WriteString(jsonString(text))
		} else {
			b.WriteString("null")
		}
		written++
		if written < total {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}

	for _, k := range children {
		child, _ := ctx.Child(k)
		b.WriteString(indent)
		b.WriteString(jsonString(k))
		b.WriteString(": ")
		writeContext(b, child, depth+1)
		written++
		if written < total {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat("    ", depth))
	b.WriteByte('}')
}

// jsonString renders s as a JSON string literal, keeping HTML-significant
// characters readable. Control characters come out in JSON escape syntax,
// so every quoted string reparses.
func jsonString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a plain string cannot fail.
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

// Backup moves an existing file at path aside to path+BackupSuffix,
// deleting any previous backup first. A missing file is not an error.
func Backup(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking %s: %w", path, err)
	}

	backupPath := path + BackupSuffix
	if err := os.Remove(backupPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing old backup %s: %w", backupPath, err)
	}
	if err := os.Rename(path, backupPath); err != nil {
		return fmt.Errorf("creating backup for %s: %w", path, err)
	}
	return nil
}

// Write serializes the catalog to path, first moving any existing file
// aside to path+BackupSuffix. The backup rename and the write are two
// separate steps: if the write fails after the rename succeeded, path is
// gone and only the backup remains. Callers must treat a failed Write as
// potentially having consumed the previous file.
func Write(c *catalog.Catalog, path string) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}

	if err := Backup(path); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
