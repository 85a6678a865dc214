// Package yamlfile implements reading and writing of YAML catalog
// documents: the same catalog structure as the jsonfile package,
// expressed in YAML.
//
// The expected file format is a mapping with a required string locale
// key; every other top-level key is a context. String leaves are
// translations, null leaves are pending entries, nested mappings are
// sub-contexts:
//
//	locale: de-AT
//	Menu:
//	  File: Datei
//	  Edit: null
//	  Settings:
//	    General: Allgemein
//
// Pending entries are written as explicit nulls so they stay visible and
// round-trip unchanged.
package yamlfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tobiazsh/jengua/catalog"
)

// BackupSuffix is appended to a catalog file's name when Write moves the
// previous version aside.
const BackupSuffix = ".bak"

// Load reads and parses a YAML catalog document.
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

// Parse parses YAML catalog data. The same structural rules apply as for
// the JSON dialect: the root must be a mapping with a non-empty string
// locale, contexts must be mappings, and leaves must be strings or null.
func Parse(data []byte) (*catalog.Catalog, error) {
	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("root is not a mapping")
	}

	locale, ok := obj["locale"].(string)
	if !ok || locale == "" {
		return nil, fmt.Errorf("'locale' key is missing or not a string")
	}

	cat := catalog.New(locale)
	for name, value := range obj {
		if name == "locale" {
			continue
		}
		sub, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("top-level context %q is not a mapping", name)
		}
		ctx, err := parseContext(name, sub)
		if err != nil {
			return nil, err
		}
		cat.AddContext(ctx)
	}
	return cat, nil
}

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
			return nil, fmt.Errorf("context %q: field %q: value is %T, not a string, null, or mapping", key, name, value)
		}
	}
	return ctx, nil
}

// Marshal serializes a catalog to YAML: locale first, then the top-level
// contexts sorted by key; inside each context, entries before
// sub-contexts, both sorted. Pending entries are explicit nulls.
func Marshal(c *catalog.Catalog) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content, strNode("locale"), strNode(c.Code()))

	for _, name := range c.TopLevel() {
		ctx, _ := c.GetContext(name)
		root.Content = append(root.Content, strNode(name), contextNode(ctx))
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	return buf.Bytes(), nil
}

func contextNode(ctx *catalog.Context) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, k := range ctx.Keys() {
		v, _ := ctx.Lookup(k)
		node.Content = append(node.Content, strNode(k), valueNode(v))
	}
	for _, k := range ctx.ChildKeys() {
		child, _ := ctx.Child(k)
		node.Content = append(node.Content, strNode(k), contextNode(child))
	}
	return node
}

func strNode(s string) *yaml.Node {
	// Tagging !!str keeps number-looking translations quoted on output.
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func valueNode(v catalog.Value) *yaml.Node {
	if text, ok := v.Text(); ok {
		return strNode(text)
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
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
// aside to path+BackupSuffix. As with the JSON dialect, the backup
// rename and the write are separate steps with no rollback in between.
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
