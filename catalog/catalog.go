// Package catalog implements the in-memory translation catalog: a forest
// of named contexts per locale, dotted-path resolution, and template
// interpolation.
//
// A catalog mirrors the catalog document format exactly:
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
// String values are translations, null values are pending entries
// (registered but awaiting translation), and nested objects are
// sub-contexts of arbitrary depth. A null value round-trips: it marks a
// key a translator still has to fill in.
//
// Catalogs are not safe for concurrent use. Lookups through a Translator
// may mutate the fallback catalog (see the translator package), so callers
// running translations concurrently with catalog swaps or saves must
// provide their own exclusion.
package catalog

import (
	"sort"
	"strings"
)

// Catalog holds all translations for one locale: the locale code and the
// forest of top-level contexts.
type Catalog struct {
	code     string
	contexts map[string]*Context
}

// New returns an empty catalog for the given locale code.
func New(code string) *Catalog {
	return &Catalog{
		code:     code,
		contexts: make(map[string]*Context),
	}
}

// Code returns the catalog's locale code, e.g. "en-US".
func (c *Catalog) Code() string {
	return c.code
}

// AddContext inserts ctx as a top-level context under its own key,
// replacing any existing context with that key.
func (c *Catalog) AddContext(ctx *Context) {
	c.contexts[ctx.Key()] = ctx
}

// RemoveContext removes the top-level context named key, if present.
func (c *Catalog) RemoveContext(key string) {
	delete(c.contexts, key)
}

// TopLevel returns the keys of the top-level contexts in sorted order.
func (c *Catalog) TopLevel() []string {
	keys := make([]string, 0, len(c.contexts))
	for k := range c.contexts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TopContext returns the top-level context whose key is exactly the
// given string, with no dotted-path splitting. A top-level context whose
// key contains a literal dot is reachable only this way.
func (c *Catalog) TopContext(key string) (*Context, bool) {
	ctx, ok := c.contexts[key]
	return ctx, ok
}

// GetContext resolves a dotted context path to a node. The first segment
// selects a top-level context, each further segment descends one
// sub-context. Path segments, including empty ones, are matched
// literally.
func (c *Catalog) GetContext(path string) (*Context, bool) {
	first, rest, nested := strings.Cut(path, ".")
	ctx, ok := c.contexts[first]
	if !ok {
		return nil, false
	}
	if !nested {
		return ctx, true
	}
	return ctx.Resolve(rest)
}

// EnsureContext resolves a dotted context path, creating any missing
// nodes along the way. Existing nodes are never replaced.
func (c *Catalog) EnsureContext(path string) *Context {
	first, rest, nested := strings.Cut(path, ".")
	ctx, ok := c.contexts[first]
	if !ok {
		ctx = NewContext(first)
		c.contexts[first] = ctx
	}
	if !nested {
		return ctx
	}
	for _, segment := range strings.Split(rest, ".") {
		ctx = ctx.EnsureChild(segment)
	}
	return ctx
}

// Translate resolves the dotted context path and translates key there
// with named parameters. An unresolved path or a missing key yields the
// key itself, unchanged.
func (c *Catalog) Translate(path, key string, params map[string]any) string {
	if s, ok := c.TryTranslate(path, key, params); ok {
		return s
	}
	return key
}

// TryTranslate is Translate with an explicit hit indicator.
func (c *Catalog) TryTranslate(path, key string, params map[string]any) (string, bool) {
	ctx, ok := c.GetContext(path)
	if !ok {
		return "", false
	}
	return ctx.TryTranslate(key, params)
}

// TranslateArgs resolves the dotted context path and translates key there
// with positional arguments. When the lookup misses and the first
// argument is a string, it serves as an ad-hoc template for the remaining
// arguments; otherwise the key itself is returned unchanged.
func (c *Catalog) TranslateArgs(path, key string, args ...any) string {
	if s, ok := c.TryTranslateArgs(path, key, args...); ok {
		return s
	}
	if tpl, ok := adHocTemplate(args); ok {
		return InterpolatePositional(tpl, args[1:]...)
	}
	return key
}

// TryTranslateArgs is TranslateArgs without the ad-hoc template
// convention.
func (c *Catalog) TryTranslateArgs(path, key string, args ...any) (string, bool) {
	ctx, ok := c.GetContext(path)
	if !ok {
		return "", false
	}
	return ctx.TryTranslateArgs(key, args...)
}

// ContainsKeyAnywhere reports whether any context in the catalog holds an
// entry named key, translated or pending. Intended for diagnostics and
// tests, not the translate path.
func (c *Catalog) ContainsKeyAnywhere(key string) bool {
	for _, ctx := range c.contexts {
		if ctx.containsKeyAnywhere(key) {
			return true
		}
	}
	return false
}

// Walk visits every translation entry in the catalog in deterministic
// order: top-level contexts sorted by key, entries before sub-contexts,
// both sorted. contextPath is the dot-joined path of the entry's context.
func (c *Catalog) Walk(fn func(contextPath, key string, v Value)) {
	for _, k := range c.TopLevel() {
		c.contexts[k].walk(k, fn)
	}
}

// Stats returns the entry counts of the whole catalog.
func (c *Catalog) Stats() (total, translated, pending int) {
	c.Walk(func(_, _ string, v Value) {
		total++
		if v.IsPending() {
			pending++
		} else {
			translated++
		}
	})
	return total, translated, pending
}

// PendingPaths returns the dot-joined paths of all pending entries in
// deterministic order.
func (c *Catalog) PendingPaths() []string {
	var paths []string
	c.Walk(func(contextPath, key string, v Value) {
		if v.IsPending() {
			paths = append(paths, contextPath+"."+key)
		}
	})
	return paths
}
