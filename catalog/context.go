package catalog

import (
	"sort"
	"strings"
)

// Context is a named node in the translation tree. It holds a flat map of
// translation entries plus nested sub-contexts. Translation keys and child
// keys live in separate namespaces: the same string may name both an entry
// and a sub-context without conflict.
type Context struct {
	key          string
	translations map[string]Value
	children     map[string]*Context
}

// NewContext returns an empty context with the given key.
func NewContext(key string) *Context {
	return &Context{
		key:          key,
		translations: make(map[string]Value),
		children:     make(map[string]*Context),
	}
}

// Key returns the context's own key.
func (c *Context) Key() string {
	return c.key
}

// Set inserts or overwrites the translation entry for key.
func (c *Context) Set(key string, v Value) {
	c.translations[key] = v
}

// Register inserts a pending entry for key unless the key already exists.
// Existing entries, pending or translated, are never clobbered.
func (c *Context) Register(key string) {
	if _, ok := c.translations[key]; !ok {
		c.translations[key] = Pending()
	}
}

// Lookup returns the entry for key, if present.
func (c *Context) Lookup(key string) (Value, bool) {
	v, ok := c.translations[key]
	return v, ok
}

// Delete removes the entry for key, if present.
func (c *Context) Delete(key string) {
	delete(c.translations, key)
}

// Keys returns the translation keys of this context in sorted order.
func (c *Context) Keys() []string {
	keys := make([]string, 0, len(c.translations))
	for k := range c.translations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AddChild inserts child under its own key, replacing any existing
// sub-context with that key. Replacing a whole subtree is the supported
// way to update a section.
func (c *Context) AddChild(child *Context) {
	c.children[child.key] = child
}

// Child returns the direct sub-context named key, if present.
func (c *Context) Child(key string) (*Context, bool) {
	child, ok := c.children[key]
	return child, ok
}

// EnsureChild returns the direct sub-context named key, creating an empty
// one if it does not exist yet. Existing sub-contexts are never replaced.
func (c *Context) EnsureChild(key string) *Context {
	if child, ok := c.children[key]; ok {
		return child
	}
	child := NewContext(key)
	c.children[key] = child
	return child
}

// RemoveChild removes the direct sub-context named key, if present.
func (c *Context) RemoveChild(key string) {
	delete(c.children, key)
}

// ChildKeys returns the keys of the direct sub-contexts in sorted order.
func (c *Context) ChildKeys() []string {
	keys := make([]string, 0, len(c.children))
	for k := range c.children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resolve descends the sub-context chain named by the dotted path and
// returns the node it ends at. Every segment, including empty segments
// from consecutive or leading dots, is matched literally; an unmatched
// segment makes the resolution fail.
func (c *Context) Resolve(path string) (*Context, bool) {
	node := c
	for _, segment := range strings.Split(path, ".") {
		child, ok := node.children[segment]
		if !ok {
			return nil, false
		}
		node = child
	}
	return node, true
}

// Translate looks up key and interpolates the named params into its
// translation. A key containing dots is routed through the sub-context
// chain named by its leading segments. Missing or pending entries resolve
// to the key itself, unchanged.
func (c *Context) Translate(key string, params map[string]any) string {
	if s, ok := c.TryTranslate(key, params); ok {
		return s
	}
	return key
}

// TryTranslate is Translate with an explicit hit indicator: ok is false
// when the key has no usable translation here.
func (c *Context) TryTranslate(key string, params map[string]any) (string, bool) {
	template, ok := c.lookupTemplate(key)
	if !ok {
		return "", false
	}
	return InterpolateNamed(template, params), true
}

// TranslateArgs looks up key and fills the {} placeholders of its
// translation with args, left to right. When the key has no usable
// translation and the first argument is a string, that string serves as an
// ad-hoc template for the remaining arguments; otherwise the key itself is
// returned unchanged.
func (c *Context) TranslateArgs(key string, args ...any) string {
	if s, ok := c.TryTranslateArgs(key, args...); ok {
		return s
	}
	if tpl, ok := adHocTemplate(args); ok {
		return InterpolatePositional(tpl, args[1:]...)
	}
	return key
}

// TryTranslateArgs is TranslateArgs without the ad-hoc template
// convention: ok is false when the key has no usable translation here.
func (c *Context) TryTranslateArgs(key string, args ...any) (string, bool) {
	template, ok := c.lookupTemplate(key)
	if !ok {
		return "", false
	}
	return InterpolatePositional(template, args...), true
}

// lookupTemplate resolves key to its stored translation text. Dotted keys
// are delegated segment by segment through the sub-context chain. Pending
// entries count as misses.
func (c *Context) lookupTemplate(key string) (string, bool) {
	if first, rest, ok := strings.Cut(key, "."); ok {
		child, found := c.children[first]
		if !found {
			return "", false
		}
		return child.lookupTemplate(rest)
	}

	v, ok := c.translations[key]
	if !ok {
		return "", false
	}
	return v.Text()
}

// containsKeyAnywhere reports whether any entry named key exists in this
// context or any descendant, regardless of whether it is translated or
// pending.
func (c *Context) containsKeyAnywhere(key string) bool {
	if _, ok := c.translations[key]; ok {
		return true
	}
	for _, child := range c.children {
		if child.containsKeyAnywhere(key) {
			return true
		}
	}
	return false
}

// walk visits this context's entries in sorted key order, then recurses
// into sub-contexts in sorted key order. path is the dot-joined context
// path of c.
func (c *Context) walk(path string, fn func(contextPath, key string, v Value)) {
	for _, k := range c.Keys() {
		fn(path, k, c.translations[k])
	}
	for _, k := range c.ChildKeys() {
		c.children[k].walk(path+"."+k, fn)
	}
}

// adHocTemplate extracts the inline default template from a positional
// argument list: the first argument, when it is a string.
func adHocTemplate(args []any) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	tpl, ok := args[0].(string)
	return tpl, ok
}
