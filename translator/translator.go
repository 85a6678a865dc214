// Package translator orchestrates lookups across translation catalogs: it
// consults the current catalog first, then a fallback catalog, and records
// keys missing from both into the fallback as pending entries so a human
// translator can fill them in later.
//
// Tr is therefore not a pure function: a miss grows the fallback catalog.
// A Translator is not safe for concurrent use.
package translator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tobiazsh/jengua/catalog"
	"github.com/tobiazsh/jengua/jsonfile"
)

// ErrNilCatalog is returned when a nil catalog is registered.
var ErrNilCatalog = errors.New("catalog is nil")

// ErrNotFound is returned by SetLanguage for an unregistered locale code.
var ErrNotFound = errors.New("language not loaded")

// Translator holds the active and fallback catalogs plus a registry of
// all loaded catalogs keyed by locale code.
type Translator struct {
	registry map[string]*catalog.Catalog
	current  *catalog.Catalog
	fallback *catalog.Catalog
}

// New returns a Translator using def as the active catalog and fallback
// as the catalog consulted, and auto-extended, on misses. Both are
// registered; when they are distinct instances sharing one locale code,
// the fallback keeps the registry slot and def stays active unregistered.
func New(def, fallback *catalog.Catalog) *Translator {
	t := &Translator{
		registry: make(map[string]*catalog.Catalog),
		current:  def,
		fallback: fallback,
	}
	if fallback != nil {
		t.registry[fallback.Code()] = fallback
	}
	if def != nil && def != fallback {
		if _, taken := t.registry[def.Code()]; !taken {
			t.registry[def.Code()] = def
		}
	}
	return t
}

// AddCatalog registers a catalog under its locale code. Registering nil
// is an error. A catalog whose code is already registered is silently
// ignored: the first registration wins, duplicates are not merged.
func (t *Translator) AddCatalog(c *catalog.Catalog) error {
	if c == nil {
		return ErrNilCatalog
	}
	if _, ok := t.registry[c.Code()]; ok {
		return nil
	}
	t.registry[c.Code()] = c
	return nil
}

// LoadFile loads a JSON catalog document from path and registers it.
func (t *Translator) LoadFile(path string) error {
	c, err := jsonfile.Load(path)
	if err != nil {
		return err
	}
	return t.AddCatalog(c)
}

// SetLanguage makes the catalog registered under code the active one.
// The fallback catalog is unaffected. An unregistered code fails with
// ErrNotFound and leaves the active catalog unchanged.
func (t *Translator) SetLanguage(code string) error {
	c, ok := t.registry[code]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, code)
	}
	t.current = c
	return nil
}

// Current returns the active catalog.
func (t *Translator) Current() *catalog.Catalog {
	return t.current
}

// Fallback returns the fallback catalog. It never changes after
// construction.
func (t *Translator) Fallback() *catalog.Catalog {
	return t.fallback
}

// Languages returns the registered locale codes in sorted order.
func (t *Translator) Languages() []string {
	codes := make([]string, 0, len(t.registry))
	for code := range t.registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Tr translates key in the dotted context path with named parameters.
// The active catalog is consulted first, then the fallback. A key found
// in neither is auto-registered as a pending entry in the fallback
// catalog and returned unchanged. Gaps never fail: the caller always
// gets a usable string.
func (t *Translator) Tr(contextPath, key string, params map[string]any) string {
	if t.current != nil {
		if s, ok := t.current.TryTranslate(contextPath, key, params); ok {
			return s
		}
	}
	if t.fallback != nil {
		if s, ok := t.fallback.TryTranslate(contextPath, key, params); ok {
			return s
		}
		t.registerMissing(contextPath, key)
	}
	return key
}

// TrArgs translates key in the dotted context path with positional
// arguments, following the same current/fallback/auto-register policy as
// Tr. When the key is found nowhere and the first argument is a string,
// that string serves as an ad-hoc template for the remaining arguments
// after the miss has been registered.
func (t *Translator) TrArgs(contextPath, key string, args ...any) string {
	if t.current != nil {
		if s, ok := t.current.TryTranslateArgs(contextPath, key, args...); ok {
			return s
		}
	}
	if t.fallback != nil {
		if s, ok := t.fallback.TryTranslateArgs(contextPath, key, args...); ok {
			return s
		}
		t.registerMissing(contextPath, key)
	}
	if len(args) > 0 {
		if tpl, ok := args[0].(string); ok {
			return catalog.InterpolatePositional(tpl, args[1:]...)
		}
	}
	return key
}

// registerMissing records a miss in the fallback catalog: the context
// chain is built as needed and key is inserted as a pending entry unless
// it already exists. Repeated misses are idempotent.
func (t *Translator) registerMissing(contextPath, key string) {
	t.fallback.EnsureContext(contextPath).Register(key)
}
