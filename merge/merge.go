// Package merge implements catalog merging against a template catalog,
// equivalent to msgmerge for gettext: the template defines the set of
// keys a translation catalog should carry.
package merge

import (
	"github.com/tobiazsh/jengua/catalog"
)

// Result reports what Merge did to the destination catalog.
type Result struct {
	// Added counts keys from the template that were inserted as pending.
	Added int
	// Kept counts destination entries that also exist in the template.
	Kept int
	// Pruned counts destination entries removed because the template no
	// longer carries them. Zero unless pruning was requested.
	Pruned int
}

// Merge updates dst with the key set of template:
//   - Keys in the template but not in dst are added as pending entries,
//     building context chains as needed.
//   - Existing dst entries, translated or pending, are kept untouched.
//   - Entries in dst that are absent from the template are kept by
//     default; with prune they are removed, and contexts emptied by the
//     removal are dropped.
//
// Template values are never copied into dst: the template contributes
// keys, dst keeps its own translations. Context keys are matched
// verbatim, so a key containing a literal dot never aliases a nested
// chain.
func Merge(dst, template *catalog.Catalog, prune bool) Result {
	var res Result

	for _, name := range template.TopLevel() {
		tctx, _ := template.TopContext(name)
		dctx, ok := dst.TopContext(name)
		if !ok {
			dctx = catalog.NewContext(name)
			dst.AddContext(dctx)
		}
		mergeContext(dctx, tctx, &res)
	}

	if prune {
		res.Pruned = pruneStale(dst, template)
	}

	return res
}

// mergeContext registers tmpl's keys into dst and recurses into matching
// sub-contexts pairwise.
func mergeContext(dst, tmpl *catalog.Context, res *Result) {
	for _, k := range tmpl.Keys() {
		if _, ok := dst.Lookup(k); ok {
			res.Kept++
		} else {
			dst.Register(k)
			res.Added++
		}
	}
	for _, k := range tmpl.ChildKeys() {
		tchild, _ := tmpl.Child(k)
		mergeContext(dst.EnsureChild(k), tchild, res)
	}
}

// pruneStale removes dst entries absent from the template and returns
// how many were dropped. Contexts emptied by the removal are dropped
// too.
func pruneStale(dst, template *catalog.Catalog) int {
	pruned := 0
	for _, name := range dst.TopLevel() {
		dctx, _ := dst.TopContext(name)
		tctx, _ := template.TopContext(name)
		pruned += pruneContext(dctx, tctx)
		if emptyContext(dctx) {
			dst.RemoveContext(name)
		}
	}
	return pruned
}

// pruneContext walks dst and tmpl in lockstep; tmpl is nil for subtrees
// the template does not carry at all.
func pruneContext(dst, tmpl *catalog.Context) int {
	pruned := 0
	for _, k := range dst.Keys() {
		keep := false
		if tmpl != nil {
			_, keep = tmpl.Lookup(k)
		}
		if !keep {
			dst.Delete(k)
			pruned++
		}
	}
	for _, k := range dst.ChildKeys() {
		child, _ := dst.Child(k)
		var tchild *catalog.Context
		if tmpl != nil {
			tchild, _ = tmpl.Child(k)
		}
		pruned += pruneContext(child, tchild)
		if emptyContext(child) {
			dst.RemoveChild(k)
		}
	}
	return pruned
}

func emptyContext(ctx *catalog.Context) bool {
	return len(ctx.Keys()) == 0 && len(ctx.ChildKeys()) == 0
}
