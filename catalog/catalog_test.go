package catalog

import (
	"reflect"
	"testing"
)

// buildCatalog returns a catalog with the tree
//
//	Menu:            File="Datei", Edit=pending
//	Menu.Settings:   General="Allgemein"
//	A.B.C:           X="val"
func buildCatalog() *Catalog {
	cat := New("de-DE")

	menu := NewContext("Menu")
	menu.Set("File", Translated("Datei"))
	menu.Set("Edit", Pending())
	settings := NewContext("Settings")
	settings.Set("General", Translated("Allgemein"))
	menu.AddChild(settings)
	cat.AddContext(menu)

	a := NewContext("A")
	b := NewContext("B")
	c := NewContext("C")
	c.Set("X", Translated("val"))
	b.AddChild(c)
	a.AddChild(b)
	cat.AddContext(a)

	return cat
}

func TestCatalogGetContext(t *testing.T) {
	cat := buildCatalog()

	t.Run("top level", func(t *testing.T) {
		ctx, ok := cat.GetContext("Menu")
		if !ok || ctx.Key() != "Menu" {
			t.Fatalf("GetContext(Menu) = %v, %v", ctx, ok)
		}
	})

	t.Run("nested path", func(t *testing.T) {
		ctx, ok := cat.GetContext("A.B.C")
		if !ok || ctx.Key() != "C" {
			t.Fatalf("GetContext(A.B.C) = %v, %v", ctx, ok)
		}
	})

	t.Run("unknown path misses", func(t *testing.T) {
		if _, ok := cat.GetContext("A.B.Z"); ok {
			t.Fatal("GetContext(A.B.Z) succeeded, want miss")
		}
	})

	t.Run("empty segment misses", func(t *testing.T) {
		if _, ok := cat.GetContext("A..B"); ok {
			t.Fatal("GetContext(A..B) succeeded, want miss")
		}
		if _, ok := cat.GetContext(""); ok {
			t.Fatal("GetContext(\"\") succeeded, want miss")
		}
	})
}

func TestCatalogTopContext(t *testing.T) {
	cat := buildCatalog()
	literal := NewContext("A.B")
	literal.Set("Y", Translated("literal"))
	cat.AddContext(literal)

	// Exact-key lookup, no path splitting: "A.B" is the literal context,
	// not the nested chain under A.
	ctx, ok := cat.TopContext("A.B")
	if !ok || ctx != literal {
		t.Fatalf("TopContext(A.B) = %v, %v, want the literal context", ctx, ok)
	}
	if _, ok := cat.TopContext("A.B.C"); ok {
		t.Fatal("TopContext(A.B.C) resolved a nested path")
	}

	// GetContext still splits: the same string reaches the nested chain.
	nested, ok := cat.GetContext("A.B")
	if !ok || nested.Key() != "B" {
		t.Fatalf("GetContext(A.B) = %v, %v, want the nested B node", nested, ok)
	}
}

func TestCatalogTranslate(t *testing.T) {
	cat := buildCatalog()

	if got := cat.Translate("A.B.C", "X", nil); got != "val" {
		t.Fatalf("Translate(A.B.C, X) = %q, want %q", got, "val")
	}
	if got := cat.Translate("A.B.Z", "X", nil); got != "X" {
		t.Fatalf("Translate(A.B.Z, X) = %q, want %q", got, "X")
	}
	if got := cat.Translate("Menu.Settings", "General", nil); got != "Allgemein" {
		t.Fatalf("Translate(Menu.Settings, General) = %q, want %q", got, "Allgemein")
	}
}

func TestCatalogTranslateArgsAdHoc(t *testing.T) {
	cat := buildCatalog()

	// Unresolved context path still honors the inline default template.
	got := cat.TranslateArgs("No.Such.Context", "X", "Hi {}", "Bob")
	if got != "Hi Bob" {
		t.Fatalf("TranslateArgs() = %q, want %q", got, "Hi Bob")
	}

	if got := cat.TranslateArgs("No.Such.Context", "X", 1); got != "X" {
		t.Fatalf("TranslateArgs() = %q, want %q", got, "X")
	}
}

func TestCatalogAddContextOverwrites(t *testing.T) {
	cat := buildCatalog()

	replacement := NewContext("Menu")
	replacement.Set("File", Translated("Fichier"))
	cat.AddContext(replacement)

	if got := cat.Translate("Menu", "File", nil); got != "Fichier" {
		t.Fatalf("Translate(Menu, File) = %q, want %q", got, "Fichier")
	}
	// The old subtree is gone: overwrite, not merge.
	if _, ok := cat.GetContext("Menu.Settings"); ok {
		t.Fatal("GetContext(Menu.Settings) survived an AddContext overwrite")
	}
}

func TestCatalogEnsureContext(t *testing.T) {
	cat := buildCatalog()

	ctx := cat.EnsureContext("Menu.Settings")
	if got := ctx.Translate("General", nil); got != "Allgemein" {
		t.Fatal("EnsureContext replaced an existing node")
	}

	created := cat.EnsureContext("Menu.Settings.Advanced.Network")
	if created.Key() != "Network" {
		t.Fatalf("EnsureContext returned node %q, want %q", created.Key(), "Network")
	}
	if _, ok := cat.GetContext("Menu.Settings.Advanced.Network"); !ok {
		t.Fatal("EnsureContext did not build the chain")
	}
}

func TestCatalogContainsKeyAnywhere(t *testing.T) {
	cat := buildCatalog()

	if !cat.ContainsKeyAnywhere("General") {
		t.Fatal("ContainsKeyAnywhere(General) = false")
	}
	// Pending entries count too.
	if !cat.ContainsKeyAnywhere("Edit") {
		t.Fatal("ContainsKeyAnywhere(Edit) = false")
	}
	if cat.ContainsKeyAnywhere("Nope") {
		t.Fatal("ContainsKeyAnywhere(Nope) = true")
	}
}

func TestCatalogWalkOrderAndStats(t *testing.T) {
	cat := buildCatalog()

	var paths []string
	cat.Walk(func(contextPath, key string, _ Value) {
		paths = append(paths, contextPath+"."+key)
	})
	want := []string{"A.B.C.X", "Menu.Edit", "Menu.File", "Menu.Settings.General"}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("Walk order = %v, want %v", paths, want)
	}

	total, translated, pending := cat.Stats()
	if total != 4 || translated != 3 || pending != 1 {
		t.Fatalf("Stats() = %d, %d, %d, want 4, 3, 1", total, translated, pending)
	}

	if got := cat.PendingPaths(); !reflect.DeepEqual(got, []string{"Menu.Edit"}) {
		t.Fatalf("PendingPaths() = %v, want [Menu.Edit]", got)
	}
}
