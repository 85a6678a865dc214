package catalog

import "testing"

func TestValue(t *testing.T) {
	v := Translated("Datei")
	if v.IsPending() {
		t.Fatal("Translated value reports pending")
	}
	if text, ok := v.Text(); !ok || text != "Datei" {
		t.Fatalf("Text() = %q, %v, want %q, true", text, ok, "Datei")
	}

	p := Pending()
	if !p.IsPending() {
		t.Fatal("Pending value does not report pending")
	}
	if _, ok := p.Text(); ok {
		t.Fatal("Text() on pending value reports ok")
	}
}

func TestContextTranslate(t *testing.T) {
	ctx := NewContext("Menu")
	ctx.Set("File", Translated("Datei"))
	ctx.Set("Edit", Pending())

	t.Run("flat hit", func(t *testing.T) {
		if got := ctx.Translate("File", nil); got != "Datei" {
			t.Fatalf("Translate(File) = %q, want %q", got, "Datei")
		}
	})

	t.Run("missing key returns key", func(t *testing.T) {
		if got := ctx.Translate("Save", nil); got != "Save" {
			t.Fatalf("Translate(Save) = %q, want %q", got, "Save")
		}
	})

	t.Run("pending entry returns key", func(t *testing.T) {
		if got := ctx.Translate("Edit", nil); got != "Edit" {
			t.Fatalf("Translate(Edit) = %q, want %q", got, "Edit")
		}
	})

	t.Run("params are interpolated", func(t *testing.T) {
		ctx.Set("Greeting", Translated("Hallo {name}"))
		got := ctx.Translate("Greeting", map[string]any{"name": "Ada"})
		if got != "Hallo Ada" {
			t.Fatalf("Translate(Greeting) = %q, want %q", got, "Hallo Ada")
		}
	})
}

func TestContextDottedKeyDelegation(t *testing.T) {
	root := NewContext("Menu")
	file := NewContext("File")
	recent := NewContext("Recent")
	recent.Set("Clear", Translated("Leeren"))
	file.AddChild(recent)
	root.AddChild(file)

	t.Run("recurses through every segment", func(t *testing.T) {
		if got := root.Translate("File.Recent.Clear", nil); got != "Leeren" {
			t.Fatalf("Translate() = %q, want %q", got, "Leeren")
		}
	})

	t.Run("unknown child returns full key", func(t *testing.T) {
		if got := root.Translate("View.Zoom", nil); got != "View.Zoom" {
			t.Fatalf("Translate() = %q, want %q", got, "View.Zoom")
		}
	})
}

func TestContextTranslateArgs(t *testing.T) {
	ctx := NewContext("Basket")
	ctx.Set("Count", Translated("Found {} apples and {} pears"))

	t.Run("stored template", func(t *testing.T) {
		got := ctx.TranslateArgs("Count", 2, 3)
		if got != "Found 2 apples and 3 pears" {
			t.Fatalf("TranslateArgs() = %q", got)
		}
	})

	t.Run("ad-hoc template on miss", func(t *testing.T) {
		got := ctx.TranslateArgs("NoSuchKey", "Hi {}", "Bob")
		if got != "Hi Bob" {
			t.Fatalf("TranslateArgs() = %q, want %q", got, "Hi Bob")
		}
	})

	t.Run("miss without string arg returns key", func(t *testing.T) {
		if got := ctx.TranslateArgs("NoSuchKey", 1, 2); got != "NoSuchKey" {
			t.Fatalf("TranslateArgs() = %q, want %q", got, "NoSuchKey")
		}
	})

	t.Run("stored template wins over ad-hoc", func(t *testing.T) {
		got := ctx.TranslateArgs("Count", "ignored {}", 9)
		if got != "Found ignored {} apples and 9 pears" {
			t.Fatalf("TranslateArgs() = %q", got)
		}
	})
}

func TestContextRegister(t *testing.T) {
	ctx := NewContext("Menu")
	ctx.Set("File", Translated("Datei"))

	ctx.Register("File")
	if v, _ := ctx.Lookup("File"); v.IsPending() {
		t.Fatal("Register clobbered an existing translation")
	}

	ctx.Register("Save")
	v, ok := ctx.Lookup("Save")
	if !ok || !v.IsPending() {
		t.Fatalf("Register(Save): Lookup = %v, %v, want pending entry", v, ok)
	}
}

func TestContextNamespaces(t *testing.T) {
	// The same string may name both an entry and a sub-context.
	ctx := NewContext("Menu")
	ctx.Set("File", Translated("Datei"))
	file := NewContext("File")
	file.Set("Open", Translated("Öffnen"))
	ctx.AddChild(file)

	if got := ctx.Translate("File", nil); got != "Datei" {
		t.Fatalf("Translate(File) = %q, want %q", got, "Datei")
	}
	if got := ctx.Translate("File.Open", nil); got != "Öffnen" {
		t.Fatalf("Translate(File.Open) = %q, want %q", got, "Öffnen")
	}
}

func TestContextResolve(t *testing.T) {
	root := NewContext("A")
	b := NewContext("B")
	c := NewContext("C")
	b.AddChild(c)
	root.AddChild(b)

	if node, ok := root.Resolve("B.C"); !ok || node != c {
		t.Fatalf("Resolve(B.C) = %v, %v, want the C node", node, ok)
	}
	if _, ok := root.Resolve("B.Z"); ok {
		t.Fatal("Resolve(B.Z) succeeded, want miss")
	}
	// Empty segments are literal keys and simply miss.
	if _, ok := root.Resolve("B..C"); ok {
		t.Fatal("Resolve(B..C) succeeded, want miss")
	}
}
