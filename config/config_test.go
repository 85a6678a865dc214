package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDetectLocaleDir(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, filepath.Join(root, "locales"), "en-US.json", "de-AT.json", "notes.txt", "de-AT.json.bak")

	p := Detect(root)

	if p.LocaleDir != filepath.Join(root, "locales") {
		t.Fatalf("LocaleDir = %q", p.LocaleDir)
	}
	want := []string{
		filepath.Join(root, "locales", "de-AT.json"),
		filepath.Join(root, "locales", "en-US.json"),
	}
	if !reflect.DeepEqual(p.Files, want) {
		t.Fatalf("Files = %v, want %v", p.Files, want)
	}
	if p.DefaultLocale != "en-US" {
		t.Fatalf("DefaultLocale = %q, want %q", p.DefaultLocale, "en-US")
	}
}

func TestDetectPrefersConventionalDirOrder(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, filepath.Join(root, "lang"), "fr-FR.yaml")
	writeFiles(t, filepath.Join(root, "locales"), "en.json")

	p := Detect(root)
	if p.LocaleDir != filepath.Join(root, "locales") {
		t.Fatalf("LocaleDir = %q, want the locales dir", p.LocaleDir)
	}
}

func TestDetectFallsBackToRoot(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "de-DE.yml", "it-IT.json")

	p := Detect(root)
	if p.LocaleDir != root {
		t.Fatalf("LocaleDir = %q, want root", p.LocaleDir)
	}
	// No en catalog: first sorted locale wins.
	if p.DefaultLocale != "de-DE" {
		t.Fatalf("DefaultLocale = %q, want %q", p.DefaultLocale, "de-DE")
	}
}

func TestDetectNothing(t *testing.T) {
	p := Detect(t.TempDir())
	if p.LocaleDir != "" || len(p.Files) != 0 || p.DefaultLocale != "" {
		t.Fatalf("Detect on empty dir = %+v", p)
	}
}

func TestFileFor(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, filepath.Join(root, "locales"), "en-US.json", "de-AT.yaml")

	p := Detect(root)
	if got := p.FileFor("de-AT"); got != filepath.Join(root, "locales", "de-AT.yaml") {
		t.Fatalf("FileFor(de-AT) = %q", got)
	}
	if got := p.FileFor("fr-FR"); got != "" {
		t.Fatalf("FileFor(fr-FR) = %q, want empty", got)
	}
}

func TestLocaleFromPath(t *testing.T) {
	if got := LocaleFromPath("locales/de-AT.json"); got != "de-AT" {
		t.Fatalf("LocaleFromPath = %q, want %q", got, "de-AT")
	}
}
