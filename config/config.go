// Package config implements auto-detection of a project's catalog
// layout: where the catalog files live, which locales exist, and which
// one to treat as the default.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// localeDirNames are tried in order when looking for the catalog
// directory under the project root.
var localeDirNames = []string{"locales", "locale", "lang", "languages", "i18n", "translations"}

// catalogExts are the file extensions recognized as catalog documents.
var catalogExts = map[string]bool{".json": true, ".yaml": true, ".yml": true}

// Project holds the auto-detected catalog layout.
type Project struct {
	// Root is the project root the detection ran on.
	Root string
	// LocaleDir is the directory containing the catalog files. Empty if
	// none was found.
	LocaleDir string
	// Files are the catalog file paths, sorted.
	Files []string
	// DefaultLocale is the locale guessed as the fallback/template
	// catalog: en-US if present, then en, then the first locale sorted.
	DefaultLocale string
}

// Detect inspects root and returns the catalog layout. A conventional
// locale directory is preferred; failing that, catalog files directly
// under root are used.
func Detect(root string) *Project {
	p := &Project{Root: root}

	for _, name := range localeDirNames {
		dir := filepath.Join(root, name)
		if files := catalogFiles(dir); len(files) > 0 {
			p.LocaleDir = dir
			p.Files = files
			break
		}
	}
	if p.LocaleDir == "" {
		if files := catalogFiles(root); len(files) > 0 {
			p.LocaleDir = root
			p.Files = files
		}
	}

	p.DefaultLocale = guessDefault(p.Locales())
	return p
}

// Locales returns the locale names of the detected files, derived from
// the file base names, sorted.
func (p *Project) Locales() []string {
	locales := make([]string, 0, len(p.Files))
	for _, f := range p.Files {
		locales = append(locales, LocaleFromPath(f))
	}
	sort.Strings(locales)
	return locales
}

// FileFor returns the path of the catalog file for the given locale,
// matching by file base name. Empty string when the locale has no file.
func (p *Project) FileFor(locale string) string {
	for _, f := range p.Files {
		if LocaleFromPath(f) == locale {
			return f
		}
	}
	return ""
}

// LocaleFromPath derives a locale name from a catalog file path:
// "locales/de-AT.json" -> "de-AT".
func LocaleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// catalogFiles lists the catalog documents directly inside dir, sorted.
// Backup files are skipped.
func catalogFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".bak") {
			continue
		}
		if catalogExts[strings.ToLower(filepath.Ext(name))] {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files
}

// guessDefault picks the default locale from the detected ones.
func guessDefault(locales []string) string {
	if len(locales) == 0 {
		return ""
	}
	for _, preferred := range []string{"en-US", "en"} {
		for _, l := range locales {
			if l == preferred {
				return l
			}
		}
	}
	return locales[0]
}
