// Package i18n localizes jengua's own user-facing strings through the
// library itself: the CLI's messages are looked up in embedded JSON
// catalogs via a Translator, with English message IDs doubling as the
// fallback text.
//
// Usage:
//
//	import "github.com/tobiazsh/jengua/i18n"
//
//	func main() {
//	    i18n.Init("")  // auto-detect from LANGUAGE/LC_ALL/LC_MESSAGES/LANG
//	    fmt.Println(i18n.T("Translation Catalogs"))
//	}
package i18n

import (
	"embed"
	"os"
	"sort"
	"strings"

	"github.com/tobiazsh/jengua/catalog"
	"github.com/tobiazsh/jengua/jsonfile"
	"github.com/tobiazsh/jengua/langmeta"
	"github.com/tobiazsh/jengua/translator"
)

// locales embeds the CLI's own translation catalogs.
//
//go:embed locales/*.json
var locales embed.FS

// cliContext is the context all CLI message IDs live in.
const cliContext = "cli"

// fallbackLocale is the catalog misses degrade to. Its entries may be
// sparse: an unknown message ID passes through unchanged, so English
// message IDs are their own fallback text.
const fallbackLocale = "en-US"

// tr is the translator backing T and Tf.
var tr *translator.Translator

// Init initializes self-localization. If lang is empty, the language is
// auto-detected from the environment variables LANGUAGE, LC_ALL,
// LC_MESSAGES, LANG (in that order, matching GNU gettext behavior).
//
// Init should be called once at program startup, before any T or Tf
// calls. Without it, messages pass through untranslated.
func Init(lang string) {
	if lang == "" {
		lang = detectLanguage()
	}

	catalogs := loadEmbedded()
	if len(catalogs) == 0 {
		tr = nil
		return
	}

	codes := make([]string, 0, len(catalogs))
	for code := range catalogs {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	fallback, ok := catalogs[fallbackLocale]
	if !ok {
		fallback = catalogs[codes[0]]
	}

	t := translator.New(fallback, fallback)
	for _, code := range codes {
		_ = t.AddCatalog(catalogs[code])
	}

	if lang != "" {
		if match := matchLocale(lang, codes); match != "" {
			_ = t.SetLanguage(match)
		}
	}

	tr = t
}

// T translates a CLI message. An untranslated or unknown message ID is
// returned unchanged.
func T(msgid string) string {
	if tr == nil {
		return msgid
	}
	return tr.Tr(cliContext, msgid, nil)
}

// Tf translates a CLI message and interpolates named parameters. When no
// translation exists, the message ID itself serves as the template.
func Tf(msgid string, params map[string]any) string {
	if tr == nil {
		return catalog.InterpolateNamed(msgid, params)
	}
	s := tr.Tr(cliContext, msgid, params)
	if s == msgid {
		return catalog.InterpolateNamed(msgid, params)
	}
	return s
}

// loadEmbedded parses every embedded catalog, keyed by locale code.
// Malformed files are skipped; the embedded data is build-time content.
func loadEmbedded() map[string]*catalog.Catalog {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil
	}

	catalogs := make(map[string]*catalog.Catalog)
	for _, e := range entries {
		data, err := locales.ReadFile("locales/" + e.Name())
		if err != nil {
			continue
		}
		c, err := jsonfile.Parse(data)
		if err != nil {
			continue
		}
		catalogs[c.Code()] = c
	}
	return catalogs
}

// matchLocale finds the available locale best matching want: exact
// canonical match first, then same base language.
func matchLocale(want string, available []string) string {
	w := langmeta.Canonical(want)
	for _, a := range available {
		if langmeta.Canonical(a) == w {
			return a
		}
	}

	wantBase, _, _ := strings.Cut(w, "-")
	for _, a := range available {
		base, _, _ := strings.Cut(langmeta.Canonical(a), "-")
		if base == wantBase {
			return a
		}
	}
	return ""
}

// detectLanguage reads environment variables to determine the user's
// preferred language, following GNU gettext conventions. Returns ""
// when no preference is set, leaving the fallback locale active.
func detectLanguage() string {
	// GNU gettext priority: LANGUAGE > LC_ALL > LC_MESSAGES > LANG
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(env)
		if val == "" {
			continue
		}
		// LANGUAGE can be a colon-separated list; take the first
		if env == "LANGUAGE" {
			val, _, _ = strings.Cut(val, ":")
		}
		// Strip encoding suffix (e.g. "de_AT.UTF-8" -> "de_AT")
		val, _, _ = strings.Cut(val, ".")
		// "C" and "POSIX" mean no translation
		if val == "C" || val == "POSIX" || val == "" {
			continue
		}
		return val
	}
	return ""
}
