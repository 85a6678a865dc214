// Package langmeta provides locale display metadata (native names and
// emoji flags) for CLI output, backed by BCP 47 tag parsing.
package langmeta

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Meta describes locale display metadata.
type Meta struct {
	Name string
	Flag string
}

// Registry holds overrides for locales where the CLDR self-name or the
// region-derived flag is not what the CLI should show. Everything else is
// resolved through golang.org/x/text.
var Registry = map[string]Meta{
	"en":    {Name: "English", Flag: "🇺🇸"},
	"en-GB": {Name: "English (UK)", Flag: "🇬🇧"},
	"en-US": {Name: "English (US)", Flag: "🇺🇸"},
	"de-AT": {Name: "Deutsch (Österreich)", Flag: "🇦🇹"},
	"de-CH": {Name: "Deutsch (Schweiz)", Flag: "🇨🇭"},
	"pt-BR": {Name: "Português (Brasil)", Flag: "🇧🇷"},
	"pt-PT": {Name: "Português (Portugal)", Flag: "🇵🇹"},
	"zh-CN": {Name: "简体中文", Flag: "🇨🇳"},
	"zh-TW": {Name: "繁體中文", Flag: "🇹🇼"},
}

// Canonical returns the BCP 47 canonical form of a locale code,
// normalizing separators and casing (pt_br -> pt-BR). Codes that do not
// parse are returned trimmed but otherwise unchanged.
func Canonical(code string) string {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return strings.TrimSpace(code)
	}
	return tag.String()
}

// Resolve returns best-effort display metadata for a locale code,
// supporting variants like pt_BR and pt-BR. Unknown but well-formed
// codes get their CLDR self-name and a flag derived from the tag's
// region; codes that do not parse come back as their own name with no
// flag.
func Resolve(code string) Meta {
	if m, ok := Registry[code]; ok {
		return m
	}

	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return Meta{Name: code}
	}
	if m, ok := Registry[tag.String()]; ok {
		return m
	}

	m := Meta{Name: display.Self.Name(tag)}
	if m.Name == "" {
		m.Name = code
	}
	if region, conf := tag.Region(); conf > language.No && region.IsCountry() {
		m.Flag = flagFromRegion(region.String())
	}
	return m
}

// flagFromRegion builds the emoji flag for a two-letter region code from
// regional indicator symbols. Returns "" for anything else.
func flagFromRegion(region string) string {
	if len(region) != 2 {
		return ""
	}
	r1 := region[0] | 0x20
	r2 := region[1] | 0x20
	if r1 < 'a' || r1 > 'z' || r2 < 'a' || r2 > 'z' {
		return ""
	}
	return string(rune(0x1F1E6+rune(r1-'a'))) + string(rune(0x1F1E6+rune(r2-'a')))
}
