package probe

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Language is a canonical language record resolved from a report value.
type Language struct {
	Tag    language.Tag
	Name   string // English name, e.g. "English".
	Alpha2 string // ISO 639-1, empty when the language has none.
	Alpha3 string // ISO 639-3.
}

var (
	namesOnce sync.Once
	byName    map[string]language.Base
)

// foldName lowercases s and strips diacritics, so "Māori" and "Maori"
// share a key.
func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// nameIndex maps folded English language names to their base subtag. It
// covers every ISO 639 base the language registry knows, two-letter codes
// first so they win when two codes share a name.
func nameIndex() map[string]language.Base {
	namesOnce.Do(func() {
		byName = make(map[string]language.Base)
		add := func(code string) {
			base, err := language.ParseBase(code)
			if err != nil || base.String() == "und" {
				return
			}
			name := baseName(base)
			if name == "" {
				return
			}
			if _, dup := byName[foldName(name)]; !dup {
				byName[foldName(name)] = base
			}
		}
		const letters = "abcdefghijklmnopqrstuvwxyz"
		for _, a := range letters {
			for _, b := range letters {
				add(string([]rune{a, b}))
			}
		}
		for _, a := range letters {
			for _, b := range letters {
				for _, c := range letters {
					add(string([]rune{a, b, c}))
				}
			}
		}
	})
	return byName
}

// LookupLanguage resolves an English language name ("English") or a
// language code ("en", "eng") to a Language. ok is false when the value
// names no known language, including the undetermined code "und".
func LookupLanguage(name string) (Language, bool) {
	s := strings.TrimSpace(name)
	if s == "" {
		return Language{}, false
	}

	if base, ok := nameIndex()[foldName(s)]; ok {
		return newLanguage(base), true
	}

	tag, err := language.Parse(s)
	if err != nil || tag == language.Und {
		return Language{}, false
	}
	base, conf := tag.Base()
	if conf != language.Exact || base.String() == "und" {
		return Language{}, false
	}
	return newLanguage(base), true
}

// legacyNames holds bases the display tables only name through their
// canonical replacement ("tl" is shown as Filipino).
var legacyNames = map[string]string{
	"tl": "Tagalog",
	"sh": "Serbo-Croatian",
}

// baseName returns the English name of base without canonicalizing it
// into another language. Bases that would be renamed have no name unless
// legacyNames covers them.
func baseName(base language.Base) string {
	if name, ok := legacyNames[base.String()]; ok {
		return name
	}
	canon, _ := language.All.Compose(base)
	if cb, _ := canon.Base(); cb != base {
		return ""
	}
	return display.English.Languages().Name(base)
}

func newLanguage(base language.Base) Language {
	name := baseName(base)
	if name == "" {
		name = display.English.Languages().Name(base)
	}
	lang := Language{
		Tag:    language.Raw.Make(base.String()),
		Name:   name,
		Alpha3: base.ISO3(),
	}
	if code := base.String(); len(code) == 2 {
		lang.Alpha2 = code
	}
	return lang
}
