package i18n

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Language selects which locale a Text is rendered in.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// Languages lists every locale the catalog carries.
var Languages = []Language{English, Arabic}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

// Tag returns the x/text language tag for the locale.
func (l Language) Tag() language.Tag {
	if l == Arabic {
		return language.Arabic
	}
	return language.English
}

// Valid reports whether the locale is carried by the catalog.
func (l Language) Valid() bool {
	return l == English || l == Arabic
}

// ParseLanguage accepts any BCP-47 tag ("ar-SA", "en_US", "ar") and maps it onto a
// supported locale. Tags that match neither locale are rejected.
func ParseLanguage(s string) (Language, error) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	if err != nil {
		return English, fmt.Errorf("invalid language %q: %w", s, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return English, fmt.Errorf("unsupported language %q", s)
	}
	if idx == 1 {
		return Arabic, nil
	}
	return English, nil
}

// DetectLanguage returns Arabic when the text contains any Arabic-script rune.
func DetectLanguage(text string) Language {
	for _, r := range text {
		if unicode.Is(unicode.Arabic, r) {
			return Arabic
		}
	}
	return English
}

// Text is a localizable message: a catalog key plus its format arguments.
// Derived records carry Text values and the presentation layer picks the locale.
type Text struct {
	Key  Key
	Args []any
}

// T builds a Text for key.
func T(key Key, args ...any) Text {
	return Text{Key: key, Args: args}
}

// Lit wraps a caller-supplied string so it can travel as a Text.
func Lit(s string) Text {
	return T(Literal, s)
}

// arabicLatinDigits renders Arabic text with Latin digits so format arguments match
// the figures written into the catalog strings.
var arabicLatinDigits = language.MustParse("ar-u-nu-latn")

func printerTag(lang Language) language.Tag {
	if lang == Arabic {
		return arabicLatinDigits
	}
	return lang.Tag()
}

// Render formats the text in the given locale.
func (t Text) Render(lang Language) string {
	p := message.NewPrinter(printerTag(lang), message.Catalog(cat))
	return p.Sprintf(string(t.Key), t.Args...)
}

// String renders the English form.
func (t Text) String() string {
	return t.Render(English)
}

// IsZero reports whether the text has no key.
func (t Text) IsZero() bool {
	return t.Key == ""
}

// MarshalJSON emits the key and one rendering per locale.
func (t Text) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(Languages)+1)
	out["key"] = string(t.Key)
	for _, lang := range Languages {
		out[string(lang)] = t.Render(lang)
	}
	return json.Marshal(out)
}

// RenderAll renders a list of texts in one locale.
func RenderAll(texts []Text, lang Language) []string {
	out := make([]string, 0, len(texts))
	for _, t := range texts {
		out = append(out, t.Render(lang))
	}
	return out
}

var cat = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, tr := range messages {
		if err := b.SetString(language.English, string(key), tr.en); err != nil {
			panic(fmt.Sprintf("i18n: english message %s: %v", key, err))
		}
		if err := b.SetString(language.Arabic, string(key), tr.ar); err != nil {
			panic(fmt.Sprintf("i18n: arabic message %s: %v", key, err))
		}
	}
	return b
}

// Has reports whether key is registered in the catalog.
func Has(key Key) bool {
	_, ok := messages[key]
	return ok
}
