// Package i18n resolves dotted message keys against embedded locale
// catalogs. The request locale travels in the context so resolvers can
// translate without threading a locale argument everywhere.
package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// supported lists the locales shipped with the application. The first
// entry is the fallback for unrecognized languages.
var supported = []language.Tag{
	language.English,             // en
	language.BrazilianPortuguese, // pt-br
	language.Spanish,             // es
}

// codes maps matcher indexes back to locale file names.
var codes = []string{"en", "pt-br", "es"}

var matcher = language.NewMatcher(supported)

// DefaultLocale is used when a request carries no locale segment.
const DefaultLocale = "en"

type ctxKey int

const localeKey ctxKey = 0

// WithLocale returns a context carrying the request's display locale.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey, locale)
}

// LocaleFrom extracts the display locale from the context, falling back
// to DefaultLocale.
func LocaleFrom(ctx context.Context) string {
	if l, ok := ctx.Value(localeKey).(string); ok && l != "" {
		return l
	}
	return DefaultLocale
}

// Normalize maps a raw path segment to a supported locale code. "pt"
// matches Brazilian Portuguese, so "pt" becomes "pt-br"; anything the
// matcher cannot place lands on English.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLocale
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return DefaultLocale
	}
	_, idx, _ := matcher.Match(tag)
	return codes[idx]
}

// Translator looks up localized messages by dotted key.
type Translator struct {
	messages map[string]map[string]string // locale code -> key -> message
}

// New loads every embedded locale file. It fails only when a catalog is
// missing or malformed, which is a build problem, not a runtime one.
func New() (*Translator, error) {
	t := &Translator{messages: make(map[string]map[string]string, len(codes))}
	for _, code := range codes {
		raw, err := localeFS.ReadFile("locales/" + code + ".json")
		if err != nil {
			return nil, fmt.Errorf("i18n: read locale %s: %w", code, err)
		}
		var catalog map[string]string
		if err := json.Unmarshal(raw, &catalog); err != nil {
			return nil, fmt.Errorf("i18n: parse locale %s: %w", code, err)
		}
		t.messages[code] = catalog
	}
	return t, nil
}

// Translate resolves a message key against the locale carried by the
// context. Unknown locales fall back to English; unknown keys come back
// verbatim so a missing entry is visible instead of silent.
func (t *Translator) Translate(ctx context.Context, key string) string {
	locale := LocaleFrom(ctx)
	catalog, ok := t.messages[locale]
	if !ok {
		catalog = t.messages[DefaultLocale]
	}
	if msg, ok := catalog[key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Translatef resolves a message key and substitutes the "%s" placeholder
// with the given value. Used for messages parameterized by a record id.
func (t *Translator) Translatef(ctx context.Context, key, arg string) string {
	return strings.Replace(t.Translate(ctx, key), "%s", arg, 1)
}
