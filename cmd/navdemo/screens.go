package main

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Screen identifies a demo screen.
type Screen string

const (
	Home     Screen = "home"
	Settings Screen = "settings"
	Profile  Screen = "profile"
	Detail   Screen = "detail"
	About    Screen = "about"
)

//go:embed locales/*.toml
var localeFS embed.FS

var locales = []string{"locales/active.en.toml", "locales/active.es.toml"}

// Catalog resolves user facing strings for one language.
type Catalog struct {
	localizer *i18n.Localizer
}

func newCatalog(lang string) (*Catalog, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, path := range locales {
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	return &Catalog{localizer: i18n.NewLocalizer(bundle, tag.String())}, nil
}

func (c *Catalog) message(id string, data map[string]any, fallback string) string {
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return fallback
	}
	return msg
}

// Title returns the localized screen name, or the raw id for screens
// without a translation.
func (c *Catalog) Title(s Screen) string {
	return c.message("screen_"+string(s), nil, string(s))
}

func (c *Catalog) Body(s Screen) string {
	title := c.Title(s)
	return c.message("screen_body", map[string]any{"Title": title}, title)
}

func (c *Catalog) HostBack() string {
	return c.message("host_back", nil, "host back")
}

func (c *Catalog) Pending(n int) string {
	return c.message("pending", map[string]any{"Count": n}, fmt.Sprintf("%d pending", n))
}

func toScreens(raw []string) []Screen {
	screens := make([]Screen, len(raw))
	for i, s := range raw {
		screens[i] = Screen(s)
	}
	return screens
}
