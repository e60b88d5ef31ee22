// Package i18n resolves message identifiers to display text.
package i18n

import (
	"embed"
	"fmt"
	"os"
	"path"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed messages/*.yml
var builtin embed.FS

// Formatter resolves a message identifier plus locale into display text.
type Formatter interface {
	Format(id, locale string) string
}

// Catalog is a Formatter backed by per-locale message tables.
type Catalog struct {
	fallback string
	tags     []language.Tag
	names    []string
	messages map[string]map[string]string
	matcher  language.Matcher
}

// NewCatalog loads the built-in message tables. fallback names the locale
// used for ids missing from the requested locale.
func NewCatalog(fallback string) (*Catalog, error) {
	entries, err := builtin.ReadDir("messages")
	if err != nil {
		return nil, fmt.Errorf("reading built-in messages: %w", err)
	}

	c := &Catalog{fallback: fallback, messages: make(map[string]map[string]string)}
	for _, e := range entries {
		data, err := builtin.ReadFile(path.Join("messages", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		if err := c.add(strings.TrimSuffix(e.Name(), ".yml"), data); err != nil {
			return nil, err
		}
	}

	if _, ok := c.messages[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %q has no messages", fallback)
	}
	c.rebuildMatcher()
	return c, nil
}

// Merge overlays messages from a YAML file shaped as locale -> id -> text.
func (c *Catalog) Merge(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading messages file: %w", err)
	}

	var byLocale map[string]map[string]string
	if err := yaml.Unmarshal(data, &byLocale); err != nil {
		return fmt.Errorf("decoding messages file %s: %w", file, err)
	}
	for locale, msgs := range byLocale {
		if _, err := language.Parse(locale); err != nil {
			return fmt.Errorf("messages file %s: locale %q: %w", file, locale, err)
		}
		table := c.table(locale)
		for id, text := range msgs {
			table[id] = text
		}
	}
	c.rebuildMatcher()
	return nil
}

// Locales returns the locales that have at least one message.
func (c *Catalog) Locales() []string {
	return append([]string(nil), c.names...)
}

// Format implements Formatter. Unknown ids fall back to the fallback locale
// and then to the id itself.
func (c *Catalog) Format(id, locale string) string {
	if text, ok := c.messages[c.resolve(locale)][id]; ok {
		return text
	}
	if text, ok := c.messages[c.fallback][id]; ok {
		return text
	}
	return id
}

// resolve maps a requested locale (e.g. "fr-CA") onto a loaded table name.
func (c *Catalog) resolve(locale string) string {
	if _, ok := c.messages[locale]; ok {
		return locale
	}
	_, idx := language.MatchStrings(c.matcher, locale)
	if idx < 0 || idx >= len(c.names) {
		return c.fallback
	}
	return c.names[idx]
}

func (c *Catalog) add(locale string, data []byte) error {
	msgs := map[string]string{}
	if err := yaml.Unmarshal(data, &msgs); err != nil {
		return fmt.Errorf("decoding %s messages: %w", locale, err)
	}
	table := c.table(locale)
	for id, text := range msgs {
		table[id] = text
	}
	return nil
}

func (c *Catalog) table(locale string) map[string]string {
	t, ok := c.messages[locale]
	if !ok {
		t = make(map[string]string)
		c.messages[locale] = t
	}
	return t
}

// rebuildMatcher keeps the fallback first so it wins when nothing matches.
func (c *Catalog) rebuildMatcher() {
	c.names = []string{c.fallback}
	for name := range c.messages {
		if name != c.fallback {
			c.names = append(c.names, name)
		}
	}

	c.tags = make([]language.Tag, len(c.names))
	for i, name := range c.names {
		c.tags[i] = language.Make(name)
	}
	c.matcher = language.NewMatcher(c.tags)
}
