// Package prefs holds the durable user preferences: theme, post layout
// and language. Values are validated on write, persisted to the profile
// database and announced on the event bus so views can re-render.
package prefs

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/inovira/inovira/internal/bus"
	"github.com/inovira/inovira/internal/i18n"
	"github.com/inovira/inovira/internal/store"
	"go.uber.org/zap"
)

// Theme is the display color scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Layout controls post density in the feed.
type Layout string

const (
	LayoutComfortable Layout = "comfortable"
	LayoutCompact     Layout = "compact"
)

// Database keys, one per preference axis.
const (
	keyTheme    = "theme"
	keyLayout   = "post_layout"
	keyLanguage = "language"
)

// Changed is the payload published on bus.KindPrefsChanged.
type Changed struct {
	Key   string
	Value string
}

// Store holds the current preference values and writes changes through
// to the database.
type Store struct {
	mu  sync.RWMutex
	db  *store.DB
	bus *bus.Bus
	log *zap.Logger

	theme    Theme
	layout   Layout
	language i18n.Lang
}

// New loads preferences from the database, filling gaps from the
// environment and hard defaults. Unrecognized persisted values are
// replaced by defaults instead of failing startup.
func New(db *store.DB, b *bus.Bus, log *zap.Logger) (*Store, error) {
	s := &Store{
		db:  db,
		bus: b,
		log: log,
	}

	saved, err := db.ListPrefs()
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	s.theme = initialTheme(saved[keyTheme])
	s.layout = initialLayout(saved[keyLayout])
	s.language = initialLanguage(saved[keyLanguage])

	if log != nil {
		log.Info("preferences loaded",
			zap.String("theme", string(s.theme)),
			zap.String("layout", string(s.layout)),
			zap.String("language", string(s.language)),
		)
	}
	return s, nil
}

func initialTheme(saved string) Theme {
	switch Theme(saved) {
	case ThemeDark, ThemeLight:
		return Theme(saved)
	}
	// Fall back to the environment hint, then dark.
	if os.Getenv("INOVIRA_COLOR_SCHEME") == "light" {
		return ThemeLight
	}
	return ThemeDark
}

func initialLayout(saved string) Layout {
	switch Layout(saved) {
	case LayoutComfortable, LayoutCompact:
		return Layout(saved)
	}
	return LayoutComfortable
}

func initialLanguage(saved string) i18n.Lang {
	if i18n.IsSupported(i18n.Lang(saved)) {
		return i18n.Lang(saved)
	}
	if l, ok := envLanguage(); ok {
		return l
	}
	return i18n.Fallback
}

// envLanguage inspects the usual locale variables in precedence order
// and returns the first one naming a supported language.
func envLanguage() (i18n.Lang, bool) {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		// "pt_BR.UTF-8" -> "pt"
		code := strings.ToLower(v)
		if i := strings.IndexAny(code, "_.@"); i > 0 {
			code = code[:i]
		}
		if i18n.IsSupported(i18n.Lang(code)) {
			return i18n.Lang(code), true
		}
	}
	return "", false
}

// Theme returns the current theme.
func (s *Store) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Layout returns the current post layout.
func (s *Store) Layout() Layout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.layout
}

// Language returns the current language.
func (s *Store) Language() i18n.Lang {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// SetTheme validates, persists and publishes a theme change.
func (s *Store) SetTheme(t Theme) error {
	switch t {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("invalid theme %q", t)
	}
	s.mu.Lock()
	s.theme = t
	s.mu.Unlock()
	return s.persist(keyTheme, string(t))
}

// ToggleTheme flips between dark and light.
func (s *Store) ToggleTheme() error {
	if s.Theme() == ThemeDark {
		return s.SetTheme(ThemeLight)
	}
	return s.SetTheme(ThemeDark)
}

// SetLayout validates, persists and publishes a layout change.
func (s *Store) SetLayout(l Layout) error {
	switch l {
	case LayoutComfortable, LayoutCompact:
	default:
		return fmt.Errorf("invalid layout %q", l)
	}
	s.mu.Lock()
	s.layout = l
	s.mu.Unlock()
	return s.persist(keyLayout, string(l))
}

// SetLanguage validates, persists and publishes a language change.
func (s *Store) SetLanguage(l i18n.Lang) error {
	if !i18n.IsSupported(l) {
		return fmt.Errorf("unsupported language %q", l)
	}
	s.mu.Lock()
	s.language = l
	s.mu.Unlock()
	return s.persist(keyLanguage, string(l))
}

func (s *Store) persist(key, value string) error {
	if err := s.db.SetPref(key, value); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	if s.bus != nil {
		s.bus.Publish(bus.Now(bus.KindPrefsChanged, Changed{Key: key, Value: value}))
	}
	return nil
}

// Translate resolves key in the current language. Always returns a
// non-empty string: unknown keys come back as the key itself.
func (s *Store) Translate(key string) string {
	return i18n.Lookup(s.Language(), key)
}
