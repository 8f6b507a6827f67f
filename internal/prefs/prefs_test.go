package prefs

import (
	"path/filepath"
	"testing"

	"github.com/inovira/inovira/internal/bus"
	"github.com/inovira/inovira/internal/i18n"
	"github.com/inovira/inovira/internal/store"
)

func testStore(t *testing.T) (*Store, *store.DB) {
	t.Helper()
	// Keep locale noise out of the defaults under test.
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")
	t.Setenv("INOVIRA_COLOR_SCHEME", "")

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	s, err := New(db, bus.New(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return s, db
}

func TestDefaults(t *testing.T) {
	s, _ := testStore(t)

	if s.Theme() != ThemeDark {
		t.Errorf("theme = %q, want dark", s.Theme())
	}
	if s.Layout() != LayoutComfortable {
		t.Errorf("layout = %q, want comfortable", s.Layout())
	}
	if s.Language() != i18n.English {
		t.Errorf("language = %q, want en", s.Language())
	}
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("INOVIRA_COLOR_SCHEME", "light")
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "pt_BR.UTF-8")

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}

	s, err := New(db, bus.New(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Theme() != ThemeLight {
		t.Errorf("theme = %q, want light", s.Theme())
	}
	if s.Language() != i18n.Portuguese {
		t.Errorf("language = %q, want pt", s.Language())
	}
}

func TestSetRejectsInvalid(t *testing.T) {
	s, _ := testStore(t)

	if err := s.SetTheme("sepia"); err == nil {
		t.Error("SetTheme(sepia) should fail")
	}
	if err := s.SetLayout("dense"); err == nil {
		t.Error("SetLayout(dense) should fail")
	}
	if err := s.SetLanguage("fr"); err == nil {
		t.Error("SetLanguage(fr) should fail")
	}

	// Rejected writes must not change current values.
	if s.Theme() != ThemeDark || s.Layout() != LayoutComfortable || s.Language() != i18n.English {
		t.Error("rejected write mutated state")
	}
}

func TestRoundTripAcrossRestart(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")
	t.Setenv("INOVIRA_COLOR_SCHEME", "")

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}

	s, err := New(db, bus.New(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetTheme(ThemeLight); err != nil {
		t.Fatal(err)
	}
	if err := s.SetLayout(LayoutCompact); err != nil {
		t.Fatal(err)
	}
	if err := s.SetLanguage(i18n.Spanish); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	// Simulated restart: new connection, new store.
	db2, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db2.Close() }()
	if _, err := db2.Migrate(); err != nil {
		t.Fatal(err)
	}
	s2, err := New(db2, bus.New(), nil)
	if err != nil {
		t.Fatal(err)
	}

	if s2.Theme() != ThemeLight {
		t.Errorf("theme = %q, want light", s2.Theme())
	}
	if s2.Layout() != LayoutCompact {
		t.Errorf("layout = %q, want compact", s2.Layout())
	}
	if s2.Language() != i18n.Spanish {
		t.Errorf("language = %q, want es", s2.Language())
	}
}

func TestCorruptPersistedLanguageFallsBack(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	// Value written by a future or corrupted build.
	if err := db.SetPref("language", "klingon"); err != nil {
		t.Fatal(err)
	}

	s, err := New(db, bus.New(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Language() != i18n.Fallback {
		t.Errorf("language = %q, want fallback %q", s.Language(), i18n.Fallback)
	}
	if got := s.Translate("feed"); got == "" {
		t.Error("Translate(feed) returned empty string")
	}
}

func TestToggleTheme(t *testing.T) {
	s, _ := testStore(t)

	if err := s.ToggleTheme(); err != nil {
		t.Fatal(err)
	}
	if s.Theme() != ThemeLight {
		t.Errorf("theme = %q, want light", s.Theme())
	}
	if err := s.ToggleTheme(); err != nil {
		t.Fatal(err)
	}
	if s.Theme() != ThemeDark {
		t.Errorf("theme = %q, want dark", s.Theme())
	}
}

func TestSetPublishesChange(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")
	t.Setenv("INOVIRA_COLOR_SCHEME", "")

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}

	b := bus.New()
	ch, unsub := b.Subscribe("prefs.", 10)
	defer unsub()

	s, err := New(db, b, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetLanguage(i18n.Portuguese); err != nil {
		t.Fatal(err)
	}

	select {
	case evt := <-ch:
		changed, ok := evt.Payload.(Changed)
		if !ok {
			t.Fatalf("payload type %T, want Changed", evt.Payload)
		}
		if changed.Key != "language" || changed.Value != "pt" {
			t.Errorf("got %+v, want language=pt", changed)
		}
	default:
		t.Fatal("no event published")
	}
}

func TestTranslateTotality(t *testing.T) {
	s, _ := testStore(t)

	for _, lang := range i18n.Supported() {
		if err := s.SetLanguage(lang); err != nil {
			t.Fatal(err)
		}
		for _, key := range i18n.Keys() {
			if got := s.Translate(key); got == "" {
				t.Errorf("Translate(%q) in %q returned empty string", key, lang)
			}
		}
		if got := s.Translate("no.such.key"); got != "no.such.key" {
			t.Errorf("unknown key = %q, want key itself", got)
		}
	}
}
