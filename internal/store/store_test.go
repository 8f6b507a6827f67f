package store

import (
	"path/filepath"
	"testing"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrateIdempotent(t *testing.T) {
	db := testDB(t)

	// testDB already ran Migrate, so run it again to check idempotency.
	result, err := db.Migrate()
	if err != nil {
		t.Fatal(err)
	}
	if result.Changed {
		t.Error("second Migrate() should report Changed=false")
	}
	if result.Version != 1 {
		t.Errorf("version = %d, want 1", result.Version)
	}
}

func TestPrefSetGet(t *testing.T) {
	db := testDB(t)

	if err := db.SetPref("theme", "dark"); err != nil {
		t.Fatal(err)
	}

	v, ok, err := db.GetPref("theme")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("GetPref() ok = false, want true")
	}
	if v != "dark" {
		t.Errorf("value = %q, want dark", v)
	}
}

func TestPrefOverwrite(t *testing.T) {
	db := testDB(t)

	if err := db.SetPref("language", "en"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetPref("language", "es"); err != nil {
		t.Fatal(err)
	}

	v, ok, err := db.GetPref("language")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || v != "es" {
		t.Errorf("value = %q ok = %v, want es true", v, ok)
	}
}

func TestPrefMissing(t *testing.T) {
	db := testDB(t)

	_, ok, err := db.GetPref("nope")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("GetPref() ok = true for missing key")
	}
}

func TestPrefDelete(t *testing.T) {
	db := testDB(t)

	if err := db.SetPref("theme", "light"); err != nil {
		t.Fatal(err)
	}
	if err := db.DeletePref("theme"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := db.GetPref("theme"); ok {
		t.Error("pref still present after delete")
	}

	// Deleting a missing key is fine.
	if err := db.DeletePref("theme"); err != nil {
		t.Errorf("second delete error = %v", err)
	}
}

func TestListPrefs(t *testing.T) {
	db := testDB(t)

	want := map[string]string{"theme": "dark", "post_layout": "compact", "language": "pt"}
	for k, v := range want {
		if err := db.SetPref(k, v); err != nil {
			t.Fatal(err)
		}
	}

	got, err := db.ListPrefs()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d prefs, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("prefs[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestPrefsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")

	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	if err := db.SetPref("theme", "dark"); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	db2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db2.Close() }()
	if _, err := db2.Migrate(); err != nil {
		t.Fatal(err)
	}

	v, ok, err := db2.GetPref("theme")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || v != "dark" {
		t.Errorf("after reopen value = %q ok = %v, want dark true", v, ok)
	}
}
