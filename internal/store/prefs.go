package store

import (
	"database/sql"
	"time"
)

// GetPref returns the stored value for key. Missing keys return ok=false
// rather than an error so callers can apply their own defaults.
func (db *DB) GetPref(key string) (value string, ok bool, err error) {
	err = db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// SetPref inserts or updates a preference value.
func (db *DB) SetPref(key, value string) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		key, value, now)
	return err
}

// DeletePref removes a preference. Deleting a missing key is not an error.
func (db *DB) DeletePref(key string) error {
	_, err := db.Exec(`DELETE FROM preferences WHERE key = ?`, key)
	return err
}

// ListPrefs returns all stored preferences as a key/value map.
func (db *DB) ListPrefs() (map[string]string, error) {
	rows, err := db.Query(`SELECT key, value FROM preferences ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}
