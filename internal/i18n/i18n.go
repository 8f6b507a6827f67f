package i18n

// Lang is a supported UI language code.
type Lang string

const (
	English    Lang = "en"
	Spanish    Lang = "es"
	Portuguese Lang = "pt"
)

// Fallback is the language guaranteed to carry every key.
const Fallback = English

// Supported returns all languages the client ships strings for,
// fallback first.
func Supported() []Lang {
	return []Lang{English, Spanish, Portuguese}
}

// IsSupported reports whether l has a translation table.
func IsSupported(l Lang) bool {
	_, ok := tables[l]
	return ok
}

// Name returns the language's self-describing display name.
func Name(l Lang) string {
	switch l {
	case English:
		return "English"
	case Spanish:
		return "Español"
	case Portuguese:
		return "Português"
	default:
		return string(l)
	}
}

// Lookup resolves key under language l, falling back to the fallback
// language and finally to the key itself. Never returns an empty string
// for a key present in the fallback table.
func Lookup(l Lang, key string) string {
	if t, ok := tables[l]; ok {
		if s, ok := t[key]; ok {
			return s
		}
	}
	if s, ok := tables[Fallback][key]; ok {
		return s
	}
	return key
}

// Keys returns every key defined in the fallback table.
func Keys() []string {
	keys := make([]string, 0, len(tables[Fallback]))
	for k := range tables[Fallback] {
		keys = append(keys, k)
	}
	return keys
}
