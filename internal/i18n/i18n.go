package i18n

// Language identifies one of the two supported site languages.
type Language string

const (
	English Language = "en"
	French  Language = "fr"
)

// Parse maps a raw language tag to a supported Language, defaulting to English.
func Parse(raw string) Language {
	if Language(raw) == French {
		return French
	}
	return English
}

// Valid reports whether raw names a supported language exactly.
func Valid(raw string) bool {
	l := Language(raw)
	return l == English || l == French
}

// Lookup resolves a translation key. Untranslated keys fall back to the
// English table, then to the key itself, so a missing entry never breaks a
// page, it just renders the key.
func Lookup(lang Language, key string) string {
	if table, ok := translations[lang]; ok {
		if v, ok := table[key]; ok {
			return v
		}
	}
	if v, ok := translations[English][key]; ok {
		return v
	}
	return key
}

// Table returns the full translation map for a language. The returned map is
// a copy; callers may not mutate the table.
func Table(lang Language) map[string]string {
	src, ok := translations[lang]
	if !ok {
		src = translations[English]
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Keys returns every key of the English table. Used by tests to check the
// French table stays complete.
func Keys() []string {
	out := make([]string, 0, len(translations[English]))
	for k := range translations[English] {
		out = append(out, k)
	}
	return out
}
