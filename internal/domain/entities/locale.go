package entities

import (
	"sort"
	"strings"
)

// Key identifies a translatable string: either a bare name ("settingsTitle")
// or an attribute-scoped name ("[title]helpButton").
type Key string

// Entry is a key and its trimmed source-language text.
type Entry struct {
	Key  Key
	Text string
}

// Mapping is a flat key -> text dictionary. Later writes win.
type Mapping map[Key]string

func NewMapping() Mapping {
	return make(Mapping)
}

// Merge stores every entry in order, overwriting existing keys. Entries whose
// text is empty after trimming are skipped.
func (m Mapping) Merge(entries []Entry) Mapping {
	for _, e := range entries {
		text := strings.TrimSpace(e.Text)
		if e.Key == "" || text == "" {
			continue
		}
		m[e.Key] = text
	}
	return m
}

// Keys returns the keys in lexical order.
func (m Mapping) Keys() []Key {
	keys := make([]Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Has reports whether key is present.
func (m Mapping) Has(key Key) bool {
	_, ok := m[key]
	return ok
}
