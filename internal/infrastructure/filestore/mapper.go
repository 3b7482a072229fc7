package filestore

import (
	"localekit/internal/domain/entities"
)

func mappingToRecord(m entities.Mapping) map[string]string {
	rec := make(map[string]string, len(m))
	for k, v := range m {
		rec[string(k)] = v
	}
	return rec
}

// recordToMapping keeps the top-level string values of a decoded locale
// file. Nested objects, lists and blank strings are dropped.
func recordToMapping(rec map[string]any) entities.Mapping {
	entries := make([]entities.Entry, 0, len(rec))
	for k, v := range rec {
		if text, ok := v.(string); ok {
			entries = append(entries, entities.Entry{Key: entities.Key(k), Text: text})
		}
	}
	return entities.NewMapping().Merge(entries)
}
