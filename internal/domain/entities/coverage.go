package entities

// CoverageReport compares the keys declared in a template with a locale file.
type CoverageReport struct {
	// Language is the locale's language tag.
	Language string
	// Declared is the number of keys found in the template.
	Declared int
	// Missing keys are declared in the template but absent from the locale.
	Missing []Key
	// Stale keys are present in the locale but no longer declared.
	Stale []Key
}

func (r *CoverageReport) Complete() bool {
	return len(r.Missing) == 0
}
