package markup

import (
	"regexp"
	"strings"
)

// DefaultMarker is the attribute the extension's template uses to tag
// translatable elements.
const DefaultMarker = "data-i18n"

var scopedKeyRe = regexp.MustCompile(`^\[([A-Za-z][A-Za-z0-9_:.-]*)\](.+)$`)

// Match is one (key, text) pair produced by a strategy. Text is trimmed and
// never empty.
type Match struct {
	Key  string
	Text string
}

// Strategy extracts matches from a document for the given marker attribute.
type Strategy func(doc, marker string) []Match

// SplitScopedKey splits "[attr]name" into its attribute and name.
func SplitScopedKey(key string) (attr, name string, ok bool) {
	m := scopedKeyRe.FindStringSubmatch(key)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// ElementContent captures the text between the '>' of every marked opening
// tag and the next "</", keyed by the raw marker value. Void and self-closing
// elements yield nothing. Markers inside a captured region are still visited,
// since scanning continues after each opening tag.
func ElementContent(doc, marker string) []Match {
	var out []Match
	for _, tag := range ScanTags(doc) {
		key, ok := tag.Attr(marker)
		if !ok || key == "" || tag.Void() {
			continue
		}
		end := strings.Index(doc[tag.End:], "</")
		if end < 0 {
			continue
		}
		if text := strings.TrimSpace(doc[tag.End : tag.End+end]); text != "" {
			out = append(out, Match{Key: key, Text: text})
		}
	}
	return out
}

// LeadingAttribute matches `attr="value" ... marker="[attr]key"` within one
// tag. The earliest attribute named attr before the marker is used.
func LeadingAttribute(doc, marker string) []Match {
	return scopedAttributes(doc, marker, func(attrs []Attr, at int, name string) (string, bool) {
		for i := 0; i < at; i++ {
			if attrs[i].Name == name {
				return attrs[i].Value, true
			}
		}
		return "", false
	})
}

// TrailingAttribute matches `marker="[attr]key" ... attr="value"` within one
// tag. The last attribute named attr after the marker is used.
func TrailingAttribute(doc, marker string) []Match {
	return scopedAttributes(doc, marker, func(attrs []Attr, at int, name string) (string, bool) {
		for i := len(attrs) - 1; i > at; i-- {
			if attrs[i].Name == name {
				return attrs[i].Value, true
			}
		}
		return "", false
	})
}

type attrLookup func(attrs []Attr, at int, name string) (string, bool)

func scopedAttributes(doc, marker string, lookup attrLookup) []Match {
	var out []Match
	for _, tag := range ScanTags(doc) {
		for i, a := range tag.Attrs {
			if a.Name != marker {
				continue
			}
			scope, _, ok := SplitScopedKey(a.Value)
			// RE2 has no backreferences: the bracket name is compared here.
			if !ok || scope == marker {
				continue
			}
			value, found := lookup(tag.Attrs, i, scope)
			if !found {
				continue
			}
			if text := strings.TrimSpace(value); text != "" {
				out = append(out, Match{Key: a.Value, Text: text})
			}
		}
	}
	return out
}
