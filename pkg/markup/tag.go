// Package markup scans HTML-like templates for opening tags and their
// attributes using regular expressions. It is not a DOM parser: comments,
// scripts and malformed markup are skipped or matched loosely.
package markup

import (
	"regexp"
	"strings"
)

var (
	openTagRe = regexp.MustCompile(`<([A-Za-z][A-Za-z0-9:_-]*)((?:[^>"']|"[^"]*"|'[^']*')*)>`)
	attrRe    = regexp.MustCompile(`([^\s"'<>/=]+)(?:\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'=<>` + "`" + `]+)))?`)
)

// Elements that never carry content, even when written without "/>".
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Attr is a single attribute of an opening tag, in source order.
type Attr struct {
	Name  string
	Value string
}

// Tag is an opening tag found in a document. Start and End are byte offsets
// of '<' and one past '>'.
type Tag struct {
	Name        string
	Attrs       []Attr
	SelfClosing bool
	Start       int
	End         int
}

// Void reports whether the element cannot have content.
func (t Tag) Void() bool {
	return t.SelfClosing || voidElements[strings.ToLower(t.Name)]
}

// Attr returns the first attribute with the given name.
func (t Tag) Attr(name string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// ScanTags returns every opening tag of doc in document order.
func ScanTags(doc string) []Tag {
	locs := openTagRe.FindAllStringSubmatchIndex(doc, -1)
	tags := make([]Tag, 0, len(locs))
	for _, loc := range locs {
		body := ""
		if loc[4] >= 0 {
			body = doc[loc[4]:loc[5]]
		}
		tags = append(tags, Tag{
			Name:        doc[loc[2]:loc[3]],
			Attrs:       parseAttrs(body),
			SelfClosing: strings.HasSuffix(strings.TrimSpace(body), "/"),
			Start:       loc[0],
			End:         loc[1],
		})
	}
	return tags
}

func parseAttrs(body string) []Attr {
	matches := attrRe.FindAllStringSubmatch(body, -1)
	attrs := make([]Attr, 0, len(matches))
	for _, m := range matches {
		value := m[2]
		switch {
		case m[3] != "":
			value = m[3]
		case m[4] != "":
			value = m[4]
		}
		attrs = append(attrs, Attr{Name: m[1], Value: value})
	}
	return attrs
}
