package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanTags(t *testing.T) {
	doc := `<div class="row" data-i18n="title">
  <input type='text' title="a > b" disabled/>
  <br>
</div>`

	tags := ScanTags(doc)
	require.Len(t, tags, 3)

	assert.Equal(t, "div", tags[0].Name)
	assert.Equal(t, []Attr{{Name: "class", Value: "row"}, {Name: "data-i18n", Value: "title"}}, tags[0].Attrs)
	assert.False(t, tags[0].Void())
	assert.Equal(t, 0, tags[0].Start)
	assert.Equal(t, "<div class=\"row\" data-i18n=\"title\">", doc[tags[0].Start:tags[0].End])

	assert.Equal(t, "input", tags[1].Name)
	assert.True(t, tags[1].SelfClosing)
	v, ok := tags[1].Attr("title")
	require.True(t, ok)
	assert.Equal(t, "a > b", v)
	v, ok = tags[1].Attr("type")
	require.True(t, ok)
	assert.Equal(t, "text", v)
	_, ok = tags[1].Attr("disabled")
	assert.True(t, ok)

	assert.Equal(t, "br", tags[2].Name)
	assert.False(t, tags[2].SelfClosing)
	assert.True(t, tags[2].Void())
}

func TestScanTagsIgnoresClosingTags(t *testing.T) {
	tags := ScanTags(`<!-- <p> --></span><P id=x>`)
	require.Len(t, tags, 2)
	assert.Equal(t, "p", tags[0].Name)
	assert.Equal(t, "P", tags[1].Name)
	v, _ := tags[1].Attr("id")
	assert.Equal(t, "x", v)
}

func TestSplitScopedKey(t *testing.T) {
	tests := []struct {
		key   string
		attr  string
		name  string
		valid bool
	}{
		{key: "[title]helpButton", attr: "title", name: "helpButton", valid: true},
		{key: "[aria-label]close", attr: "aria-label", name: "close", valid: true},
		{key: "settingsTitle"},
		{key: "[title]"},
		{key: "[]name"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			attr, name, ok := SplitScopedKey(tt.key)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.attr, attr)
			assert.Equal(t, tt.name, name)
		})
	}
}
