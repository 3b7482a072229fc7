package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMappingMerge(t *testing.T) {
	m := NewMapping().
		Merge([]Entry{
			{Key: "title", Text: "  First "},
			{Key: "blank", Text: " \n\t "},
			{Key: "", Text: "no key"},
		}).
		Merge([]Entry{
			{Key: "title", Text: "Second"},
			{Key: "[title]go", Text: "Go"},
		})

	assert.Equal(t, Mapping{"title": "Second", "[title]go": "Go"}, m)
	assert.False(t, m.Has("blank"))
	assert.True(t, m.Has("[title]go"))
	assert.Equal(t, []Key{"[title]go", "title"}, m.Keys())
}

func TestOverridesValidate(t *testing.T) {
	valid := TableSchema{TableName: "Time", TableIndex: 0, Columns: []string{"Date"}}

	tests := []struct {
		name    string
		o       Overrides
		wantErr string
	}{
		{name: "empty", o: Overrides{}},
		{name: "valid", o: Overrides{TableStructure: []TableSchema{valid, {TableName: "Cast", TableIndex: 1, Columns: []string{"Name"}}}}},
		{name: "missing name", o: Overrides{TableStructure: []TableSchema{{Columns: []string{"a"}}}}, wantErr: "tableName is required"},
		{name: "missing columns", o: Overrides{TableStructure: []TableSchema{{TableName: "T"}}}, wantErr: "columns are required"},
		{name: "duplicate index", o: Overrides{TableStructure: []TableSchema{valid, valid}}, wantErr: "tableIndex 0 already used"},
		{name: "reserved extra", o: Overrides{Extra: map[string]string{DefaultSettingsKey: "x"}}, wantErr: "reserved"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.o.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestOverridesKey(t *testing.T) {
	assert.Equal(t, DefaultSettingsKey, (&Overrides{}).Key())
	assert.Equal(t, "__settings__", (&Overrides{SettingsKey: "__settings__"}).Key())
}
