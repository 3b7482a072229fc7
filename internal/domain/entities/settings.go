package entities

import (
	"fmt"
	"strings"
)

// DefaultSettingsKey is the reserved top-level key under which a locale file
// carries the extension's default settings.
const DefaultSettingsKey = "__defaultSettings__"

// TableSchema describes one table of the extension's default table structure.
// Field names follow the extension's settings format.
type TableSchema struct {
	TableName  string   `json:"tableName" toml:"tableName"`
	TableIndex int      `json:"tableIndex" toml:"tableIndex"`
	Columns    []string `json:"columns" toml:"columns"`
	Enable     bool     `json:"enable" toml:"enable"`
	Required   bool     `json:"Required" toml:"Required"`
	AsStatus   bool     `json:"asStatus" toml:"asStatus"`
	ToChat     bool     `json:"toChat" toml:"toChat"`
	Note       string   `json:"note" toml:"note"`
	InitNode   string   `json:"initNode,omitempty" toml:"initNode"`
	InsertNode string   `json:"insertNode,omitempty" toml:"insertNode"`
	UpdateNode string   `json:"updateNode" toml:"updateNode"`
	DeleteNode string   `json:"deleteNode" toml:"deleteNode"`
}

// Overrides is the literal replacement set applied by the default-settings
// merge.
type Overrides struct {
	// SettingsKey overrides DefaultSettingsKey when set.
	SettingsKey    string            `toml:"settings_key"`
	Defaults       map[string]any    `toml:"defaults"`
	TableStructure []TableSchema     `toml:"table_structure"`
	Extra          map[string]string `toml:"extra"`
}

// Key returns the settings key the overrides apply to.
func (o *Overrides) Key() string {
	if strings.TrimSpace(o.SettingsKey) == "" {
		return DefaultSettingsKey
	}
	return o.SettingsKey
}

// Validate checks the table structure: names and columns are required and
// table indexes are unique.
func (o *Overrides) Validate() error {
	seen := make(map[int]string, len(o.TableStructure))
	for i, t := range o.TableStructure {
		if strings.TrimSpace(t.TableName) == "" {
			return fmt.Errorf("table_structure[%d]: tableName is required", i)
		}
		if len(t.Columns) == 0 {
			return fmt.Errorf("table_structure[%d] (%s): columns are required", i, t.TableName)
		}
		if prev, ok := seen[t.TableIndex]; ok {
			return fmt.Errorf("table_structure[%d] (%s): tableIndex %d already used by %s", i, t.TableName, t.TableIndex, prev)
		}
		seen[t.TableIndex] = t.TableName
	}
	for k := range o.Extra {
		if k == o.Key() {
			return fmt.Errorf("extra: key %q is reserved for default settings", k)
		}
	}
	return nil
}
