package application

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"

	"localekit/internal/domain"
	"localekit/internal/domain/entities"
	"localekit/internal/infrastructure/filestore"
	"localekit/internal/ports/input"
)

const referenceLocale = `{
    "hello": "Hello",
    "__defaultSettings__": {
        "isAiReadTable": true,
        "message_template": "# dataTable",
        "nested": {"a": 1, "b": 2},
        "tableStructure": [{"tableName": "Time", "tableIndex": 0}]
    }
}`

const translatedLocale = `{
    "hello": "你好",
    "__defaultSettings__": {"stale": true},
    "Tag": "old"
}`

const zhOverrides = `[defaults]
message_template = """# dataTable 说明
<tableEdit>"""
refresh_system_message_template = "你是一个专业的表格整理助手。"

[defaults.nested]
b = 3

[[table_structure]]
tableName = "时空表格"
tableIndex = 0
columns = ["日期", "时间", "地点（当前描写）", "此地角色"]
enable = true
Required = true
asStatus = true
toChat = true
note = "记录时空信息的表格，应保持在一行"
initNode = "本轮需要记录当前时间、地点、人物信息，使用insertRow函数"
updateNode = "当描写的场景，时间，人物变更时"
deleteNode = "此表大于一行时应删除多余行"

[extra]
Tag = "标签"
regexReplaceLabel = "使用正则替换对话中的内容："
`

type MergeServiceTestSuite struct {
	suite.Suite
	dir string
	svc *MergeService
}

func TestMergeServiceSuite(t *testing.T) {
	suite.Run(t, &MergeServiceTestSuite{})
}

func (s *MergeServiceTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	store := filestore.NewStore(4)
	s.svc = NewMergeService(store, store, entities.DefaultSettingsKey, nil)
	s.write("en.json", referenceLocale)
	s.write("zh-cn.json", translatedLocale)
	s.write("zh-cn.toml", zhOverrides)
}

func (s *MergeServiceTestSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (s *MergeServiceTestSuite) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *MergeServiceTestSuite) request() input.MergeRequest {
	return input.MergeRequest{
		TranslatedPath: s.path("zh-cn.json"),
		ReferencePath:  s.path("en.json"),
		OverridesPath:  s.path("zh-cn.toml"),
	}
}

func (s *MergeServiceTestSuite) TestMergeDefaults() {
	res, err := s.svc.MergeDefaults(context.Background(), s.request())
	s.Require().NoError(err)
	s.Equal(&input.MergeResult{
		SettingsKey: entities.DefaultSettingsKey,
		Overwritten: 3,
		Tables:      1,
		Extra:       2,
	}, res)

	out, err := os.ReadFile(s.path("zh-cn.json"))
	s.Require().NoError(err)
	s.Require().True(gjson.ValidBytes(out))

	doc := gjson.ParseBytes(out)
	var keys []string
	doc.ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	s.Equal([]string{"hello", "__defaultSettings__", "Tag", "regexReplaceLabel"}, keys)

	s.Equal("你好", doc.Get("hello").String())
	s.Equal("标签", doc.Get("Tag").String())

	settings := doc.Get("__defaultSettings__")
	s.False(settings.Get("stale").Exists(), "translated settings are replaced by the reference")
	s.True(settings.Get("isAiReadTable").Bool())
	s.Equal("# dataTable 说明\n<tableEdit>", settings.Get("message_template").String())
	s.Equal("你是一个专业的表格整理助手。", settings.Get("refresh_system_message_template").String())
	s.Equal(int64(1), settings.Get("nested.a").Int())
	s.Equal(int64(3), settings.Get("nested.b").Int())

	s.Equal(int64(1), settings.Get("tableStructure.#").Int())
	table := settings.Get("tableStructure.0")
	s.Equal("时空表格", table.Get("tableName").String())
	s.Equal(int64(4), table.Get("columns.#").Int())
	s.True(table.Get("Required").Bool())
	s.False(table.Get("insertNode").Exists())
	s.True(table.Get("updateNode").Exists())

	s.Contains(string(out), "<tableEdit>", "markup is written literally")
	s.Contains(string(out), "\n    \"hello\": \"你好\"")
}

func (s *MergeServiceTestSuite) TestMergeDefaultsWritesToOut() {
	req := s.request()
	req.OutputPath = s.path("merged.json")

	_, err := s.svc.MergeDefaults(context.Background(), req)
	s.Require().NoError(err)

	original, err := os.ReadFile(s.path("zh-cn.json"))
	s.Require().NoError(err)
	s.Equal(translatedLocale, string(original))
	s.FileExists(req.OutputPath)
}

func (s *MergeServiceTestSuite) TestMissingTranslatedStartsEmpty() {
	req := s.request()
	req.TranslatedPath = s.path("ja.json")

	_, err := s.svc.MergeDefaults(context.Background(), req)
	s.Require().NoError(err)

	out, err := os.ReadFile(req.TranslatedPath)
	s.Require().NoError(err)
	s.True(gjson.GetBytes(out, "__defaultSettings__.isAiReadTable").Bool())
	s.False(gjson.GetBytes(out, "hello").Exists())
}

func (s *MergeServiceTestSuite) TestSettingsKeyFromOverrides() {
	s.write("custom.toml", "settings_key = \"__custom__\"\n[defaults]\nx = \"y\"\n")
	req := s.request()
	req.OverridesPath = s.path("custom.toml")

	res, err := s.svc.MergeDefaults(context.Background(), req)
	s.Require().NoError(err)
	s.Equal("__custom__", res.SettingsKey)

	out, err := os.ReadFile(s.path("zh-cn.json"))
	s.Require().NoError(err)
	s.Equal("y", gjson.GetBytes(out, "__custom__.x").String())
	s.True(gjson.GetBytes(out, "__defaultSettings__.stale").Bool(), "other keys are untouched")
}

func (s *MergeServiceTestSuite) TestErrors() {
	tests := []struct {
		name   string
		setup  func(req *input.MergeRequest)
		target error
	}{
		{
			name:   "missing reference",
			setup:  func(req *input.MergeRequest) { req.ReferencePath = s.path("nope.json") },
			target: domain.ErrInput,
		},
		{
			name:   "reference is not json",
			setup:  func(req *input.MergeRequest) { req.ReferencePath = s.write("bad.json", "{not json") },
			target: domain.ErrInput,
		},
		{
			name:   "reference settings not an object",
			setup:  func(req *input.MergeRequest) { req.ReferencePath = s.write("flat.json", `{"__defaultSettings__": "x"}`) },
			target: domain.ErrInput,
		},
		{
			name:   "translated is a list",
			setup:  func(req *input.MergeRequest) { req.TranslatedPath = s.write("list.json", `[1, 2]`) },
			target: domain.ErrInput,
		},
		{
			name:   "missing overrides",
			setup:  func(req *input.MergeRequest) { req.OverridesPath = s.path("nope.toml") },
			target: domain.ErrInput,
		},
		{
			name:   "unknown overrides table",
			setup:  func(req *input.MergeRequest) { req.OverridesPath = s.write("typo.toml", "[default]\nx = 1\n") },
			target: domain.ErrInvalidOverrides,
		},
		{
			name: "duplicate table index",
			setup: func(req *input.MergeRequest) {
				req.OverridesPath = s.write("dup.toml", `
[[table_structure]]
tableName = "a"
tableIndex = 1
columns = ["x"]

[[table_structure]]
tableName = "b"
tableIndex = 1
columns = ["y"]
`)
			},
			target: domain.ErrInvalidOverrides,
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := s.request()
			tt.setup(&req)

			_, err := s.svc.MergeDefaults(context.Background(), req)
			s.Require().ErrorIs(err, tt.target)

			original, err := os.ReadFile(s.path("zh-cn.json"))
			s.Require().NoError(err)
			s.Equal(translatedLocale, string(original), "nothing is written on failure")
		})
	}
}
