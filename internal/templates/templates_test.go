package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	lib := Load()
	assert.Equal(t, 16, lib.Len())

	t.Run("every category present", func(t *testing.T) {
		for _, cat := range []string{CategoryDialogue, CategoryNarrative, CategoryScene, CategoryRhetorical} {
			assert.Len(t, lib.Lookup(cat, LookupOptions{}), 4, cat)
		}
	})

	t.Run("entries are complete", func(t *testing.T) {
		for _, e := range lib.All() {
			assert.NotEmpty(t, e.Subtype)
			assert.NotEmpty(t, e.Context)
			assert.NotEmpty(t, e.Examples)
			assert.NotEmpty(t, e.Tone)
		}
	})
}

func TestLookup(t *testing.T) {
	lib := Load()

	t.Run("exact subtype", func(t *testing.T) {
		got := lib.Lookup(CategoryDialogue, LookupOptions{Subtype: "主仆对话"})
		require.Len(t, got, 1)
		assert.Equal(t, "主仆对话", got[0].Subtype)
	})

	t.Run("unknown subtype", func(t *testing.T) {
		assert.Empty(t, lib.Lookup(CategoryDialogue, LookupOptions{Subtype: "不存在"}))
	})

	t.Run("unknown category", func(t *testing.T) {
		assert.Empty(t, lib.Lookup("poetry", LookupOptions{}))
	})

	t.Run("keyword filters and ranks", func(t *testing.T) {
		got := lib.Lookup(CategoryRhetorical, LookupOptions{Keyword: "比喻"})
		require.NotEmpty(t, got)
		assert.Equal(t, "比喻句式", got[0].Subtype)
	})

	t.Run("tone filter", func(t *testing.T) {
		got := lib.Lookup(CategoryDialogue, LookupOptions{Tone: "不存在的语气"})
		assert.Empty(t, got)
	})

	t.Run("stable order", func(t *testing.T) {
		first := lib.Lookup(CategoryScene, LookupOptions{})
		second := lib.Lookup(CategoryScene, LookupOptions{})
		assert.Equal(t, first, second)
	})
}

func TestSuggest(t *testing.T) {
	lib := Load()

	t.Run("description maps to narrative", func(t *testing.T) {
		got := lib.Suggest("description", "")
		require.NotEmpty(t, got)
		assert.Equal(t, CategoryNarrative, got[0].Category)
	})

	t.Run("tone preference first", func(t *testing.T) {
		all := lib.Suggest(CategoryDialogue, "")
		require.NotEmpty(t, all)
		tone := all[len(all)-1].Tone

		got := lib.Suggest(CategoryDialogue, tone)
		require.NotEmpty(t, got)
		assert.Equal(t, tone, got[0].Tone)
	})

	t.Run("unknown type", func(t *testing.T) {
		assert.Empty(t, lib.Suggest("unknown", ""))
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("extends built-ins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "extra.yaml")
		extra := `entries:
  - category: dialogue
    subtype: 测试对话
    context: 测试用
    examples:
      - 示例一
    tone: 平和
`
		require.NoError(t, os.WriteFile(path, []byte(extra), 0644))

		lib, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 17, lib.Len())

		got := lib.Lookup(CategoryDialogue, LookupOptions{Subtype: "测试对话"})
		require.Len(t, got, 1)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("entry without category rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("entries:\n  - subtype: x\n"), 0644))
		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}

func TestReport(t *testing.T) {
	out := Load().Report()
	assert.Contains(t, out, "文体风格库")
	assert.Contains(t, out, "对话模板")
	assert.Contains(t, out, "修辞模板")
}
