package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()

	t.Run("classical lookup", func(t *testing.T) {
		assert.True(t, s.IsClassical("宝玉"))
		assert.True(t, s.IsClassical("心焦"))
		assert.True(t, s.IsClassical("只见"))
		assert.True(t, s.IsClassical("之"))
		assert.True(t, s.IsClassical("床榻")) // period word
		assert.False(t, s.IsClassical("电脑"))
	})

	t.Run("modern lookup", func(t *testing.T) {
		assert.True(t, s.IsModern("着急"))
		assert.True(t, s.IsModern("我们"))
		assert.True(t, s.IsModern("手机"))
		assert.False(t, s.IsModern("思量"))
	})

	t.Run("honorific lookup", func(t *testing.T) {
		assert.True(t, s.IsHonorific("奴婢"))
		assert.True(t, s.IsHonorific("老太太"))
		assert.False(t, s.IsHonorific("宝玉"))
	})

	t.Run("terms ordered longest first", func(t *testing.T) {
		terms := s.Terms()
		require.NotEmpty(t, terms)
		for i := 1; i < len(terms); i++ {
			assert.GreaterOrEqual(t, len(terms[i-1]), len(terms[i]),
				"term %q before %q", terms[i-1], terms[i])
		}
	})

	t.Run("roles", func(t *testing.T) {
		role, ok := s.RoleFor("袭人")
		require.True(t, ok)
		assert.Equal(t, "servant", role)

		role, ok = s.RoleFor("贾母")
		require.True(t, ok)
		assert.Equal(t, "elder", role)

		_, ok = s.RoleFor("无名氏")
		assert.False(t, ok)
	})

	t.Run("honorific compatibility", func(t *testing.T) {
		assert.True(t, s.CompatibleHonorific("servant", "奴婢"))
		assert.True(t, s.CompatibleHonorific("elder", "老太太"))
		assert.False(t, s.CompatibleHonorific("servant", "老太太"))
		assert.False(t, s.CompatibleHonorific("unknown", "奴婢"))
	})

	t.Run("expected distribution", func(t *testing.T) {
		assert.InDelta(t, 0.35, s.Expected.ClassicalRatio, 1e-9)
		assert.InDelta(t, 14.0, s.Expected.MeanSentenceLen, 1e-9)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		s, err := LoadFile("")
		require.NoError(t, err)
		assert.True(t, s.IsClassical("宝玉"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("overlay merges word lists and distribution", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "overlay.yaml")
		overlay := `classical_words:
  人物称谓:
    - 妙玉
modern_words:
  现代词汇:
    - 点赞
honorific_terms:
  - 小生
expected:
  classical_ratio: 0.5
`
		require.NoError(t, os.WriteFile(path, []byte(overlay), 0644))

		s, err := LoadFile(path)
		require.NoError(t, err)

		assert.True(t, s.IsClassical("妙玉"))
		assert.True(t, s.IsModern("点赞"))
		assert.True(t, s.IsHonorific("小生"))
		assert.InDelta(t, 0.5, s.Expected.ClassicalRatio, 1e-9)

		// Untouched fields keep their defaults.
		assert.True(t, s.IsClassical("宝玉"))
		assert.InDelta(t, 14.0, s.Expected.MeanSentenceLen, 1e-9)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("classical_words: [not a map"), 0644))
		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}
