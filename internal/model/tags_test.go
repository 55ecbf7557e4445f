package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsValueScan(t *testing.T) {
	v, err := Tags{"go", "db"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["go","db"]`, v)

	var got Tags
	require.NoError(t, got.Scan(v))
	assert.Equal(t, Tags{"go", "db"}, got)

	// nil 列与空串都规整为空列表
	require.NoError(t, got.Scan(nil))
	assert.Equal(t, Tags{}, got)
	require.NoError(t, got.Scan(""))
	assert.Equal(t, Tags{}, got)

	// []byte 形态（MySQL 驱动）
	require.NoError(t, got.Scan([]byte(`["a"]`)))
	assert.Equal(t, Tags{"a"}, got)
}

func TestTagsValueNil(t *testing.T) {
	v, err := Tags(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestLikePattern(t *testing.T) {
	// JSON 编码的引号让 LIKE 匹配到完整标签而非子串
	assert.Equal(t, `%"go"%`, LikePattern("go"))

	// 通配符被转义，只按字面匹配
	assert.Equal(t, `%"50!%"%`, LikePattern("50%"))
	assert.Equal(t, `%"a!_b"%`, LikePattern("a_b"))

	// 含引号的标签按存储中的 JSON 转义形态匹配
	assert.Equal(t, `%"say \"hi\""%`, LikePattern(`say "hi"`))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "50!%", EscapeLike("50%"))
	assert.Equal(t, "a!_b", EscapeLike("a_b"))
	assert.Equal(t, "wow!!", EscapeLike("wow!"))
	assert.Equal(t, "plain", EscapeLike("plain"))
}
