package dao

import (
	"testing"

	"github.com/haierkeys/notemark-service/internal/model"
	"github.com/haierkeys/notemark-service/pkg/timex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// 池配置留空时，内存库的连接不能被回收，
// 否则每个新连接都是一个没建过表的全新库
func TestNewDBEngineMemorySQLite(t *testing.T) {
	db, err := NewDBEngine(DatabaseConfig{
		Type:        "sqlite",
		Path:        ":memory:",
		AutoMigrate: true,
	}, zap.NewNop())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		m := &model.Note{
			Title:     "t",
			Tags:      model.Tags{},
			CreatedAt: timex.Now(),
			UpdatedAt: timex.Now(),
		}
		require.NoError(t, db.Create(m).Error)
	}

	var count int64
	require.NoError(t, db.Model(&model.Note{}).Count(&count).Error)
	assert.Equal(t, int64(5), count)
}

func TestNewDBEngineUnsupportedType(t *testing.T) {
	_, err := NewDBEngine(DatabaseConfig{Type: "oracle"}, zap.NewNop())
	assert.Error(t, err)
}
