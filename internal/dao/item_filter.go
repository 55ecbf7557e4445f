package dao

import (
	"strings"

	"github.com/haierkeys/notemark-service/internal/domain"
	"github.com/haierkeys/notemark-service/internal/model"

	"gorm.io/gorm"
)

// applyItemFilter builds the list query from an ItemFilter.
// applyItemFilter 将 ItemFilter 转换为查询条件
// textColumns 是参与子串匹配的列名（标题、正文，书签额外含 url）
// 各条件之间为 AND，子串匹配在列之间为 OR，标签为全量包含
func applyItemFilter(tx *gorm.DB, filter domain.ItemFilter, textColumns []string) *gorm.DB {
	if filter.OwnerUID > 0 {
		tx = tx.Where("uid = ?", filter.OwnerUID)
	}

	// 通配符一律转义，q 与标签里的 % / _ 只按字面匹配
	if filter.Query != "" {
		pattern := "%" + model.EscapeLike(strings.ToLower(filter.Query)) + "%"
		var clauses []string
		var args []any
		for _, col := range textColumns {
			clauses = append(clauses, "LOWER("+col+") LIKE ? ESCAPE '!'")
			args = append(args, pattern)
		}
		tx = tx.Where(strings.Join(clauses, " OR "), args...)
	}

	// 标签以 JSON 文本存储，`%"tag"%` 模式等价于数组包含判断
	for _, tag := range filter.Tags {
		tx = tx.Where("tags LIKE ? ESCAPE '!'", model.LikePattern(tag))
	}

	return tx.Order("created_at DESC, id DESC")
}
