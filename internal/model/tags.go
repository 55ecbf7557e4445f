package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Tags 标签列表，数据库中以 JSON 文本存储
// JSON 编码保证过滤时可以用 `tags LIKE '%"tag"%'` 做精确包含匹配
type Tags []string

// Value 实现 driver.Valuer
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		t = Tags{}
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan 实现 sql.Scanner
func (t *Tags) Scan(v any) error {
	switch value := v.(type) {
	case nil:
		*t = Tags{}
		return nil
	case []byte:
		return t.scanString(string(value))
	case string:
		return t.scanString(value)
	default:
		return fmt.Errorf("model: cannot scan %T into Tags", v)
	}
}

func (t *Tags) scanString(s string) error {
	if s == "" {
		*t = Tags{}
		return nil
	}
	return json.Unmarshal([]byte(s), t)
}

// likeEscaper 转义 LIKE 通配符，转义符用 '!'（反斜杠在 MySQL 字符串里有歧义）
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// EscapeLike 转义 LIKE 模式中的通配符，查询要配合 ESCAPE '!' 使用
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// LikePattern 返回单个标签的 SQL LIKE 匹配模式
// 按存储中的 JSON 编码形态匹配（含两侧引号），含引号的标签也能对上转义后的存储值
func LikePattern(tag string) string {
	data, _ := json.Marshal(tag)
	return "%" + EscapeLike(string(data)) + "%"
}
