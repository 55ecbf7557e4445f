package model

import (
	"gorm.io/gorm"

	"github.com/haierkeys/notemark-service/pkg/timex"
)

// User 用户表模型
type User struct {
	UID       int64      `gorm:"column:uid;primaryKey;autoIncrement" json:"uid"`
	Email     string     `gorm:"column:email;uniqueIndex;size:255" json:"email"`
	Name      string     `gorm:"column:name;size:255" json:"name"`
	Password  string     `gorm:"column:password" json:"-"`
	UpdatedAt timex.Time `gorm:"column:updated_at;type:datetime;autoUpdateTime:false" json:"updatedAt"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime;autoUpdateTime:false" json:"createdAt"`
}

// Note 笔记表模型
type Note struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UID       int64      `gorm:"column:uid;index" json:"uid"`
	Title     string     `gorm:"column:title;size:512" json:"title"`
	Content   string     `gorm:"column:content;type:text" json:"content"`
	Tags      Tags       `gorm:"column:tags;type:text" json:"tags"`
	Favorite  bool       `gorm:"column:favorite" json:"favorite"`
	UpdatedAt timex.Time `gorm:"column:updated_at;type:datetime;autoUpdateTime:false" json:"updatedAt"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime;autoUpdateTime:false;index" json:"createdAt"`
}

// Bookmark 书签表模型
type Bookmark struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UID         int64      `gorm:"column:uid;index" json:"uid"`
	URL         string     `gorm:"column:url;size:2048" json:"url"`
	Title       string     `gorm:"column:title;size:512" json:"title"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	Tags        Tags       `gorm:"column:tags;type:text" json:"tags"`
	Favorite    bool       `gorm:"column:favorite" json:"favorite"`
	UpdatedAt   timex.Time `gorm:"column:updated_at;type:datetime;autoUpdateTime:false" json:"updatedAt"`
	CreatedAt   timex.Time `gorm:"column:created_at;type:datetime;autoUpdateTime:false;index" json:"createdAt"`
}

func AutoMigrate(db *gorm.DB, key string) error {
	switch key {

	case "User":
		return db.AutoMigrate(User{})

	case "Note":
		return db.AutoMigrate(Note{})

	case "Bookmark":
		return db.AutoMigrate(Bookmark{})
	}
	return nil
}

// AutoMigrateAll 迁移全部表
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(User{}, Note{}, Bookmark{})
}
