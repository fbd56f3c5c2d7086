package model

import "time"

// 1ユーザーにつきカートは1つ。初回取得時に空で作られ、削除はされない。
// RestaurantID の空文字は「店舗未確定」を表す。
type Cart struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"user_id"`
	RestaurantID string    `gorm:"type:varchar(64);not null;default:''" json:"restaurant_id"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
