package model

import "time"

// メニュー。シード後は読み取り専用。
type MenuItem struct {
	ID           string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	RestaurantID string    `gorm:"type:varchar(64);not null;index" json:"restaurant_id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Price        float64   `gorm:"not null" json:"price"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	ImageURL     string    `gorm:"type:text" json:"image_url,omitempty"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
