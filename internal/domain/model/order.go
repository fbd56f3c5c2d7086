package model

import "time"

type OrderStatus string

// 注文は作成されたら PLACED のまま（ライフサイクルなし）。
const OrderStatusPlaced OrderStatus = "PLACED"

// 注文。作成後は変更も削除もしない。
type Order struct {
	ID           string      `gorm:"primaryKey;type:varchar(64)" json:"id"`
	UserID       string      `gorm:"type:varchar(64);not null;index" json:"user_id"`
	RestaurantID string      `gorm:"type:varchar(64);not null" json:"restaurant_id"`
	Total        float64     `gorm:"not null" json:"total"`
	Address      string      `gorm:"type:varchar(255);not null" json:"address"`
	Status       OrderStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt    time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
}
