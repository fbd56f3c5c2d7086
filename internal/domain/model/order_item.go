package model

import "time"

// 注文明細。確定時点のカート明細のスナップショット。
type OrderItem struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       string    `gorm:"type:varchar(64);not null;index" json:"order_id"`
	MenuItemID    string    `gorm:"type:varchar(64);not null" json:"menu_item_id"`
	NameSnapshot  string    `gorm:"type:varchar(255);not null" json:"name_snapshot"`
	PriceSnapshot float64   `gorm:"not null" json:"price_snapshot"`
	Quantity      int64     `gorm:"not null" json:"quantity"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
