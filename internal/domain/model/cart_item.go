package model

import "time"

// カートの明細。
// 追加時点の名前と価格を必ずスナップショットで保存する。
// 同一カート内で menu_item_id は一意（同じメニューは数量加算）。
type CartItem struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID        int64     `gorm:"not null;uniqueIndex:idx_cart_menu_item" json:"cart_id"`
	MenuItemID    string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_menu_item" json:"menu_item_id"`
	NameSnapshot  string    `gorm:"type:varchar(255);not null;column:name_snapshot" json:"name_snapshot"`
	PriceSnapshot float64   `gorm:"not null;column:price_snapshot" json:"price_snapshot"`
	Quantity      int64     `gorm:"not null" json:"quantity"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
