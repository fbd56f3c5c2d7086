package model

import "time"

// 店舗。シード後は読み取り専用。
type Restaurant struct {
	ID              string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Cuisine         string    `gorm:"type:varchar(100);not null" json:"cuisine"`
	Rating          float64   `gorm:"not null" json:"rating"`
	DeliveryTimeMin int       `gorm:"not null" json:"delivery_time_min"`
	DeliveryFee     float64   `gorm:"not null" json:"delivery_fee"`
	ImageURL        string    `gorm:"type:text" json:"image_url,omitempty"`
	Address         string    `gorm:"type:varchar(255)" json:"address,omitempty"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
