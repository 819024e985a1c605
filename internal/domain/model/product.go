package model

import "time"

// カタログの商品。IDは不透明な文字列（seed分は prod-1 など、管理画面作成分は prod-<uuid>）。
type Product struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Price     int64     `gorm:"not null" json:"price"`
	OldPrice  int64     `gorm:"column:old_price" json:"old_price,omitempty"`
	Discount  int64     `json:"discount,omitempty"`
	Image     string    `gorm:"type:text" json:"image"`
	Category  string    `gorm:"type:varchar(100);index" json:"category"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
