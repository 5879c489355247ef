package model

import "time"

// Address is a delivery destination. Store addresses have no owner (UserID nil).
type Address struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID *int64 `gorm:"index" json:"user_id"`

	Street     string `gorm:"type:varchar(255);not null" json:"street"`
	Number     string `gorm:"type:varchar(50);not null" json:"number"`
	Complement string `gorm:"type:varchar(100)" json:"complement"`

	// matched byte-for-byte against DeliveryArea.DistrictName
	District string `gorm:"type:varchar(100);not null" json:"district"`

	City      string `gorm:"type:varchar(100);not null" json:"city"`
	State     string `gorm:"type:varchar(50);not null" json:"state"`
	CEP       string `gorm:"column:cep;type:varchar(20);not null" json:"cep"`
	IsPrimary bool   `gorm:"not null;default:false" json:"is_primary"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
