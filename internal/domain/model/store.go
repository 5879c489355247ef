package model

import "time"

type Store struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(150);not null" json:"name"`
	Phone       string    `gorm:"type:varchar(20)" json:"phone"`
	Email       string    `gorm:"type:varchar(120)" json:"email"`
	CNPJ        *string   `gorm:"column:cnpj;type:varchar(14);uniqueIndex" json:"cnpj"`
	AddressID   int64     `gorm:"not null" json:"address_id"`
	AdminUserID *int64    `gorm:"index" json:"admin_user_id"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
