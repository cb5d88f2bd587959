package model

import "time"

// Supplier represents a supplier of catalog products.
type Supplier struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"type:varchar(100);not null"`
	ContactPerson string    `json:"contact_person" gorm:"type:varchar(100)"`
	Email         string    `json:"email" gorm:"type:varchar(120)"`
	Phone         string    `json:"phone" gorm:"type:varchar(20)"`
	Address       string    `json:"address" gorm:"type:text"`
	Rating        float64   `json:"rating" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at"`
}
