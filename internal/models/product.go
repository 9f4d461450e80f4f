package models

import (
	"time"
)

// Product is the single resource exposed by the API. Rows are hard-deleted,
// so there is no gorm.DeletedAt column; ids come from the database sequence
// and are never reused after deletion.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description *string   `json:"description" gorm:"type:text"`
	Price       float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity    int       `json:"quantity" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
