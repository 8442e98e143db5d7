package models

import "time"

// Category groups carpets. A category owns its carpets and cannot be removed while it has any.
type Category struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string     `json:"name" gorm:"type:varchar(100);not null;index"`
	Description string     `json:"description" gorm:"type:varchar(500)"`
	CreatedAt   time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt   *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
	Carpets     []Carpet   `json:"carpets,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

// TableName pins the table name used by gorm.
func (Category) TableName() string {
	return "categories"
}
