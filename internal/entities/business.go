package entities

import "time"

type Business struct {
	ID        uint `gorm:"primaryKey"`
	Name      string
	Email     string
	Address   string
	Website   string
	Logo      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
