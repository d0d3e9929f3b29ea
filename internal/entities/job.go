package entities

import "time"

// Job is a posted listing. Salary and Experience are display strings as
// entered by the business ("$1,000 - $2,000", "2-4 năm"); they are parsed
// on demand by the filters package, never stored as numbers.
type Job struct {
	ID            uint `gorm:"primaryKey"`
	Title         string
	Description   string
	Technique     string
	City          string
	Location      string
	Type          string
	Salary        string
	Experience    string
	CompanyName   string
	Logo          string
	IsRecommended bool
	BusinessID    uint
	Business      *Business
	ExpiryTime    time.Time `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Active reports whether the listing is still eligible for display.
// There is no persisted active flag, eligibility is time-based only.
func (j Job) Active(now time.Time) bool {
	return !j.ExpiryTime.Before(now)
}
