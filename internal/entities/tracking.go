package entities

import "time"

// SavedJob marks a listing a user bookmarked for later.
type SavedJob struct {
	ID        uint  `gorm:"primaryKey"`
	UserID    int64 `gorm:"index"`
	JobID     uint
	Job       *Job
	CreatedAt time.Time
}

type ApplicationStatus string

const (
	ApplicationSubmitted ApplicationStatus = "submitted"
	ApplicationViewed    ApplicationStatus = "viewed"
	ApplicationRejected  ApplicationStatus = "rejected"
)

// Application records that a user applied to a listing. One row per
// user+job pair, re-applying is a no-op.
type Application struct {
	ID        uint  `gorm:"primaryKey"`
	UserID    int64 `gorm:"index"`
	JobID     uint
	Job       *Job
	Status    ApplicationStatus `gorm:"default:submitted"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
