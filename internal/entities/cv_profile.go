package entities

import "time"

// CVProfile holds the parsed view of a user's uploaded CV. The raw AI
// response is kept alongside the extracted fields so reprocessing does
// not require another upload.
type CVProfile struct {
	ID         uint  `gorm:"primaryKey"`
	UserID     int64 `gorm:"uniqueIndex"`
	FileName   string
	Skills     string
	Summary    string
	Education  string
	RawPayload []byte
	ParsedAt   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
