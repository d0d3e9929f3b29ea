package events

const (
	CVParsedTopic   = "cv:parsed"
	JobAppliedTopic = "job:applied"
)

// CVParsed is published after the AI service finished parsing an
// uploaded CV and the profile was stored.
type CVParsed struct {
	UserID     int64
	FileName   string
	SkillCount int
}

// JobApplied is published when a user submits a new application.
type JobApplied struct {
	UserID int64
	JobID  uint
}
