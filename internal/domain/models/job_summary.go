package models

// JobSummary is the listing projection returned to the rendering layer.
type JobSummary struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	CompanyName string `json:"companyName"`
	Location    string `json:"location"`
	City        string `json:"city"`
	Salary      string `json:"salary"`
	Type        string `json:"type"`
	Description string `json:"description"`
	PostedAgo   string `json:"postedAgo"`
	IsRemote    bool   `json:"isRemote"`
	IsFeatured  bool   `json:"isFeatured"`
	Logo        string `json:"logo"`
}

// SearchResult is one page of listings plus pagination metadata.
//
// TotalJobs and TotalPages come from the storage-level pre-filter count
// only. When a salary or experience filter is active they overstate the
// post-filter truth, so HasNext is approximate in that case. This is a
// known accuracy limitation, kept deliberately: recomputing exact totals
// would require scanning the full eligible set on every request.
type SearchResult struct {
	Jobs        []JobSummary `json:"jobs"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
	TotalJobs   int64        `json:"totalJobs"`
	HasNext     bool         `json:"hasNext"`
	HasPrev     bool         `json:"hasPrev"`
}

// FeedResult is the incremental-load variant of SearchResult.
type FeedResult struct {
	Jobs    []JobSummary `json:"jobs"`
	HasMore bool         `json:"hasMore"`
}
