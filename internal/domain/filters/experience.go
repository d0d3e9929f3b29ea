package filters

import (
	"regexp"
	"strconv"
	"strings"
)

var noRequirementPhrases = []string{
	"không yêu cầu",
	"khong yeu cau",
	"không cần kinh nghiệm",
	"not required",
	"no experience",
	"no requirement",
}

var (
	yearsRegex  = regexp.MustCompile(`(?i)(\d+)\s*(?:năm|year)`)
	monthsRegex = regexp.MustCompile(`(?i)(\d+)\s*(?:tháng|month)`)
	rangeRegex  = regexp.MustCompile(`(?i)(\d+)\s*[-–—]\s*(\d+)\s*(?:năm|year)`)
)

// ExperienceMonths converts a free-text experience requirement into a
// number of months. "Not required" phrases and unparseable text both
// map to 0. An explicit range "A-B năm" is taken at its lower bound
// A×12, not the average.
func ExperienceMonths(experienceText string) int {

	lowered := strings.ToLower(strings.TrimSpace(experienceText))
	if lowered == "" {
		return 0
	}

	for _, phrase := range noRequirementPhrases {
		if strings.Contains(lowered, phrase) {
			return 0
		}
	}

	total := 0
	if m := yearsRegex.FindStringSubmatch(experienceText); m != nil {
		years, _ := strconv.Atoi(m[1])
		total += years * 12
	}
	if m := monthsRegex.FindStringSubmatch(experienceText); m != nil {
		months, _ := strconv.Atoi(m[1])
		total += months
	}

	if m := rangeRegex.FindStringSubmatch(experienceText); m != nil {
		lower, _ := strconv.Atoi(m[1])
		total = lower * 12
	}

	return total
}

// ExperienceBucket is a fixed interval of months used for coarse
// filtering. Max of -1 means the interval is open above.
type ExperienceBucket struct {
	Min int
	Max int
}

func (b ExperienceBucket) contains(months int) bool {
	if months < b.Min {
		return false
	}
	return b.Max < 0 || months <= b.Max
}

// experienceBuckets maps a normalized label (Vietnamese and English
// forms) to its interval.
var experienceBuckets = map[string]ExperienceBucket{
	"không yêu cầu": {Min: 0, Max: 0},
	"no requirement": {Min: 0, Max: 0},
	"dưới 1 năm":    {Min: 0, Max: 12},
	"under 1 year":  {Min: 0, Max: 12},
	"1-2 năm":       {Min: 12, Max: 24},
	"1-2 years":     {Min: 12, Max: 24},
	"2-4 năm":       {Min: 24, Max: 48},
	"2-4 years":     {Min: 24, Max: 48},
	"3-5 năm":       {Min: 36, Max: 60},
	"3-5 years":     {Min: 36, Max: 60},
	"5-10 năm":      {Min: 60, Max: 120},
	"5-10 years":    {Min: 60, Max: 120},
	"trên 10 năm":   {Min: 121, Max: -1},
	"over 10 years": {Min: 121, Max: -1},
}

var dashNormalizer = strings.NewReplacer("–", "-", "—", "-")

func normalizeBucketLabel(label string) string {
	normalized := dashNormalizer.Replace(strings.ToLower(strings.TrimSpace(label)))
	return strings.Join(strings.Fields(normalized), " ")
}

// MatchesExperienceBucket reports whether a listing's experience text
// falls into the named bucket. An unrecognized label degrades to a
// case-insensitive substring match against the raw text.
func MatchesExperienceBucket(experienceText, bucketLabel string) bool {

	normalized := normalizeBucketLabel(bucketLabel)
	if normalized == "" {
		return false
	}

	bucket, known := experienceBuckets[normalized]
	if !known {
		return strings.Contains(strings.ToLower(experienceText), normalized)
	}

	return bucket.contains(ExperienceMonths(experienceText))
}

// KnownBucket reports whether the label resolves to a fixed interval.
func KnownBucket(bucketLabel string) bool {
	_, known := experienceBuckets[normalizeBucketLabel(bucketLabel)]
	return known
}
