package filters

import (
	"regexp"
	"strconv"
	"strings"
)

// OpenEndedSalary is the sentinel upper bound meaning "and above".
const OpenEndedSalary = 9999

var salaryTokenRegex = regexp.MustCompile(`\$\s*\d[\d,]*`)

// SalaryFloor extracts every currency-prefixed number from a display
// string and returns the smallest one. A range like "$1,000 - $2,000"
// yields 1000: the worst case is what filtering compares against.
// Text with no numeric token yields 0, never an error.
func SalaryFloor(salaryText string) int {

	tokens := salaryTokenRegex.FindAllString(salaryText, -1)
	if len(tokens) == 0 {
		return 0
	}

	floor := -1
	for _, token := range tokens {
		cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(token)
		value, err := strconv.Atoi(cleaned)
		if err != nil {
			continue
		}
		if floor < 0 || value < floor {
			floor = value
		}
	}

	if floor < 0 {
		return 0
	}
	return floor
}

// MatchesSalaryRange reports whether the listing's floor salary falls
// inside [min, max]. A max of OpenEndedSalary means no upper bound.
func MatchesSalaryRange(salaryText string, min, max int) bool {
	floor := SalaryFloor(salaryText)
	if max == OpenEndedSalary {
		return floor >= min
	}
	return floor >= min && floor <= max
}
