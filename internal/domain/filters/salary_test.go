package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SalaryFloor_ReturnsMinimumOfAllTokens(t *testing.T) {

	cases := []struct {
		text     string
		expected int
	}{
		{"$1,000 - $2,500", 1000},
		{"$2,500 - $1,000", 1000},
		{"Up to $3,000", 3000},
		{"$800", 800},
		{"$ 1,200 negotiable", 1200},
		{"Thoả thuận", 0},
		{"", 0},
		{"Competitive salary", 0},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, SalaryFloor(c.text), "text: %q", c.text)
	}
}

func Test_MatchesSalaryRange_OpenEndedUsesSentinel(t *testing.T) {

	assert.True(t, MatchesSalaryRange("$2,000 - $3,000", 2000, OpenEndedSalary))
	assert.True(t, MatchesSalaryRange("$5,000", 2000, OpenEndedSalary))
	assert.False(t, MatchesSalaryRange("$1,999", 2000, OpenEndedSalary))
}

func Test_MatchesSalaryRange_ClosedInterval(t *testing.T) {

	assert.True(t, MatchesSalaryRange("$1,500", 1000, 2000))
	assert.True(t, MatchesSalaryRange("$1,000", 1000, 2000))
	assert.True(t, MatchesSalaryRange("$2,000", 1000, 2000))
	assert.False(t, MatchesSalaryRange("$2,001", 1000, 2000))
	assert.False(t, MatchesSalaryRange("$500 - $900", 1000, 2000))
}

func Test_MatchesSalaryRange_NoTokenFloorsToZero(t *testing.T) {

	assert.False(t, MatchesSalaryRange("Thoả thuận", 1000, 2000))
	assert.True(t, MatchesSalaryRange("Thoả thuận", 0, 2000))
}
