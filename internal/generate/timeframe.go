package generate

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultDays is the assumed duration when the goal names no timeframe.
const DefaultDays = 14

// timePatterns are tried in priority order; the first match wins and
// later patterns are ignored even if they would also match.
var timePatterns = []struct {
	re   *regexp.Regexp
	days int
}{
	{regexp.MustCompile(`(\d+)\s*weeks?`), 7},
	{regexp.MustCompile(`(\d+)\s*days?`), 1},
	{regexp.MustCompile(`(\d+)\s*months?`), 30},
}

// ExtractTimeframe parses an explicit duration hint out of the goal text
// ("3 weeks", "10 days", "2 months") and returns it in days.
func ExtractTimeframe(goal string) int {
	lower := strings.ToLower(goal)
	for _, p := range timePatterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return n * p.days
	}
	return DefaultDays
}
