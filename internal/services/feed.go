package services

import (
	"strconv"
	"strings"

	"github.com/pesocalumpit/portal-web/internal/models"
)

// Salary brackets offered by the feed filter. The salary field is free
// text on the job record; a value that does not parse as an integer
// matches no bracket.
const (
	BracketAll     = ""
	BracketLow     = "lt30"   // < 30000
	BracketMid     = "30to50" // 30000–50000
	BracketHigh    = "gt50"   // > 50000
	lowerThreshold = 30000
	upperThreshold = 50000
)

func parseSalary(s string) (int, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FilterBySalary keeps only jobs whose salary falls in the bracket. The
// empty bracket keeps everything, including unparsable salaries.
func FilterBySalary(jobs []models.Job, bracket string) []models.Job {
	if bracket == BracketAll {
		return jobs
	}
	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		n, ok := parseSalary(job.Salary)
		if !ok {
			continue
		}
		switch bracket {
		case BracketLow:
			if n < lowerThreshold {
				out = append(out, job)
			}
		case BracketMid:
			if n >= lowerThreshold && n <= upperThreshold {
				out = append(out, job)
			}
		case BracketHigh:
			if n > upperThreshold {
				out = append(out, job)
			}
		}
	}
	return out
}

// TruncateDescription shortens card text to limit runes plus an
// ellipsis, leaving shorter text untouched.
func TruncateDescription(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
