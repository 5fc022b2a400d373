package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pesocalumpit/portal-web/internal/models"
)

func jobWithSalary(id int, salary string) models.Job {
	return models.Job{ID: id, Title: "job", Salary: salary}
}

func ids(jobs []models.Job) []int {
	out := make([]int, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestFilterBySalary(t *testing.T) {
	jobs := []models.Job{
		jobWithSalary(1, "15000"),
		jobWithSalary(2, "30000"),
		jobWithSalary(3, "45,000"),
		jobWithSalary(4, "50000"),
		jobWithSalary(5, "80000"),
		jobWithSalary(6, "negotiable"),
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(FilterBySalary(jobs, BracketAll)))
	assert.Equal(t, []int{1}, ids(FilterBySalary(jobs, BracketLow)))
	assert.Equal(t, []int{2, 3, 4}, ids(FilterBySalary(jobs, BracketMid)), "bracket bounds are inclusive")
	assert.Equal(t, []int{5}, ids(FilterBySalary(jobs, BracketHigh)))
}

func TestFilterBySalaryDropsUnparsable(t *testing.T) {
	jobs := []models.Job{jobWithSalary(1, "negotiable"), jobWithSalary(2, "")}
	assert.Empty(t, FilterBySalary(jobs, BracketLow))
	assert.Len(t, FilterBySalary(jobs, BracketAll), 2)
}

func TestTruncateDescription(t *testing.T) {
	assert.Equal(t, "short", TruncateDescription("short", 15))
	assert.Equal(t, "exactly fifteen", TruncateDescription("exactly fifteen", 15))
	assert.Equal(t, "this is longer ...", TruncateDescription("this is longer than that", 15))
}
