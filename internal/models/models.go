package models

import "time"

// Page is the portal API's pagination envelope. Every list endpoint
// returns a bounded window of items plus the total count.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
}

type Job struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Salary      string `json:"salary"`
	UserID      int    `json:"user_id"`
	Logo        string `json:"logo,omitempty"`
}

type Application struct {
	ID             int       `json:"id"`
	JobID          int       `json:"job_id"`
	UserID         int       `json:"user_id"`
	Email          string    `json:"email"`
	MobileNumber   string    `json:"mobile_number"`
	ExpectedSalary float64   `json:"expected_salary"`
	Resume         string    `json:"resume"`
	AppliedAt      time.Time `json:"applied_at"`
}

// SavedJob is the denormalized bookmark record the portal keeps per
// (user, job) pair. There is no unsave operation.
type SavedJob struct {
	ID             int    `json:"id"`
	UserID         int    `json:"user_id"`
	JobID          int    `json:"job_id"`
	JobTitle       string `json:"job_title"`
	JobLocation    string `json:"job_location"`
	JobDescription string `json:"job_description"`
	JobSalary      string `json:"job_salary"`
}

type UserProfile struct {
	ID         int    `json:"id"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Username   string `json:"username"`
}

// FullName joins the name parts, skipping an empty middle name.
func (u UserProfile) FullName() string {
	name := u.FirstName
	if u.MiddleName != "" {
		name += " " + u.MiddleName
	}
	if u.LastName != "" {
		name += " " + u.LastName
	}
	return name
}
