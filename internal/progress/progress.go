// Package progress holds the derived-state engine: pure computations over
// stored entities. Nothing here mutates state or touches the store.
package progress

import (
	"math"

	"github.com/noah-isme/joineazy-go-api/internal/models"
)

// SubmissionCount returns how many submissions the assignment has collected:
// one per acknowledgment entry for individual assignments, the whole group at
// once (or zero) for group assignments.
func SubmissionCount(a models.Assignment) int {
	if a.IsGroup() {
		if a.Acknowledged {
			return len(a.GroupMembers)
		}
		return 0
	}

	return len(a.Acknowledgments)
}

// TotalEligible returns the number of expected submitting units: every
// enrolled student for individual assignments, one for group assignments (a
// group submits as a single unit).
func TotalEligible(a models.Assignment, c models.Course) int {
	if a.IsGroup() {
		return 1
	}

	return len(c.Students)
}

// SubmissionProgress returns the submission percentage, rounded. A zero
// eligible total maps to 0, never to an error or NaN.
func SubmissionProgress(a models.Assignment, c models.Course) int {
	total := TotalEligible(a, c)
	if total == 0 {
		return 0
	}

	return int(math.Round(float64(SubmissionCount(a)) / float64(total) * 100))
}

// HasSubmissions reports whether the assignment has collected any submission.
func HasSubmissions(a models.Assignment) bool {
	return SubmissionCount(a) > 0
}

// CourseCompletion summarizes one student's standing in a course.
type CourseCompletion struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// CourseProgress computes the student's completion across the course's
// assignments. An assignment counts as complete per the acknowledgment rules
// of its type; an empty course yields zero percent.
func CourseProgress(assignments []models.Assignment, studentEmail string) CourseCompletion {
	completion := CourseCompletion{Total: len(assignments)}
	for _, a := range assignments {
		if a.CompletedBy(studentEmail) {
			completion.Completed++
		}
	}

	if completion.Total > 0 {
		completion.Percentage = int(math.Round(float64(completion.Completed) / float64(completion.Total) * 100))
	}

	return completion
}

// PendingCount returns how many of the course's assignments the student has
// not yet completed.
func PendingCount(assignments []models.Assignment, studentEmail string) int {
	pending := 0
	for _, a := range assignments {
		if !a.CompletedBy(studentEmail) {
			pending++
		}
	}

	return pending
}
