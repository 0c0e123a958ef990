package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/joineazy-go-api/internal/models"
)

func TestSubmissionProgressZeroEligible(t *testing.T) {
	assignment := models.Assignment{Type: models.AssignmentTypeIndividual}
	course := models.Course{Students: nil}

	require.Equal(t, 0, SubmissionProgress(assignment, course), "zero eligible must map to 0, not divide by zero")
}

func TestSubmissionCountIndividual(t *testing.T) {
	assignment := models.Assignment{
		Type: models.AssignmentTypeIndividual,
		Acknowledgments: []models.Acknowledgment{
			{Email: "a@x.com"},
			{Email: "b@x.com"},
		},
	}
	course := models.Course{Students: []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com"}}

	require.Equal(t, 2, SubmissionCount(assignment))
	require.Equal(t, 4, TotalEligible(assignment, course))
	require.Equal(t, 50, SubmissionProgress(assignment, course))
}

func TestSubmissionCountGroup(t *testing.T) {
	course := models.Course{Students: []string{"a@x.com", "b@x.com", "c@x.com"}}

	pending := models.Assignment{Type: models.AssignmentTypeGroup, GroupMembers: []string{"a@x.com", "b@x.com"}}
	require.Equal(t, 0, SubmissionCount(pending), "an unacknowledged group counts as zero")
	require.Equal(t, 1, TotalEligible(pending, course), "a group is one submitting unit")
	require.Equal(t, 0, SubmissionProgress(pending, course))

	done := pending
	done.Acknowledged = true
	require.Equal(t, 2, SubmissionCount(done))
	require.Equal(t, 100, SubmissionProgress(done, course))
}

func TestCourseProgress(t *testing.T) {
	assignments := []models.Assignment{
		{Type: models.AssignmentTypeIndividual, Acknowledgments: []models.Acknowledgment{{Email: "ada@x.com"}}},
		{Type: models.AssignmentTypeIndividual},
		{Type: models.AssignmentTypeGroup, Acknowledged: true, GroupMembers: []string{"ada@x.com", "bob@x.com"}},
	}

	completion := CourseProgress(assignments, "ada@x.com")
	require.Equal(t, 2, completion.Completed)
	require.Equal(t, 3, completion.Total)
	require.Equal(t, 67, completion.Percentage)
	require.Equal(t, 1, PendingCount(assignments, "ada@x.com"))

	// Group acknowledgment only counts for members of the acknowledged group.
	completion = CourseProgress(assignments, "eve@x.com")
	require.Equal(t, 0, completion.Completed)
	require.Equal(t, 3, PendingCount(assignments, "eve@x.com"))
}

func TestCourseProgressEmptyCourse(t *testing.T) {
	completion := CourseProgress(nil, "ada@x.com")
	require.Equal(t, CourseCompletion{}, completion)
}

func TestClassifyDeadlines(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		deadline time.Time
		class    UrgencyClass
		hours    int
		days     int
		urgent   bool
	}{
		{"one second past", now.Add(-time.Second), Overdue, 0, 0, true},
		{"five hours out", now.Add(5 * time.Hour), DueWithinHours, 5, 0, true},
		{"twenty-six hours out", now.Add(26 * time.Hour), DueTomorrow, 0, 0, true},
		{"three days out", now.Add(3 * 24 * time.Hour), DueWithinDays, 0, 3, true},
		{"thirty days out", now.Add(30 * 24 * time.Hour), DueLater, 0, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.deadline, now)
			require.Equal(t, tc.class, got.Class)
			require.Equal(t, tc.hours, got.Hours)
			require.Equal(t, tc.days, got.Days)
			require.Equal(t, tc.urgent, got.Urgent())
		})
	}
}

func TestClassifyExactBoundaries(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	require.Equal(t, DueWithinHours, Classify(now, now).Class, "a deadline right now is hours-class, not overdue")
	require.Equal(t, DueTomorrow, Classify(now.Add(24*time.Hour), now).Class)
	require.Equal(t, DueWithinDays, Classify(now.Add(7*24*time.Hour), now).Class)
	require.Equal(t, DueLater, Classify(now.Add(8*24*time.Hour), now).Class)
}

func TestDeadlineLabels(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	require.Equal(t, "Overdue", Classify(now.Add(-time.Hour), now).Label())
	require.Equal(t, "Due in 5 hours", Classify(now.Add(5*time.Hour), now).Label())
	require.Equal(t, "Due tomorrow", Classify(now.Add(26*time.Hour), now).Label())
	require.Equal(t, "Due in 3 days", Classify(now.Add(3*24*time.Hour), now).Label())
}
