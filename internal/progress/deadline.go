package progress

import (
	"fmt"
	"time"
)

// UrgencyClass buckets a deadline relative to now.
type UrgencyClass string

// Urgency classes, from most to least pressing.
const (
	Overdue        UrgencyClass = "overdue"
	DueWithinHours UrgencyClass = "due_within_hours"
	DueTomorrow    UrgencyClass = "due_tomorrow"
	DueWithinDays  UrgencyClass = "due_within_days"
	DueLater       UrgencyClass = "due_later"
)

// Deadline is the classified urgency of an assignment deadline.
type Deadline struct {
	Class UrgencyClass `json:"class"`
	Hours int          `json:"hours,omitempty"`
	Days  int          `json:"days,omitempty"`
	When  time.Time    `json:"when"`
}

// Classify buckets the deadline against the reference time. Boundary rules:
// a negative difference is Overdue; under one full day is DueWithinHours;
// exactly one day is DueTomorrow; up to seven days is DueWithinDays;
// everything beyond is DueLater.
func Classify(deadline, now time.Time) Deadline {
	diff := deadline.Sub(now)
	if diff < 0 {
		return Deadline{Class: Overdue, When: deadline}
	}

	days := int(diff.Hours()) / 24
	hours := int(diff.Hours()) % 24

	switch {
	case days == 0:
		return Deadline{Class: DueWithinHours, Hours: hours, When: deadline}
	case days == 1:
		return Deadline{Class: DueTomorrow, When: deadline}
	case days <= 7:
		return Deadline{Class: DueWithinDays, Days: days, When: deadline}
	default:
		return Deadline{Class: DueLater, When: deadline}
	}
}

// Urgent reports whether the deadline warrants a warning. Every class except
// DueLater is urgent.
func (d Deadline) Urgent() bool {
	return d.Class != DueLater
}

// Label renders the user-facing deadline text.
func (d Deadline) Label() string {
	switch d.Class {
	case Overdue:
		return "Overdue"
	case DueWithinHours:
		return fmt.Sprintf("Due in %d hours", d.Hours)
	case DueTomorrow:
		return "Due tomorrow"
	case DueWithinDays:
		return fmt.Sprintf("Due in %d days", d.Days)
	default:
		return d.When.Format("Jan 2, 2006 3:04 PM")
	}
}
