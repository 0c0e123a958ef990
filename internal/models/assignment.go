package models

import "time"

// Assignment type constants.
const (
	AssignmentTypeIndividual = "individual"
	AssignmentTypeGroup      = "group"
)

// Acknowledgment records a single student's completion declaration on an
// individual assignment.
type Acknowledgment struct {
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// Assignment represents a course assignment. Exactly one of the two
// acknowledgment field groups is active, gated by Type: Acknowledgments for
// individual assignments, the Acknowledged/AcknowledgedBy/AcknowledgedAt/
// GroupMembers set for group assignments.
type Assignment struct {
	ID              string           `json:"id"`
	CourseID        string           `json:"courseId"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Deadline        time.Time        `json:"deadline"`
	Link            string           `json:"link,omitempty"`
	Type            string           `json:"type"`
	Acknowledgments []Acknowledgment `json:"acknowledgments"`
	Acknowledged    bool             `json:"acknowledged"`
	AcknowledgedBy  string           `json:"acknowledgedBy,omitempty"`
	AcknowledgedAt  *time.Time       `json:"acknowledgedAt,omitempty"`
	GroupMembers    []string         `json:"groupMembers"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// IsGroup reports whether the assignment is acknowledged as a whole group.
func (a Assignment) IsGroup() bool {
	return a.Type == AssignmentTypeGroup
}

// AcknowledgedByStudent reports whether the given student has an individual
// acknowledgment entry on record.
func (a Assignment) AcknowledgedByStudent(email string) bool {
	for _, ack := range a.Acknowledgments {
		if ack.Email == email {
			return true
		}
	}
	return false
}

// HasGroupMember reports whether the email is part of the acknowledged group.
func (a Assignment) HasGroupMember(email string) bool {
	for _, member := range a.GroupMembers {
		if member == email {
			return true
		}
	}
	return false
}

// CompletedBy reports whether the assignment counts as complete for the given
// student: an individual acknowledgment entry, or a finalized group
// acknowledgment that includes the student.
func (a Assignment) CompletedBy(email string) bool {
	if a.IsGroup() {
		return a.Acknowledged && a.HasGroupMember(email)
	}
	return a.AcknowledgedByStudent(email)
}

// HasAcknowledgmentState reports whether any acknowledgment has been recorded,
// in either mode. Type changes are rejected once this is true.
func (a Assignment) HasAcknowledgmentState() bool {
	return a.Acknowledged || len(a.Acknowledgments) > 0
}
