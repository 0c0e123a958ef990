package dto

import (
	"time"

	"github.com/noah-isme/joineazy-go-api/internal/models"
	"github.com/noah-isme/joineazy-go-api/internal/progress"
)

// ProfessorDashboardResponse lists the professor's courses with their stats.
type ProfessorDashboardResponse struct {
	Courses []ProfessorCourseResponse `json:"courses"`
}

// StudentCourseResponse pairs an enrolled course with the student's progress.
type StudentCourseResponse struct {
	CourseResponse
	Progress progress.CourseCompletion `json:"progress"`
	Pending  int                       `json:"pending"`
}

// StudentDashboardResponse partitions courses into enrolled and available and
// carries per-course completion for the enrolled half.
type StudentDashboardResponse struct {
	Enrolled  []StudentCourseResponse `json:"enrolled"`
	Available []CourseResponse        `json:"available"`
}

// AcknowledgmentStatus describes one student's standing on one assignment.
type AcknowledgmentStatus struct {
	Acknowledged   bool       `json:"acknowledged"`
	Timestamp      *time.Time `json:"timestamp,omitempty"`
	AcknowledgedBy string     `json:"acknowledgedBy,omitempty"`
}

// StudentAssignmentResponse is the student-facing view of an assignment:
// acknowledgment status, deadline urgency, and what action (if any) the
// student can take.
type StudentAssignmentResponse struct {
	ID               string               `json:"id"`
	CourseID         string               `json:"courseId"`
	Title            string               `json:"title"`
	Description      string               `json:"description"`
	Link             string               `json:"link,omitempty"`
	Type             string               `json:"type"`
	Deadline         progress.Deadline    `json:"deadline"`
	DeadlineLabel    string               `json:"deadline_label"`
	Urgent           bool                 `json:"urgent"`
	Status           AcknowledgmentStatus `json:"status"`
	CanAcknowledge   bool                 `json:"can_acknowledge"`
	NeedsGroup       bool                 `json:"needs_group"`
	WaitingForLeader bool                 `json:"waiting_for_leader"`
}

// NewStudentAssignmentResponse builds the student view. groups are the
// student's own groups for the course; now anchors deadline classification.
func NewStudentAssignmentResponse(model models.Assignment, student string, groups []models.Group, now time.Time) StudentAssignmentResponse {
	deadline := progress.Classify(model.Deadline, now)

	resp := StudentAssignmentResponse{
		ID:            model.ID,
		CourseID:      model.CourseID,
		Title:         model.Title,
		Description:   model.Description,
		Link:          model.Link,
		Type:          model.Type,
		Deadline:      deadline,
		DeadlineLabel: deadline.Label(),
		Urgent:        deadline.Urgent(),
	}

	if !model.IsGroup() {
		for _, ack := range model.Acknowledgments {
			if ack.Email == student {
				ts := ack.Timestamp
				resp.Status = AcknowledgmentStatus{Acknowledged: true, Timestamp: &ts}
				break
			}
		}
		resp.CanAcknowledge = !resp.Status.Acknowledged
		return resp
	}

	var group *models.Group
	for i := range groups {
		if groups[i].AssignmentID == model.ID {
			group = &groups[i]
			break
		}
	}

	if group == nil {
		resp.NeedsGroup = true
		return resp
	}

	if model.Acknowledged && model.HasGroupMember(student) {
		resp.Status = AcknowledgmentStatus{
			Acknowledged:   true,
			Timestamp:      model.AcknowledgedAt,
			AcknowledgedBy: model.AcknowledgedBy,
		}
		return resp
	}

	if model.Acknowledged {
		// Finalized by a group the student is not part of.
		return resp
	}

	if group.IsLeader(student) {
		resp.CanAcknowledge = true
	} else {
		resp.WaitingForLeader = true
	}

	return resp
}
