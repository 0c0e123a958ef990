package dto

import (
	"time"

	"github.com/noah-isme/joineazy-go-api/internal/models"
	"github.com/noah-isme/joineazy-go-api/internal/progress"
)

// AssignmentCreateRequest describes the payload for creating an assignment.
type AssignmentCreateRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Deadline    string `json:"deadline" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Link        string `json:"link" validate:"omitempty,url"`
	Type        string `json:"type" validate:"required,oneof=individual group"`
}

// AssignmentUpdateRequest describes the payload for editing an assignment.
// Only title, description, deadline, link and type can change.
type AssignmentUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Deadline    *string `json:"deadline" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Link        *string `json:"link" validate:"omitempty,url"`
	Type        *string `json:"type" validate:"omitempty,oneof=individual group"`
}

// AssignmentResponse is the professor-facing serialized assignment, including
// the derived submission numbers.
type AssignmentResponse struct {
	ID              string                  `json:"id"`
	CourseID        string                  `json:"courseId"`
	Title           string                  `json:"title"`
	Description     string                  `json:"description"`
	Deadline        time.Time               `json:"deadline"`
	Link            string                  `json:"link,omitempty"`
	Type            string                  `json:"type"`
	CreatedAt       time.Time               `json:"createdAt"`
	Acknowledgments []models.Acknowledgment `json:"acknowledgments"`
	SubmissionCount int                     `json:"submission_count"`
	TotalEligible   int                     `json:"total_eligible"`
	Progress        int                     `json:"progress"`
}

// NewAssignmentResponse converts a model into a DTO, deriving the submission
// numbers against the parent course.
func NewAssignmentResponse(model models.Assignment, course models.Course) AssignmentResponse {
	acks := model.Acknowledgments
	if acks == nil {
		acks = []models.Acknowledgment{}
	}

	return AssignmentResponse{
		ID:              model.ID,
		CourseID:        model.CourseID,
		Title:           model.Title,
		Description:     model.Description,
		Deadline:        model.Deadline,
		Link:            model.Link,
		Type:            model.Type,
		CreatedAt:       model.CreatedAt,
		Acknowledgments: acks,
		SubmissionCount: progress.SubmissionCount(model),
		TotalEligible:   progress.TotalEligible(model, course),
		Progress:        progress.SubmissionProgress(model, course),
	}
}

// NewAssignmentResponseSlice converts a slice of models into DTOs.
func NewAssignmentResponseSlice(assignments []models.Assignment, course models.Course) []AssignmentResponse {
	responses := make([]AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, NewAssignmentResponse(assignment, course))
	}

	return responses
}
