package dto

import "github.com/noah-isme/joineazy-go-api/internal/models"

// GroupCreateRequest describes the payload for forming an assignment group.
type GroupCreateRequest struct {
	AssignmentID string   `json:"assignmentId" validate:"required"`
	Members      []string `json:"members" validate:"required,min=1,dive,email"`
	Leader       string   `json:"leader" validate:"omitempty,email"`
}

// GroupSetLeaderRequest describes the payload for designating a leader. An
// empty leader clears the designation back to the first-member fallback.
type GroupSetLeaderRequest struct {
	Leader string `json:"leader" validate:"omitempty,email"`
}

// GroupResponse is the serialized group returned to clients.
type GroupResponse struct {
	CourseID        string   `json:"courseId"`
	AssignmentID    string   `json:"assignmentId"`
	Members         []string `json:"members"`
	Leader          string   `json:"leader,omitempty"`
	EffectiveLeader string   `json:"effective_leader"`
}

// NewGroupResponse converts a model into a DTO.
func NewGroupResponse(model models.Group) GroupResponse {
	members := model.Members
	if members == nil {
		members = []string{}
	}

	return GroupResponse{
		CourseID:        model.CourseID,
		AssignmentID:    model.AssignmentID,
		Members:         members,
		Leader:          model.Leader,
		EffectiveLeader: model.EffectiveLeader(),
	}
}
