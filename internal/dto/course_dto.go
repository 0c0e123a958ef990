package dto

import "github.com/noah-isme/joineazy-go-api/internal/models"

// CourseCreateRequest describes the payload for creating a course.
type CourseCreateRequest struct {
	Name string `json:"name" validate:"required"`
}

// CourseResponse is the serialized course returned to clients.
type CourseResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Professor      string   `json:"professor"`
	ProfessorEmail string   `json:"professorEmail"`
	Students       []string `json:"students"`
}

// CourseStats aggregates the per-course numbers shown on the professor
// dashboard.
type CourseStats struct {
	Assignments     int `json:"assignments"`
	Students        int `json:"students"`
	WithSubmissions int `json:"with_submissions"`
}

// ProfessorCourseResponse pairs a course with its dashboard stats.
type ProfessorCourseResponse struct {
	CourseResponse
	Stats CourseStats `json:"stats"`
}

// NewCourseResponse converts a model into a DTO.
func NewCourseResponse(model models.Course) CourseResponse {
	students := model.Students
	if students == nil {
		students = []string{}
	}

	return CourseResponse{
		ID:             model.ID,
		Name:           model.Name,
		Professor:      model.Professor,
		ProfessorEmail: model.ProfessorEmail,
		Students:       students,
	}
}

// NewCourseResponseSlice converts a slice of models into DTOs.
func NewCourseResponseSlice(courses []models.Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, NewCourseResponse(course))
	}

	return responses
}
