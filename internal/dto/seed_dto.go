package dto

import "github.com/noah-isme/joineazy-go-api/internal/models"

// SeedDataset is a demo dataset loaded in one shot: users, courses,
// assignments and groups, in the persisted collection shapes.
type SeedDataset struct {
	Users       []models.User       `json:"users"`
	Courses     []models.Course     `json:"courses"`
	Assignments []models.Assignment `json:"assignments"`
	Groups      []models.Group      `json:"groups"`
}

// SeedSummary reports how many records each collection received.
type SeedSummary struct {
	Users       int `json:"users"`
	Courses     int `json:"courses"`
	Assignments int `json:"assignments"`
	Groups      int `json:"groups"`
}
