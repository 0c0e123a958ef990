package models

// Course represents a course owned by a professor. The students slice holds
// enrolled student emails and grows append-only; enrolling twice is a no-op.
type Course struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Professor      string   `json:"professor"`
	ProfessorEmail string   `json:"professorEmail"`
	Students       []string `json:"students"`
}

// HasStudent reports whether the given email is enrolled in the course.
func (c Course) HasStudent(email string) bool {
	for _, s := range c.Students {
		if s == email {
			return true
		}
	}
	return false
}

// OwnedBy reports whether the course belongs to the given professor email.
func (c Course) OwnedBy(email string) bool {
	return c.ProfessorEmail == email
}
