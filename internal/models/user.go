package models

// Role constants for registered users.
const (
	RoleProfessor = "professor"
	RoleStudent   = "student"
)

// User represents a registered account. Users are append-only: there is no
// update or delete path, and email is the unique, case-sensitive key.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Exp      int64  `json:"exp"`
}

// IsProfessor reports whether the user holds the professor role.
func (u User) IsProfessor() bool {
	return u.Role == RoleProfessor
}

// IsStudent reports whether the user holds the student role.
func (u User) IsStudent() bool {
	return u.Role == RoleStudent
}
