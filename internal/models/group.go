package models

// Group binds a set of students to one group assignment. Leader is optional;
// when unset the first member acts as leader. That fallback is a load-bearing
// authorization rule, not a display default.
type Group struct {
	CourseID     string   `json:"courseId"`
	AssignmentID string   `json:"assignmentId"`
	Members      []string `json:"members"`
	Leader       string   `json:"leader,omitempty"`
}

// HasMember reports whether the email belongs to the group.
func (g Group) HasMember(email string) bool {
	for _, m := range g.Members {
		if m == email {
			return true
		}
	}
	return false
}

// EffectiveLeader returns the designated leader, or the first member when no
// leader is set. Empty when the group has no members.
func (g Group) EffectiveLeader() string {
	if g.Leader != "" {
		return g.Leader
	}
	if len(g.Members) > 0 {
		return g.Members[0]
	}
	return ""
}

// IsLeader reports whether the email is authorized to acknowledge on behalf
// of the group.
func (g Group) IsLeader(email string) bool {
	return email != "" && g.EffectiveLeader() == email
}
