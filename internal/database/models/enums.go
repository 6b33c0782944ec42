package models

import "fmt"

// AssignmentStatus is the review state of a code assignment
type AssignmentStatus string

const (
	AssignmentStatusPending  AssignmentStatus = "pending"
	AssignmentStatusAccepted AssignmentStatus = "accepted"
	AssignmentStatusRejected AssignmentStatus = "rejected"
)

// IsValid checks if the AssignmentStatus is valid
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusPending, AssignmentStatusAccepted, AssignmentStatusRejected:
		return true
	}
	return false
}

// ParseAssignmentStatus converts a raw value into an AssignmentStatus
func ParseAssignmentStatus(raw string) (AssignmentStatus, error) {
	s := AssignmentStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid assignment status %q", raw)
	}
	return s, nil
}
