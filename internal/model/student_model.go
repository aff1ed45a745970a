package model

// Student is a read-only roster entry fetched from the main backend.
type Student struct {
	StudentID string   `json:"studentId"`
	Branch    *string  `json:"branch,omitempty"`
	GPA       *float64 `json:"gpa,omitempty"`
	IsActive  *bool    `json:"isActive,omitempty"`
}
