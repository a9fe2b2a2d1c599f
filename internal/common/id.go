package common

import (
	"github.com/google/uuid"
)

// NewPageID generates a unique landing page ID
// Format: page_<uuid>
func NewPageID() string {
	return "page_" + uuid.New().String()
}

// NewCourseID generates a unique course ID
// Format: course_<uuid>
func NewCourseID() string {
	return "course_" + uuid.New().String()
}

// NewMessageID generates a unique chat message ID
// Format: msg_<uuid>
func NewMessageID() string {
	return "msg_" + uuid.New().String()
}
