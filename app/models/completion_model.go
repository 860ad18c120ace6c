package models

import "time"

// CompletionRecord tracks completed lessons for one user in one course.
// At most one record exists per (user, course) pair, created lazily by
// the first completion event.
type CompletionRecord struct {
	ID        uint64    `json:"id" bson:"id"`
	UserID    uint64    `json:"user_id" bson:"user_id"`
	CourseID  uint64    `json:"course_id" bson:"course_id"`
	Lessons   []uint64  `json:"lessons" bson:"lessons"` // Completed lesson IDs
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
