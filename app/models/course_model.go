package models

import "time"

// MediaObject describes an object stored in S3
type MediaObject struct {
	Bucket   string `json:"bucket" bson:"bucket"`
	Key      string `json:"key" bson:"key"`
	Location string `json:"location" bson:"location"`
}

// Lesson is owned by its parent course, it has no lifecycle of its own
type Lesson struct {
	ID          uint64       `json:"id" bson:"id"`
	Title       string       `json:"title" bson:"title"`
	Slug        string       `json:"slug" bson:"slug"` // Not unique
	Content     string       `json:"content" bson:"content"`
	Video       *MediaObject `json:"video,omitempty" bson:"video,omitempty"`
	FreePreview bool         `json:"free_preview" bson:"free_preview"`
	CreatedAt   time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" bson:"updated_at"`
}

type Course struct {
	ID           uint64       `json:"id" bson:"id"`
	Name         string       `json:"name" bson:"name"`
	Slug         string       `json:"slug" bson:"slug"` // Unique
	Description  string       `json:"description" bson:"description"`
	Price        float64      `json:"price" bson:"price"`
	Image        *MediaObject `json:"image,omitempty" bson:"image,omitempty"`
	Category     string       `json:"category" bson:"category"`
	Published    bool         `json:"published" bson:"published"`
	Paid         bool         `json:"paid" bson:"paid"`
	InstructorID uint64       `json:"instructor_id" bson:"instructor_id"`
	Lessons      []Lesson     `json:"lessons" bson:"lessons"`
	CreatedAt    time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" bson:"updated_at"`
}

// DefaultPrice is applied when a course is created without one
const DefaultPrice = 9.99
