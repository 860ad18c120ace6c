package queries

import (
	"context"
	"time"

	"github.com/dpak1999/cognitionis-server/app/models"
	"github.com/dpak1999/cognitionis-server/pkg/database"
	"github.com/dpak1999/cognitionis-server/pkg/encryption"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Record a completed lesson, creating the record lazily on first completion.
// $addToSet keeps re-completing a lesson a no-op.
func MarkLessonCompletedQueue(userID, courseID, lessonID uint64) error {
	filter := bson.M{"user_id": userID, "course_id": courseID}
	update := bson.M{
		"$addToSet": bson.M{"lessons": lessonID},
		"$set":      bson.M{"updated_at": time.Now()},
		// user_id and course_id come from the filter on insert
		"$setOnInsert": bson.M{
			"id":         encryption.GenerateID(),
			"created_at": time.Now(),
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := database.GetCollection("completions").UpdateOne(context.Background(), filter, update, opts)
	return err
}

// Get the completion record for one user in one course
func GetCompletionQueue(userID, courseID uint64) (models.CompletionRecord, error) {
	var record models.CompletionRecord
	filter := bson.M{"user_id": userID, "course_id": courseID}
	err := database.GetCollection("completions").FindOne(context.Background(), filter).Decode(&record)
	return record, err
}
