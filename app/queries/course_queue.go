package queries

import (
	"context"
	"time"

	"github.com/dpak1999/cognitionis-server/app/models"
	"github.com/dpak1999/cognitionis-server/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create new course
func CreateCourseQueue(course models.Course) error {
	_, err := database.GetCollection("courses").InsertOne(context.Background(), course)
	return err
}

// Get course by slug
func GetCourseQueueBySlug(slug string) (models.Course, error) {
	var course models.Course
	err := database.GetCollection("courses").FindOne(context.Background(), bson.M{"slug": slug}).Decode(&course)
	return course, err
}

// Get course by course ID
func GetCourseQueueByID(id uint64) (models.Course, error) {
	var course models.Course
	err := database.GetCollection("courses").FindOne(context.Background(), bson.M{"id": id}).Decode(&course)
	return course, err
}

// List all published courses for the public catalog
func ListPublishedCoursesQueue() ([]models.Course, error) {
	cursor, err := database.GetCollection("courses").Find(context.Background(), bson.M{"published": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.Background())

	courses := []models.Course{}
	if err := cursor.All(context.Background(), &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// List courses owned by an instructor, published or not
func ListInstructorCoursesQueue(instructorID uint64) ([]models.Course, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := database.GetCollection("courses").Find(context.Background(), bson.M{"instructor_id": instructorID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.Background())

	courses := []models.Course{}
	if err := cursor.All(context.Background(), &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Update course metadata, the slug stays stable after creation
func UpdateCourseQueue(id uint64, fields bson.M) error {
	fields["updated_at"] = time.Now()
	filter := bson.M{"id": id}
	update := bson.M{"$set": fields}

	_, err := database.GetCollection("courses").UpdateOne(context.Background(), filter, update)
	return err
}

// Set course publication flag
func SetPublishedQueue(id uint64, published bool) error {
	filter := bson.M{"id": id}
	update := bson.M{
		"$set": bson.M{
			"published":  published,
			"updated_at": time.Now(),
		},
	}

	_, err := database.GetCollection("courses").UpdateOne(context.Background(), filter, update)
	return err
}

// Append lesson to the ordered lesson list
func AddLessonQueue(courseID uint64, lesson models.Lesson) error {
	filter := bson.M{"id": courseID}
	update := bson.M{
		"$push": bson.M{"lessons": lesson},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	_, err := database.GetCollection("courses").UpdateOne(context.Background(), filter, update)
	return err
}

// Update one lesson by its ID. Targets the unique matching element via an
// array filter, returns the update result so callers can detect a missing
// lesson.
func UpdateLessonQueue(courseID uint64, lesson models.Lesson) (*mongo.UpdateResult, error) {
	filter := bson.M{"id": courseID}
	update := bson.M{
		"$set": bson.M{
			"lessons.$[elem].title":        lesson.Title,
			"lessons.$[elem].slug":         lesson.Slug,
			"lessons.$[elem].content":      lesson.Content,
			"lessons.$[elem].video":        lesson.Video,
			"lessons.$[elem].free_preview": lesson.FreePreview,
			"lessons.$[elem].updated_at":   time.Now(),
			"updated_at":                   time.Now(),
		},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"elem.id": lesson.ID}},
	})

	return database.GetCollection("courses").UpdateOne(context.Background(), filter, update, opts)
}

// Remove one lesson by its ID
func RemoveLessonQueue(courseID uint64, lessonID uint64) (*mongo.UpdateResult, error) {
	filter := bson.M{"id": courseID}
	update := bson.M{
		"$pull": bson.M{"lessons": bson.M{"id": lessonID}},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	return database.GetCollection("courses").UpdateOne(context.Background(), filter, update)
}
