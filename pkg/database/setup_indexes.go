package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupUniqueIndexes creates the unique indexes the data model relies on:
// one account per email, one course per slug, one completion record per
// (user, course) pair
func SetupUniqueIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []struct {
		collection string
		name       string
		keys       bson.D
	}{
		{"users", "email_1", bson.D{{Key: "email", Value: 1}}},
		{"courses", "slug_1", bson.D{{Key: "slug", Value: 1}}},
		{"completions", "user_id_1_course_id_1", bson.D{{Key: "user_id", Value: 1}, {Key: "course_id", Value: 1}}},
	}

	for _, idx := range indexes {
		collection := GetCollection(idx.collection)

		cursor, err := collection.Indexes().List(ctx)
		if err != nil {
			return fmt.Errorf("error get index list: %v", err)
		}

		indexExists := false
		for cursor.Next(ctx) {
			var index bson.M
			if err := cursor.Decode(&index); err != nil {
				cursor.Close(ctx)
				return fmt.Errorf("index decode error: %v", err)
			}
			if index["name"] == idx.name {
				indexExists = true
				break
			}
		}
		cursor.Close(ctx)

		if indexExists {
			continue
		}

		indexModel := mongo.IndexModel{
			Keys:    idx.keys,
			Options: options.Index().SetUnique(true),
		}
		if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
			return fmt.Errorf("error create unique index %s: %v", idx.name, err)
		}
		fmt.Printf("Successful create unique index %s on %s.\n", idx.name, idx.collection)
	}

	return nil
}
