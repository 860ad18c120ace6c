package queries

import (
	"context"
	"time"

	"github.com/dpak1999/cognitionis-server/app/models"
	"github.com/dpak1999/cognitionis-server/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
)

// Get user by email
func GetUserQueueByEmail(email string) (models.User, error) {
	var user models.User
	err := database.GetCollection("users").FindOne(context.Background(), bson.M{"email": email}).Decode(&user)
	return user, err
}

// Get user by user ID
func GetUserQueueByID(id uint64) (models.User, error) {
	var user models.User
	err := database.GetCollection("users").FindOne(context.Background(), bson.M{"id": id}).Decode(&user)
	return user, err
}

// Create new user data
func CreateUserQueue(user models.User) error {
	_, err := database.GetCollection("users").InsertOne(context.Background(), user)
	return err
}

// Set user password reset code
func SetPasswordResetCodeQueue(id uint64, code string) error {
	filter := bson.M{"id": id}
	update := bson.M{
		"$set": bson.M{
			"password_reset_code": code,
			"updated_at":          time.Now(),
		},
	}

	_, err := database.GetCollection("users").UpdateOne(context.Background(), filter, update)
	return err
}

// Replace user password hash and clear the reset code
func ResetPasswordQueue(id uint64, hashedPassword string) error {
	filter := bson.M{"id": id}
	update := bson.M{
		"$set": bson.M{
			"password":   hashedPassword,
			"updated_at": time.Now(),
		},
		"$unset": bson.M{
			"password_reset_code": "",
		},
	}

	_, err := database.GetCollection("users").UpdateOne(context.Background(), filter, update)
	return err
}

// Add role to user role set
func AddUserRoleQueue(id uint64, role string) error {
	filter := bson.M{"id": id}
	update := bson.M{
		"$addToSet": bson.M{"roles": role},
		"$set":      bson.M{"updated_at": time.Now()},
	}

	_, err := database.GetCollection("users").UpdateOne(context.Background(), filter, update)
	return err
}

// Set user connected Stripe account ID
func SetStripeAccountQueue(id uint64, accountID string) error {
	filter := bson.M{"id": id}
	update := bson.M{
		"$set": bson.M{
			"stripe_account_id": accountID,
			"updated_at":        time.Now(),
		},
	}

	_, err := database.GetCollection("users").UpdateOne(context.Background(), filter, update)
	return err
}

// Set user Stripe seller snapshot
func SetStripeSellerQueue(id uint64, seller models.StripeSeller) error {
	filter := bson.M{"id": id}
	update := bson.M{
		"$set": bson.M{
			"stripe_seller": seller,
			"updated_at":    time.Now(),
		},
	}

	_, err := database.GetCollection("users").UpdateOne(context.Background(), filter, update)
	return err
}

// Overwrite the in-flight checkout session snapshot
func SetCheckoutSessionQueue(id uint64, snapshot models.CheckoutSnapshot) error {
	filter := bson.M{"id": id}
	update := bson.M{
		"$set": bson.M{
			"stripe_session": snapshot,
			"updated_at":     time.Now(),
		},
	}

	_, err := database.GetCollection("users").UpdateOne(context.Background(), filter, update)
	return err
}

// Add course to the enrolled set, set semantics so re-enrolling is a no-op
func EnrollUserQueue(id uint64, courseID uint64) error {
	filter := bson.M{"id": id}
	update := bson.M{
		"$addToSet": bson.M{"courses": courseID},
		"$set":      bson.M{"updated_at": time.Now()},
	}

	_, err := database.GetCollection("users").UpdateOne(context.Background(), filter, update)
	return err
}

// Grant course access and clear the checkout snapshot in one document update,
// a partial grant must not be observable
func EnrollAndClearSessionQueue(id uint64, courseID uint64) error {
	filter := bson.M{"id": id}
	update := bson.M{
		"$addToSet": bson.M{"courses": courseID},
		"$unset":    bson.M{"stripe_session": ""},
		"$set":      bson.M{"updated_at": time.Now()},
	}

	_, err := database.GetCollection("users").UpdateOne(context.Background(), filter, update)
	return err
}
