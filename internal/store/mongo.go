package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"africlimate/internal/models"
)

// MongoStore persists users and comments in MongoDB collections.
type MongoStore struct {
	client   *mongo.Client
	users    *mongo.Collection
	comments *mongo.Collection
}

// NewMongoStore connects to MongoDB and ensures the unique indexes on user
// email and username. The indexes make "check uniqueness then insert" atomic
// at the store: the second of two concurrent duplicate registrations fails
// with a duplicate-key error regardless of what the caller checked first.
func NewMongoStore(ctx context.Context, uri, database, usersColl, commentsColl string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(database)
	s := &MongoStore{
		client:   client,
		users:    db.Collection(usersColl),
		comments: db.Collection(commentsColl),
	}

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := s.users.Indexes().CreateMany(ctx, indexes); err != nil {
		return nil, fmt.Errorf("create user indexes: %w", err)
	}

	return s, nil
}

// InsertUser stores a new user record.
func (s *MongoStore) InsertUser(ctx context.Context, user models.UserRecord) (models.UserRecord, error) {
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.UserRecord{}, fmt.Errorf("insert user %s: %w", user.Email, ErrDuplicateKey)
		}
		return models.UserRecord{}, fmt.Errorf("insert user %s: %w", user.Email, err)
	}
	return user, nil
}

// FindUserByEmail returns the user with the given email, or ErrNotFound.
func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (models.UserRecord, error) {
	return s.findUser(ctx, bson.M{"email": email})
}

// FindUserByUsername returns the user with the given username, or ErrNotFound.
func (s *MongoStore) FindUserByUsername(ctx context.Context, username string) (models.UserRecord, error) {
	return s.findUser(ctx, bson.M{"username": username})
}

func (s *MongoStore) findUser(ctx context.Context, filter bson.M) (models.UserRecord, error) {
	var user models.UserRecord
	err := s.users.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.UserRecord{}, ErrNotFound
	}
	if err != nil {
		return models.UserRecord{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// InsertComment stores a new comment record.
func (s *MongoStore) InsertComment(ctx context.Context, comment models.CommentRecord) (models.CommentRecord, error) {
	if comment.ID == "" {
		comment.ID = primitive.NewObjectID().Hex()
	}
	if _, err := s.comments.InsertOne(ctx, comment); err != nil {
		return models.CommentRecord{}, fmt.Errorf("insert comment for %s: %w", comment.ChartTag, err)
	}
	return comment, nil
}

// ListComments returns all comments for a chart tag in insertion order.
// Mongo's natural order for an append-only collection is insertion order,
// which is the contract the comment feature relies on.
func (s *MongoStore) ListComments(ctx context.Context, chartTag string) ([]models.CommentRecord, error) {
	cursor, err := s.comments.Find(ctx, bson.M{"chart_tag": chartTag})
	if err != nil {
		return nil, fmt.Errorf("list comments for %s: %w", chartTag, err)
	}
	defer cursor.Close(ctx)

	comments := []models.CommentRecord{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("decode comments for %s: %w", chartTag, err)
	}
	return comments, nil
}

// Close disconnects the Mongo client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
