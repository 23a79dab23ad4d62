package users

import (
	"context"

	"epic-connect-service/internal/pkg/constvars"
	"epic-connect-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Client, dbName, collectionName string) UserRepository {
	return &UserMongoRepository{
		Collection: db.Database(dbName).Collection(collectionName),
	}
}

func (r *UserMongoRepository) UpdateEpicIdentifierByEmail(ctx context.Context, email, epicIdentifier string) error {
	filter := bson.M{constvars.MongoFieldEmail: email}
	update := bson.M{"$set": bson.M{constvars.MongoFieldEpicIdentifier: epicIdentifier}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
