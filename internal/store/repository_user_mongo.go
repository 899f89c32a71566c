// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userCollection is the subset of *mongo.Collection the repository uses.
type userCollection interface {
	FindOne(ctx context.Context, filter any, opts ...*options.FindOneOptions) *mongo.SingleResult
	UpdateOne(ctx context.Context, filter any, update any, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

// mongoUserRepository is the MongoDB implementation of [UserRepository].
// Documents use the bson field names of [models.UserRecord].
type mongoUserRepository struct {
	collection userCollection
	logger     *logger.Logger
}

func NewMongoUserRepository(db *MongoDB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{
		collection: db.collection,
		logger:     logger,
	}
}

func (r *mongoUserRepository) FindUserBySessionToken(ctx context.Context, id models.UserID, sessionToken string) (models.UserRecord, error) {
	log := logger.FromContextOr(ctx, r.logger)

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "session_token", Value: sessionToken},
	}

	var user models.UserRecord
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.UserRecord{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*mongoUserRepository.FindUserBySessionToken").Msg("error finding user")
		return models.UserRecord{}, wrapMongoError(err, ErrDecodingDocument)
	}

	return user, nil
}

// ReplaceUser $sets the named fields only and returns the server's
// modified count, which is 0 when all values were already equal.
func (r *mongoUserRepository) ReplaceUser(ctx context.Context, user models.UserRecord, fields []string) (int64, error) {
	log := logger.FromContextOr(ctx, r.logger)

	set := setDocument(user, fields)
	if len(set) == 0 {
		return 0, nil
	}

	filter := bson.D{{Key: "_id", Value: user.ID}}
	update := bson.D{{Key: "$set", Value: set}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.ReplaceUser").Msg("error updating user")
		return 0, wrapMongoError(err, ErrExecutingQuery)
	}

	return result.ModifiedCount, nil
}

// setDocument keeps the order of fields. Unknown names are skipped.
func setDocument(user models.UserRecord, fields []string) bson.D {
	values := mutableFields(user)

	set := make(bson.D, 0, len(fields))
	for _, field := range fields {
		if value, ok := values[field]; ok {
			set = append(set, bson.E{Key: field, Value: value})
		}
	}

	return set
}

func mutableFields(user models.UserRecord) map[string]any {
	return map[string]any{
		models.FieldFirstName:       user.FirstName,
		models.FieldMiddleName:      user.MiddleName,
		models.FieldLastName:        user.LastName,
		models.FieldPassword:        user.Password,
		models.FieldPhone:           user.Phone,
		models.FieldSessionToken:    user.SessionToken,
		models.FieldUpdatedDatetime: user.UpdatedDatetime,
	}
}
