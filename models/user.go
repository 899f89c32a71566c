// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserID is the store-native identifier of a user record: a 12-byte
// ObjectID rendered as 24 hexadecimal characters.
type UserID = primitive.ObjectID

// ParseUserID converts the hex form of an identifier into a [UserID].
// It fails for anything that is not exactly 24 hexadecimal characters.
func ParseUserID(hex string) (UserID, error) {
	return primitive.ObjectIDFromHex(hex)
}

// UserRecord is a user's mutable profile and session state as persisted in
// the record store.
//
// ID and CreatedDatetime are assigned by the registration flow and never
// change afterwards. Every other field may be replaced by a partial update
// presented together with the current SessionToken.
type UserRecord struct {
	// ID uniquely selects at most one record.
	ID UserID `bson:"_id" json:"user_id"`

	FirstName  string `bson:"first_name" json:"first_name"`
	MiddleName string `bson:"middle_name" json:"middle_name"`
	LastName   string `bson:"last_name" json:"last_name"`

	// Password holds whatever the configured password encoder produced.
	// It is never serialized to JSON.
	Password string `bson:"password" json:"-"`

	Phone string `bson:"phone" json:"phone"`

	// SessionToken must match the value a caller presents to mutate
	// this record.
	SessionToken string `bson:"session_token" json:"-"`

	CreatedDatetime *time.Time `bson:"created_datetime" json:"created_datetime,omitempty"`
	UpdatedDatetime *time.Time `bson:"updated_datetime" json:"updated_datetime,omitempty"`
}

// TableName returns the name of the table (or collection) associated with
// the UserRecord model in SQL stores.
func (u UserRecord) TableName() string {
	return "users"
}
