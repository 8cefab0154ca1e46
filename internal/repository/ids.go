package repository

import (
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/notekeeper/notekeeper/internal/apperr"
)

func newULID() string {
	return ulid.Make().String()
}

// checkULID validates ids issued by the postgres and memory backends.
func checkULID(id string) error {
	if _, err := ulid.ParseStrict(id); err != nil {
		return apperr.InvalidIDf(id, err)
	}
	return nil
}

// parseObjectID validates ids issued by the mongo backend.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperr.InvalidIDf(id, err)
	}
	return oid, nil
}

// usernameTaken builds the error returned for a duplicate username.
func usernameTaken(username string) error {
	return apperr.NewValidation(fmt.Sprintf(
		"User validation failed: username: Error, expected `username` to be unique. Value: `%s`",
		username,
	))
}
