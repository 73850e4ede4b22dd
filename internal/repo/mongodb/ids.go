package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// parseObjectID translates an external id string into the store's native
// identifier. A malformed string is a client error, never a driver fault.
func parseObjectID(raw string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(raw)

	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}

	return oid, nil
}
