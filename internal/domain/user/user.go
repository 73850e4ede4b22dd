package user

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is one account document. UID is the Firebase-issued subject id and is
// unique per user; ID is the store-generated identifier. Profile attributes
// beyond uid are schemaless and pass through the Extra bag untouched.
type User struct {
	ID    bson.ObjectID  `bson:"_id,omitempty"`
	UID   string         `bson:"uid"`
	Extra map[string]any `bson:",inline"`
}

// MarshalJSON flattens the extra attributes next to the typed fields, the
// shape clients already expect. The generated id travels as a hex string.
func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(u.Extra)+2)

	for k, v := range u.Extra {
		out[k] = v
	}

	if !u.ID.IsZero() {
		out["_id"] = u.ID.Hex()
	}
	out["uid"] = u.UID

	return json.Marshal(out)
}

func (u *User) UnmarshalJSON(data []byte) error {
	raw := map[string]any{}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["uid"].(string); ok {
		u.UID = v
	}

	// never trust a client-supplied _id
	delete(raw, "_id")
	delete(raw, "uid")

	u.Extra = raw
	return nil
}
