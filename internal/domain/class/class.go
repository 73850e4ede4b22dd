package class

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Class is a schedule entry scoped to an owner uid. Descriptive attributes
// (name, instructor, room, slots, ...) are schemaless and flow through Extra.
type Class struct {
	ID    bson.ObjectID  `bson:"_id,omitempty"`
	UID   string         `bson:"uid"`
	Extra map[string]any `bson:",inline"`
}

func (c Class) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Extra)+2)

	for k, v := range c.Extra {
		out[k] = v
	}

	if !c.ID.IsZero() {
		out["_id"] = c.ID.Hex()
	}
	if c.UID != "" {
		out["uid"] = c.UID
	}

	return json.Marshal(out)
}

func (c *Class) UnmarshalJSON(data []byte) error {
	raw := map[string]any{}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["uid"].(string); ok {
		c.UID = v
	}

	delete(raw, "_id")
	delete(raw, "uid")

	c.Extra = raw
	return nil
}
