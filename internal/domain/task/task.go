package task

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Task is fully schemaless: the client decides which attributes exist
// (title, status, due date, owning uid, ...). The store-generated id is
// the only typed field and is the sole key for update/delete.
type Task struct {
	ID    bson.ObjectID  `bson:"_id,omitempty"`
	Extra map[string]any `bson:",inline"`
}

func (t Task) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(t.Extra)+1)

	for k, v := range t.Extra {
		out[k] = v
	}

	if !t.ID.IsZero() {
		out["_id"] = t.ID.Hex()
	}

	return json.Marshal(out)
}

func (t *Task) UnmarshalJSON(data []byte) error {
	raw := map[string]any{}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	delete(raw, "_id")

	t.Extra = raw
	return nil
}
