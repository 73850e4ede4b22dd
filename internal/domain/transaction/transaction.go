package transaction

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/fahimahmed420/CampusPilot-server/internal/domain/numeric"
)

// Transaction is an append-only money record scoped to an owner uid.
// Amount keeps whatever the loose coercion produced, NaN included.
type Transaction struct {
	ID       bson.ObjectID  `bson:"_id,omitempty" json:"_id"`
	UID      string         `bson:"uid" json:"uid"`
	Type     string         `bson:"type" json:"type"` // "income" | "expense"
	Category string         `bson:"category" json:"category"`
	Amount   numeric.Number `bson:"amount" json:"amount"`
	Note     string         `bson:"note,omitempty" json:"note,omitempty"`
	Date     string         `bson:"date" json:"date"` // ISO-8601
}

// CreateRequest is the inbound body. Amount stays untyped so non-numeric
// input can be coerced instead of rejected by the JSON decoder.
type CreateRequest struct {
	UID      string `json:"uid" binding:"required"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Amount   any    `json:"amount"`
	Note     string `json:"note"`
	Date     string `json:"date"`
}
