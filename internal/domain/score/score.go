package score

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/fahimahmed420/CampusPilot-server/internal/domain/numeric"
)

// Score is one recorded quiz/exam result, append-only, scoped to an owner uid.
type Score struct {
	ID         bson.ObjectID  `bson:"_id,omitempty" json:"_id"`
	UID        string         `bson:"uid" json:"uid"`
	Subject    string         `bson:"subject" json:"subject"`
	Difficulty string         `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	Score      numeric.Number `bson:"score" json:"score"`
	Total      numeric.Number `bson:"total" json:"total"`
	TimeSpent  numeric.Number `bson:"timeSpent" json:"timeSpent"`
	Date       string         `bson:"date" json:"date"`
}

// RecordRequest is the inbound body for recording a score. The numeric
// fields stay untyped for loose coercion; total must be present.
type RecordRequest struct {
	UID        string `json:"uid" binding:"required"`
	Subject    string `json:"subject" binding:"required"`
	Difficulty string `json:"difficulty"`
	Score      any    `json:"score"`
	Total      any    `json:"total" binding:"required"`
	TimeSpent  any    `json:"timeSpent"`
	Date       string `json:"date"`
}

// Summary pairs an owner's full history with its derived average. The
// average is a Number so a NaN-poisoned history still serializes (as null).
type Summary struct {
	Scores  []Score        `json:"scores"`
	Average numeric.Number `json:"average"`
}

// Average is the arithmetic mean of the score field across the given
// records. It is recomputed from the full record set on every read and
// write rather than maintained incrementally, so the value can never
// drift from the underlying documents. Empty input yields 0.
func Average(scores []Score) float64 {
	if len(scores) == 0 {
		return 0
	}

	var sum float64

	for _, s := range scores {
		sum += float64(s.Score)
	}

	return sum / float64(len(scores))
}
