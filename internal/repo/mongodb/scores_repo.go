package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/fahimahmed420/CampusPilot-server/internal/domain/numeric"
	"github.com/fahimahmed420/CampusPilot-server/internal/domain/score"
	"github.com/fahimahmed420/CampusPilot-server/internal/observability"
	"github.com/fahimahmed420/CampusPilot-server/internal/store"
)

const scoresCollection = "scores"

type ScoresRepo struct {
	store   *store.Store
	metrics *observability.Prom
}

func NewScoresRepo(st *store.Store, metrics *observability.Prom) *ScoresRepo {
	return &ScoresRepo{store: st, metrics: metrics}
}

// Record appends one score, then rereads the owner's full history so the
// returned average is computed over the documents actually persisted,
// including the one just inserted. Two concurrent writers for the same
// owner may each see a snapshot missing the other's insert; no lock is
// held across the write and the reread.
func (r *ScoresRepo) Record(ctx context.Context, req score.RecordRequest) (score.Summary, error) {
	date := req.Date

	if date == "" {
		date = time.Now().UTC().Format(time.RFC3339)
	}

	s := score.Score{
		UID:        req.UID,
		Subject:    req.Subject,
		Difficulty: req.Difficulty,
		Score:      numeric.Coerce(req.Score),
		Total:      numeric.Coerce(req.Total),
		TimeSpent:  numeric.Coerce(req.TimeSpent),
		Date:       date,
	}

	coll, err := r.store.Collection(ctx, scoresCollection)

	if err != nil {
		return score.Summary{}, err
	}

	err = r.metrics.ObserveStore("scores.insert", func() error {
		_, ierr := coll.InsertOne(ctx, s)
		return ierr
	})

	if err != nil {
		return score.Summary{}, err
	}

	return r.GetByOwner(ctx, req.UID)
}

// GetByOwner returns the owner's history (most recent first) and the
// average recomputed from that fetched set. Empty history averages to 0.
func (r *ScoresRepo) GetByOwner(ctx context.Context, uid string) (score.Summary, error) {
	coll, err := r.store.Collection(ctx, scoresCollection)

	if err != nil {
		return score.Summary{}, err
	}

	scores := []score.Score{}

	err = r.metrics.ObserveStore("scores.list_by_owner", func() error {
		cursor, ferr := coll.Find(
			ctx,
			bson.M{"uid": uid},
			options.Find().SetSort(bson.D{{Key: "date", Value: -1}}),
		)

		if ferr != nil {
			return ferr
		}

		return cursor.All(ctx, &scores)
	})

	if err != nil {
		return score.Summary{}, err
	}

	return score.Summary{
		Scores:  scores,
		Average: numeric.Number(score.Average(scores)),
	}, nil
}
