package mongodb

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/fahimahmed420/CampusPilot-server/internal/domain/numeric"
	"github.com/fahimahmed420/CampusPilot-server/internal/domain/transaction"
	"github.com/fahimahmed420/CampusPilot-server/internal/observability"
	"github.com/fahimahmed420/CampusPilot-server/internal/store"
)

const transactionsCollection = "transactions"

type TransactionsRepo struct {
	store   *store.Store
	metrics *observability.Prom
}

func NewTransactionsRepo(st *store.Store, metrics *observability.Prom) *TransactionsRepo {
	return &TransactionsRepo{store: st, metrics: metrics}
}

// Create appends a transaction. Amount is coerced, not validated: junk
// input lands in the store as NaN. Date defaults to the insertion time.
func (r *TransactionsRepo) Create(ctx context.Context, req transaction.CreateRequest) (transaction.Transaction, error) {
	if strings.TrimSpace(req.UID) == "" {
		return transaction.Transaction{}, ErrMissingOwner
	}

	date := req.Date

	if date == "" {
		date = time.Now().UTC().Format(time.RFC3339)
	}

	tx := transaction.Transaction{
		UID:      req.UID,
		Type:     req.Type,
		Category: req.Category,
		Amount:   numeric.Coerce(req.Amount),
		Note:     req.Note,
		Date:     date,
	}

	coll, err := r.store.Collection(ctx, transactionsCollection)

	if err != nil {
		return transaction.Transaction{}, err
	}

	var res *mongo.InsertOneResult

	err = r.metrics.ObserveStore("transactions.insert", func() error {
		var ierr error
		res, ierr = coll.InsertOne(ctx, tx)
		return ierr
	})

	if err != nil {
		return transaction.Transaction{}, err
	}

	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		tx.ID = oid
	}

	return tx, nil
}

// ListByOwner returns the owner's transactions, most recent date first.
func (r *TransactionsRepo) ListByOwner(ctx context.Context, uid string) ([]transaction.Transaction, error) {
	coll, err := r.store.Collection(ctx, transactionsCollection)

	if err != nil {
		return nil, err
	}

	txs := []transaction.Transaction{}

	err = r.metrics.ObserveStore("transactions.list_by_owner", func() error {
		cursor, ferr := coll.Find(
			ctx,
			bson.M{"uid": uid},
			options.Find().SetSort(bson.D{{Key: "date", Value: -1}}),
		)

		if ferr != nil {
			return ferr
		}

		return cursor.All(ctx, &txs)
	})

	if err != nil {
		return nil, err
	}

	return txs, nil
}
