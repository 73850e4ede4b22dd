package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/fahimahmed420/CampusPilot-server/internal/domain/class"
	"github.com/fahimahmed420/CampusPilot-server/internal/observability"
	"github.com/fahimahmed420/CampusPilot-server/internal/store"
)

const classesCollection = "classes"

type ClassesRepo struct {
	store   *store.Store
	metrics *observability.Prom
}

func NewClassesRepo(st *store.Store, metrics *observability.Prom) *ClassesRepo {
	return &ClassesRepo{store: st, metrics: metrics}
}

// Create stores a class record as given; beyond uid everything is schemaless.
func (r *ClassesRepo) Create(ctx context.Context, c class.Class) (class.Class, error) {
	coll, err := r.store.Collection(ctx, classesCollection)

	if err != nil {
		return class.Class{}, err
	}

	var res *mongo.InsertOneResult

	err = r.metrics.ObserveStore("classes.insert", func() error {
		var ierr error
		res, ierr = coll.InsertOne(ctx, c)
		return ierr
	})

	if err != nil {
		return class.Class{}, err
	}

	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		c.ID = oid
	}

	return c, nil
}

func (r *ClassesRepo) ListByOwner(ctx context.Context, uid string) ([]class.Class, error) {
	coll, err := r.store.Collection(ctx, classesCollection)

	if err != nil {
		return nil, err
	}

	classes := []class.Class{}

	err = r.metrics.ObserveStore("classes.list_by_owner", func() error {
		cursor, ferr := coll.Find(ctx, bson.M{"uid": uid})

		if ferr != nil {
			return ferr
		}

		return cursor.All(ctx, &classes)
	})

	if err != nil {
		return nil, err
	}

	return classes, nil
}
