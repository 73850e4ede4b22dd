package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/fahimahmed420/CampusPilot-server/internal/domain/task"
	"github.com/fahimahmed420/CampusPilot-server/internal/observability"
	"github.com/fahimahmed420/CampusPilot-server/internal/store"
)

const tasksCollection = "tasks"

// UpdateAck reports what a partial update touched. An id that matched no
// document is still a success, mirroring the store's own update semantics.
type UpdateAck struct {
	Matched  int64 `json:"matchedCount"`
	Modified int64 `json:"modifiedCount"`
}

// DeleteAck reports what a delete removed; a miss is still a success.
type DeleteAck struct {
	Deleted int64 `json:"deletedCount"`
}

type TasksRepo struct {
	store   *store.Store
	metrics *observability.Prom
}

func NewTasksRepo(st *store.Store, metrics *observability.Prom) *TasksRepo {
	return &TasksRepo{store: st, metrics: metrics}
}

func (r *TasksRepo) Create(ctx context.Context, t task.Task) (task.Task, error) {
	coll, err := r.store.Collection(ctx, tasksCollection)

	if err != nil {
		return task.Task{}, err
	}

	var res *mongo.InsertOneResult

	err = r.metrics.ObserveStore("tasks.insert", func() error {
		var ierr error
		res, ierr = coll.InsertOne(ctx, t)
		return ierr
	})

	if err != nil {
		return task.Task{}, err
	}

	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		t.ID = oid
	}

	return t, nil
}

func (r *TasksRepo) List(ctx context.Context) ([]task.Task, error) {
	coll, err := r.store.Collection(ctx, tasksCollection)

	if err != nil {
		return nil, err
	}

	tasks := []task.Task{}

	err = r.metrics.ObserveStore("tasks.list", func() error {
		cursor, ferr := coll.Find(ctx, bson.M{})

		if ferr != nil {
			return ferr
		}

		return cursor.All(ctx, &tasks)
	})

	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// UpdateByID merges the supplied fields into the document via $set; fields
// not mentioned stay untouched and the document is never replaced wholesale.
func (r *TasksRepo) UpdateByID(ctx context.Context, id string, fields map[string]any) (UpdateAck, error) {
	oid, err := parseObjectID(id)

	if err != nil {
		return UpdateAck{}, err
	}

	// the generated id is immutable
	delete(fields, "_id")

	if len(fields) == 0 {
		return UpdateAck{}, nil
	}

	coll, err := r.store.Collection(ctx, tasksCollection)

	if err != nil {
		return UpdateAck{}, err
	}

	var res *mongo.UpdateResult

	err = r.metrics.ObserveStore("tasks.update", func() error {
		var uerr error
		res, uerr = coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
		return uerr
	})

	if err != nil {
		return UpdateAck{}, err
	}

	return UpdateAck{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

func (r *TasksRepo) DeleteByID(ctx context.Context, id string) (DeleteAck, error) {
	oid, err := parseObjectID(id)

	if err != nil {
		return DeleteAck{}, err
	}

	coll, err := r.store.Collection(ctx, tasksCollection)

	if err != nil {
		return DeleteAck{}, err
	}

	var res *mongo.DeleteResult

	err = r.metrics.ObserveStore("tasks.delete", func() error {
		var derr error
		res, derr = coll.DeleteOne(ctx, bson.M{"_id": oid})
		return derr
	})

	if err != nil {
		return DeleteAck{}, err
	}

	return DeleteAck{Deleted: res.DeletedCount}, nil
}
