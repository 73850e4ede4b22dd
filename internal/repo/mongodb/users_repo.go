package mongodb

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/fahimahmed420/CampusPilot-server/internal/domain/user"
	"github.com/fahimahmed420/CampusPilot-server/internal/observability"
	"github.com/fahimahmed420/CampusPilot-server/internal/store"
)

const usersCollection = "users"

type UsersRepo struct {
	store   *store.Store
	metrics *observability.Prom
}

func NewUsersRepo(st *store.Store, metrics *observability.Prom) *UsersRepo {
	return &UsersRepo{store: st, metrics: metrics}
}

// CreateIfAbsent looks the user up by uid first and returns the existing
// record unchanged when there is one. Repeating the call with the same uid
// always yields the same stored record and generated id.
func (r *UsersRepo) CreateIfAbsent(ctx context.Context, u user.User) (user.User, bool, error) {
	if strings.TrimSpace(u.UID) == "" {
		return user.User{}, false, ErrMissingOwner
	}

	coll, err := r.store.Collection(ctx, usersCollection)

	if err != nil {
		return user.User{}, false, err
	}

	var existing user.User

	err = r.metrics.ObserveStore("users.find_by_uid", func() error {
		return coll.FindOne(ctx, bson.M{"uid": u.UID}).Decode(&existing)
	})

	if err == nil {
		return existing, false, nil
	}

	if !errors.Is(err, mongo.ErrNoDocuments) {
		return user.User{}, false, err
	}

	var res *mongo.InsertOneResult

	err = r.metrics.ObserveStore("users.insert", func() error {
		var ierr error
		res, ierr = coll.InsertOne(ctx, u)
		return ierr
	})

	if err != nil {
		return user.User{}, false, err
	}

	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		u.ID = oid
	}

	return u, true, nil
}

func (r *UsersRepo) List(ctx context.Context) ([]user.User, error) {
	coll, err := r.store.Collection(ctx, usersCollection)

	if err != nil {
		return nil, err
	}

	users := []user.User{}

	err = r.metrics.ObserveStore("users.list", func() error {
		cursor, ferr := coll.Find(ctx, bson.M{})

		if ferr != nil {
			return ferr
		}

		return cursor.All(ctx, &users)
	})

	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	oid, err := parseObjectID(id)

	if err != nil {
		return user.User{}, err
	}

	coll, err := r.store.Collection(ctx, usersCollection)

	if err != nil {
		return user.User{}, err
	}

	var u user.User

	err = r.metrics.ObserveStore("users.get_by_id", func() error {
		return coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	})

	if errors.Is(err, mongo.ErrNoDocuments) {
		return user.User{}, ErrNotFound
	}

	if err != nil {
		return user.User{}, err
	}

	return u, nil
}

func (r *UsersRepo) GetByUID(ctx context.Context, uid string) (user.User, error) {
	coll, err := r.store.Collection(ctx, usersCollection)

	if err != nil {
		return user.User{}, err
	}

	var u user.User

	err = r.metrics.ObserveStore("users.get_by_uid", func() error {
		return coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&u)
	})

	if errors.Is(err, mongo.ErrNoDocuments) {
		return user.User{}, ErrNotFound
	}

	if err != nil {
		return user.User{}, err
	}

	return u, nil
}
