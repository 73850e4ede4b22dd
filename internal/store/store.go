package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Store holds the process-wide Mongo client. The connection is established
// lazily by the first caller and reused afterwards; a liveness probe before
// reuse transparently reconnects a dropped client. The driver pools
// connections internally, so the mutex only guards (re)connection.
type Store struct {
	uri  string
	name string
	log  *slog.Logger

	mu     sync.Mutex
	client *mongo.Client
}

const probeTimeout = 2 * time.Second

func New(uri, name string, log *slog.Logger) *Store {
	return &Store{
		uri:  uri,
		name: name,
		log:  log,
	}
}

// Database returns a handle on the configured database, connecting if needed.
// Failures surface as errors on the calling request, never a process crash.
func (s *Store) Database(ctx context.Context) (*mongo.Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		if err := s.ping(ctx, s.client); err == nil {
			return s.client.Database(s.name), nil
		} else {
			s.log.Warn("mongo connection lost, reconnecting", "err", err)

			_ = s.client.Disconnect(context.WithoutCancel(ctx))
			s.client = nil
		}
	}

	client, err := mongo.Connect(options.Client().ApplyURI(s.uri))

	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := s.ping(ctx, client); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))

		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	s.client = client
	s.log.Info("mongo connected", "db", s.name)

	return client.Database(s.name), nil
}

// Collection resolves a named collection on the lazily connected database.
func (s *Store) Collection(ctx context.Context, name string) (*mongo.Collection, error) {
	db, err := s.Database(ctx)

	if err != nil {
		return nil, err
	}

	return db.Collection(name), nil
}

// Ping reports connection health for readiness checks.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.Database(ctx)

	return err
}

func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}

	err := s.client.Disconnect(ctx)
	s.client = nil

	return err
}

func (s *Store) ping(ctx context.Context, client *mongo.Client) error {
	pctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	return client.Ping(pctx, nil)
}
