package beanie

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
)

// UnionRoot groups several document kinds under one shared collection.
// Init runs before any member document initializes and binds the root to
// its database; members then obtain the shared collection through
// RegisterChild. Repeated Init calls keep the first binding, so the entry
// point may be invoked more than once without re-initializing the root.
type UnionRoot struct {
	CollectionName string

	mu       sync.Mutex
	db       *mongo.Database
	children map[string]struct{}
	inited   bool
}

var _ UnionDocModel = (*UnionRoot)(nil)

func (u *UnionRoot) GetModelType() ModelKind { return ModelKindUnionDoc }

func (u *UnionRoot) ModelName() string { return u.CollectionName }

func (u *UnionRoot) Init(ctx context.Context, db *mongo.Database) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.inited {
		return nil
	}
	if err := EnsureCollection(ctx, db, u.CollectionName); err != nil {
		return err
	}
	u.db = db
	u.children = make(map[string]struct{})
	u.inited = true
	return nil
}

// RegisterChild records a member document kind and returns the shared
// collection handle. It fails if the root has not completed Init, which
// means the root was missing from the model list.
func (u *UnionRoot) RegisterChild(name string) (*mongo.Collection, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.inited {
		return nil, fmt.Errorf("%w: %q must be listed before its member %q",
			ErrUnionNotReady, u.CollectionName, name)
	}
	u.children[name] = struct{}{}
	return u.db.Collection(u.CollectionName), nil
}

// HasChild reports whether a member registered under the given name.
func (u *UnionRoot) HasChild(name string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	_, ok := u.children[name]
	return ok
}
