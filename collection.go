package beanie

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// "collection already exists" server error code.
const codeNamespaceExists = 48

// EnsureCollection creates the named collection when it does not exist
// yet. Racing creators are tolerated.
func EnsureCollection(ctx context.Context, db *mongo.Database, name string) error {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if len(names) > 0 {
		return nil
	}
	if err := db.CreateCollection(ctx, name); err != nil {
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Code == codeNamespaceExists {
			return nil
		}
		return err
	}
	return nil
}

// SyncIndexes creates the declared indexes on the collection. When
// allowIndexDropping is set, existing indexes that are no longer declared
// are dropped first; the mandatory _id_ index is never touched.
//
// Declared keys must be bson.D, or the index must carry an explicit name,
// so the declaration maps onto a stable server-side index name. Without
// one, drop-diffing would drop and recreate the index on every run.
func SyncIndexes(ctx context.Context, coll *mongo.Collection, indexes []mongo.IndexModel, allowIndexDropping bool) error {
	for _, m := range indexes {
		if indexName(m) == "" {
			return fmt.Errorf("%w: got keys of type %T", ErrIndexKeys, m.Keys)
		}
	}
	if allowIndexDropping {
		if err := dropStaleIndexes(ctx, coll, indexes); err != nil {
			return err
		}
	}
	if len(indexes) == 0 {
		return nil
	}
	_, err := coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func dropStaleIndexes(ctx context.Context, coll *mongo.Collection, declared []mongo.IndexModel) error {
	keep := make(map[string]struct{}, len(declared)+1)
	keep["_id_"] = struct{}{}
	for _, m := range declared {
		keep[indexName(m)] = struct{}{}
	}

	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return err
	}
	var existing []bson.M
	if err := cur.All(ctx, &existing); err != nil {
		return err
	}
	for _, idx := range existing {
		name, _ := idx["name"].(string)
		if name == "" {
			continue
		}
		if _, ok := keep[name]; ok {
			continue
		}
		if _, err := coll.Indexes().DropOne(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

// indexName mirrors the server's default naming, key and direction pairs
// joined by underscores, unless an explicit name was set.
func indexName(m mongo.IndexModel) string {
	if m.Options != nil && m.Options.Name != nil {
		return *m.Options.Name
	}
	keys, ok := m.Keys.(bson.D)
	if !ok {
		return ""
	}
	parts := make([]string, 0, len(keys)*2)
	for _, e := range keys {
		parts = append(parts, e.Key, fmt.Sprint(e.Value))
	}
	return strings.Join(parts, "_")
}

// BaseDocument is a ready-made DocumentModel: a collection name plus its
// index declarations. Hosts declare one descriptor per document type and
// pass it to Init:
//
//	var Users = &beanie.BaseDocument{
//		CollectionName: "users",
//		Indexes: []mongo.IndexModel{
//			{Keys: bson.D{{Key: "email", Value: 1}}},
//		},
//	}
//
// A document belonging to a union sets Union instead of owning its
// collection; it then shares the root's collection and registers itself
// as a child during initialization.
type BaseDocument struct {
	CollectionName string
	Indexes        []mongo.IndexModel
	Union          *UnionRoot

	mu   sync.Mutex
	coll *mongo.Collection
}

var _ DocumentModel = (*BaseDocument)(nil)

func (d *BaseDocument) GetModelType() ModelKind { return ModelKindDocument }

func (d *BaseDocument) ModelName() string { return d.CollectionName }

func (d *BaseDocument) InitModel(ctx context.Context, db *mongo.Database, allowIndexDropping bool) error {
	var coll *mongo.Collection
	if d.Union != nil {
		c, err := d.Union.RegisterChild(d.CollectionName)
		if err != nil {
			return err
		}
		coll = c
	} else {
		if err := EnsureCollection(ctx, db, d.CollectionName); err != nil {
			return err
		}
		coll = db.Collection(d.CollectionName)
	}
	if err := SyncIndexes(ctx, coll, d.Indexes, allowIndexDropping); err != nil {
		return err
	}
	d.mu.Lock()
	d.coll = coll
	d.mu.Unlock()
	return nil
}

// Collection returns the handle bound by InitModel, nil before
// initialization.
func (d *BaseDocument) Collection() *mongo.Collection {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.coll
}
