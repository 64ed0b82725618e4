package beanie

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureView creates the named view over viewOn with the given pipeline.
// An existing view is left untouched unless recreate is set, in which
// case it is dropped and built again with the current pipeline.
func EnsureView(ctx context.Context, db *mongo.Database, name, viewOn string, pipeline mongo.Pipeline, recreate bool) error {
	if recreate {
		if err := db.Collection(name).Drop(ctx); err != nil {
			return err
		}
	} else {
		names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
		if err != nil {
			return err
		}
		if len(names) > 0 {
			return nil
		}
	}
	if pipeline == nil {
		pipeline = mongo.Pipeline{}
	}
	cmd := bson.D{
		{Key: "create", Value: name},
		{Key: "viewOn", Value: viewOn},
		{Key: "pipeline", Value: pipeline},
	}
	return db.RunCommand(ctx, cmd).Err()
}

// BaseView is a ready-made ViewModel: a view name, its source collection
// and the aggregation pipeline defining the projection.
type BaseView struct {
	ViewName string
	Source   string
	Pipeline mongo.Pipeline
}

var _ ViewModel = (*BaseView)(nil)

func (v *BaseView) GetModelType() ModelKind { return ModelKindView }

func (v *BaseView) ModelName() string { return v.ViewName }

func (v *BaseView) InitView(ctx context.Context, db *mongo.Database, recreateView bool) error {
	return EnsureView(ctx, db, v.ViewName, v.Source, v.Pipeline, recreateView)
}
