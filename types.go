package beanie

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// ModelKind classifies a model by the kind of database object backing it.
// The set is closed; the orchestrator rejects anything else.
type ModelKind int

const (
	// ModelKindUnionDoc is a discriminator root grouping several document
	// kinds under one shared collection.
	ModelKindUnionDoc ModelKind = iota
	// ModelKindDocument is a standalone collection-backed entity.
	ModelKindDocument
	// ModelKindView is a read-only projection backed by a database view.
	ModelKindView
)

func (k ModelKind) String() string {
	switch k {
	case ModelKindUnionDoc:
		return "UnionDoc"
	case ModelKindDocument:
		return "Document"
	case ModelKindView:
		return "View"
	default:
		return "Unknown"
	}
}

// Model is the capability every initializable model type reports.
// A model reports exactly one kind, and the kind is immutable.
type Model interface {
	GetModelType() ModelKind
}

// DocumentModel is a model backed by its own collection. InitModel
// prepares the collection and its indexes; stale indexes are only
// dropped when allowIndexDropping is set.
type DocumentModel interface {
	Model
	InitModel(ctx context.Context, db *mongo.Database, allowIndexDropping bool) error
}

// ViewModel is a model backed by a database view. InitView creates the
// view, recreating it from scratch when recreateView is set.
type ViewModel interface {
	Model
	InitView(ctx context.Context, db *mongo.Database, recreateView bool) error
}

// UnionDocModel is a union-document root. Init is called synchronously
// before any document or view task runs, so dependent documents can look
// up their root during their own initialization.
type UnionDocModel interface {
	Model
	Init(ctx context.Context, db *mongo.Database) error
}
