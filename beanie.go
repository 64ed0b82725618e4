package beanie

import (
	"context"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/code7-adrianomartins/beanie/pkg/logger"
)

// Config carries everything Init needs. Exactly one of Database and
// ConnectionString must be set. When only ConnectionString is given, a
// client is derived from it (or Client is reused if supplied) and the
// database named by the connection string's path is selected.
type Config struct {
	// Client is an optional pre-built client, reused when the database is
	// derived from ConnectionString.
	Client *mongo.Client
	// Database is an explicit database handle.
	Database *mongo.Database
	// ConnectionString is a MongoDB URI whose path names the database.
	ConnectionString string
	// DatabaseName overrides the connection string's path as the database
	// name. Only consulted when the database is derived from
	// ConnectionString; ignored when Database is set.
	DatabaseName string
	// DocumentModels lists the models to initialize: Model values, or
	// dotted string references resolved through GetModel.
	DocumentModels []any
	// AllowIndexDropping permits document initialization to drop indexes
	// that are no longer declared.
	AllowIndexDropping bool
	// RecreateViews drops and recreates existing views instead of leaving
	// them untouched.
	RecreateViews bool
	// Logger receives initialization progress. Defaults to a no-op.
	Logger logger.Logger
}

// Init is the single entry point of the mapping layer, called once at
// process startup. It validates the configuration, resolves textual model
// references, then initializes models by kind: union-document roots run
// synchronously in list order, documents and views run concurrently as a
// batch once the whole list has been classified.
//
// Every batch task runs to completion even when a sibling fails; Init
// returns the first failure observed after the batch settles. On success
// all supplied models are ready for use.
func Init(ctx context.Context, cfg Config) error {
	if (cfg.ConnectionString == "") == (cfg.Database == nil) {
		return ErrDatabaseTarget
	}
	if len(cfg.DocumentModels) == 0 {
		return ErrNoDocumentModels
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop{}
	}

	db := cfg.Database
	if db == nil {
		client := cfg.Client
		if client == nil {
			var err error
			client, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.ConnectionString))
			if err != nil {
				return err
			}
		}
		name := cfg.DatabaseName
		if name == "" {
			var err error
			name, err = DatabaseName(cfg.ConnectionString)
			if err != nil {
				return err
			}
		}
		db = client.Database(name)
	}

	tasks := make([]func() error, 0, len(cfg.DocumentModels))
	for _, entry := range cfg.DocumentModels {
		model, err := asModel(entry)
		if err != nil {
			return err
		}
		name := modelName(model)

		switch kind := model.GetModelType(); kind {
		case ModelKindUnionDoc:
			union, ok := model.(UnionDocModel)
			if !ok {
				return fmt.Errorf("%w: %s declares kind %s", ErrKindMismatch, name, kind)
			}
			// Union roots must be ready before any dependent document
			// initializes, so they never join the concurrent batch.
			log.Debug("initializing union doc", "model", name)
			if err := union.Init(ctx, db); err != nil {
				return fmt.Errorf("initializing %s: %w", name, err)
			}
		case ModelKindDocument:
			doc, ok := model.(DocumentModel)
			if !ok {
				return fmt.Errorf("%w: %s declares kind %s", ErrKindMismatch, name, kind)
			}
			tasks = append(tasks, func() error {
				log.Debug("initializing document", "model", name)
				if err := doc.InitModel(ctx, db, cfg.AllowIndexDropping); err != nil {
					return fmt.Errorf("initializing %s: %w", name, err)
				}
				return nil
			})
		case ModelKindView:
			view, ok := model.(ViewModel)
			if !ok {
				return fmt.Errorf("%w: %s declares kind %s", ErrKindMismatch, name, kind)
			}
			tasks = append(tasks, func() error {
				log.Debug("initializing view", "model", name)
				if err := view.InitView(ctx, db, cfg.RecreateViews); err != nil {
					return fmt.Errorf("initializing %s: %w", name, err)
				}
				return nil
			})
		default:
			return fmt.Errorf("%w: %s reports %d", ErrUnknownModelKind, name, int(kind))
		}
	}

	// Plain errgroup, no derived context: a failing task must not cancel
	// its siblings, and Wait reports the first error once all settle.
	var g errgroup.Group
	for _, task := range tasks {
		g.Go(task)
	}
	if err := g.Wait(); err != nil {
		log.Error("initialization failed", "error", err.Error())
		return err
	}
	log.Info("initialization complete", "models", len(cfg.DocumentModels))
	return nil
}

// DatabaseName extracts the database from a connection string: the first
// path component, without the leading separator.
func DatabaseName(connectionString string) (string, error) {
	u, err := url.Parse(connectionString)
	if err != nil {
		return "", err
	}
	name := strings.TrimPrefix(u.Path, "/")
	if i := strings.Index(name, "/"); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return "", fmt.Errorf("%w: connection string %q names no database",
			ErrDatabaseTarget, connectionString)
	}
	return name, nil
}

func asModel(entry any) (Model, error) {
	switch v := entry.(type) {
	case string:
		return GetModel(v)
	case Model:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: unsupported entry of type %T", ErrInvalidReference, entry)
	}
}

func modelName(model Model) string {
	if named, ok := model.(interface{ ModelName() string }); ok {
		if name := named.ModelName(); name != "" {
			return name
		}
	}
	t := reflect.TypeOf(model)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
