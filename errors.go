package beanie

import "errors"

// Errors
var (
	ErrDatabaseTarget   = errors.New("connection string or database must be set, but not both")
	ErrNoDocumentModels = errors.New("document models must be set")
	ErrInvalidReference = errors.New("invalid model reference")
	ErrUnresolvedModel  = errors.New("model not found in namespace")
	ErrNotAModel        = errors.New("symbol is not a model")
	ErrUnknownModelKind = errors.New("unknown model kind")
	ErrKindMismatch     = errors.New("model does not implement its declared kind")
	ErrUnionNotReady    = errors.New("union root is not initialized")
	ErrIndexKeys        = errors.New("index keys must be bson.D or carry an explicit name")
)
