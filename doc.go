// The [beanie] package is the initialization layer of a MongoDB
// object-document mapper: it takes a set of model descriptors and a
// database target, resolves textual model references, classifies each
// model by kind, and drives per-model setup concurrently.
//
// # Initialization
//
// [Init] is called once at process startup with a [Config] naming exactly
// one database target (an explicit [go.mongodb.org/mongo-driver/mongo.Database]
// or a connection string) and a non-empty model list.
//
// Union-document roots ([UnionRoot], or any [UnionDocModel]) initialize
// synchronously in list order, because member documents look up their
// root during their own setup. Documents and views then initialize
// concurrently as one batch; every task runs to completion and [Init]
// returns the first failure once the batch settles.
//
// # Model references
//
// A model list entry is either a [Model] value or a dotted string like
// "app.models.User", resolved through [GetModel] against the namespace
// registry in [github.com/code7-adrianomartins/beanie/pkg/registry].
// Registering a lazy namespace loader defers model wiring to runtime
// configuration; loading may run arbitrary setup code.
//
// # Model kinds
//
// Each model reports exactly one [ModelKind]: [ModelKindUnionDoc],
// [ModelKindDocument] or [ModelKindView]. Ready-made descriptors
// [BaseDocument], [BaseView] and [UnionRoot] cover the common cases;
// anything implementing the matching capability interface works as well.
//
// # Logging
//
// Initialization progress goes to the [github.com/code7-adrianomartins/beanie/pkg/logger.Logger]
// supplied in [Config.Logger]; the default is silent.
package beanie
