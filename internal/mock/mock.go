// Package mock provides in-memory model fakes for orchestration tests.
// The fakes never touch the database handle; they record what happened
// and when, so tests can assert ordering and failure propagation.
package mock

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/code7-adrianomartins/beanie"
)

// Recorder collects events from a set of fakes in arrival order.
type Recorder struct {
	mu     sync.Mutex
	events []string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}

// Index returns the position of the first occurrence of event, or -1.
func (r *Recorder) Index(event string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.events {
		if e == event {
			return i
		}
	}
	return -1
}

var (
	_ beanie.UnionDocModel = (*UnionDoc)(nil)
	_ beanie.DocumentModel = (*Document)(nil)
	_ beanie.ViewModel     = (*View)(nil)
)

// UnionDoc is a fake union-document root.
type UnionDoc struct {
	Name     string
	Recorder *Recorder
	Err      error
}

func (u *UnionDoc) GetModelType() beanie.ModelKind { return beanie.ModelKindUnionDoc }

func (u *UnionDoc) ModelName() string { return u.Name }

func (u *UnionDoc) Init(ctx context.Context, db *mongo.Database) error {
	if u.Recorder != nil {
		u.Recorder.record(u.Name + ":init")
	}
	return u.Err
}

// Document is a fake collection-backed model. Delay is applied before
// completion so tests can force interleavings.
type Document struct {
	Name     string
	Recorder *Recorder
	Err      error
	Delay    time.Duration

	mu                 sync.Mutex
	done               bool
	allowIndexDropping bool
	dbName             string
}

func (d *Document) GetModelType() beanie.ModelKind { return beanie.ModelKindDocument }

func (d *Document) ModelName() string { return d.Name }

func (d *Document) InitModel(ctx context.Context, db *mongo.Database, allowIndexDropping bool) error {
	if d.Recorder != nil {
		d.Recorder.record(d.Name + ":start")
	}
	if d.Delay > 0 {
		time.Sleep(d.Delay)
	}
	d.mu.Lock()
	d.done = true
	d.allowIndexDropping = allowIndexDropping
	if db != nil {
		d.dbName = db.Name()
	}
	d.mu.Unlock()
	if d.Recorder != nil {
		d.Recorder.record(d.Name + ":done")
	}
	return d.Err
}

// Done reports whether InitModel ran to completion.
func (d *Document) Done() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.done
}

// AllowIndexDropping returns the flag InitModel received.
func (d *Document) AllowIndexDropping() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.allowIndexDropping
}

// DBName returns the name of the database InitModel received.
func (d *Document) DBName() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dbName
}

// View is a fake view-backed model.
type View struct {
	Name     string
	Recorder *Recorder
	Err      error
	Delay    time.Duration

	mu           sync.Mutex
	done         bool
	recreateView bool
}

func (v *View) GetModelType() beanie.ModelKind { return beanie.ModelKindView }

func (v *View) ModelName() string { return v.Name }

func (v *View) InitView(ctx context.Context, db *mongo.Database, recreateView bool) error {
	if v.Recorder != nil {
		v.Recorder.record(v.Name + ":start")
	}
	if v.Delay > 0 {
		time.Sleep(v.Delay)
	}
	v.mu.Lock()
	v.done = true
	v.recreateView = recreateView
	v.mu.Unlock()
	if v.Recorder != nil {
		v.Recorder.record(v.Name + ":done")
	}
	return v.Err
}

// Done reports whether InitView ran to completion.
func (v *View) Done() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.done
}

// RecreateView returns the flag InitView received.
func (v *View) RecreateView() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.recreateView
}

// Unknown reports a kind outside the closed set.
type Unknown struct{}

func (Unknown) GetModelType() beanie.ModelKind { return beanie.ModelKind(42) }

// MisdeclaredDocument reports the Document kind without implementing the
// DocumentModel interface.
type MisdeclaredDocument struct{}

func (MisdeclaredDocument) GetModelType() beanie.ModelKind { return beanie.ModelKindDocument }
