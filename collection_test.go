package beanie

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestIndexName(t *testing.T) {
	tests := []struct {
		name  string
		model mongo.IndexModel
		want  string
	}{
		{
			name:  "single key ascending",
			model: mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}},
			want:  "email_1",
		},
		{
			name: "compound key",
			model: mongo.IndexModel{Keys: bson.D{
				{Key: "tenant", Value: 1},
				{Key: "created_at", Value: -1},
			}},
			want: "tenant_1_created_at_-1",
		},
		{
			name:  "text index",
			model: mongo.IndexModel{Keys: bson.D{{Key: "body", Value: "text"}}},
			want:  "body_text",
		},
		{
			name: "explicit name wins",
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("uniq_email"),
			},
			want: "uniq_email",
		},
		{
			name:  "unsupported key shape",
			model: mongo.IndexModel{Keys: bson.M{"email": 1}},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, indexName(tt.model))
		})
	}
}

func TestSyncIndexesRejectsUnnamedKeys(t *testing.T) {
	// Validation runs before any server round trip, so a nil collection
	// is fine here.
	err := SyncIndexes(context.Background(), nil, []mongo.IndexModel{
		{Keys: bson.M{"email": 1}},
	}, false)
	require.ErrorIs(t, err, ErrIndexKeys)

	err = SyncIndexes(context.Background(), nil, []mongo.IndexModel{
		{Keys: bson.D{}},
	}, true)
	require.ErrorIs(t, err, ErrIndexKeys)
}

func TestModelKindString(t *testing.T) {
	assert.Equal(t, "UnionDoc", ModelKindUnionDoc.String())
	assert.Equal(t, "Document", ModelKindDocument.String())
	assert.Equal(t, "View", ModelKindView.String())
	assert.Equal(t, "Unknown", ModelKind(42).String())
}

func TestDescriptorKinds(t *testing.T) {
	doc := &BaseDocument{CollectionName: "users"}
	assert.Equal(t, ModelKindDocument, doc.GetModelType())
	assert.Equal(t, "users", doc.ModelName())
	assert.Nil(t, doc.Collection())

	view := &BaseView{ViewName: "active_users", Source: "users"}
	assert.Equal(t, ModelKindView, view.GetModelType())
	assert.Equal(t, "active_users", view.ModelName())

	union := &UnionRoot{CollectionName: "events"}
	assert.Equal(t, ModelKindUnionDoc, union.GetModelType())
	assert.Equal(t, "events", union.ModelName())
}

func TestUnionRootRegisterChildBeforeInit(t *testing.T) {
	union := &UnionRoot{CollectionName: "events"}

	_, err := union.RegisterChild("clicks")
	require.ErrorIs(t, err, ErrUnionNotReady)
	assert.Contains(t, err.Error(), "events")
	assert.Contains(t, err.Error(), "clicks")
	assert.False(t, union.HasChild("clicks"))
}

func TestUnionRootRegisterChild(t *testing.T) {
	// Client construction is lazy, no server is needed to build a
	// database handle.
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	union := &UnionRoot{CollectionName: "events"}
	// Simulate a completed Init without touching a server.
	union.db = client.Database("beanie_test")
	union.children = make(map[string]struct{})
	union.inited = true

	coll, err := union.RegisterChild("clicks")
	require.NoError(t, err)
	require.NotNil(t, coll)
	assert.True(t, union.HasChild("clicks"))
	assert.False(t, union.HasChild("views"))
}
