package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/tieubaoca/docsense-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DocumentRepo is the storage collaborator contract of the pipeline:
// Save assigns and returns an opaque identifier, Get returns nil for an
// unknown id, Delete reports whether anything was removed.
type DocumentRepo interface {
	Save(ctx context.Context, record *types.DocumentRecord) (string, error)
	Get(ctx context.Context, id string) (*types.DocumentRecord, error)
	List(ctx context.Context, page, limit int64, fileType types.FormatKind) ([]*types.DocumentRecord, int64, error)
	Delete(ctx context.Context, id string) (bool, error)
	Ping(ctx context.Context) error
}

type documentRepo struct {
	db         *mongo.Database
	collection *mongo.Collection
}

func NewDocumentRepo(db *mongo.Database) DocumentRepo {
	// check if collection does not exist, create one
	collectionNames, err := db.ListCollectionNames(context.Background(), bson.D{})
	if err != nil {
		panic(err)
	}
	collectionExists := false
	for _, name := range collectionNames {
		if name == "documents" {
			collectionExists = true
			break
		}
	}
	collection := db.Collection("documents")
	if !collectionExists {
		indexes := []mongo.IndexModel{
			{
				Keys: bson.D{
					{Key: "file_type", Value: 1},
				},
			},
			{
				Keys: bson.D{
					{Key: "upload_date", Value: -1},
				},
			},
		}

		_, err = collection.Indexes().CreateMany(context.Background(), indexes)
		if err != nil {
			log.Printf("Error creating indexes: %v", err)
		}
	}

	return &documentRepo{
		db:         db,
		collection: collection,
	}
}

func (r *documentRepo) Save(ctx context.Context, record *types.DocumentRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return "", err
	}
	return record.ID, nil
}

func (r *documentRepo) Get(ctx context.Context, id string) (*types.DocumentRecord, error) {
	var record types.DocumentRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *documentRepo) List(ctx context.Context, page, limit int64, fileType types.FormatKind) ([]*types.DocumentRecord, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	filter := bson.M{}
	if fileType != "" {
		filter["file_type"] = fileType
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "upload_date", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var records []*types.DocumentRecord
	for cursor.Next(ctx) {
		var record types.DocumentRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, 0, err
		}
		records = append(records, &record)
	}
	return records, total, cursor.Err()
}

func (r *documentRepo) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (r *documentRepo) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, nil)
}
