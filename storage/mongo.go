package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	tracker "github.com/malusev998/rate-tracker"
)

type mongoStorage struct {
	ctx        context.Context
	client     *mongo.Client
	collection *mongo.Collection
}

func NewMongoStorage(config MongoDBConfig) (tracker.Storage, error) {
	if config.ConnectionString == "" || config.Database == "" || config.Collection == "" {
		return nil, fmt.Errorf("%w: mongodb needs uri, database and collection", ErrInvalidConfig)
	}

	ctx := config.Ctx

	if ctx == nil {
		ctx = context.Background()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.ConnectionString))

	if err != nil {
		return nil, err
	}

	storage := mongoStorage{
		ctx:        ctx,
		client:     client,
		collection: client.Database(config.Database).Collection(config.Collection),
	}

	if config.Migrate {
		if err := storage.Migrate(); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
	}

	return storage, nil
}

func toDocuments(records []tracker.HistoryRecord) []interface{} {
	documents := make([]interface{}, 0, len(records))

	for _, record := range records {
		rate, _ := record.Rate.Float64()

		documents = append(documents, bson.M{
			"capturedAt":     record.CapturedAt,
			"baseCurrency":   record.BaseCurrency,
			"targetCurrency": record.TargetCurrency,
			"rate":           rate,
			"rateText":       record.Rate.String(),
			"apiTimestamp":   record.APITimestamp,
		})
	}

	return documents
}

func (m mongoStorage) Store(records []tracker.HistoryRecord) error {
	if len(records) == 0 {
		return nil
	}

	_, err := m.collection.InsertMany(m.ctx, toDocuments(records))

	return err
}

func historyIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{{Key: "capturedAt", Value: 1}},
	}
}

func (m mongoStorage) Migrate() error {
	_, err := m.collection.Indexes().CreateOne(m.ctx, historyIndex())

	return err
}

func (m mongoStorage) Close() error {
	return m.client.Disconnect(m.ctx)
}

func (m mongoStorage) GetStorageProviderName() string {
	return string(MongoDB)
}

func (m mongoStorage) Destination() string {
	return fmt.Sprintf("mongodb collection %s.%s", m.collection.Database().Name(), m.collection.Name())
}
