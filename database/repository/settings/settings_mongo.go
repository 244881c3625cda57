// File: database/repository/settings/settings_mongo.go
package settingsRepo

import (
	"context"
	"errors"
	"time"

	"nafis/database"
	"nafis/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no settings document has been saved yet.
var ErrNotFound = errors.New("settings not found")

// settingsDocID is the fixed id of the singleton settings document.
const settingsDocID = "site"

// SettingsRepository loads and saves the singleton site settings document.
type SettingsRepository interface {
	Load(ctx context.Context) (*models.Settings, error)
	Save(ctx context.Context, s models.Settings) error
}

type mongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo constructs a MongoDB-backed SettingsRepository.
func NewMongoSettingsRepo() SettingsRepository {
	db := database.MongoClient.Database("nafis")
	return &mongoSettingsRepo{
		coll: db.Collection("settings"),
	}
}

type settingsDoc struct {
	ID       string          `bson:"_id"`
	Settings models.Settings `bson:"settings"`
}

func (r *mongoSettingsRepo) Load(ctx context.Context) (*models.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc settingsDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc.Settings, nil
}

func (r *mongoSettingsRepo) Save(ctx context.Context, s models.Settings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	s.UpdatedAt = time.Now()
	doc := settingsDoc{ID: settingsDocID, Settings: s}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, doc, opts)
	return err
}
