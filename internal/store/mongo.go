package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"mfo-offers-api/internal/models"
)

// OfferCollection is the collection holding the offer catalog.
const OfferCollection = "offer"

// Mongo is the document-store gateway. It wraps a database handle and exposes
// insert/query operations over named collections.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// offerDocument is the persisted shape of an offer. The store owns the _id;
// it is surfaced to clients as a hex string.
type offerDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	models.Offer `bson:",inline"`
}

// Connect opens a client against url, pings it, and returns a gateway bound
// to the named database.
func Connect(ctx context.Context, url, name string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Info().Str("database", name).Msg("connected to mongodb")

	return &Mongo{
		client: client,
		db:     client.Database(name),
	}, nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Name returns the bound database name.
func (m *Mongo) Name() string {
	return m.db.Name()
}

// Ping checks connectivity to the primary.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// InsertDocument inserts a single document into the named collection and
// returns the assigned identifier as a hex string.
func (m *Mongo) InsertDocument(ctx context.Context, collection string, doc interface{}) (string, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return id.Hex(), nil
}

// FindDocuments runs the filter against the named collection and decodes all
// results into out, which must be a pointer to a slice.
func (m *Mongo) FindDocuments(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	cursor, err := m.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", collection, err)
	}

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s documents: %w", collection, err)
	}
	return nil
}

// InsertOffer stores one offer and returns its assigned identifier.
func (m *Mongo) InsertOffer(ctx context.Context, offer models.Offer) (string, error) {
	if offer.Tags == nil {
		offer.Tags = []string{}
	}
	return m.InsertDocument(ctx, OfferCollection, offerDocument{Offer: offer})
}

// FindOffers returns all offers matching the filter, in store order, with the
// internal identifier mapped to the public ID string. The result is never nil.
func (m *Mongo) FindOffers(ctx context.Context, filter models.OfferFilter) ([]models.Offer, error) {
	var docs []offerDocument
	if err := m.FindDocuments(ctx, OfferCollection, BuildOfferFilter(filter), &docs); err != nil {
		return nil, err
	}

	offers := make([]models.Offer, 0, len(docs))
	for _, d := range docs {
		offer := d.Offer
		offer.ID = d.ID.Hex()
		if offer.Tags == nil {
			offer.Tags = []string{}
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

// CountOffers returns the total number of stored offers.
func (m *Mongo) CountOffers(ctx context.Context) (int64, error) {
	count, err := m.db.Collection(OfferCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s documents: %w", OfferCollection, err)
	}
	return count, nil
}

// CollectionNames lists the collections present in the bound database.
func (m *Mongo) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := m.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}
