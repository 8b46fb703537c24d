package storemock

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mfo-offers-api/internal/models"
)

// Gateway is an in-memory stand-in for the Mongo store. It applies the same
// filter semantics the document store would: range predicates combined with
// AND, the free-text query matching name substrings (case-insensitive) or
// exact tags, and offers without a rating never matching a rating predicate.
type Gateway struct {
	mu     sync.Mutex
	offers []models.Offer

	// Err, when set, is returned by every store operation.
	Err error
	// Collections is returned by CollectionNames.
	Collections []string
}

func New() *Gateway {
	return &Gateway{Collections: []string{"offer"}}
}

func (g *Gateway) InsertOffer(ctx context.Context, offer models.Offer) (string, error) {
	if g.Err != nil {
		return "", g.Err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	offer.ID = primitive.NewObjectID().Hex()
	if offer.Tags == nil {
		offer.Tags = []string{}
	}
	g.offers = append(g.offers, offer)
	return offer.ID, nil
}

func (g *Gateway) FindOffers(ctx context.Context, filter models.OfferFilter) ([]models.Offer, error) {
	if g.Err != nil {
		return nil, g.Err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	matched := make([]models.Offer, 0, len(g.offers))
	for _, offer := range g.offers {
		if matches(offer, filter) {
			matched = append(matched, offer)
		}
	}
	return matched, nil
}

func (g *Gateway) CountOffers(ctx context.Context) (int64, error) {
	if g.Err != nil {
		return 0, g.Err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return int64(len(g.offers)), nil
}

func (g *Gateway) CollectionNames(ctx context.Context) ([]string, error) {
	if g.Err != nil {
		return nil, g.Err
	}
	return g.Collections, nil
}

func (g *Gateway) Ping(ctx context.Context) error {
	return g.Err
}

func (g *Gateway) Name() string {
	return "testdb"
}

func matches(offer models.Offer, f models.OfferFilter) bool {
	if f.MaxAPR != nil && offer.APR > *f.MaxAPR {
		return false
	}
	if f.MinAmount != nil && offer.MaxAmount < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && offer.MinAmount > *f.MaxAmount {
		return false
	}
	if f.MinRating != nil && (offer.Rating == nil || *offer.Rating < *f.MinRating) {
		return false
	}
	if f.Query != nil && *f.Query != "" {
		if !matchesQuery(offer, *f.Query) {
			return false
		}
	}
	return true
}

func matchesQuery(offer models.Offer, q string) bool {
	if strings.Contains(strings.ToLower(offer.Name), strings.ToLower(q)) {
		return true
	}
	for _, tag := range offer.Tags {
		if tag == q {
			return true
		}
	}
	return false
}
