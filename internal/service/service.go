package service

import (
	"context"
	"errors"
	"fmt"

	"mfo-offers-api/internal/events"
	"mfo-offers-api/internal/models"
	"mfo-offers-api/internal/validation"
)

// ErrStoreUnavailable is returned by every data-touching operation when the
// service was started without a configured document store.
var ErrStoreUnavailable = errors.New("database not configured")

// Gateway is the document-store surface the service depends on. *store.Mongo
// implements it; tests substitute an in-memory fake.
type Gateway interface {
	InsertOffer(ctx context.Context, offer models.Offer) (string, error)
	FindOffers(ctx context.Context, filter models.OfferFilter) ([]models.Offer, error)
	CountOffers(ctx context.Context) (int64, error)
	CollectionNames(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Name() string
}

// Service provides the business logic for the offers catalog.
type Service struct {
	store  Gateway
	events *events.Manager

	// Diagnostic flags mirrored from configuration.
	urlConfigured  bool
	nameConfigured bool
}

// StatusFlags carries environment facts reported by the diagnostic endpoint.
type StatusFlags struct {
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

// NewService creates a new service instance. store may be nil when the
// database is unconfigured; in that case data operations fail with
// ErrStoreUnavailable but the diagnostic endpoint keeps working.
func NewService(store Gateway, ev *events.Manager, flags StatusFlags) *Service {
	return &Service{
		store:          store,
		events:         ev,
		urlConfigured:  flags.DatabaseURLSet,
		nameConfigured: flags.DatabaseNameSet,
	}
}

// ListOffers returns all offers matching the filter, in store order.
func (s *Service) ListOffers(ctx context.Context, filter models.OfferFilter) ([]models.Offer, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}

	offers, err := s.store.FindOffers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}

// CreateOffer validates and stores a new offer, returning its assigned
// identifier. Validation failures happen before any store write.
func (s *Service) CreateOffer(ctx context.Context, offer models.Offer) (string, error) {
	if err := validation.ValidateOffer(offer); err != nil {
		return "", err
	}

	if s.store == nil {
		return "", ErrStoreUnavailable
	}

	id, err := s.store.InsertOffer(ctx, offer)
	if err != nil {
		return "", fmt.Errorf("failed to create offer: %w", err)
	}

	s.events.PublishOfferCreated(ctx, id, offer)
	return id, nil
}

// SeedOffers inserts the curated sample set unless the collection already
// holds at least one offer. The documents are inserted one at a time; a
// failure partway through surfaces the store error as-is.
func (s *Service) SeedOffers(ctx context.Context) (inserted int, alreadySeeded bool, err error) {
	if s.store == nil {
		return 0, false, ErrStoreUnavailable
	}

	count, err := s.store.CountOffers(ctx)
	if err != nil {
		return 0, false, err
	}
	if count > 0 {
		return 0, true, nil
	}

	for _, offer := range SampleOffers() {
		if _, err := s.store.InsertOffer(ctx, offer); err != nil {
			return inserted, false, err
		}
		inserted++
	}

	s.events.PublishOffersSeeded(ctx, inserted)
	return inserted, false, nil
}

// Status reports backend and store health. It never fails: every error is
// rendered into the returned status strings.
func (s *Service) Status(ctx context.Context) models.StatusReport {
	report := models.StatusReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      "❌ Not Set",
		DatabaseName:     "❌ Not Set",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if s.store != nil {
		report.Database = "✅ Available"
		report.ConnectionStatus = "Connected"

		names, err := s.store.CollectionNames(ctx)
		if err != nil {
			report.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			report.Collections = names
			report.Database = "✅ Connected & Working"
		}
	}

	if s.urlConfigured {
		report.DatabaseURL = "✅ Set"
	}
	if s.nameConfigured {
		report.DatabaseName = "✅ Set"
	}

	return report
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
