package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"mfo-offers-api/internal/models"
)

func TestPublishOfferCreated(t *testing.T) {
	m := NewManager(true)
	defer m.Shutdown()

	var wg sync.WaitGroup
	wg.Add(1)

	var got Event
	m.Subscribe(EventOfferCreated, func(ctx context.Context, event Event) error {
		got = event
		wg.Done()
		return nil
	})

	m.PublishOfferCreated(context.Background(), "abc123", models.Offer{Name: "Займер"})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for event handler")
	}

	if got.Type != EventOfferCreated {
		t.Errorf("Expected type %q, got %q", EventOfferCreated, got.Type)
	}
	if got.ID == "" {
		t.Error("Expected event to carry an id")
	}
	data, ok := got.Data.(OfferCreatedData)
	if !ok {
		t.Fatalf("Expected OfferCreatedData, got %T", got.Data)
	}
	if data.OfferID != "abc123" || data.Offer.Name != "Займер" {
		t.Errorf("Unexpected event data: %+v", data)
	}
}

func TestDisabledManagerDropsEvents(t *testing.T) {
	m := NewManager(false)

	called := make(chan struct{}, 1)
	m.Subscribe(EventOffersSeeded, func(ctx context.Context, event Event) error {
		called <- struct{}{}
		return nil
	})

	m.PublishOffersSeeded(context.Background(), 4)

	select {
	case <-called:
		t.Error("Expected disabled manager not to invoke handlers")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNilManagerPublishIsSafe(t *testing.T) {
	var m *Manager
	m.Publish(context.Background(), EventOfferCreated, nil)
}
