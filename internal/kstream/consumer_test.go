package kstream

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"motocat-backend/internal/catalog"
	"motocat-backend/internal/model"
)

type fakeApplier struct {
	applied []model.PriceUpdate
	err     error
}

func (f *fakeApplier) ApplyPriceUpdate(ctx context.Context, upd model.PriceUpdate) error {
	if f.err != nil {
		return f.err
	}
	f.applied = append(f.applied, upd)
	return nil
}

type fakeMatcher struct {
	matched []model.PriceAlert
	gotBike uint
	gotUSD  float64
}

func (f *fakeMatcher) MatchActive(ctx context.Context, bikeID uint, newPriceUSD float64) ([]model.PriceAlert, error) {
	f.gotBike = bikeID
	f.gotUSD = newPriceUSD
	return f.matched, nil
}

type fakeInvalidator struct{ calls int }

func (f *fakeInvalidator) InvalidateLists(ctx context.Context) { f.calls++ }

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestHandle_AppliesUpdateAndInvalidates(t *testing.T) {
	t.Parallel()

	applier := &fakeApplier{}
	matcher := &fakeMatcher{}
	inv := &fakeInvalidator{}
	c := &UpdateConsumer{
		Store:        applier,
		Alerts:       matcher,
		Cache:        inv,
		PublishAlert: func(ctx context.Context, evt model.AlertTriggered) error { return nil },
	}

	upd := model.PriceUpdate{MotorcycleID: 12, BasePriceUSD: 8450, Status: "Available", Source: "daily-bot"}
	if err := c.Handle(context.Background(), mustJSON(t, upd)); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(applier.applied) != 1 || applier.applied[0].MotorcycleID != 12 {
		t.Errorf("update not applied: %+v", applier.applied)
	}
	if inv.calls != 1 {
		t.Errorf("cache invalidated %d times, want 1", inv.calls)
	}
	if matcher.gotBike != 12 || matcher.gotUSD != 8450 {
		t.Errorf("alert matching saw bike=%d usd=%.2f", matcher.gotBike, matcher.gotUSD)
	}
}

func TestHandle_PublishesTriggeredAlerts(t *testing.T) {
	t.Parallel()

	matcher := &fakeMatcher{matched: []model.PriceAlert{
		{ID: "a1", UserID: 3, MotorcycleID: 12, Region: "IN", TargetPriceUSD: 9000},
		{ID: "a2", UserID: 4, MotorcycleID: 12, Region: "US", TargetPriceUSD: 8600},
	}}
	var published []model.AlertTriggered
	c := &UpdateConsumer{
		Store:  &fakeApplier{},
		Alerts: matcher,
		PublishAlert: func(ctx context.Context, evt model.AlertTriggered) error {
			published = append(published, evt)
			return nil
		},
	}

	upd := model.PriceUpdate{MotorcycleID: 12, BasePriceUSD: 8450}
	if err := c.Handle(context.Background(), mustJSON(t, upd)); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(published) != 2 {
		t.Fatalf("published %d events, want 2", len(published))
	}
	if published[0].AlertID != "a1" || published[0].NewPriceUSD != 8450 {
		t.Errorf("unexpected first event %+v", published[0])
	}
}

func TestHandle_UnknownBikeIsDropped(t *testing.T) {
	t.Parallel()

	matcher := &fakeMatcher{}
	c := &UpdateConsumer{
		Store:        &fakeApplier{err: catalog.ErrNotFound},
		Alerts:       matcher,
		PublishAlert: func(ctx context.Context, evt model.AlertTriggered) error { return nil },
	}
	upd := model.PriceUpdate{MotorcycleID: 9999, BasePriceUSD: 100}
	if err := c.Handle(context.Background(), mustJSON(t, upd)); err != nil {
		t.Fatalf("unknown bike should not error: %v", err)
	}
	if matcher.gotBike != 0 {
		t.Error("alert matching ran for a dropped update")
	}
}

func TestHandle_StoreErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	c := &UpdateConsumer{
		Store:        &fakeApplier{err: boom},
		Alerts:       &fakeMatcher{},
		PublishAlert: func(ctx context.Context, evt model.AlertTriggered) error { return nil },
	}
	upd := model.PriceUpdate{MotorcycleID: 1, BasePriceUSD: 100}
	if err := c.Handle(context.Background(), mustJSON(t, upd)); !errors.Is(err, boom) {
		t.Errorf("got err %v, want the store error", err)
	}
}

func TestHandle_MalformedPayload(t *testing.T) {
	t.Parallel()

	c := &UpdateConsumer{Store: &fakeApplier{}, Alerts: &fakeMatcher{}}
	if err := c.Handle(context.Background(), []byte("{not json")); err == nil {
		t.Error("malformed payload did not error")
	}
}
