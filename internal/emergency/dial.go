package emergency

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/arogya/internal/store"
)

// Snapshot is the patient state captured alongside a call.
type Snapshot struct {
	Symptoms string
	Severity int
}

// CallAction is the result of Dial: the URI to hand to the platform
// opener and the persisted audit record.
type CallAction struct {
	URI    string
	Record store.CallRecord
}

// Dialer builds and audits emergency calls.
type Dialer struct {
	Calls   store.CallRepo
	Locator Locator
}

// NewDialer returns a Dialer writing audit records through calls.
func NewDialer(calls store.CallRepo, locator Locator) *Dialer {
	if locator == nil {
		locator = NoLocator{}
	}
	return &Dialer{Calls: calls, Locator: locator}
}

// Dial prepares a call to the given region's emergency number. The
// audit record is persisted BEFORE the dial URI is returned, so the
// call attempt is on record even if the handoff to the platform fails.
// Location is attached when known but never blocks the call.
func (d *Dialer) Dial(ctx context.Context, region string, snap Snapshot) (CallAction, error) {
	number := NumberFor(region)

	rec := store.CallRecord{
		ID:        uuid.NewString(),
		Number:    number.Dial,
		Region:    number.Region,
		Symptoms:  snap.Symptoms,
		Severity:  snap.Severity,
		CreatedAt: time.Now(),
	}
	if loc, ok := d.Locator.Locate(ctx); ok {
		rec.Location = loc.MapLink()
	}

	if err := d.Calls.Append(ctx, rec); err != nil {
		return CallAction{}, fmt.Errorf("audit call: %w", err)
	}

	return CallAction{
		URI:    "tel:" + number.Dial,
		Record: rec,
	}, nil
}

// DialContact prepares a call to a specific contact, with the same
// audit-first behavior as Dial.
func (d *Dialer) DialContact(ctx context.Context, contact Contact, snap Snapshot) (CallAction, error) {
	rec := store.CallRecord{
		ID:        uuid.NewString(),
		Number:    contact.Dial,
		Region:    contact.Name,
		Symptoms:  snap.Symptoms,
		Severity:  snap.Severity,
		CreatedAt: time.Now(),
	}
	if loc, ok := d.Locator.Locate(ctx); ok {
		rec.Location = loc.MapLink()
	}

	if err := d.Calls.Append(ctx, rec); err != nil {
		return CallAction{}, fmt.Errorf("audit call: %w", err)
	}

	return CallAction{URI: "tel:" + contact.Dial, Record: rec}, nil
}
