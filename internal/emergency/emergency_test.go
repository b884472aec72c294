package emergency

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/arogya/internal/store"
)

func TestNumberFor(t *testing.T) {
	cases := []struct {
		region string
		want   string
	}{
		{"US", "911"},
		{"IN", "108"},
		{"UK", "999"},
		{"EU", "112"},
		{"AU", "000"},
		{"ZZ", "108"}, // unknown region defaults to India
	}
	for _, tc := range cases {
		if got := NumberFor(tc.region); got.Dial != tc.want {
			t.Errorf("NumberFor(%q) = %q, want %q", tc.region, got.Dial, tc.want)
		}
	}
}

func TestContacts_ServiceTrio(t *testing.T) {
	got := Contacts(nil)
	if len(got) != 3 {
		t.Fatalf("got %d contacts, want 3", len(got))
	}
	if got[0].Name != "Police" || got[0].Dial != "100" {
		t.Errorf("got first contact %+v, want Police 100", got[0])
	}
	if got[2].Dial != "108" {
		t.Errorf("got ambulance dial %q, want 108", got[2].Dial)
	}
}

func TestContacts_PersonalFirst(t *testing.T) {
	personal := &Contact{Name: "Asha", Dial: "+91 98765 43210"}
	got := Contacts(personal)
	if len(got) != 4 {
		t.Fatalf("got %d contacts, want 4", len(got))
	}
	if got[0].Name != "Asha" {
		t.Errorf("got first contact %q, want personal contact", got[0].Name)
	}
}

func TestShareMessage(t *testing.T) {
	msg := ShareMessage(Location{Lat: 12.97, Lon: 77.59}, true)
	if !strings.Contains(msg, "https://maps.google.com/?q=12.97,77.59") {
		t.Errorf("got %q, want map link included", msg)
	}

	msg = ShareMessage(Location{}, false)
	if strings.Contains(msg, "maps.google.com") {
		t.Errorf("got %q, want no map link without a position", msg)
	}
	if !strings.Contains(msg, "Emergency: I need help") {
		t.Errorf("got %q, want the SOS text regardless of location", msg)
	}
}

func TestEnvLocator(t *testing.T) {
	t.Setenv("AROGYA_LAT", "12.97")
	t.Setenv("AROGYA_LON", "77.59")
	loc, ok := EnvLocator{}.Locate(context.Background())
	if !ok {
		t.Fatal("expected position from env")
	}
	if loc.Lat != 12.97 || loc.Lon != 77.59 {
		t.Errorf("got %+v", loc)
	}

	t.Setenv("AROGYA_LAT", "not-a-number")
	if _, ok := (EnvLocator{}).Locate(context.Background()); ok {
		t.Error("expected no position for malformed env")
	}
}

// memCallRepo is an in-memory CallRepo for dialer tests.
type memCallRepo struct {
	records []store.CallRecord
	err     error
}

func (m *memCallRepo) Append(_ context.Context, rec store.CallRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, rec)
	return nil
}

func (m *memCallRepo) Recent(_ context.Context, limit int) ([]store.CallRecord, error) {
	return m.records, nil
}

func (m *memCallRepo) DeleteAll(context.Context) error {
	m.records = nil
	return nil
}

func TestDial_AuditedBeforeHandoff(t *testing.T) {
	repo := &memCallRepo{}
	d := NewDialer(repo, NoLocator{})

	action, err := d.Dial(context.Background(), "IN", Snapshot{Symptoms: "chest pain", Severity: 8})
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if action.URI != "tel:108" {
		t.Errorf("got URI %q, want tel:108", action.URI)
	}
	if len(repo.records) != 1 {
		t.Fatalf("got %d audit records, want 1", len(repo.records))
	}
	rec := repo.records[0]
	if rec.ID == "" {
		t.Error("got empty record id, want uuid")
	}
	if rec.Symptoms != "chest pain" || rec.Severity != 8 {
		t.Errorf("got snapshot %+v, want preserved patient info", rec)
	}
}

func TestDial_AuditFailureBlocksCallAction(t *testing.T) {
	repo := &memCallRepo{err: errors.New("disk full")}
	d := NewDialer(repo, NoLocator{})

	if _, err := d.Dial(context.Background(), "US", Snapshot{}); err == nil {
		t.Fatal("expected error when the audit write fails")
	}
}

type fixedLocator struct{ loc Location }

func (f fixedLocator) Locate(context.Context) (Location, bool) { return f.loc, true }

func TestDial_AttachesLocationWhenKnown(t *testing.T) {
	repo := &memCallRepo{}
	d := NewDialer(repo, fixedLocator{Location{Lat: 1, Lon: 2}})

	if _, err := d.Dial(context.Background(), "IN", Snapshot{}); err != nil {
		t.Fatalf("dial: %v", err)
	}
	if !strings.Contains(repo.records[0].Location, "?q=1,2") {
		t.Errorf("got location %q, want map link", repo.records[0].Location)
	}
}

func TestDialContact(t *testing.T) {
	repo := &memCallRepo{}
	d := NewDialer(repo, nil)

	action, err := d.DialContact(context.Background(), Contact{Name: "Fire", Dial: "101"}, Snapshot{})
	if err != nil {
		t.Fatalf("dial contact: %v", err)
	}
	if action.URI != "tel:101" {
		t.Errorf("got URI %q, want tel:101", action.URI)
	}
	if repo.records[0].Region != "Fire" {
		t.Errorf("got region %q, want contact name", repo.records[0].Region)
	}
}
