package emergency

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// Location is a best-effort patient position.
type Location struct {
	Lat float64
	Lon float64
}

// MapLink returns a shareable maps URL for the location.
func (l Location) MapLink() string {
	return fmt.Sprintf("https://maps.google.com/?q=%g,%g", l.Lat, l.Lon)
}

// Locator resolves the current position. Implementations must return
// quickly; callers never block an emergency action on location.
type Locator interface {
	Locate(ctx context.Context) (Location, bool)
}

// EnvLocator reads a fixed position from AROGYA_LAT / AROGYA_LON. A
// terminal has no GPS; users who want location sharing set these once.
type EnvLocator struct{}

func (EnvLocator) Locate(_ context.Context) (Location, bool) {
	lat, err1 := strconv.ParseFloat(os.Getenv("AROGYA_LAT"), 64)
	lon, err2 := strconv.ParseFloat(os.Getenv("AROGYA_LON"), 64)
	if err1 != nil || err2 != nil {
		return Location{}, false
	}
	return Location{Lat: lat, Lon: lon}, true
}

// NoLocator always reports no position.
type NoLocator struct{}

func (NoLocator) Locate(context.Context) (Location, bool) {
	return Location{}, false
}

// ShareMessage builds the SOS text sent to a contact. With no known
// location the message still goes out, just without the map link.
func ShareMessage(loc Location, known bool) string {
	if !known {
		return "Emergency: I need help. My location is unavailable."
	}
	return "Emergency: I need help. My location is: " + loc.MapLink()
}
