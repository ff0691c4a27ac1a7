package history

import (
	"fmt"
	"net/http"

	"github.com/xy-planning-network/waymark"
)

// A History is the browsing history routes are matched against.
//
// A History delivers every navigation to its callbacks in the order the navigations occurred.
// Whether it does so synchronously within NavigateTo or later is up to the implementation;
// callers must not rely on either.
type History interface {
	// CurrentLocation is the URL currently navigated to.
	CurrentLocation() waymark.URL

	// RegisterForNavigatedCallback adds callback to those called with the URL of each navigation.
	RegisterForNavigatedCallback(callback func(waymark.URL))

	// NavigateTo requests a navigation to u.
	NavigateTo(u waymark.URL)

	// RaiseNavigateToForCurrentLocation calls every callback with CurrentLocation,
	// e.g., once at start-up so the initial URL is matched like any other navigation.
	RaiseNavigateToForCurrentLocation()
}

// A LastNavigator is a History that remembers where the most recent NavigateTo navigated from.
type LastNavigator interface {
	History

	// LastNavigatedTo is the location current just before the most recent NavigateTo was applied.
	// It does not change when moving Back or Forward.
	LastNavigatedTo() (waymark.URL, bool)
}

// LocationFromRequest reads the location an HTTP request asks for,
// its decoded path and its raw query.
func LocationFromRequest(r *http.Request) (waymark.URL, error) {
	u := waymark.ParsePath(r.URL.Path)
	if r.URL.RawQuery == "" {
		return u, nil
	}

	q, err := waymark.ParseQuery(r.URL.RawQuery)
	if err != nil {
		return waymark.URL{}, fmt.Errorf("%w: query of %s", err, r.URL)
	}

	return u.WithQuery(q), nil
}
