package router_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/dispatch"
	"github.com/xy-planning-network/waymark/history"
	"github.com/xy-planning-network/waymark/history/historytest"
	"github.com/xy-planning-network/waymark/logger"
	"github.com/xy-planning-network/waymark/route"
	"github.com/xy-planning-network/waymark/router"
)

// listen registers routes on a MockHistory and returns the callback it was handed.
func listen(t *testing.T, routes []route.Route, notFound func(waymark.URL), opts ...router.ListenOption) func(waymark.URL) {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := historytest.NewMockHistory(ctrl)

	var cb func(waymark.URL)
	h.EXPECT().
		RegisterForNavigatedCallback(gomock.Any()).
		Do(func(fn func(waymark.URL)) { cb = fn }).
		Times(1)

	router.StartListening(h, routes, notFound, opts...)
	require.NotNil(t, cb)
	return cb
}

func TestStartListeningFirstMatchWins(t *testing.T) {
	// Arrange
	var calls []string
	routes := []route.Route{
		route.Empty.Fixed("product", "new").ToRoute(func() { calls = append(calls, "new") }),
		route.ExtendInt(route.StringAs(route.Empty.Fixed("product"), func(s string) string { return s }),
			func(name string, id int) string { return name }).
			ToRoute(func(string) { calls = append(calls, "never") }),
		route.String(route.Empty.Fixed("product")).ToRoute(func(name string) { calls = append(calls, "product:"+name) }),
	}
	var missed []string
	cb := listen(t, routes, func(u waymark.URL) { missed = append(missed, u.String()) })

	// Act
	cb(waymark.MustParseURL("/product/new"))
	cb(waymark.MustParseURL("/product/toy"))
	cb(waymark.MustParseURL("/product/toy"))
	cb(waymark.MustParseURL("/nowhere"))

	// Assert
	require.Equal(t, []string{"new", "product:toy", "product:toy"}, calls)
	require.Equal(t, []string{"/nowhere"}, missed)
}

func TestStartListeningNilNotFound(t *testing.T) {
	// Arrange
	var called int
	cb := listen(t, []route.Route{route.Empty.ToRoute(func() { called++ })}, nil)

	// Act + Assert
	require.NotPanics(t, func() { cb(waymark.MustParseURL("/unknown")) })
	require.Zero(t, called)
}

func TestStartListeningCopiesRoutes(t *testing.T) {
	// Arrange
	var called int
	routes := []route.Route{route.Empty.Fixed("a").ToRoute(func() { called++ })}
	cb := listen(t, routes, nil)

	// Act
	routes[0] = route.Empty.Fixed("b").ToRoute(func() {})
	cb(waymark.MustParseURL("/a"))

	// Assert
	require.Equal(t, 1, called)
}

func TestStartListeningPanicsPropagate(t *testing.T) {
	// Arrange
	cb := listen(t, []route.Route{route.Empty.ToRoute(func() { panic("boom") })}, nil)

	// Act + Assert
	require.PanicsWithValue(t, "boom", func() { cb(waymark.MustParseURL("/")) })
}

func TestStartListeningObserverAndLogger(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.NewStdLogger(logger.WithLogger(log.New(b, "", 0)), logger.WithLevel(logger.LogLevelDebug))

	type observed struct {
		url     string
		matched bool
	}
	var seen []observed
	obs := func(u waymark.URL, matched bool) { seen = append(seen, observed{u.String(), matched}) }

	cb := listen(
		t,
		[]route.Route{route.Empty.Fixed("home").ToRoute(func() {})},
		nil,
		router.WithLogger(l),
		router.WithObserver(obs),
		router.WithObserver(nil),
	)

	// Act
	cb(waymark.MustParseURL("/home"))
	cb(waymark.MustParseURL("/away"))

	// Assert
	require.Equal(t, []observed{{"/home", true}, {"/away", false}}, seen)
	require.Contains(t, b.String(), "matched route")
	require.Contains(t, b.String(), "/home")
	require.Contains(t, b.String(), "no route matched")
}

func TestStartListeningWithDispatcher(t *testing.T) {
	// Arrange
	rec := dispatch.NewRecorder()
	p := newProductNavigator(rec)
	h := history.NewMemory(waymark.MustParseURL("/products/toy/7"))
	router.StartListeningWithDispatcher(h, p.Routes(), rec)

	// Act
	h.RaiseNavigateToForCurrentLocation()
	h.NavigateTo(waymark.MustParseURL("/products/toy/seven"))
	h.NavigateTo(waymark.MustParseURL("/products"))
	h.NavigateTo(waymark.MustParseURL("/products"))

	// Assert
	require.Equal(t, []dispatch.Action{
		showProduct{Name: "toy", ID: 7},
		router.InvalidRoute{URL: waymark.MustParseURL("/products/toy/seven")},
		showHome{},
		showHome{},
	}, rec.Actions())
}

func TestStartListeningPanics(t *testing.T) {
	// Arrange
	h := history.NewMemory(waymark.URL{})

	// Act + Assert
	require.Panics(t, func() { router.StartListening(nil, nil, nil) })
	require.Panics(t, func() { router.StartListeningWithDispatcher(h, nil, nil) })
}

func TestInvalidRouteKind(t *testing.T) {
	require.Equal(t, router.InvalidRouteKind, router.InvalidRoute{}.Kind())
}
