package example_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/dispatch"
	"github.com/xy-planning-network/waymark/example"
	"github.com/xy-planning-network/waymark/route"
	"github.com/xy-planning-network/waymark/router"
	"github.com/xy-planning-network/waymark/serve"
)

func intPtr(i int) *int { return &i }

func TestNavigatorsRoutes(t *testing.T) {
	// Arrange
	n, err := example.NewNavigators(dispatch.NewRecorder())
	require.Nil(t, err)

	// Act
	routes := n.Routes()

	// Assert
	patterns := make([]string, len(routes))
	for i, r := range routes {
		patterns[i] = r.String()
	}

	require.Equal(t, []string{
		"/",
		"/products",
		"/products/{}/{}",
		"/admin",
		"/admin/users/{}",
		"/admin/home",
	}, patterns)
}

func TestNavigatorsDispatch(t *testing.T) {
	tcs := []struct {
		url      string
		expected dispatch.Action
	}{
		{"/", example.ShowHome{}},
		{"/products", example.ShowProducts{}},
		{"/products/kite/1", example.ShowProduct{Name: "kite", ID: 1}},
		{"/products/kite/1?page=4", example.ShowProduct{Name: "kite", ID: 1, Page: intPtr(4)}},
		{"/products/kite/1?page=last", example.ShowProduct{Name: "kite", ID: 1}},
		{"/products/kite/one", router.InvalidRoute{URL: waymark.MustParseURL("/products/kite/one")}},
		{"/admin", example.ShowAdmin{}},
		{"/admin/users/9", example.ShowAdminUser{ID: 9}},
		{"/admin/home", example.Redirect{URL: waymark.MustParseURL("/admin")}},
		{"/admin/users", router.InvalidRoute{URL: waymark.MustParseURL("/admin/users")}},
	}

	for _, tc := range tcs {
		t.Run(tc.url, func(t *testing.T) {
			// Arrange
			rec := dispatch.NewRecorder()
			n, err := example.NewNavigators(rec)
			require.Nil(t, err)

			u := waymark.MustParseURL(tc.url)

			// Act
			if !router.Match(u, n.Routes()) {
				rec.Dispatch(router.InvalidRoute{URL: u})
			}

			// Assert
			actual, ok := rec.Last()
			require.True(t, ok)
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestNavigatorsGenerate(t *testing.T) {
	// Arrange
	base := []waymark.Segment{waymark.MustSegment("shop")}
	n, err := example.NewNavigators(dispatch.NewRecorder(), base...)
	require.Nil(t, err)

	// Act + Assert
	require.Equal(t, "/shop", n.Home().String())
	require.Equal(t, "/shop/products", n.Products.Index().String())
	require.Equal(t, "/shop/products/kite/1", n.Products.Product(route.T2[string, int]{V1: "kite", V2: 1}).String())
	require.Equal(t, "/shop/products/kite/1", n.Products.ProductPage("kite", 1, nil).String())
	require.Equal(t, "/shop/products/kite/1?page=2", n.Products.ProductPage("kite", 1, intPtr(2)).String())
	require.Equal(t, "/shop/admin/users/3", n.Admin.User(3).String())

	for _, u := range []waymark.URL{n.Home(), n.Products.Index(), n.Products.ProductPage("kite", 1, intPtr(2)), n.Admin.User(3)} {
		require.True(t, router.Match(u, n.Routes()), u.String())
	}

	require.False(t, router.Match(waymark.MustParseURL("/products"), n.Routes()))
}

func TestNavigatorsNilDispatcher(t *testing.T) {
	_, err := example.NewNavigators(nil)
	require.ErrorIs(t, err, waymark.ErrMissingData)
}

func TestApp(t *testing.T) {
	tcs := []struct {
		name     string
		target   string
		status   int
		contains []string
	}{
		{"Home", "/", http.StatusOK, []string{"Welcome to the shop", "selected"}},
		{"Products", "/products", http.StatusOK, []string{"Products", "/products/kite/1", "yo-yo"}},
		{"Product", "/products/kite/1?page=2", http.StatusOK, []string{"kite", "Product #1, page 2", "/products/kite/1?page=3", "open"}},
		{"Admin-User", "/admin/users/5", http.StatusOK, []string{"User #5"}},
		{"Not-Found", "/nowhere", http.StatusNotFound, []string{"Not Found", "/nowhere"}},
		{"Redirect", "/admin/home", http.StatusFound, nil},
	}

	app, err := example.NewApp()
	require.Nil(t, err)
	s, err := serve.New(app)
	require.Nil(t, err)

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()

			// Act
			s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.target, nil))

			// Assert
			require.Equal(t, tc.status, w.Code)
			for _, str := range tc.contains {
				require.Contains(t, w.Body.String(), str)
			}
		})
	}
}
