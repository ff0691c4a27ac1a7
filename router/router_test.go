package router_test

import (
	"strconv"

	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/dispatch"
	"github.com/xy-planning-network/waymark/route"
	"github.com/xy-planning-network/waymark/router"
)

type showHome struct{}

func (showHome) Kind() dispatch.Kind { return "ShowHome" }

type showProduct struct {
	Name string
	ID   int
	Page *int
}

func (showProduct) Kind() dispatch.Kind { return "ShowProduct" }

type showSearch struct{ Term string }

func (showSearch) Kind() dispatch.Kind { return "ShowSearch" }

// productNavigator declares the routes of the products section.
type productNavigator struct {
	*router.Navigator
	Home    func() waymark.URL
	Product func(route.T2[string, int]) waymark.URL
}

func newProductNavigator(d dispatch.Dispatcher) *productNavigator {
	n, err := router.NewNavigator(d, "products")
	if err != nil {
		panic(err)
	}

	p := &productNavigator{Navigator: n}
	p.Home = n.AddRelativeRoute(route.Empty, showHome{}, func() waymark.URL { return n.MustGetPath() })
	p.Product = router.AddVariableRouteWithQuery(
		n,
		route.Tuple2(route.String(route.Empty), route.ParseInt),
		func(v route.T2[string, int], q *waymark.QueryString) dispatch.Action {
			a := showProduct{Name: v.V1, ID: v.V2}
			if page, ok := q.IntValue("page"); ok {
				a.Page = &page
			}

			return a
		},
		func(v route.T2[string, int]) waymark.URL { return n.MustGetPath(v.V1, strconv.Itoa(v.V2)) },
	)

	return p
}
