package example

import (
	"strconv"

	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/dispatch"
	"github.com/xy-planning-network/waymark/route"
	"github.com/xy-planning-network/waymark/router"
)

// ProductNavigator declares the products section.
type ProductNavigator struct {
	*router.Navigator

	Index   func() waymark.URL
	Product func(route.T2[string, int]) waymark.URL
}

// NewProductNavigator declares the products section under parents.
func NewProductNavigator(d dispatch.Dispatcher, parents ...string) (*ProductNavigator, error) {
	n, err := router.NewNavigator(d, append(parents[:len(parents):len(parents)], "products")...)
	if err != nil {
		return nil, err
	}

	p := &ProductNavigator{Navigator: n}
	p.Index = n.AddRelativeRoute(route.Empty, ShowProducts{}, func() waymark.URL { return n.MustGetPath() })
	p.Product = router.AddVariableRouteWithQuery(
		n,
		route.Tuple2(route.String(route.Empty), route.ParseInt),
		func(v route.T2[string, int], q *waymark.QueryString) dispatch.Action {
			a := ShowProduct{Name: v.V1, ID: v.V2}
			if page, ok := q.IntValue("page"); ok {
				a.Page = &page
			}

			return a
		},
		func(v route.T2[string, int]) waymark.URL { return n.MustGetPath(v.V1, strconv.Itoa(v.V2)) },
	)

	return p, nil
}

// ProductPage is the URL of page, if set, of the product name with id.
func (p *ProductNavigator) ProductPage(name string, id int, page *int) waymark.URL {
	u := p.Product(route.T2[string, int]{V1: name, V2: id})

	// the key is never blank
	u, _ = waymark.AddToQueryIfDefined(u, "page", page)
	return u
}

// AdminNavigator declares the admin section.
type AdminNavigator struct {
	*router.Navigator

	Index func() waymark.URL
	User  func(int) waymark.URL
}

// NewAdminNavigator declares the admin section under parents.
func NewAdminNavigator(d dispatch.Dispatcher, parents ...string) (*AdminNavigator, error) {
	n, err := router.NewNavigator(d, append(parents[:len(parents):len(parents)], "admin")...)
	if err != nil {
		return nil, err
	}

	a := &AdminNavigator{Navigator: n}
	a.Index = n.AddRelativeRoute(route.Empty, ShowAdmin{}, func() waymark.URL { return n.MustGetPath() })
	a.User = router.AddVariableRoute(
		n,
		route.Int(route.Empty.Fixed("users")),
		func(id int) dispatch.Action { return ShowAdminUser{ID: id} },
		func(id int) waymark.URL { return n.MustGetPath("users", id) },
	)
	n.AddRelativeRoute(route.Empty.Fixed("home"), Redirect{URL: a.Index()}, func() waymark.URL {
		return n.MustGetPath("home")
	})

	return a, nil
}

// Navigators declares the whole shop.
type Navigators struct {
	Home     func() waymark.URL
	Products *ProductNavigator
	Admin    *AdminNavigator

	all *router.Navigator
}

// NewNavigators declares the whole shop under base, dispatching through d.
func NewNavigators(d dispatch.Dispatcher, base ...waymark.Segment) (*Navigators, error) {
	parents := make([]string, len(base))
	for i, seg := range base {
		parents[i] = seg.String()
	}

	root, err := router.NewNavigator(d, parents...)
	if err != nil {
		return nil, err
	}

	n := &Navigators{}
	n.Home = root.AddRelativeRoute(route.Empty, ShowHome{}, func() waymark.URL { return root.MustGetPath() })

	if n.Products, err = NewProductNavigator(d, parents...); err != nil {
		return nil, err
	}

	if n.Admin, err = NewAdminNavigator(d, parents...); err != nil {
		return nil, err
	}

	// sections already carry base, so they are combined under no further prefix
	if n.all, err = router.NewNavigator(d); err != nil {
		return nil, err
	}

	n.all.PullInRoutesFrom(root)
	n.all.PullInRoutesFrom(n.Products.Navigator)
	n.all.PullInRoutesFrom(n.Admin.Navigator)

	return n, nil
}

// Routes returns every route of the shop in the order they are matched.
func (n *Navigators) Routes() []route.Route { return n.all.Routes() }
