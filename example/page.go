package example

import (
	"fmt"

	"github.com/rohanthewiz/element"
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/dispatch"
	"github.com/xy-planning-network/waymark/history"
	"github.com/xy-planning-network/waymark/link"
	"github.com/xy-planning-network/waymark/route"
	"github.com/xy-planning-network/waymark/serve"
)

// A product on the shelves of the shop.
type product struct {
	name string
	id   int
}

var shelves = []product{{"kite", 1}, {"yo-yo", 2}, {"top", 3}}

// nav renders the links to each section, classed by where current is.
type nav struct {
	current waymark.URL
	urls    *Navigators
}

func (n nav) Render(b *element.Builder) any {
	h := history.NewMemory(n.current)
	b.DivClass("nav").R(
		element.RenderComponents(b,
			link.Link{URL: n.urls.Home(), Text: "Home", SelectedClass: "selected", History: h},
			link.Link{URL: n.urls.Products.Index(), Text: "Products", AncestorClass: "open", SelectedClass: "selected", History: h},
			link.Link{URL: n.urls.Admin.Index(), Text: "Admin", AncestorClass: "open", SelectedClass: "selected", History: h},
		),
	)
	return nil
}

type homePage struct {
	urls *Navigators
}

func (p homePage) Render(b *element.Builder) any {
	element.RenderComponents(b, nav{current: p.urls.Home(), urls: p.urls})
	b.H1().T("Welcome to the shop")
	return nil
}

type productsPage struct {
	urls *Navigators
}

func (p productsPage) Render(b *element.Builder) any {
	element.RenderComponents(b, nav{current: p.urls.Products.Index(), urls: p.urls})
	b.H1().T("Products")
	for _, item := range shelves {
		b.P().R(
			element.RenderComponents(b, link.Link{
				URL:  p.urls.Products.Product(route.T2[string, int]{V1: item.name, V2: item.id}),
				Text: item.name,
			}),
		)
	}
	return nil
}

type productPage struct {
	a    ShowProduct
	urls *Navigators
}

func (p productPage) Render(b *element.Builder) any {
	page := 1
	if p.a.Page != nil {
		page = *p.a.Page
	}

	next := page + 1
	current := p.urls.Products.ProductPage(p.a.Name, p.a.ID, p.a.Page)

	element.RenderComponents(b, nav{current: current, urls: p.urls})
	b.H1().T(p.a.Name)
	b.P().T(fmt.Sprintf("Product #%d, page %d", p.a.ID, page))
	b.P().R(
		element.RenderComponents(b, link.Link{
			URL:  p.urls.Products.ProductPage(p.a.Name, p.a.ID, &next),
			Text: "Next page",
		}),
	)
	return nil
}

type adminPage struct {
	urls *Navigators
}

func (p adminPage) Render(b *element.Builder) any {
	element.RenderComponents(b, nav{current: p.urls.Admin.Index(), urls: p.urls})
	b.H1().T("Admin")
	return nil
}

type adminUserPage struct {
	a    ShowAdminUser
	urls *Navigators
}

func (p adminUserPage) Render(b *element.Builder) any {
	element.RenderComponents(b, nav{current: p.urls.Admin.User(p.a.ID), urls: p.urls})
	b.H1().T(fmt.Sprintf("User #%d", p.a.ID))
	return nil
}

// NewPages maps each Action of the shop to its page, linking with urls.
func NewPages(urls *Navigators) serve.Pages {
	var pages serve.Pages
	pages = dispatch.AddFor(pages, func(ShowHome) element.Component { return homePage{urls: urls} })
	pages = dispatch.AddFor(pages, func(ShowProducts) element.Component { return productsPage{urls: urls} })
	pages = dispatch.AddFor(pages, func(a ShowProduct) element.Component { return productPage{a: a, urls: urls} })
	pages = dispatch.AddFor(pages, func(ShowAdmin) element.Component { return adminPage{urls: urls} })
	pages = dispatch.AddFor(pages, func(a ShowAdminUser) element.Component { return adminUserPage{a: a, urls: urls} })
	return pages
}
