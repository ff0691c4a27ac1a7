package example

import (
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/dispatch"
)

const (
	ShowHomeKind      dispatch.Kind = "ShowHome"
	ShowProductsKind  dispatch.Kind = "ShowProducts"
	ShowProductKind   dispatch.Kind = "ShowProduct"
	ShowAdminKind     dispatch.Kind = "ShowAdmin"
	ShowAdminUserKind dispatch.Kind = "ShowAdminUser"
	RedirectKind      dispatch.Kind = "Redirect"
)

type ShowHome struct{}

func (ShowHome) Kind() dispatch.Kind { return ShowHomeKind }

type ShowProducts struct{}

func (ShowProducts) Kind() dispatch.Kind { return ShowProductsKind }

// ShowProduct shows page Page, if set, of the product Name with ID.
type ShowProduct struct {
	Name string
	ID   int
	Page *int
}

func (ShowProduct) Kind() dispatch.Kind { return ShowProductKind }

type ShowAdmin struct{}

func (ShowAdmin) Kind() dispatch.Kind { return ShowAdminKind }

type ShowAdminUser struct {
	ID int
}

func (ShowAdminUser) Kind() dispatch.Kind { return ShowAdminUserKind }

// A Redirect navigates on to URL once dispatched.
type Redirect struct {
	URL waymark.URL
}

func (Redirect) Kind() dispatch.Kind { return RedirectKind }

func (r Redirect) RedirectTo() waymark.URL { return r.URL }
