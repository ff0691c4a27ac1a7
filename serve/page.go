package serve

import (
	"github.com/rohanthewiz/element"
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/dispatch"
)

// Pages maps the Action dispatched for a request to the page rendering it.
type Pages = dispatch.Matcher[element.Component]

// A Layout is the HTML document a page is rendered into.
type Layout struct {
	Title string
	Body  element.Component
}

func (l Layout) Render(b *element.Builder) any {
	b.Html().R(
		b.Head().R(
			b.Title().T(l.Title),
		),
		b.Body().R(
			element.RenderComponents(b, l.Body),
		),
	)
	return nil
}

// A DefaultPage renders an Action no page is registered for.
type DefaultPage struct {
	Action dispatch.Action
	URL    waymark.URL
}

func (p DefaultPage) Render(b *element.Builder) any {
	b.H1().T(string(p.Action.Kind()))
	b.P().T(p.URL.String())
	return nil
}

// A NotFoundPage renders a location no route matched.
type NotFoundPage struct {
	URL waymark.URL
}

func (p NotFoundPage) Render(b *element.Builder) any {
	b.H1().T("Not Found")
	b.P().T("Nothing lives at " + p.URL.String())
	return nil
}
