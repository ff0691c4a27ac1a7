package link

import (
	"strings"

	"github.com/rohanthewiz/element"
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/history"
)

// A Classification relates a link's URL to the current location.
type Classification int

const (
	None Classification = iota
	Ancestor
	Selected
)

func (c Classification) String() string {
	switch c {
	case Ancestor:
		return "ancestor"
	case Selected:
		return "selected"
	default:
		return "none"
	}
}

// Classify relates link to current, comparing path segments only.
//
// link is Selected if it has the same segments as current
// and an Ancestor if its segments are a proper prefix of current's.
// Segments compare case-insensitively unless caseSensitive is set.
func Classify(link, current waymark.URL, caseSensitive bool) Classification {
	if current.Len() < link.Len() {
		return None
	}

	for i := 0; i < link.Len(); i++ {
		a, b := link.Segment(i).String(), current.Segment(i).String()
		same := strings.EqualFold(a, b)
		if caseSensitive {
			same = a == b
		}

		if !same {
			return None
		}
	}

	if current.Len() == link.Len() {
		return Selected
	}

	return Ancestor
}

// A Click is a mouse click on a link.
type Click struct {
	// Button is 0 for the primary button, however the mouse is handed.
	Button int
	Alt    bool
	Ctrl   bool
	Meta   bool
	Shift  bool
}

// ShouldIntercept asserts whether c on a link with target should navigate in place
// instead of being left to the browser, e.g., to open a new tab.
func ShouldIntercept(c Click, target string) bool {
	if c.Button != 0 || c.Alt || c.Ctrl || c.Meta || c.Shift {
		return false
	}

	target = strings.TrimSpace(target)
	return target == "" || strings.EqualFold(target, "_self")
}

// A Link is an anchor to URL, classed by how URL relates to the current location of History.
type Link struct {
	URL           waymark.URL
	Text          string
	CaseSensitive bool
	Name          string
	Target        string
	Class         string
	AncestorClass string
	SelectedClass string
	OnClick       func(Click)
	History       history.History
}

// Classification relates l.URL to the current location of l.History.
// Without a History, a Link is always None.
func (l Link) Classification() Classification {
	if l.History == nil {
		return None
	}

	return Classify(l.URL, l.History.CurrentLocation(), l.CaseSensitive)
}

// ClassName joins l.Class with l.AncestorClass or l.SelectedClass, as l.Classification calls for.
func (l Link) ClassName() string {
	classes := strings.Fields(l.Class)
	switch l.Classification() {
	case Ancestor:
		classes = append(classes, strings.Fields(l.AncestorClass)...)
	case Selected:
		classes = append(classes, strings.Fields(l.SelectedClass)...)
	}

	return strings.Join(classes, " ")
}

// Render writes l as an anchor.
func (l Link) Render(b *element.Builder) any {
	attrs := []string{"href", l.URL.String()}
	if name := strings.TrimSpace(l.Name); name != "" {
		attrs = append(attrs, "name", name)
	}

	if target := strings.TrimSpace(l.Target); target != "" {
		attrs = append(attrs, "target", target)
	}

	if class := l.ClassName(); class != "" {
		attrs = append(attrs, "class", class)
	}

	b.A(attrs...).T(l.Text)
	return nil
}

// HandleClick calls l.OnClick, if set, with c and then,
// if c should be intercepted, navigates l.History to l.URL.
// HandleClick reports whether it navigated,
// in which case the browser's default handling of c must be prevented.
func (l Link) HandleClick(c Click) bool {
	if l.OnClick != nil {
		l.OnClick(c)
	}

	if l.History == nil || !ShouldIntercept(c, l.Target) {
		return false
	}

	l.History.NavigateTo(l.URL)
	return true
}
