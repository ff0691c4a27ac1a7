package link_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rohanthewiz/element"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/history"
	"github.com/xy-planning-network/waymark/history/historytest"
	"github.com/xy-planning-network/waymark/link"
)

func TestClassify(t *testing.T) {
	tcs := []struct {
		name          string
		link          string
		current       string
		caseSensitive bool
		expected      link.Classification
	}{
		{"Same", "/home", "/home", false, link.Selected},
		{"Same-Ignoring-Query", "/home", "/home?tab=2", false, link.Selected},
		{"Parent", "/home", "/home/info", false, link.Ancestor},
		{"Grandparent", "/home", "/home/info/more", false, link.Ancestor},
		{"Root-Is-Ancestor", "/", "/home", false, link.Ancestor},
		{"Root-Is-Selected", "/", "/", false, link.Selected},
		{"Child", "/home/info", "/home", false, link.None},
		{"Sibling", "/home/info", "/home/about", false, link.None},
		{"Case-Insensitive", "/Home", "/home/info", false, link.Ancestor},
		{"Case-Sensitive", "/Home", "/home/info", true, link.None},
		{"Case-Sensitive-Same", "/home", "/home", true, link.Selected},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual := link.Classify(waymark.MustParseURL(tc.link), waymark.MustParseURL(tc.current), tc.caseSensitive)

			// Assert
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestShouldIntercept(t *testing.T) {
	tcs := []struct {
		name     string
		click    link.Click
		target   string
		expected bool
	}{
		{"Primary", link.Click{}, "", true},
		{"Self", link.Click{}, "_self", true},
		{"Self-Any-Case", link.Click{}, " _SELF ", true},
		{"Blank", link.Click{}, "_blank", false},
		{"Named-Frame", link.Click{}, "preview", false},
		{"Middle", link.Click{Button: 1}, "", false},
		{"Secondary", link.Click{Button: 2}, "", false},
		{"Alt", link.Click{Alt: true}, "", false},
		{"Ctrl", link.Click{Ctrl: true}, "", false},
		{"Meta", link.Click{Meta: true}, "", false},
		{"Shift", link.Click{Shift: true}, "", false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, link.ShouldIntercept(tc.click, tc.target))
		})
	}
}

func TestLinkClassName(t *testing.T) {
	tcs := []struct {
		name     string
		current  string
		expected string
	}{
		{"Selected", "/products", "nav selected"},
		{"Ancestor", "/products/toy/1", "nav open"},
		{"None", "/admin", "nav"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			l := link.Link{
				URL:           waymark.MustParseURL("/products"),
				Class:         "nav",
				AncestorClass: "open",
				SelectedClass: "selected",
				History:       history.NewMemory(waymark.MustParseURL(tc.current)),
			}

			// Act + Assert
			require.Equal(t, tc.expected, l.ClassName())
		})
	}

	require.Equal(t, link.None, link.Link{URL: waymark.MustParseURL("/")}.Classification())
}

func TestLinkRender(t *testing.T) {
	// Arrange
	l := link.Link{
		URL:           waymark.MustParseURL("/products/toy"),
		Text:          "Toy",
		Target:        "_self",
		SelectedClass: "selected",
		History:       history.NewMemory(waymark.MustParseURL("/products/toy")),
	}
	b := element.NewBuilder()

	// Act
	element.RenderComponents(b, l)
	html := b.String()

	// Assert
	require.Contains(t, html, "<a")
	require.Contains(t, html, "/products/toy")
	require.Contains(t, html, "_self")
	require.Contains(t, html, "selected")
	require.Contains(t, html, "Toy")
}

func TestLinkHandleClick(t *testing.T) {
	u := waymark.MustParseURL("/products")

	t.Run("Intercepted", func(t *testing.T) {
		// Arrange
		ctrl := gomock.NewController(t)
		h := historytest.NewMockHistory(ctrl)
		h.EXPECT().NavigateTo(u).Times(1)

		var clicks int
		l := link.Link{URL: u, History: h, OnClick: func(link.Click) { clicks++ }}

		// Act
		navigated := l.HandleClick(link.Click{})

		// Assert
		require.True(t, navigated)
		require.Equal(t, 1, clicks)
	})

	t.Run("Left-To-Browser", func(t *testing.T) {
		// Arrange
		ctrl := gomock.NewController(t)
		h := historytest.NewMockHistory(ctrl)

		var clicks int
		l := link.Link{URL: u, History: h, Target: "_blank", OnClick: func(link.Click) { clicks++ }}

		// Act
		navigated := l.HandleClick(link.Click{})

		// Assert
		require.False(t, navigated)
		require.Equal(t, 1, clicks)
	})

	t.Run("No-History", func(t *testing.T) {
		require.False(t, link.Link{URL: u}.HandleClick(link.Click{}))
	})
}

func TestClassificationString(t *testing.T) {
	require.Equal(t, "none", link.None.String())
	require.Equal(t, "ancestor", link.Ancestor.String())
	require.Equal(t, "selected", link.Selected.String())
}
