/*
Package waymark holds the values every other waymark package routes with:
[Segment], [URL] and [QueryString].

A [URL] is never matched by its raw text.
Its path is broken into [Segment]s, which are never blank and carry no surrounding whitespace,
and its query, if any, is parsed into a [QueryString] that keeps the exact order and form of its entries.

	u, err := waymark.ParseURL("/product/toy/123?page=2&preview")
	// u.Len() == 3
	// u.Query().IntValue("page") == 2, true
	// u.String() == "/product/toy/123?page=2&preview"

Routes are declared and matched with package route,
combined and driven from a browsing history with package router,
and the history itself is abstracted by package history.
*/
package waymark
