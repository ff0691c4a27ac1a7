// Package link renders anchors to routed URLs and decides which clicks on them
// are navigations for a [history.History] rather than for the browser.
package link
