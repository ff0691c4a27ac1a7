/*
Package serve hosts a routed single-page application over HTTP.

A [*Server] answers every GET by resolving the requested location the same way the browser would:
the application's routes are declared against a fresh [dispatch.Recorder],
matched through an in-memory [history.Memory],
and the [dispatch.Action] they dispatch is rendered into a page.
Unmatched locations dispatch a [router.InvalidRoute] and are answered with a 404.

Each request passes through the Adapters a Server is configured with.
Navigations are counted with Prometheus and exposed under /metrics.
*/
package serve
