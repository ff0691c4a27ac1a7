/*
Package history abstracts the browsing history that routes are matched against.

Routing never reads the address bar, or any other real source of locations, directly.
It only goes through a [History]:
it registers a callback for navigations, and it raises the current location once at start-up.

[Memory] is the in-memory [History] used by tests and by the server host.
It can deliver navigations synchronously or, constructed [WithDeferred], from its own goroutine via [Memory.Run].
*/
package history
