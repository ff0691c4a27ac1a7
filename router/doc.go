/*
Package router resolves navigations against a set of declared routes.

A [Navigator] declares routes together with the [dispatch.Action] each produces
and hands back the URL generator for each route, so a route and the links to it are declared side by side.
Navigators nest: a section Navigator constructed with parent segments prefixes every route it declares,
and a parent Navigator absorbs a section's routes through [Navigator.PullInRoutesFrom].

[StartListening] wires the combined routes to a [history.History].
Every navigation is matched against the routes in the order they were declared;
the first route to match wins and no other route is tried.
Unmatched navigations go to a fallback, or, with [StartListeningWithDispatcher],
are dispatched as an [InvalidRoute].

	root, _ := router.NewNavigator(d)
	home := root.AddRelativeRoute(route.Empty, ShowHome{}, func() waymark.URL { return root.MustGetPath() })
	router.StartListeningWithDispatcher(h, root.Routes(), d)
	h.RaiseNavigateToForCurrentLocation()
*/
package router
