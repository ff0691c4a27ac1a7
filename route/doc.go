/*
Package route declares URL patterns and matches URLs against them.

A pattern is a list of fixed segments, compared case-insensitively,
and variable segments, whose values are extracted by a [Parser].
Patterns are built from [Empty]:

	home := route.Empty.Fixed("home").ToRoute(func() { ... })

Adding the first variable segment turns a [Builder] into a [Vars],
whose type parameter is the value handed to the route's callback.
Each later variable segment folds its value into the one accumulated so far,
either into a custom value or into the tuples [T2] through [T8]:

	product := route.Tuple2(route.String(route.Empty.Fixed("product")), route.ParseInt).
		ToRoute(func(v route.T2[string, int]) { ... })

	product.ExecuteCallbackIfURLMatches(waymark.MustParseURL("/product/toy/123")) // true, v == {"toy", 123}

A [Route] matches a URL only if the URL has exactly as many segments as the pattern.
Values are folded and the callback called only after every segment has matched.

Routes and builders never change after construction and may be shared freely between goroutines.
Declaring a blank fixed segment or a nil parser, projection or callback is a programming error and panics.
*/
package route
