/*
Package example declares a small shop as a waymark application.

The shop has a home page, a products section and an admin section,
each section declared by its own navigator under its own prefix:

	/
	/products
	/products/{name}/{id}?page={page}
	/admin
	/admin/users/{id}
	/admin/home, redirecting to /admin

[NewApp] hands the shop to package serve.
*/
package example
