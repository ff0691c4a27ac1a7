/*
Package ranger initializes and manages a waymark host with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type.
A [Ranger] ought to be constructed with [New] for the [serve.App] it hosts.

[*Ranger.Guide] begins the web server.
By default, [*Ranger.Guide] listens on [DefaultHost][DefaultPort] (localhost:3000).
Stop that web server with [*Ranger.Shutdown],
call the context.CancelFunc returned by [*Ranger.Cancel],
or send a signal [*Ranger.Guide] listens for.

# Configuration

A developer configures a waymark host through environment variables and [RangerOption]s.
Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - BASE_PATH: the segments every route of the application is declared under; cf. [BasePath]
  - CORS_ORIGIN: the origin allowed to make cross-origin requests; default: none
  - ENVIRONMENT: the environment the application is running in; cf. [waymark.Environment]
  - HOST: the host the application is running on; default: localhost
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - NAVIGATION_BURST: the navigations, following redirects, one request may take at once; default: 8
  - NAVIGATION_RATE: the navigations a second one request may take after its burst; default: 1
  - PORT: the port the application should listen on; default: :3000
  - SENTRY_DSN: the DSN to report errors and panics to; default: none
  - SERVER_IDLE_TIMEOUT: the timeout, as understood by [time.ParseDuration], for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout, as understood by [time.ParseDuration], for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout, as understood by [time.ParseDuration], for writing HTTP responses; default: 5s
*/
package ranger
