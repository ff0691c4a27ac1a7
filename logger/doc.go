/*
Package logger provides logging to a waymark app by defining the required behavior in [Logger]
and providing an implementation of it with [StdLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, [StdLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*StdLogger.Warn], [*StdLogger.Error], and [*StdLogger.Fatal] produce messages.

# StdLogger

Log messages emitted by [StdLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2024/04/28 15:55:21 [DEBUG] waymark/router/combiner.go:43 'no route matched' log_context: {"navigation":"/nowhere"}

The log context is a JSON-encoded [*LogContext].
It carries data inessential to the message proper,
such as the URL being navigated to when the message was logged.

# SentryLogger

When SENTRY_DSN is set, [NewLogger] wraps the [StdLogger] in a [SentryLogger],
which additionally reports any [LogContext.Error] logged at warn or above.
*/
package logger
