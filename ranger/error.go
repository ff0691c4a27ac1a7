package ranger

import "github.com/xy-planning-network/waymark"

// ErrBadConfig is returned by New when a RangerOption fails.
var ErrBadConfig = waymark.ErrBadConfig
