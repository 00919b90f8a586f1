package server

import "errors"

// errNoHTTPServer is returned by NewServer when there is no HTTP handler or
// no address to listen on.
var errNoHTTPServer = errors.New("http server is not configured")
