// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API of the editor back end. Request tracing, access logging and response
// compression are handled in this package before requests are delegated to
// the service layer. Live notifications are pushed over a websocket.
package http
