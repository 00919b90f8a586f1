// Package utils holds small helpers shared by the HTTP server, the HTTP
// adapter and the services: JSON response writing and strict request
// decoding, a preconfigured resty client and an id generator.
package utils
