// Package http implements the HTTP transport layer of invite-cards.
//
// It wires the chi router, the JSON API handlers and the HTML/SVG pages
// served to browsers and link-preview crawlers. Cross-cutting concerns such
// as request tracing, access logging, response compression, per-IP rate
// limiting and the admin gate are handled here before requests are
// delegated to the service layer.
package http
