// Package http exposes the catalog and contact services as a JSON API.
//
// Routes:
//
//	GET  /                               service banner
//	GET  /health                         health and catalog size
//	GET  /packages[?type=]               package summaries
//	GET  /packages/slugs[?type=]         slugs for static generation
//	GET  /packages/stats                 counts and price statistics
//	GET  /packages/:slug                 full package
//	GET  /packages/:slug/meta            page metadata
//	GET  /packages/:slug/itinerary       plain-text itinerary download
//	GET  /types/:type/packages           listing for one retreat type
//	GET  /types/:type/packages/:slug     package scoped to a retreat type
//	GET  /calendar[?type=]               flattened departures
//	POST /contact                        submit an enquiry
//
// An unknown slug is a 404 with {"error":"package not found"}; it is never
// treated as a server error.
//
// Catalog responses carry an ETag derived from the catalog version and
// honour If-None-Match with 304 Not Modified.
package http
