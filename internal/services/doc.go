// Package services implements HTTP clients for the two remote APIs the sync pipeline spans.
//
// # Interfaces
//
// [AlbumSource] abstracts the photo listing side; [Board] abstracts the
// whiteboard creation side. The tasks engine depends only on these, keeping
// the pipeline testable with in-memory fakes.
//
// # Flickr Implementation
//
// [FlickrService] calls the Flickr REST endpoint with an API key query
// parameter. Album listings paginate at 500 records per page with an extras
// field requesting per-size direct URLs; pagination terminates when the
// photoset container disappears from the response or the reported page count
// is reached. Listing requests use a 30 second timeout.
//
// # Miro Implementation
//
// [MiroService] calls the Miro REST API v2 with an OAuth bearer token held in
// an [oauth2] transport configured once at construction. All creation calls
// share one retry wrapper: HTTP 429 sleeps a fixed two seconds and retries
// once, any other failure status logs the truncated error body and fails
// immediately. Creation requests use a 60 second timeout.
//
// Grouping tolerates schema drift in the groups endpoint by attempting an
// ordered list of payload shapes, coercing digit-string identifiers to
// integers for the first variant.
//
// # Error Handling
//
// Services use typed errors from shared package:
//   - [shared.ErrAPIRequest] : HTTP request or status failure
//   - [shared.ErrRetriesExhausted] : rate-limit retries used up
//   - [shared.ErrAlbumNotFound] : album ID rejected by the source
package services
