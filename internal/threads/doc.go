// Package threads wraps the parts of the Threads Graph API the CLI needs:
// publishing a text post, reading the authenticated profile, and listing the
// most recent posts.
//
// Every request is authenticated with a bearer token. Failures are returned as
// errors tagged with services.ErrRemote (API and transport failures) or
// services.ErrValidation (bad input caught before any request). The client does
// not retry or cache.
package threads
