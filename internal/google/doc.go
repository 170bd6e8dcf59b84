// Package google handles OAuth2 credential bootstrapping for the Google
// Slides API.
//
// Authentication uses a pre-provisioned refresh token: the three secrets
// GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET and GOOGLE_REFRESH_TOKEN must be
// present in the environment before the server starts. A missing secret is
// a fatal startup condition, never a per-call error.
package google
