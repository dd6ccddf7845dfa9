// Package auth is the identity gate of the portal.
//
// # Registration
//
// Register stores an inactive account holding a single use verification token
// and sends the verification link through a notify.Sender. VerifyEmail activates
// the account and clears the token, so a link works exactly once.
// ResendVerification replaces the token of a still pending account.
//
// # Tokens
//
// Login issues an HS256 signed bearer token carrying user id and username.
// Authenticate parses the Authorization header and tells expired tokens apart
// from invalid ones. The signing secret comes from the configuration or, when
// empty, is generated once and kept in the settings table.
//
// # Authorization
//
// There is a single admin: the account whose username equals the configured
// admin username. RequireAuth and RequireAdmin guard fiber routes.
package auth
