// Package auth authenticates API requests with access tokens issued by the
// Auth0 tenant named in the active profile.
//
// A request is accepted when its "Authorization: Bearer <token>" header holds
// a token that is signed by one of the tenant's published keys, was issued by
// the tenant for the profile's audience, has not expired and, when a
// permission is required, lists that permission in its "permissions" claim.
//
// Failures are reported as [*Error] values carrying a machine-readable code,
// a description and the HTTP status to answer with.
package auth
