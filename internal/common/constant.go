package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token on
// protected requests.
const AuthorizationHeaderName = "Authorization"

// BearerSchemePrefix precedes the access token in the Authorization header.
const BearerSchemePrefix = "Bearer "
