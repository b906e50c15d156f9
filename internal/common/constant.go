// Package common contains shared constants and sentinel errors used across
// memoryvault components.
package common

// AccessTokenHeaderName is the gRPC/HTTP metadata key used to carry the
// access token on inbound requests.
const AccessTokenHeaderName = "access_token"
