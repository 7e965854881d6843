package model

import "github.com/golang-jwt/jwt/v5"

// ServiceClaims authenticates internal callers of the query facade. Subject is
// the calling service name.
type ServiceClaims struct {
	jwt.RegisteredClaims
}
