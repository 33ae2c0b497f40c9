package token

import "github.com/golang-jwt/jwt/v5"

const (
	ActorEmployee = "employee"
	ActorCustomer = "customer"
)

// Claims is the only supported claim shape. Subject carries the
// principal's numeric id in decimal; Actor discriminates the variant
// and decides which secondary claim is read.
type Claims struct {
	jwt.RegisteredClaims

	Actor string `json:"actor"`
	Login string `json:"login,omitempty"`
	Email string `json:"email,omitempty"`
}
