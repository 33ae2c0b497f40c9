package core

import "fmt"

// PrincipalKind discriminates the two actor variants
type PrincipalKind string

const (
	PrincipalEmployee PrincipalKind = "employee"
	PrincipalCustomer PrincipalKind = "customer"
)

// Principal is the authenticated actor behind a request.
// Only the token codec constructs one; it is never built from
// untrusted input directly.
type Principal struct {
	Kind  PrincipalKind `json:"kind"`
	ID    uint          `json:"id"`
	Login string        `json:"login,omitempty"` // employee variant
	Email string        `json:"email,omitempty"` // customer variant
}

func EmployeePrincipal(id uint, login string) Principal {
	return Principal{Kind: PrincipalEmployee, ID: id, Login: login}
}

func CustomerPrincipal(id uint, email string) Principal {
	return Principal{Kind: PrincipalCustomer, ID: id, Email: email}
}

func (p Principal) String() string {
	switch p.Kind {
	case PrincipalEmployee:
		return fmt.Sprintf("employee/%d(%s)", p.ID, p.Login)
	case PrincipalCustomer:
		return fmt.Sprintf("customer/%d(%s)", p.ID, p.Email)
	default:
		return "unknown principal"
	}
}
