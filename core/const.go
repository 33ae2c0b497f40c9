package core

const (
	TokenCtxKey     = "bd-token"
	RequesterCtxKey = "bd-requester"
)

// OperationKind is the action half of an operation descriptor
type OperationKind int

const (
	OpUnknown OperationKind = iota
	OpGet
	OpGetOrAdd
	OpAdd
	OpUpdate
	OpDelete
)

func (o OperationKind) IsValid() bool {
	return o > OpUnknown && o <= OpDelete
}

func (o OperationKind) String() string {
	switch o {
	case OpGet:
		return "Get"
	case OpGetOrAdd:
		return "GetOrAdd"
	case OpAdd:
		return "Add"
	case OpUpdate:
		return "Update"
	case OpDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// EntityKind is the target half of an operation descriptor
type EntityKind int

const (
	KindUnknown EntityKind = iota
	KindAddress
	KindAuthor
	KindBook
	KindProduct
	KindCustomer
	KindEmployee
	KindOrder
	KindShop
	KindWarehouse
	KindProductCount
)

func (e EntityKind) IsValid() bool {
	return e > KindUnknown && e <= KindProductCount
}

func (e EntityKind) String() string {
	switch e {
	case KindAddress:
		return "Address"
	case KindAuthor:
		return "Author"
	case KindBook:
		return "Book"
	case KindProduct:
		return "Product"
	case KindCustomer:
		return "Customer"
	case KindEmployee:
		return "Employee"
	case KindOrder:
		return "Order"
	case KindShop:
		return "Shop"
	case KindWarehouse:
		return "Warehouse"
	case KindProductCount:
		return "ProductCount"
	default:
		return "Unknown"
	}
}

// Role is an employee's job title.
// Titles are stored as free text; anything unrecognized parses to
// RoleUnknown and matches no policy rule.
type Role int

const (
	RoleUnknown Role = iota
	RoleEmployee
	RoleManager
	RoleDirector
)

func ParseRole(title string) Role {
	switch title {
	case "Director":
		return RoleDirector
	case "Manager":
		return RoleManager
	case "Employee":
		return RoleEmployee
	default:
		return RoleUnknown
	}
}

func (r Role) String() string {
	switch r {
	case RoleDirector:
		return "Director"
	case RoleManager:
		return "Manager"
	case RoleEmployee:
		return "Employee"
	default:
		return "Unknown"
	}
}

// order statuses
const (
	OrderStatusPlaced    = "placed"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)
