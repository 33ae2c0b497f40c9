package policy

import (
	"context"

	"github.com/bookden/bookden/core"
)

// employeeRule is one row of the employee table. Rows are evaluated in
// order; the first row whose shape matches, whose role gate passes and
// whose resolve (if any) holds wins. A row that matches in shape but
// fails its gate or resolve falls through to later rows.
//
// resolve is the only part allowed to touch the data store, so the
// cheap checks in front of it keep lookups off rows that cannot apply.
type employeeRule struct {
	name    string
	applies func(desc core.OperationDescriptor) bool
	roles   []core.Role
	resolve func(ctx context.Context, s *service, employee core.Employee, desc core.OperationDescriptor) (bool, error)
}

type customerRule struct {
	name    string
	applies func(desc core.OperationDescriptor) bool
	resolve func(ctx context.Context, s *service, customer core.Customer, desc core.OperationDescriptor) (bool, error)
}

func opIn(op core.OperationKind, ops ...core.OperationKind) bool {
	for _, o := range ops {
		if o == op {
			return true
		}
	}
	return false
}

func entityIn(entity core.EntityKind, kinds ...core.EntityKind) bool {
	for _, k := range kinds {
		if k == entity {
			return true
		}
	}
	return false
}

func roleIn(role core.Role, roles []core.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// worksAtTargetLocation holds when the descriptor is scoped by a shop
// or warehouse id and the employee is assigned exactly there.
func worksAtTargetLocation(ctx context.Context, s *service, employee core.Employee, desc core.OperationDescriptor) (bool, error) {
	if shopID, ok := desc.TargetIDOf(core.KindShop); ok {
		assigned, err := s.repository.GetShopOfEmployee(ctx, employee.ID)
		if err != nil {
			return false, err
		}
		return assigned != nil && *assigned == shopID, nil
	}
	if warehouseID, ok := desc.TargetIDOf(core.KindWarehouse); ok {
		assigned, err := s.repository.GetWarehouseOfEmployee(ctx, employee.ID)
		if err != nil {
			return false, err
		}
		return assigned != nil && *assigned == warehouseID, nil
	}
	return false, nil
}

// worksAtShopOwningOrder resolves the order's shop, then the
// employee's assignment. A missing order surfaces as not found.
func worksAtShopOwningOrder(ctx context.Context, s *service, employee core.Employee, desc core.OperationDescriptor) (bool, error) {
	orderID, ok := desc.TargetIDOf(core.KindOrder)
	if !ok {
		return false, nil
	}
	ownership, err := s.repository.GetOrderOwnership(ctx, orderID)
	if err != nil {
		return false, err
	}
	assigned, err := s.repository.GetShopOfEmployee(ctx, employee.ID)
	if err != nil {
		return false, err
	}
	return assigned != nil && *assigned == ownership.ShopID, nil
}

var employeeRules = []employeeRule{
	{
		name: "any employee reads warehouses",
		applies: func(desc core.OperationDescriptor) bool {
			return desc.Operation() == core.OpGet && desc.Entity() == core.KindWarehouse
		},
	},
	{
		name: "directors and managers curate the catalog",
		applies: func(desc core.OperationDescriptor) bool {
			return opIn(desc.Operation(), core.OpAdd, core.OpUpdate, core.OpDelete) &&
				entityIn(desc.Entity(), core.KindAuthor, core.KindProduct, core.KindBook)
		},
		roles: []core.Role{core.RoleDirector, core.RoleManager},
	},
	{
		name: "directors administer locations and staff",
		applies: func(desc core.OperationDescriptor) bool {
			switch {
			case desc.Operation() == core.OpGetOrAdd && desc.Entity() == core.KindAddress:
				return true
			case opIn(desc.Operation(), core.OpAdd, core.OpUpdate, core.OpDelete) &&
				entityIn(desc.Entity(), core.KindShop, core.KindWarehouse, core.KindEmployee):
				return true
			case desc.Operation() == core.OpGet && desc.Entity() == core.KindOrder &&
				desc.Target().Kind == core.TargetNone:
				return true
			}
			return false
		},
		roles: []core.Role{core.RoleDirector},
	},
	{
		name: "directors manage stock anywhere",
		applies: func(desc core.OperationDescriptor) bool {
			return opIn(desc.Operation(), core.OpGet, core.OpAdd, core.OpUpdate, core.OpDelete) &&
				desc.Entity() == core.KindProductCount
		},
		roles: []core.Role{core.RoleDirector},
	},
	{
		name: "staff handle stock where they work",
		applies: func(desc core.OperationDescriptor) bool {
			if !opIn(desc.Operation(), core.OpGet, core.OpUpdate) || desc.Entity() != core.KindProductCount {
				return false
			}
			_, isShop := desc.TargetIDOf(core.KindShop)
			_, isWarehouse := desc.TargetIDOf(core.KindWarehouse)
			return isShop || isWarehouse
		},
		roles:   []core.Role{core.RoleManager, core.RoleEmployee},
		resolve: worksAtTargetLocation,
	},
	{
		name: "directors read customers",
		applies: func(desc core.OperationDescriptor) bool {
			return desc.Operation() == core.OpGet && desc.Entity() == core.KindCustomer
		},
		roles: []core.Role{core.RoleDirector},
	},
	{
		name: "shop staff read their shop's orders",
		applies: func(desc core.OperationDescriptor) bool {
			if desc.Operation() != core.OpGet || desc.Entity() != core.KindOrder {
				return false
			}
			_, ok := desc.TargetIDOf(core.KindShop)
			return ok
		},
		resolve: worksAtTargetLocation,
	},
	{
		name: "staff update orders of their shop",
		applies: func(desc core.OperationDescriptor) bool {
			if desc.Operation() != core.OpUpdate || desc.Entity() != core.KindOrder {
				return false
			}
			_, ok := desc.TargetIDOf(core.KindOrder)
			return ok
		},
		roles:   []core.Role{core.RoleEmployee, core.RoleManager},
		resolve: worksAtShopOwningOrder,
	},
}

var customerRules = []customerRule{
	{
		name: "customers place their own orders",
		applies: func(desc core.OperationDescriptor) bool {
			return desc.Operation() == core.OpAdd && desc.Entity() == core.KindOrder &&
				desc.Target().Kind == core.TargetPayload
		},
		resolve: func(ctx context.Context, s *service, customer core.Customer, desc core.OperationDescriptor) (bool, error) {
			order, ok := desc.Target().Payload.(core.Order)
			if !ok {
				return false, nil
			}
			return order.CustomerID == customer.ID, nil
		},
	},
	{
		name: "customers read their own orders",
		applies: func(desc core.OperationDescriptor) bool {
			if desc.Operation() != core.OpGet || desc.Entity() != core.KindOrder {
				return false
			}
			_, ok := desc.TargetIDOf(core.KindOrder)
			return ok
		},
		resolve: func(ctx context.Context, s *service, customer core.Customer, desc core.OperationDescriptor) (bool, error) {
			orderID, _ := desc.TargetIDOf(core.KindOrder)
			ownership, err := s.repository.GetOrderOwnership(ctx, orderID)
			if err != nil {
				return false, err
			}
			return ownership.CustomerID == customer.ID, nil
		},
	},
	{
		name: "customers read their own profile",
		applies: func(desc core.OperationDescriptor) bool {
			if desc.Operation() != core.OpGet || desc.Entity() != core.KindCustomer {
				return false
			}
			_, ok := desc.TargetIDOf(core.KindCustomer)
			return ok
		},
		resolve: func(ctx context.Context, s *service, customer core.Customer, desc core.OperationDescriptor) (bool, error) {
			id, _ := desc.TargetIDOf(core.KindCustomer)
			return id == customer.ID, nil
		},
	},
	{
		name: "customers update their own profile",
		applies: func(desc core.OperationDescriptor) bool {
			if desc.Operation() != core.OpUpdate || desc.Entity() != core.KindCustomer {
				return false
			}
			_, ok := desc.TargetIDOf(core.KindCustomer)
			return ok
		},
		resolve: func(ctx context.Context, s *service, customer core.Customer, desc core.OperationDescriptor) (bool, error) {
			id, _ := desc.TargetIDOf(core.KindCustomer)
			return id == customer.ID, nil
		},
	},
}
