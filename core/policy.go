package core

// TargetKind tells how an operation descriptor is bound to a
// concrete instance.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetID
	TargetPayload
)

// Target binds a descriptor to the instance a request aims at.
// Entity may differ from the descriptor's own entity kind: a stock
// request is scoped by the shop or warehouse it reads, not by the
// ProductCount row itself.
type Target struct {
	Kind    TargetKind
	Entity  EntityKind
	ID      uint
	Payload any
}

// OperationDescriptor describes what a request attempts: an operation
// kind, an entity kind, and optionally the bound target. Built once at
// request construction and immutable afterwards.
type OperationDescriptor struct {
	operation OperationKind
	entity    EntityKind
	target    Target
}

func NewOperationDescriptor(op OperationKind, entity EntityKind) OperationDescriptor {
	if !op.IsValid() {
		panic("invalid operation kind")
	}
	if !entity.IsValid() {
		panic("invalid entity kind")
	}
	return OperationDescriptor{operation: op, entity: entity}
}

// WithTargetID returns a copy bound to an instance id of the given kind
func (d OperationDescriptor) WithTargetID(entity EntityKind, id uint) OperationDescriptor {
	if !entity.IsValid() {
		panic("invalid target entity kind")
	}
	d.target = Target{Kind: TargetID, Entity: entity, ID: id}
	return d
}

// WithTargetPayload returns a copy bound to a full entity payload
func (d OperationDescriptor) WithTargetPayload(entity EntityKind, payload any) OperationDescriptor {
	if !entity.IsValid() {
		panic("invalid target entity kind")
	}
	d.target = Target{Kind: TargetPayload, Entity: entity, Payload: payload}
	return d
}

func (d OperationDescriptor) Operation() OperationKind { return d.operation }
func (d OperationDescriptor) Entity() EntityKind       { return d.entity }
func (d OperationDescriptor) Target() Target           { return d.target }

// TargetIDOf returns the bound id when the descriptor targets an
// instance of the given kind by id.
func (d OperationDescriptor) TargetIDOf(entity EntityKind) (uint, bool) {
	if d.target.Kind == TargetID && d.target.Entity == entity {
		return d.target.ID, true
	}
	return 0, false
}

func (d OperationDescriptor) String() string {
	return d.operation.String() + " " + d.entity.String()
}
