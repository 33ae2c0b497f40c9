package core

// Request is any typed request value a processor can carry. The
// descriptor is built once at construction; its entity kind is derived
// from the request's type parameter and can never drift from the
// payload type.
type Request interface {
	Descriptor() OperationDescriptor
}

// Validatable requests get their shape checked before authorization
type Validatable interface {
	Validate() error
}

// DomainEntity ties a request's type parameter to its entity kind
type DomainEntity interface {
	EntityKind() EntityKind
}

func kindOf[T DomainEntity]() EntityKind {
	var zero T
	return zero.EntityKind()
}

// GetByIDRequest reads one instance by id
type GetByIDRequest[T DomainEntity] struct {
	ID         uint
	descriptor OperationDescriptor
}

func NewGetByIDRequest[T DomainEntity](id uint) *GetByIDRequest[T] {
	kind := kindOf[T]()
	return &GetByIDRequest[T]{
		ID:         id,
		descriptor: NewOperationDescriptor(OpGet, kind).WithTargetID(kind, id),
	}
}

func (r *GetByIDRequest[T]) Descriptor() OperationDescriptor { return r.descriptor }

func (r *GetByIDRequest[T]) Validate() error {
	if r.ID == 0 {
		return NewErrorInvalidArgument("id is required")
	}
	return nil
}

// ListRequest reads a page of instances, not bound to any target
type ListRequest[T DomainEntity] struct {
	Limit      int
	Offset     int
	descriptor OperationDescriptor
}

func NewListRequest[T DomainEntity](limit, offset int) *ListRequest[T] {
	return &ListRequest[T]{
		Limit:      limit,
		Offset:     offset,
		descriptor: NewOperationDescriptor(OpGet, kindOf[T]()),
	}
}

func (r *ListRequest[T]) Descriptor() OperationDescriptor { return r.descriptor }

func (r *ListRequest[T]) Validate() error {
	if r.Limit < 0 || r.Offset < 0 {
		return NewErrorInvalidArgument("limit and offset must not be negative")
	}
	return nil
}

// ScopedListRequest reads instances scoped by another entity's id,
// e.g. orders of a shop or stock rows of a warehouse.
type ScopedListRequest[T DomainEntity] struct {
	ScopeID    uint
	Limit      int
	Offset     int
	descriptor OperationDescriptor
}

func NewScopedListRequest[T DomainEntity](scope EntityKind, scopeID uint, limit, offset int) *ScopedListRequest[T] {
	return &ScopedListRequest[T]{
		ScopeID:    scopeID,
		Limit:      limit,
		Offset:     offset,
		descriptor: NewOperationDescriptor(OpGet, kindOf[T]()).WithTargetID(scope, scopeID),
	}
}

func (r *ScopedListRequest[T]) Descriptor() OperationDescriptor { return r.descriptor }

func (r *ScopedListRequest[T]) Validate() error {
	if r.ScopeID == 0 {
		return NewErrorInvalidArgument("scope id is required")
	}
	if r.Limit < 0 || r.Offset < 0 {
		return NewErrorInvalidArgument("limit and offset must not be negative")
	}
	return nil
}

// AddRequest creates a new instance from a full payload
type AddRequest[T DomainEntity] struct {
	Payload    T
	descriptor OperationDescriptor
}

func NewAddRequest[T DomainEntity](payload T) *AddRequest[T] {
	kind := kindOf[T]()
	return &AddRequest[T]{
		Payload:    payload,
		descriptor: NewOperationDescriptor(OpAdd, kind).WithTargetPayload(kind, payload),
	}
}

func (r *AddRequest[T]) Descriptor() OperationDescriptor { return r.descriptor }

// GetOrAddRequest returns an existing matching instance or creates one
type GetOrAddRequest[T DomainEntity] struct {
	Payload    T
	descriptor OperationDescriptor
}

func NewGetOrAddRequest[T DomainEntity](payload T) *GetOrAddRequest[T] {
	kind := kindOf[T]()
	return &GetOrAddRequest[T]{
		Payload:    payload,
		descriptor: NewOperationDescriptor(OpGetOrAdd, kind).WithTargetPayload(kind, payload),
	}
}

func (r *GetOrAddRequest[T]) Descriptor() OperationDescriptor { return r.descriptor }

// UpdateRequest replaces the instance with the given id
type UpdateRequest[T DomainEntity] struct {
	ID         uint
	Payload    T
	descriptor OperationDescriptor
}

func NewUpdateRequest[T DomainEntity](id uint, payload T) *UpdateRequest[T] {
	kind := kindOf[T]()
	return &UpdateRequest[T]{
		ID:         id,
		Payload:    payload,
		descriptor: NewOperationDescriptor(OpUpdate, kind).WithTargetID(kind, id),
	}
}

func (r *UpdateRequest[T]) Descriptor() OperationDescriptor { return r.descriptor }

func (r *UpdateRequest[T]) Validate() error {
	if r.ID == 0 {
		return NewErrorInvalidArgument("id is required")
	}
	return nil
}

// ScopedUpdateRequest updates an instance addressed through another
// entity's id, e.g. a stock row of a particular shop.
type ScopedUpdateRequest[T DomainEntity] struct {
	ScopeID    uint
	Payload    T
	descriptor OperationDescriptor
}

func NewScopedUpdateRequest[T DomainEntity](scope EntityKind, scopeID uint, payload T) *ScopedUpdateRequest[T] {
	return &ScopedUpdateRequest[T]{
		ScopeID:    scopeID,
		Payload:    payload,
		descriptor: NewOperationDescriptor(OpUpdate, kindOf[T]()).WithTargetID(scope, scopeID),
	}
}

func (r *ScopedUpdateRequest[T]) Descriptor() OperationDescriptor { return r.descriptor }

func (r *ScopedUpdateRequest[T]) Validate() error {
	if r.ScopeID == 0 {
		return NewErrorInvalidArgument("scope id is required")
	}
	return nil
}

// DeleteRequest removes the instance with the given id
type DeleteRequest[T DomainEntity] struct {
	ID         uint
	descriptor OperationDescriptor
}

func NewDeleteRequest[T DomainEntity](id uint) *DeleteRequest[T] {
	kind := kindOf[T]()
	return &DeleteRequest[T]{
		ID:         id,
		descriptor: NewOperationDescriptor(OpDelete, kind).WithTargetID(kind, id),
	}
}

func (r *DeleteRequest[T]) Descriptor() OperationDescriptor { return r.descriptor }

func (r *DeleteRequest[T]) Validate() error {
	if r.ID == 0 {
		return NewErrorInvalidArgument("id is required")
	}
	return nil
}
