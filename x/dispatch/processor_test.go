package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/bookden/bookden/core"
	mock_core "github.com/bookden/bookden/core/mock"
)

func TestProcessorAuthorizesBeforeHandling(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	policy := mock_core.NewMockPolicyService(ctrl)

	request := core.NewGetByIDRequest[core.Warehouse](7)
	policy.EXPECT().CheckRule(gomock.Any(), "token", request.Descriptor()).Return(nil).Times(1)

	called := 0
	p := NewProcessor(policy, HandlerFunc[*core.GetByIDRequest[core.Warehouse], core.Warehouse](
		func(ctx context.Context, req *core.GetByIDRequest[core.Warehouse]) (core.Warehouse, error) {
			called++
			return core.Warehouse{ID: req.ID, Name: "Central"}, nil
		}))

	result, err := p.Process(ctx, "token", request)
	assert.NoError(t, err)
	assert.Equal(t, 1, called)
	assert.Equal(t, uint(7), result.ID)
}

func TestProcessorDenyNeverReachesHandler(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	policy := mock_core.NewMockPolicyService(ctrl)

	request := core.NewDeleteRequest[core.Shop](3)
	policy.EXPECT().CheckRule(gomock.Any(), "token", request.Descriptor()).Return(core.NewErrorPermissionDenied()).Times(1)

	p := NewProcessor(policy, HandlerFunc[*core.DeleteRequest[core.Shop], struct{}](
		func(ctx context.Context, req *core.DeleteRequest[core.Shop]) (struct{}, error) {
			t.Fatal("handler must not run on deny")
			return struct{}{}, nil
		}))

	_, err := p.Process(ctx, "token", request)
	assert.IsType(t, core.ErrorPermissionDenied{}, err)
}

func TestProcessorRejectsMissingToken(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	policy := mock_core.NewMockPolicyService(ctrl)

	p := NewProcessor(policy, HandlerFunc[*core.GetByIDRequest[core.Order], core.Order](
		func(ctx context.Context, req *core.GetByIDRequest[core.Order]) (core.Order, error) {
			return core.Order{}, nil
		}))

	_, err := p.Process(ctx, "", core.NewGetByIDRequest[core.Order](55))
	assert.IsType(t, core.ErrorAuthentication{}, err)
}

func TestProcessorRejectsNilRequest(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	policy := mock_core.NewMockPolicyService(ctrl)

	p := NewProcessor(policy, HandlerFunc[*core.GetByIDRequest[core.Order], core.Order](
		func(ctx context.Context, req *core.GetByIDRequest[core.Order]) (core.Order, error) {
			return core.Order{}, nil
		}))

	_, err := p.Process(ctx, "token", nil)
	assert.IsType(t, core.ErrorInvalidArgument{}, err)
}

// Validation runs before authorization: a malformed request never
// reaches the policy engine (no CheckRule expectation set).
func TestProcessorValidatesBeforeAuthorizing(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	policy := mock_core.NewMockPolicyService(ctrl)

	p := NewProcessor(policy, HandlerFunc[*core.DeleteRequest[core.Shop], struct{}](
		func(ctx context.Context, req *core.DeleteRequest[core.Shop]) (struct{}, error) {
			return struct{}{}, nil
		}))

	_, err := p.Process(ctx, "token", &core.DeleteRequest[core.Shop]{})
	assert.IsType(t, core.ErrorInvalidArgument{}, err)
}

func TestProcessorCancelledAtEntry(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ctrl := gomock.NewController(t)
	policy := mock_core.NewMockPolicyService(ctrl)

	p := NewProcessor(policy, HandlerFunc[*core.GetByIDRequest[core.Order], core.Order](
		func(ctx context.Context, req *core.GetByIDRequest[core.Order]) (core.Order, error) {
			return core.Order{}, nil
		}))

	_, err := p.Process(ctx, "token", core.NewGetByIDRequest[core.Order](55))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPublicProcessorSkipsPolicy(t *testing.T) {
	ctx := context.Background()

	p := NewPublicProcessor(HandlerFunc[*core.ListRequest[core.Book], []core.Book](
		func(ctx context.Context, req *core.ListRequest[core.Book]) ([]core.Book, error) {
			return []core.Book{{ISBN: "9784101010014"}}, nil
		}))

	books, err := p.Process(ctx, core.NewListRequest[core.Book](10, 0))
	assert.NoError(t, err)
	assert.Len(t, books, 1)
}
