package service

import (
	"context"
	"testing"

	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/internal/core/ports/mocks"
	"wallet-admin-console/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupPinService(t *testing.T) (*PinServiceImpl, *mocks.MockPinBackend) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockPinBackend(ctrl)
	return NewPinService(backend, newTestLogger()), backend
}

func TestPinService_List(t *testing.T) {
	svc, backend := setupPinService(t)
	ctx := context.Background()
	sellerID := int64(4)

	backend.EXPECT().ListPins(ctx, ports.PinFilter{
		Page:     domain.PageRequest{Page: 1, PerPage: 25},
		SellerID: &sellerID,
		Status:   domain.PinStatusExpired,
	}).Return(&domain.Page[domain.Pin]{Items: []domain.Pin{
		{ID: 1, Status: domain.PinStatusExpired},
	}}, nil)

	page, err := svc.List(ctx, ports.PinFilter{SellerID: &sellerID, Status: "expired"})
	require.NoError(t, err)
	assert.True(t, page.Items[0].CanRefund())
}

func TestPinService_List_RejectsUnknownStatus(t *testing.T) {
	svc, _ := setupPinService(t)

	_, err := svc.List(context.Background(), ports.PinFilter{Status: "pending"})
	assert.True(t, apperror.HasCode(err, "VAL_001"))

	bad := int64(0)
	_, err = svc.List(context.Background(), ports.PinFilter{SellerID: &bad})
	assert.True(t, apperror.HasCode(err, "VAL_001"))
}

func TestPinService_Refund(t *testing.T) {
	svc, backend := setupPinService(t)
	ctx := context.Background()

	backend.EXPECT().RefundPin(ctx, int64(11), "customer request").Return(nil)
	require.NoError(t, svc.Refund(ctx, 11, "  customer request "))

	assert.True(t, apperror.HasCode(svc.Refund(ctx, 0, ""), "VAL_001"))
}

func TestPinService_Refund_LoserSeesUpstreamMessage(t *testing.T) {
	svc, backend := setupPinService(t)
	ctx := context.Background()

	backend.EXPECT().RefundPin(ctx, int64(11), "").Return(apperror.Backend(400, "PIN already refunded"))

	err := svc.Refund(ctx, 11, "")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PIN already refunded", appErr.Message)
}
