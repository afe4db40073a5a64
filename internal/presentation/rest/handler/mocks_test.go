package handler

import (
	"context"

	"applepay-bridge/internal/domain/applepay"
	"applepay-bridge/internal/domain/authorization_record"

	"github.com/stretchr/testify/mock"
)

// MockAuthorizationRecordRepository モック承認記録リポジトリ
type MockAuthorizationRecordRepository struct {
	mock.Mock
}

func (m *MockAuthorizationRecordRepository) Save(ctx context.Context, record *authorization_record.AuthorizationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAuthorizationRecordRepository) FindRecent(ctx context.Context, limit, offset int) ([]*authorization_record.AuthorizationRecord, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*authorization_record.AuthorizationRecord), args.Error(1)
}

func (m *MockAuthorizationRecordRepository) FindByCallbackID(ctx context.Context, callbackID string) (*authorization_record.AuthorizationRecord, error) {
	args := m.Called(ctx, callbackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authorization_record.AuthorizationRecord), args.Error(1)
}

// MockPaymentSheet モック決済シート
type MockPaymentSheet struct {
	mock.Mock
}

func (m *MockPaymentSheet) CanMakePayments(networks []applepay.PaymentNetwork, capability applepay.MerchantCapability) bool {
	args := m.Called(networks, capability)
	return args.Bool(0)
}

func (m *MockPaymentSheet) Present(ctx context.Context, request *applepay.PaymentRequest, delegate applepay.SheetDelegate) error {
	args := m.Called(ctx, request, delegate)
	return args.Error(0)
}

func (m *MockPaymentSheet) Dismiss(ctx context.Context) {
	m.Called(ctx)
}
