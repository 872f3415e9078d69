package service

import (
	"testing"

	"boutik/internal/config"
	"boutik/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCartService is a mock implementation of CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Add(token, productID string) ([]model.CartItem, error) {
	args := m.Called(token, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartItem), args.Error(1)
}

func (m *MockCartService) Remove(token, productID string) []model.CartItem {
	args := m.Called(token, productID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.CartItem)
}

func (m *MockCartService) SetQuantity(token, productID string, quantity int) []model.CartItem {
	args := m.Called(token, productID, quantity)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.CartItem)
}

func (m *MockCartService) Items(token string) []model.CartItem {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.CartItem)
}

func (m *MockCartService) Total(token string) float64 {
	args := m.Called(token)
	return args.Get(0).(float64)
}

func (m *MockCartService) Clear(token string) {
	m.Called(token)
}

var testShop = config.ShopConfig{
	AdminPIN:      "2025",
	OwnerPhone:    "+1 849-470-6077",
	DefaultSeller: "$emilien",
}

func testCartItems() []model.CartItem {
	return []model.CartItem{
		{Product: model.Product{ID: "1", Name: "Wòb Swa", Price: 100, Seller: "$marie"}, Quantity: 2},
		{Product: model.Product{ID: "2", Name: "Sandal Kwi", Price: 50, Seller: "$paul"}, Quantity: 1},
	}
}

func TestCheckoutService_Begin(t *testing.T) {
	const token = "session-1"

	tests := []struct {
		name           string
		method         model.PaymentMethod
		items          []model.CartItem
		expectError    bool
		expectedSeller string
		expectedLabel  string
		expectedValue  string
		expectedTotal  float64
	}{
		{
			name:           "Wise routes to the first line's seller",
			method:         model.PaymentWise,
			items:          testCartItems(),
			expectedSeller: "$marie",
			expectedLabel:  "Wise Tag / Tag Peman",
			expectedValue:  "$marie",
			expectedTotal:  250,
		},
		{
			name:           "Bank routes to the first line's seller",
			method:         model.PaymentBank,
			items:          testCartItems(),
			expectedSeller: "$marie",
			expectedLabel:  "Kont Bankè / Non Mèt",
			expectedValue:  "$marie",
			expectedTotal:  250,
		},
		{
			name:           "MonCash routes to the shop phone",
			method:         model.PaymentMonCash,
			items:          testCartItems(),
			expectedSeller: "$marie",
			expectedLabel:  "Nimewo MonCash",
			expectedValue:  "+1 849-470-6077",
			expectedTotal:  250,
		},
		{
			name:           "Empty cart falls back to the default seller",
			method:         model.PaymentWise,
			items:          nil,
			expectedSeller: "$emilien",
			expectedLabel:  "Wise Tag / Tag Peman",
			expectedValue:  "$emilien",
			expectedTotal:  0,
		},
		{
			name: "First line without seller tag falls back to the default",
			method: model.PaymentWise,
			items: []model.CartItem{
				{Product: model.Product{ID: "2", Price: 50}, Quantity: 1},
			},
			expectedSeller: "$emilien",
			expectedLabel:  "Wise Tag / Tag Peman",
			expectedValue:  "$emilien",
			expectedTotal:  50,
		},
		{
			name:        "Unknown method is rejected",
			method:      "Bitcoin",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCart := new(MockCartService)
			svc := NewCheckoutService(mockCart, testShop, zerolog.Nop())

			if !tt.expectError {
				mockCart.On("Items", token).Return(tt.items)
			}

			step, err := svc.Begin(token, tt.method)

			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, model.ErrInvalidPayment, err)
				assert.Nil(t, step)
				assert.Nil(t, svc.Current(token), "failed begin leaves the flow idle")
				return
			}

			require.NoError(t, err)
			require.NotNil(t, step)
			assert.Equal(t, tt.method, step.Method)
			assert.Equal(t, tt.expectedSeller, step.Seller)
			assert.Equal(t, tt.expectedTotal, step.Total)
			assert.Equal(t, tt.expectedLabel, step.Details.Label)
			assert.Equal(t, tt.expectedValue, step.Details.Value)
		})
	}
}

func TestCheckoutService_Begin_ReplacesCurrentStep(t *testing.T) {
	const token = "session-1"

	mockCart := new(MockCartService)
	mockCart.On("Items", token).Return(testCartItems())

	svc := NewCheckoutService(mockCart, testShop, zerolog.Nop())

	_, err := svc.Begin(token, model.PaymentWise)
	require.NoError(t, err)

	_, err = svc.Begin(token, model.PaymentMonCash)
	require.NoError(t, err)

	current := svc.Current(token)
	require.NotNil(t, current)
	assert.Equal(t, model.PaymentMonCash, current.Method)
}

func TestCheckoutService_Current(t *testing.T) {
	const token = "session-1"

	mockCart := new(MockCartService)
	mockCart.On("Items", token).Return(testCartItems())

	svc := NewCheckoutService(mockCart, testShop, zerolog.Nop())

	assert.Nil(t, svc.Current(token))
	assert.Nil(t, svc.Current("other-session"))

	step, err := svc.Begin(token, model.PaymentBank)
	require.NoError(t, err)

	current := svc.Current(token)
	require.NotNil(t, current)
	assert.Equal(t, *step, *current)
	assert.Nil(t, svc.Current("other-session"))
}

func TestCheckoutService_Complete(t *testing.T) {
	const token = "session-1"

	t.Run("Complete clears the cart and returns to idle", func(t *testing.T) {
		mockCart := new(MockCartService)
		mockCart.On("Items", token).Return(testCartItems())
		mockCart.On("Clear", token).Return()

		svc := NewCheckoutService(mockCart, testShop, zerolog.Nop())

		_, err := svc.Begin(token, model.PaymentWise)
		require.NoError(t, err)

		require.NoError(t, svc.Complete(token))

		assert.Nil(t, svc.Current(token))
		mockCart.AssertCalled(t, "Clear", token)
	})

	t.Run("Complete without a step in flight fails", func(t *testing.T) {
		mockCart := new(MockCartService)
		svc := NewCheckoutService(mockCart, testShop, zerolog.Nop())

		err := svc.Complete(token)
		require.Error(t, err)
		assert.Equal(t, model.ErrNoCheckoutInProgress, err)
		mockCart.AssertNotCalled(t, "Clear", token)
	})
}

func TestCheckoutService_Cancel(t *testing.T) {
	const token = "session-1"

	mockCart := new(MockCartService)
	mockCart.On("Items", token).Return(testCartItems())

	svc := NewCheckoutService(mockCart, testShop, zerolog.Nop())

	_, err := svc.Begin(token, model.PaymentWise)
	require.NoError(t, err)

	svc.Cancel(token)

	assert.Nil(t, svc.Current(token))
	mockCart.AssertNotCalled(t, "Clear", token, "cancel keeps the cart")

	// Cancelling while idle is harmless.
	svc.Cancel(token)
}
