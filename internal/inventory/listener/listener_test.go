package listener

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-backoffice-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type fakeUseCase struct {
	adjustments []*dto.AdjustInventoryInput
}

func (f *fakeUseCase) GetProductInventory(_ context.Context, productID string, storeID *string) (*model.Inventory, error) {
	return nil, nil
}

func (f *fakeUseCase) ListLowStock(_ context.Context, _ *string, _, _ int) ([]model.Inventory, int, error) {
	return nil, 0, nil
}

func (f *fakeUseCase) AdjustInventory(_ context.Context, input *dto.AdjustInventoryInput) (*model.Inventory, error) {
	f.adjustments = append(f.adjustments, input)
	return &model.Inventory{ProductID: input.ProductID}, nil
}

func (f *fakeUseCase) ListMovements(_ context.Context, _ *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	return nil, 0, nil
}

func orderCreatedEvent(t *testing.T) []byte {
	t.Helper()
	event := OrderCreatedEvent{
		EventID:   "evt-1",
		EventType: "OrderCreated",
		Payload: OrderPayload{
			ID:      "order-1",
			StoreID: "store-1",
			Items: []OrderItemPayload{
				{ProductID: "p-1", Quantity: 2},
				{ProductID: "p-2", Quantity: 1},
			},
		},
	}
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return data
}

func TestProcessMessageDeductsEachItem(t *testing.T) {
	uc := &fakeUseCase{}
	l := &InventoryListener{uc: uc, logger: logger.NewNop()}

	l.processMessage(context.Background(), orderCreatedEvent(t))

	require.Len(t, uc.adjustments, 2)
	first := uc.adjustments[0]
	assert.Equal(t, "p-1", first.ProductID)
	assert.Equal(t, -2.0, first.QuantityChange)
	assert.Equal(t, "Order Sale", first.Reason)
	assert.Equal(t, "sale", first.ReferenceType)
	assert.Equal(t, "order-1", first.ReferenceID)
	require.NotNil(t, first.StoreID)
	assert.Equal(t, "store-1", *first.StoreID)
}

func TestProcessMessageIgnoresOtherEventTypes(t *testing.T) {
	uc := &fakeUseCase{}
	l := &InventoryListener{uc: uc, logger: logger.NewNop()}

	l.processMessage(context.Background(), []byte(`{"event_type":"OrderVoided","payload":{"id":"x"}}`))
	assert.Empty(t, uc.adjustments)
}

func TestProcessMessageIgnoresMalformedPayloads(t *testing.T) {
	uc := &fakeUseCase{}
	l := &InventoryListener{uc: uc, logger: logger.NewNop()}

	l.processMessage(context.Background(), []byte(`{not json`))
	assert.Empty(t, uc.adjustments)
}
