package hotmart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	hotmartdomain "github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/hotmart/domain"
	"github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/hotmart/mocks"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/config"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/domain"
	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/cache"
)

func rawSale(transaction string) hotmartdomain.RawSale {
	return hotmartdomain.RawSale{
		Purchase: hotmartdomain.Purchase{Transaction: transaction},
	}
}

func TestGetApprovedSalesUnionDedup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	cfg := &config.Config{Cache: config.Cache{TTLSeconds: 300}}
	service := New(cfg, mockClient, cache.NewNop())

	start := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	// TX-B aparece nos dois status: deve entrar uma única vez no resultado
	mockClient.EXPECT().
		FetchSalesHistory("6398418", start, end, domain.StatusApproved).
		Return(&hotmartdomain.SalesHistoryResult{Sales: []hotmartdomain.RawSale{rawSale("TX-A"), rawSale("TX-B")}}, nil)

	mockClient.EXPECT().
		FetchSalesHistory("6398418", start, end, domain.StatusComplete).
		Return(&hotmartdomain.SalesHistoryResult{Sales: []hotmartdomain.RawSale{rawSale("TX-B"), rawSale("TX-C")}}, nil)

	result, err := service.GetApprovedSales("6398418", start, end)
	require.NoError(t, err)
	require.Len(t, result.Sales, 3)
	assert.Equal(t, "TX-A", result.Sales[0].TransactionID())
	assert.Equal(t, "TX-B", result.Sales[1].TransactionID())
	assert.Equal(t, "TX-C", result.Sales[2].TransactionID())
}

func TestGetRefundedSalesAcrossAllStatuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	cfg := &config.Config{Cache: config.Cache{TTLSeconds: 300}}
	service := New(cfg, mockClient, cache.NewNop())

	start := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	responses := map[string][]hotmartdomain.RawSale{
		domain.StatusRefunded:          {rawSale("TX-R1")},
		domain.StatusPartiallyRefunded: {},
		domain.StatusChargeback:        {rawSale("TX-R1"), rawSale("TX-R2")},
		domain.StatusProtested:         {rawSale("TX-R3")},
	}

	for _, status := range domain.RefundStatuses {
		sales := responses[status]
		mockClient.EXPECT().
			FetchSalesHistory("6398418", start, end, status).
			Return(&hotmartdomain.SalesHistoryResult{Sales: sales}, nil)
	}

	result, err := service.GetRefundedSales("6398418", start, end)
	require.NoError(t, err)
	require.Len(t, result.Sales, 3)
	assert.Equal(t, "TX-R1", result.Sales[0].TransactionID())
	assert.Equal(t, "TX-R2", result.Sales[1].TransactionID())
	assert.Equal(t, "TX-R3", result.Sales[2].TransactionID())
}

func TestGetSalesHistoryUsesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	cfg := &config.Config{Cache: config.Cache{TTLSeconds: 300}}
	service := New(cfg, mockClient, cache.NewMemory())

	start := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	// O cliente deve ser consultado uma única vez para a mesma tupla
	mockClient.EXPECT().
		FetchSalesHistory("6398418", start, end, domain.StatusApproved).
		Return(&hotmartdomain.SalesHistoryResult{Sales: []hotmartdomain.RawSale{rawSale("TX-A")}}, nil).
		Times(1)

	first, err := service.GetSalesHistory("6398418", start, end, domain.StatusApproved)
	require.NoError(t, err)
	second, err := service.GetSalesHistory("6398418", start, end, domain.StatusApproved)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// Status diferente é outra chave de cache
	mockClient.EXPECT().
		FetchSalesHistory("6398418", start, end, domain.StatusComplete).
		Return(&hotmartdomain.SalesHistoryResult{}, nil).
		Times(1)

	_, err = service.GetSalesHistory("6398418", start, end, domain.StatusComplete)
	require.NoError(t, err)
}

func TestMergePropagatesTruncation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	cfg := &config.Config{Cache: config.Cache{TTLSeconds: 300}}
	service := New(cfg, mockClient, cache.NewNop())

	start := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	mockClient.EXPECT().
		FetchSalesHistory("6398418", start, end, domain.StatusApproved).
		Return(&hotmartdomain.SalesHistoryResult{Sales: []hotmartdomain.RawSale{rawSale("TX-A")}}, nil)

	mockClient.EXPECT().
		FetchSalesHistory("6398418", start, end, domain.StatusComplete).
		Return(&hotmartdomain.SalesHistoryResult{Truncated: true}, nil)

	result, err := service.GetApprovedSales("6398418", start, end)
	require.NoError(t, err)
	assert.True(t, result.Truncated)
}
