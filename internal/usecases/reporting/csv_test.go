package reporting

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escoladeautomacao/campaign-dashboard-api/internal/domain"
	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/utils"
)

func TestWriteSalesCSV(t *testing.T) {
	orderDate := time.Date(2025, 11, 10, 14, 30, 0, 0, utils.BRT)

	var buf bytes.Buffer
	err := WriteSalesCSV(&buf, []domain.NormalizedSale{
		{
			TransactionID: "TX-1",
			OrderDate:     &orderDate,
			Status:        "APPROVED",
			Value:         decimal.NewFromFloat(297.5),
			BuyerEmail:    "maria@example.com",
			BuyerName:     "Maria",
			OfferCode:     "oferta1",
		},
		{
			TransactionID: "TX-2",
			Status:        "COMPLETE",
			Value:         decimal.NewFromInt(100),
		},
	})
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"transaction_id", "order_date", "status", "value",
		"buyer_email", "buyer_name", "offer_code",
	}, records[0])

	assert.Equal(t, "TX-1", records[1][0])
	assert.Equal(t, orderDate.Format(time.RFC3339), records[1][1])
	assert.Equal(t, "297.50", records[1][3])
	assert.Equal(t, "maria@example.com", records[1][4])

	// Data nula sai como célula vazia
	assert.Equal(t, "", records[2][1])
	assert.Equal(t, "100.00", records[2][3])
}

func TestWriteSalesCSVOnlyHeaderWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSalesCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}
