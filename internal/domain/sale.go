package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de transação reconhecidos pelo provedor de vendas
const (
	StatusApproved          = "APPROVED"
	StatusComplete          = "COMPLETE"
	StatusRefunded          = "REFUNDED"
	StatusPartiallyRefunded = "PARTIALLY_REFUNDED"
	StatusChargeback        = "CHARGEBACK"
	StatusProtested         = "PROTESTED"
)

// ApprovedStatuses são os status considerados como venda concretizada
var ApprovedStatuses = []string{StatusApproved, StatusComplete}

// RefundStatuses são os status de devolução de dinheiro
var RefundStatuses = []string{
	StatusRefunded,
	StatusPartiallyRefunded,
	StatusChargeback,
	StatusProtested,
}

// NormalizedSale é uma linha achatada da tabela de vendas, uma por transação.
// OrderDate nulo significa data desconhecida no payload do provedor.
type NormalizedSale struct {
	TransactionID string          `json:"transaction_id"`
	OrderDate     *time.Time      `json:"order_date"`
	Status        string          `json:"status"`
	Value         decimal.Decimal `json:"value"`
	BuyerEmail    string          `json:"buyer_email,omitempty"`
	BuyerName     string          `json:"buyer_name,omitempty"`
	OfferCode     string          `json:"offer_code,omitempty"`
}

// SalesMetrics resume uma tabela de vendas normalizada.
// Com tabela vazia todos os campos ficam zerados.
type SalesMetrics struct {
	TotalSales    int             `json:"total_sales"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
}

// DailyBucket agrega as vendas de um dia do calendário
type DailyBucket struct {
	Date       time.Time       `json:"date"`
	SalesCount int             `json:"sales_count"`
	Revenue    decimal.Decimal `json:"revenue"`
}
