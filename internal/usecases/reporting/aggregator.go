package reporting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/escoladeautomacao/campaign-dashboard-api/internal/domain"
	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/utils"
)

// CalculateSalesMetrics resume a tabela de vendas normalizada.
// Tabela vazia produz métricas zeradas, nunca erro.
func CalculateSalesMetrics(sales []domain.NormalizedSale) domain.SalesMetrics {
	if len(sales) == 0 {
		return domain.SalesMetrics{
			TotalRevenue:  decimal.Zero,
			AverageTicket: decimal.Zero,
		}
	}

	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.Value)
	}

	return domain.SalesMetrics{
		TotalSales:    len(sales),
		TotalRevenue:  total,
		AverageTicket: total.Div(decimal.NewFromInt(int64(len(sales)))).Round(2),
	}
}

// GroupSalesByDate agrega as vendas por dia do calendário em Brasília.
// Vendas sem data de pedido ficam de fora da série. Os dias saem em ordem
// cronológica crescente.
func GroupSalesByDate(sales []domain.NormalizedSale) []domain.DailyBucket {
	if len(sales) == 0 {
		return nil
	}

	buckets := make(map[time.Time]*domain.DailyBucket)
	for _, sale := range sales {
		if sale.OrderDate == nil {
			continue
		}

		day := utils.DateOnly(*sale.OrderDate)
		bucket, ok := buckets[day]
		if !ok {
			bucket = &domain.DailyBucket{Date: day, Revenue: decimal.Zero}
			buckets[day] = bucket
		}

		bucket.SalesCount++
		bucket.Revenue = bucket.Revenue.Add(sale.Value)
	}

	if len(buckets) == 0 {
		return nil
	}

	result := make([]domain.DailyBucket, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, *bucket)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})

	return result
}
