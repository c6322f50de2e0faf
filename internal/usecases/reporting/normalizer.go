package reporting

import (
	"sort"
	"time"

	hotmartdomain "github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/hotmart/domain"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/domain"
	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/utils"
)

// NormalizeSales achata o payload cru do provedor de vendas em uma linha por
// transação. O valor da venda vem do campo hotmart_fee.base e a data do pedido
// é convertida de milissegundos para o fuso de Brasília; zero vira data nula.
//
// O resultado sai ordenado da venda mais recente para a mais antiga, com as
// datas nulas ao final. A ordenação é estável para preservar a ordem de
// chegada entre linhas de mesma data.
func NormalizeSales(sales []hotmartdomain.RawSale) []domain.NormalizedSale {
	if len(sales) == 0 {
		return nil
	}

	normalized := make([]domain.NormalizedSale, 0, len(sales))
	for _, sale := range sales {
		var orderDate *time.Time
		if sale.Purchase.OrderDate != 0 {
			t := time.UnixMilli(sale.Purchase.OrderDate).In(utils.BRT)
			orderDate = &t
		}

		normalized = append(normalized, domain.NormalizedSale{
			TransactionID: sale.Purchase.Transaction,
			OrderDate:     orderDate,
			Status:        sale.Purchase.Status,
			Value:         sale.Purchase.Fee.Base,
			BuyerEmail:    sale.Buyer.Email,
			BuyerName:     sale.Buyer.Name,
			OfferCode:     sale.Purchase.Offer.Code,
		})
	}

	sort.SliceStable(normalized, func(i, j int) bool {
		left, right := normalized[i].OrderDate, normalized[j].OrderDate
		if left == nil {
			return false
		}
		if right == nil {
			return true
		}
		return left.After(*right)
	})

	return normalized
}
