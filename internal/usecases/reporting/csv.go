package reporting

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/escoladeautomacao/campaign-dashboard-api/internal/domain"
)

var csvHeader = []string{
	"transaction_id",
	"order_date",
	"status",
	"value",
	"buyer_email",
	"buyer_name",
	"offer_code",
}

// WriteSalesCSV escreve a tabela de vendas normalizada como CSV, na mesma
// ordem das linhas do relatório. Datas saem em RFC 3339 e a data nula vira
// célula vazia.
func WriteSalesCSV(w io.Writer, sales []domain.NormalizedSale) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, sale := range sales {
		orderDate := ""
		if sale.OrderDate != nil {
			orderDate = sale.OrderDate.Format(time.RFC3339)
		}

		record := []string{
			sale.TransactionID,
			orderDate,
			sale.Status,
			sale.Value.StringFixed(2),
			sale.BuyerEmail,
			sale.BuyerName,
			sale.OfferCode,
		}

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
