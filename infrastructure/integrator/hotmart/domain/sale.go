package hotmartdomain

import "github.com/shopspring/decimal"

// RawSale é um registro de venda no formato do provedor, consumido
// apenas nos campos que o dashboard usa. O restante do payload é ignorado.
type RawSale struct {
	Purchase Purchase `json:"purchase"`
	Buyer    Buyer    `json:"buyer"`
}

// Purchase carrega os dados da transação dentro do registro bruto
type Purchase struct {
	Transaction string `json:"transaction"`

	// OrderDate em milissegundos desde a época; zero significa data desconhecida
	OrderDate int64 `json:"order_date"`

	Status string `json:"status"`
	Fee    Fee    `json:"hotmart_fee"`
	Offer  Offer  `json:"offer"`
}

// Fee traz os valores monetários da transação
type Fee struct {
	Base decimal.Decimal `json:"base"`
}

type Offer struct {
	Code string `json:"code"`
}

type Buyer struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TransactionID retorna o identificador usado como chave de deduplicação
func (s RawSale) TransactionID() string {
	return s.Purchase.Transaction
}

// SalesHistoryResult é o resultado acumulado de uma busca paginada.
// Truncated sinaliza que alguma janela foi interrompida por falha remota
// e o conjunto pode estar incompleto (vendas zeradas ≠ busca truncada).
type SalesHistoryResult struct {
	Sales     []RawSale
	Truncated bool
}

// Merge acumula outro resultado deduplicando pelo ID de transação.
// seen é o conjunto compartilhado entre as chamadas que compõem a união.
func (r *SalesHistoryResult) Merge(other *SalesHistoryResult, seen map[string]struct{}) {
	if other == nil {
		return
	}

	for _, sale := range other.Sales {
		tid := sale.TransactionID()
		if tid == "" {
			continue
		}
		if _, ok := seen[tid]; ok {
			continue
		}
		seen[tid] = struct{}{}
		r.Sales = append(r.Sales, sale)
	}

	if other.Truncated {
		r.Truncated = true
	}
}
