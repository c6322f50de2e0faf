package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formata um valor monetário no padrão brasileiro: "R$ 1.234,50".
// O dashboard depende desse formato exato nos cards de faturamento.
func FormatBRL(value decimal.Decimal) string {
	return printer.Sprintf("R$ %v", number.Decimal(
		value.InexactFloat64(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatBRLFloat formata um float64 no mesmo padrão de FormatBRL
func FormatBRLFloat(value float64) string {
	return printer.Sprintf("R$ %v", number.Decimal(
		value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatPercentBR formata um percentual com vírgula decimal: "12,34%"
func FormatPercentBR(value float64) string {
	return printer.Sprintf("%v%%", number.Decimal(
		value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
