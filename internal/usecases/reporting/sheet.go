package reporting

import (
	"strconv"

	"github.com/escoladeautomacao/campaign-dashboard-api/internal/domain"
)

// ParseSheetTable monta uma tabela a partir do intervalo 2-D cru da planilha.
// Com hasHeader a primeira linha vira o nome das colunas, desde que exista ao
// menos uma linha de dados; caso contrário as colunas ganham rótulos
// posicionais. Linhas curtas são completadas com células vazias e células além
// da largura do cabeçalho são descartadas.
func ParseSheetTable(values [][]string, hasHeader bool) domain.SheetTable {
	if len(values) == 0 {
		return domain.SheetTable{}
	}

	var columns []string
	var rows [][]string

	if hasHeader && len(values) > 1 {
		columns = values[0]
		rows = values[1:]
	} else {
		width := 0
		for _, row := range values {
			if len(row) > width {
				width = len(row)
			}
		}

		columns = make([]string, width)
		for i := range columns {
			columns[i] = strconv.Itoa(i)
		}
		rows = values
	}

	records := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		record := make(map[string]string, len(columns))
		for i, column := range columns {
			if i < len(row) {
				record[column] = row[i]
			} else {
				record[column] = ""
			}
		}
		records = append(records, record)
	}

	return domain.SheetTable{
		Columns: columns,
		Records: records,
	}
}
