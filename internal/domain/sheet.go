package domain

// SheetTable é o resultado do parse de um intervalo 2-D de planilha.
// As células permanecem como strings cruas; a coerção de tipo é
// responsabilidade de quem consome cada aba.
type SheetTable struct {
	Columns []string            `json:"columns"`
	Records []map[string]string `json:"records"`
}

// Empty indica se a tabela não tem registros
func (t SheetTable) Empty() bool {
	return len(t.Records) == 0
}

// RowCount retorna a quantidade de registros da tabela
func (t SheetTable) RowCount() int {
	return len(t.Records)
}
