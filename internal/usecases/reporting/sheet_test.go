package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSheetTableEmpty(t *testing.T) {
	table := ParseSheetTable(nil, true)

	assert.Empty(t, table.Columns)
	assert.True(t, table.Empty())
}

func TestParseSheetTableWithHeader(t *testing.T) {
	table := ParseSheetTable([][]string{
		{"Nome", "Email"},
		{"Maria", "maria@example.com"},
		{"João", "joao@example.com"},
	}, true)

	assert.Equal(t, []string{"Nome", "Email"}, table.Columns)
	require.Equal(t, 2, table.RowCount())
	assert.Equal(t, "Maria", table.Records[0]["Nome"])
	assert.Equal(t, "joao@example.com", table.Records[1]["Email"])
}

func TestParseSheetTableWithoutHeader(t *testing.T) {
	table := ParseSheetTable([][]string{
		{"Maria", "maria@example.com"},
		{"João", "joao@example.com"},
	}, false)

	// Sem cabeçalho as colunas ganham rótulos posicionais
	assert.Equal(t, []string{"0", "1"}, table.Columns)
	require.Equal(t, 2, table.RowCount())
	assert.Equal(t, "Maria", table.Records[0]["0"])
}

func TestParseSheetTableHeaderOnlyFallsBackToPositional(t *testing.T) {
	// Uma única linha com hasHeader vira dado, não cabeçalho
	table := ParseSheetTable([][]string{{"Nome", "Email"}}, true)

	assert.Equal(t, []string{"0", "1"}, table.Columns)
	require.Equal(t, 1, table.RowCount())
	assert.Equal(t, "Nome", table.Records[0]["0"])
}

func TestParseSheetTablePadsShortRows(t *testing.T) {
	table := ParseSheetTable([][]string{
		{"Nome", "Email", "Telefone"},
		{"Maria"},
	}, true)

	require.Equal(t, 1, table.RowCount())
	assert.Equal(t, "Maria", table.Records[0]["Nome"])
	assert.Equal(t, "", table.Records[0]["Email"])
	assert.Equal(t, "", table.Records[0]["Telefone"])
}

func TestParseSheetTableDropsCellsBeyondHeader(t *testing.T) {
	table := ParseSheetTable([][]string{
		{"Nome", "Email"},
		{"Maria", "maria@example.com", "célula extra"},
	}, true)

	assert.Equal(t, []string{"Nome", "Email"}, table.Columns)
	require.Equal(t, 1, table.RowCount())
	assert.Len(t, table.Records[0], 2)
	assert.Equal(t, "maria@example.com", table.Records[0]["Email"])
}
