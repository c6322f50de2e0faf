package sheets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/sheets/mocks"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/config"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/domain"
	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/cache"
)

func newSheetsConfig() *config.Config {
	return &config.Config{
		Cache: config.Cache{TTLSeconds: 300},
		Spreadsheets: map[string]string{
			"default":     "spreadsheet-bf25",
			"imersao0126": "spreadsheet-imersao",
		},
	}
}

func testCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:             "bf25",
		SpreadsheetKey: "default",
		SheetTabs: map[string]string{
			"leads_alunos": "Leads [EA Alunos]",
			"leads_geral":  "Leads [Geral]",
		},
	}
}

func TestGetCampaignSheetResolvesTabAndSpreadsheet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(newSheetsConfig(), mockClient, cache.NewNop())

	rows := [][]string{{"Nome", "Email"}, {"Maria", "maria@example.com"}}

	mockClient.EXPECT().
		GetSheetValues("spreadsheet-bf25", "Leads [EA Alunos]").
		Return(rows, nil)

	values, err := service.GetCampaignSheet(testCampaign(), "leads_alunos")
	require.NoError(t, err)
	assert.Equal(t, rows, values)
}

func TestGetCampaignSheetUnknownTabKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(newSheetsConfig(), mockClient, cache.NewNop())

	// Chave desconhecida não dispara chamada remota
	values, err := service.GetCampaignSheet(testCampaign(), "inexistente")
	require.NoError(t, err)
	assert.Nil(t, values)
}

func TestGetCampaignSheetRemoteFailureReturnsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(newSheetsConfig(), mockClient, cache.NewNop())

	mockClient.EXPECT().
		GetSheetValues("spreadsheet-bf25", "Leads [EA Alunos]").
		Return(nil, errors.New("connector indisponível"))

	values, err := service.GetCampaignSheet(testCampaign(), "leads_alunos")
	require.NoError(t, err)
	assert.Nil(t, values)
}

func TestGetCampaignSheetsFetchesAllTabs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(newSheetsConfig(), mockClient, cache.NewNop())

	mockClient.EXPECT().
		GetSheetValues("spreadsheet-bf25", "Leads [EA Alunos]").
		Return([][]string{{"Nome"}, {"Maria"}}, nil)
	mockClient.EXPECT().
		GetSheetValues("spreadsheet-bf25", "Leads [Geral]").
		Return([][]string{{"Nome"}, {"João"}, {"Ana"}}, nil)

	result, err := service.GetCampaignSheets(testCampaign())
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Len(t, result["leads_alunos"], 2)
	assert.Len(t, result["leads_geral"], 3)
}

func TestGetCampaignSheetUsesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(newSheetsConfig(), mockClient, cache.NewMemory())

	mockClient.EXPECT().
		GetSheetValues("spreadsheet-bf25", "Leads [EA Alunos]").
		Return([][]string{{"Nome"}}, nil).
		Times(1)

	campaign := testCampaign()

	first, err := service.GetCampaignSheet(campaign, "leads_alunos")
	require.NoError(t, err)

	second, err := service.GetCampaignSheet(campaign, "leads_alunos")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
