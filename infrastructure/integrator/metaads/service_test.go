package metaads

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metaadsdomain "github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/metaads/domain"
	"github.com/escoladeautomacao/campaign-dashboard-api/infrastructure/integrator/metaads/mocks"
	"github.com/escoladeautomacao/campaign-dashboard-api/internal/config"
	"github.com/escoladeautomacao/campaign-dashboard-api/pkg/cache"
)

func newMetaAdsConfig() *config.Config {
	return &config.Config{
		MetaAds: config.MetaAds{
			AccessToken: "token",
			AdAccountID: "123",
		},
		Cache: config.Cache{TTLSeconds: 300},
	}
}

func insightPeriod() (time.Time, time.Time) {
	start := time.Date(2025, 11, 6, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 8, 0, 0, 0, 0, time.UTC)
	return start, end
}

func TestGetCampaignInsightsReturnsInsight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(newMetaAdsConfig(), mockClient, cache.NewNop())

	start, end := insightPeriod()
	insight := &metaadsdomain.AdInsight{
		Impressions: "150000",
		Clicks:      "3200",
		Spend:       "1250.75",
	}

	mockClient.EXPECT().
		GetInsights(start, end, "BF25").
		Return(insight, nil)

	result, err := service.GetCampaignInsights(start, end, "BF25")
	require.NoError(t, err)
	assert.Equal(t, insight, result)
}

func TestGetCampaignInsightsRemoteFailureReturnsNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(newMetaAdsConfig(), mockClient, cache.NewNop())

	start, end := insightPeriod()

	mockClient.EXPECT().
		GetInsights(start, end, "BF25").
		Return(nil, errors.New("graph api error"))

	result, err := service.GetCampaignInsights(start, end, "BF25")

	// Falha remota degrada para relatório vazio, nunca derruba o dashboard
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestGetCampaignInsightsUsesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(newMetaAdsConfig(), mockClient, cache.NewMemory())

	start, end := insightPeriod()
	insight := &metaadsdomain.AdInsight{Impressions: "1000"}

	mockClient.EXPECT().
		GetInsights(start, end, "BF25").
		Return(insight, nil).
		Times(1)

	first, err := service.GetCampaignInsights(start, end, "BF25")
	require.NoError(t, err)

	second, err := service.GetCampaignInsights(start, end, "BF25")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetCampaignsFiltersByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(newMetaAdsConfig(), mockClient, cache.NewNop())

	campaigns := []metaadsdomain.Campaign{
		{ID: "c1", Name: "BF25 - Conversão", Status: "ACTIVE"},
	}

	mockClient.EXPECT().
		GetCampaigns("BF25").
		Return(campaigns, nil)

	result, err := service.GetCampaigns("BF25")
	require.NoError(t, err)
	assert.Equal(t, campaigns, result)
}

func TestGetCampaignsRemoteFailureReturnsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(newMetaAdsConfig(), mockClient, cache.NewNop())

	mockClient.EXPECT().
		GetCampaigns("BF25").
		Return(nil, errors.New("graph api error"))

	result, err := service.GetCampaigns("BF25")

	assert.NoError(t, err)
	assert.Nil(t, result)
}
