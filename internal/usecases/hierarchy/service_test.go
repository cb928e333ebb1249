package hierarchy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-ingestion-api/internal/domain"
	"github.com/vfg2006/ads-ingestion-api/internal/usecases/hierarchy/mocks"
)

func TestService_GetHierarchy(t *testing.T) {
	dateRange, err := domain.NewDateRange(
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	campaigns := []domain.Campaign{{ID: "c1", Name: "Black Friday"}, {ID: "c2", Name: "Institucional"}}
	adSets := []domain.AdSet{{ID: "s1", CampaignID: "c1"}, {ID: "s2", CampaignID: "c2"}}
	ads := []domain.Ad{{ID: "a1", AdSetID: "s1", CampaignID: "c1"}}
	creatives := []domain.Creative{{ID: "cr1", AdID: "a1", Title: "Oferta"}}

	tests := []struct {
		name     string
		setup    func(m *mocks.MockResourceFetcher)
		validate func(t *testing.T, result *domain.AdHierarchy, err error)
	}{
		{
			name: "Árvore completa com uma consulta em lote por nível",
			setup: func(m *mocks.MockResourceFetcher) {
				gomock.InOrder(
					m.EXPECT().GetCampaigns(gomock.Any(), "act_1", dateRange).Return(campaigns, nil),
					m.EXPECT().GetAdSets(gomock.Any(), "act_1", []string{"c1", "c2"}).Return(adSets, nil),
					m.EXPECT().GetAds(gomock.Any(), "act_1", []string{"s1", "s2"}).Return(ads, nil),
					m.EXPECT().GetCreatives(gomock.Any(), "act_1", []string{"a1"}).Return(creatives, nil),
				)
			},
			validate: func(t *testing.T, result *domain.AdHierarchy, err error) {
				require.NoError(t, err)
				assert.Equal(t, campaigns, result.Campaigns)
				assert.Equal(t, adSets, result.AdSets)
				assert.Equal(t, ads, result.Ads)
				assert.Equal(t, creatives, result.Creatives)
			},
		},
		{
			name: "Conta sem campanhas retorna coleções vazias sem erro",
			setup: func(m *mocks.MockResourceFetcher) {
				m.EXPECT().GetCampaigns(gomock.Any(), "act_1", dateRange).Return([]domain.Campaign{}, nil)
			},
			validate: func(t *testing.T, result *domain.AdHierarchy, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.NewEmptyHierarchy(), result)
				assert.NotNil(t, result.AdSets)
				assert.NotNil(t, result.Creatives)
			},
		},
		{
			name: "Campanhas sem conjuntos param antes dos anúncios",
			setup: func(m *mocks.MockResourceFetcher) {
				m.EXPECT().GetCampaigns(gomock.Any(), "act_1", dateRange).Return(campaigns, nil)
				m.EXPECT().GetAdSets(gomock.Any(), "act_1", []string{"c1", "c2"}).Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.AdHierarchy, err error) {
				require.NoError(t, err)
				assert.Len(t, result.Campaigns, 2)
				assert.Empty(t, result.AdSets)
				assert.NotNil(t, result.Ads)
				assert.NotNil(t, result.Creatives)
			},
		},
		{
			name: "Falha nos conjuntos não retorna árvore parcial",
			setup: func(m *mocks.MockResourceFetcher) {
				m.EXPECT().GetCampaigns(gomock.Any(), "act_1", dateRange).Return(campaigns, nil)
				m.EXPECT().GetAdSets(gomock.Any(), "act_1", gomock.Any()).
					Return(nil, &domain.IntegrationError{Err: domain.ErrRateLimitExceeded, Code: 4, Endpoint: "act_1/adsets"})
			},
			validate: func(t *testing.T, result *domain.AdHierarchy, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, domain.ErrRateLimitExceeded)

				var integrationErr *domain.IntegrationError
				require.ErrorAs(t, err, &integrationErr)
				assert.Equal(t, 4, integrationErr.Code)
			},
		},
		{
			name: "Falha nos criativos propaga o erro",
			setup: func(m *mocks.MockResourceFetcher) {
				m.EXPECT().GetCampaigns(gomock.Any(), "act_1", dateRange).Return(campaigns, nil)
				m.EXPECT().GetAdSets(gomock.Any(), "act_1", gomock.Any()).Return(adSets, nil)
				m.EXPECT().GetAds(gomock.Any(), "act_1", gomock.Any()).Return(ads, nil)
				m.EXPECT().GetCreatives(gomock.Any(), "act_1", gomock.Any()).
					Return(nil, domain.NewMalformedResponseError("act_1/ads", "creative without id"))
			},
			validate: func(t *testing.T, result *domain.AdHierarchy, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, domain.ErrMalformedResponse)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFetcher := mocks.NewMockResourceFetcher(ctrl)
			tt.setup(mockFetcher)

			result, err := NewService(mockFetcher).GetHierarchy(context.Background(), "act_1", dateRange)
			tt.validate(t, result, err)
		})
	}

	t.Run("Conta vazia é erro de validação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, err := NewService(mocks.NewMockResourceFetcher(ctrl)).GetHierarchy(context.Background(), "", dateRange)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
