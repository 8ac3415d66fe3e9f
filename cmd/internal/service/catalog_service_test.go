package service

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"bizindustry/cmd/internal/contract"
	"bizindustry/cmd/internal/domain/entity"
	"bizindustry/cmd/internal/infrastructure/catalogapi"
	"bizindustry/cmd/internal/service/mocks"
	"bizindustry/cmd/internal/utils/apierror"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T, client *mocks.CatalogClient, store HandoffStore) *CatalogService {
	t.Helper()
	return NewCatalogService(client, NewHandoffService(store), newValidator(t))
}

func healthy(client *mocks.CatalogClient) {
	client.On("Health", mock.Anything).Return(&catalogapi.HealthStatus{Status: "ok"}, nil)
}

func TestCatalogService_HomeOptions(t *testing.T) {
	client := &mocks.CatalogClient{}
	healthy(client)
	client.On("ListSectors", mock.Anything).Return([]*entity.Sector{{ID: "1", Name: "Automotivo"}}, nil)
	client.On("ListCountries", mock.Anything).Return([]*entity.Country{{ID: "br", Name: "Brasil", Region: "América do Sul"}}, nil)

	opts, apierr := newCatalogService(t, client, newMemStore()).HomeOptions(context.Background())
	require.Nil(t, apierr)
	require.Len(t, opts.Sectors, 1)
	require.Len(t, opts.Countries, 1)
	client.AssertExpectations(t)
}

func TestCatalogService_HomeOptions_CountriesFail(t *testing.T) {
	client := &mocks.CatalogClient{}
	healthy(client)
	client.On("ListSectors", mock.Anything).Return([]*entity.Sector{{ID: "1", Name: "Automotivo"}}, nil).Maybe()
	client.On("ListCountries", mock.Anything).Return(nil, errors.New("boom"))

	opts, apierr := newCatalogService(t, client, newMemStore()).HomeOptions(context.Background())
	require.Nil(t, opts)
	require.Equal(t, apierror.HomeUnavailableError, apierr)
}

func TestCatalogService_HomeOptions_HealthFailSkipsLists(t *testing.T) {
	client := &mocks.CatalogClient{}
	client.On("Health", mock.Anything).Return(nil, &catalogapi.StatusError{Endpoint: "/api/health", StatusCode: 503})

	_, apierr := newCatalogService(t, client, newMemStore()).HomeOptions(context.Background())
	require.Equal(t, apierror.HomeUnavailableError, apierr)
	client.AssertNotCalled(t, "ListSectors", mock.Anything)
	client.AssertNotCalled(t, "ListCountries", mock.Anything)
}

func TestCatalogService_Search_StoresHandoff(t *testing.T) {
	client := &mocks.CatalogClient{}
	found := []*entity.Company{{ID: "1", Name: "Acme", RawStatus: "Ativo"}}
	client.On("SearchIndustries", mock.Anything, "aço", "Metalurgia", "Europa").Return(found, nil)
	store := newMemStore()
	svc := newCatalogService(t, client, store)

	apierr := svc.Search(context.Background(), "s1", &contract.SearchRequest{Query: "  aço ", Sector: "Metalurgia", Region: "Europa"})
	require.Nil(t, apierr)

	results, query, ok, err := svc.Handoff.Load(context.Background(), "s1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, found, results)
	require.NotZero(t, query.Revision)
	require.Equal(t, &entity.SearchQuery{Query: "aço", Sector: "Metalurgia", Region: "Europa", Revision: query.Revision}, query)
}

func TestCatalogService_Search_DefaultsRegionToGlobal(t *testing.T) {
	client := &mocks.CatalogClient{}
	client.On("SearchIndustries", mock.Anything, "", "", entity.RegionGlobal).Return([]*entity.Company{}, nil)
	svc := newCatalogService(t, client, newMemStore())

	require.Nil(t, svc.Search(context.Background(), "s1", &contract.SearchRequest{}))

	_, query, ok, _ := svc.Handoff.Load(context.Background(), "s1")
	require.True(t, ok)
	require.Equal(t, entity.RegionGlobal, query.Region)
}

func TestCatalogService_Search_Invalid(t *testing.T) {
	client := &mocks.CatalogClient{}
	svc := newCatalogService(t, client, newMemStore())

	apierr := svc.Search(context.Background(), "s1", &contract.SearchRequest{Query: strings.Repeat("a", 121), Region: "Atlantis"})
	serr, ok := apierr.(*apierror.StructuredError)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, serr.Code())
	require.NotEmpty(t, serr.First("query"))
	require.NotEmpty(t, serr.First("region"))
	client.AssertNotCalled(t, "SearchIndustries", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_Search_RemoteFails(t *testing.T) {
	client := &mocks.CatalogClient{}
	client.On("SearchIndustries", mock.Anything, "x", "", entity.RegionGlobal).Return(nil, errors.New("timeout"))
	store := newMemStore()
	svc := newCatalogService(t, client, store)

	apierr := svc.Search(context.Background(), "s1", &contract.SearchRequest{Query: "x"})
	require.Equal(t, apierror.SearchFailedError, apierr)
	require.Empty(t, store.data)
}

func TestCatalogService_ExploreRegion(t *testing.T) {
	client := &mocks.CatalogClient{}
	client.On("SearchIndustries", mock.Anything, "", "", "Ásia").Return([]*entity.Company{{ID: "7"}}, nil)
	svc := newCatalogService(t, client, newMemStore())

	searched, apierr := svc.ExploreRegion(context.Background(), "s1", &contract.ExploreRequest{Region: "Ásia"})
	require.Nil(t, apierr)
	require.True(t, searched)

	_, query, ok, _ := svc.Handoff.Load(context.Background(), "s1")
	require.True(t, ok)
	require.Equal(t, &entity.SearchQuery{Region: "Ásia", Revision: query.Revision}, query)
}

func TestCatalogService_ExploreRegion_GlobalDoesNotSearch(t *testing.T) {
	client := &mocks.CatalogClient{}
	svc := newCatalogService(t, client, newMemStore())

	searched, apierr := svc.ExploreRegion(context.Background(), "s1", &contract.ExploreRequest{Region: entity.RegionGlobal})
	require.Nil(t, apierr)
	require.False(t, searched)
	client.AssertNotCalled(t, "SearchIndustries", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_ExploreRegion_Fails(t *testing.T) {
	client := &mocks.CatalogClient{}
	client.On("SearchIndustries", mock.Anything, "", "", "Europa").Return(nil, errors.New("boom"))
	svc := newCatalogService(t, client, newMemStore())

	_, apierr := svc.ExploreRegion(context.Background(), "s1", &contract.ExploreRequest{Region: "Europa"})
	require.Equal(t, apierror.RegionSearchFailedError, apierr)
}

func TestCatalogService_GetCompany(t *testing.T) {
	client := &mocks.CatalogClient{}
	client.On("GetIndustry", mock.Anything, "42").Return(&entity.Company{
		ID:           "42",
		Name:         "Acme Ltda",
		Country:      "Brasil",
		Region:       "América do Sul",
		RawStatus:    "ATIVO",
		Website:      "https://acme.com.br",
		ContactEmail: "vendas@acme.com.br",
	}, nil)
	svc := newCatalogService(t, client, newMemStore())

	detail, apierr := svc.GetCompany(context.Background(), &contract.CompanyRequest{ID: "42"})
	require.Nil(t, apierr)
	require.Equal(t, "Brasil, América do Sul", detail.Location)
	require.Equal(t, "acme.com.br", detail.WebsiteDisplay)
	require.True(t, detail.Active)
	require.Equal(t, "Disponível para Exportação", detail.StatusLabel)
	require.Equal(t, "mailto:vendas@acme.com.br?subject=Contato%20via%20Businesses%20of%20the%20Industry%20-%20Acme%20Ltda", detail.MailtoURL)
}

func TestMailtoURL_EscapesQueryDelimiters(t *testing.T) {
	raw := mailtoURL("a@smith.com", mailSubjectPrefix+"Smith & Sons+Co?")
	require.NotContains(t, raw, " ")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "Contato via Businesses of the Industry - Smith & Sons+Co?", parsed.Query().Get("subject"))
	require.Contains(t, raw, "Smith%20%26%20Sons%2BCo%3F")
}

func TestCatalogService_GetCompany_NotFound(t *testing.T) {
	client := &mocks.CatalogClient{}
	client.On("GetIndustry", mock.Anything, "999").Return(nil, catalogapi.ErrNotFound)
	svc := newCatalogService(t, client, newMemStore())

	detail, apierr := svc.GetCompany(context.Background(), &contract.CompanyRequest{ID: "999"})
	require.Nil(t, detail)
	view := apierror.AsView(apierr)
	require.Equal(t, http.StatusNotFound, view.Code())
	require.Equal(t, apierror.BackToListAction, view.Action)
}

func TestCatalogService_GetCompany_Failures(t *testing.T) {
	client := &mocks.CatalogClient{}
	client.On("GetIndustry", mock.Anything, "1").Return(nil, errors.New("reset by peer"))
	svc := newCatalogService(t, client, newMemStore())

	_, apierr := svc.GetCompany(context.Background(), &contract.CompanyRequest{ID: "1"})
	require.Equal(t, apierror.CompanyUnavailableError, apierr)

	_, apierr = svc.GetCompany(context.Background(), &contract.CompanyRequest{ID: "  "})
	require.Equal(t, apierror.MissingCompanyIDError, apierr)

	_, apierr = svc.GetCompany(context.Background(), &contract.CompanyRequest{ID: "../x"})
	require.Equal(t, apierror.CompanyNotFoundError, apierr)
	client.AssertNotCalled(t, "GetIndustry", mock.Anything, "../x")
}

func TestCatalogService_CatalogHealth(t *testing.T) {
	client := &mocks.CatalogClient{}
	client.On("Health", mock.Anything).Return(nil, errors.New("down")).Once()
	healthy(client)
	svc := newCatalogService(t, client, newMemStore())

	_, apierr := svc.CatalogHealth(context.Background())
	require.Equal(t, apierror.CatalogDownError, apierr)

	health, apierr := svc.CatalogHealth(context.Background())
	require.Nil(t, apierr)
	require.Equal(t, "ok", health.Status)
}
