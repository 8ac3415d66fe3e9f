package service

import (
	"context"
	"errors"

	"bizindustry/cmd/internal/contract"
	"bizindustry/cmd/internal/domain/entity"
	"bizindustry/cmd/internal/infrastructure/catalogapi"
	"bizindustry/cmd/internal/utils"
	"bizindustry/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

type CatalogClient interface {
	Health(ctx context.Context) (*catalogapi.HealthStatus, error)
	ListIndustries(ctx context.Context, filters *catalogapi.ListFilters) ([]*entity.Company, error)
	GetIndustry(ctx context.Context, id string) (*entity.Company, error)
	SearchIndustries(ctx context.Context, query, sector, region string) ([]*entity.Company, error)
	ListSectors(ctx context.Context) ([]*entity.Sector, error)
	ListCountries(ctx context.Context) ([]*entity.Country, error)
}

type CatalogService struct {
	Client   CatalogClient
	Handoff  *HandoffService
	validate *validator.Validate
}

func NewCatalogService(client CatalogClient, handoff *HandoffService, validate *validator.Validate) *CatalogService {
	return &CatalogService{
		Client:   client,
		Handoff:  handoff,
		validate: validate,
	}
}

// HomeOptions checks the catalog is up, then loads sectors and countries
// together. Either both lists come back or the home page fails.
func (s *CatalogService) HomeOptions(ctx context.Context) (*contract.HomeOptions, apierror.ErrorResponse) {
	if _, err := s.Client.Health(ctx); err != nil {
		log.Errorf("catalog health check failed: %v", err)
		return nil, apierror.HomeUnavailableError
	}

	var (
		sectors   []*entity.Sector
		countries []*entity.Country
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sectors, err = s.Client.ListSectors(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		countries, err = s.Client.ListCountries(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Errorf("failed to load home options: %v", err)
		return nil, apierror.HomeUnavailableError
	}

	return &contract.HomeOptions{Sectors: sectors, Countries: countries}, nil
}

// Search runs the form search and hands its results to the results page.
func (s *CatalogService) Search(ctx context.Context, sessionID string, req *contract.SearchRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if err := s.validate.Struct(req); err != nil {
		if serr := apierror.FromValidationError(err); serr != nil {
			return serr
		}
		return apierror.SearchFailedError
	}

	descriptor := req.Descriptor()
	results, err := s.Client.SearchIndustries(ctx, req.Query, req.Sector, descriptor.Region)
	if err != nil {
		log.Errorf("failed to search industries (q=%q sector=%q region=%q): %v", req.Query, req.Sector, req.Region, err)
		return apierror.SearchFailedError
	}

	if err = s.Handoff.Save(ctx, sessionID, results, descriptor); err != nil {
		log.Errorf("failed to save handoff for session %s: %v", sessionID, err)
		return apierror.SearchFailedError
	}
	return nil
}

// ExploreRegion searches every company of a region. Picking Global does
// not search, in which case searched is false.
func (s *CatalogService) ExploreRegion(ctx context.Context, sessionID string, req *contract.ExploreRequest) (bool, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.validate.Struct(req); err != nil {
		if serr := apierror.FromValidationError(err); serr != nil {
			return false, serr
		}
		return false, apierror.RegionSearchFailedError
	}

	if req.Region == entity.RegionGlobal {
		return false, nil
	}

	results, err := s.Client.SearchIndustries(ctx, "", "", req.Region)
	if err != nil {
		log.Errorf("failed to search industries in region %s: %v", req.Region, err)
		return false, apierror.RegionSearchFailedError
	}

	descriptor := &entity.SearchQuery{Region: req.Region}
	if err = s.Handoff.Save(ctx, sessionID, results, descriptor); err != nil {
		log.Errorf("failed to save handoff for session %s: %v", sessionID, err)
		return false, apierror.RegionSearchFailedError
	}
	return true, nil
}

func (s *CatalogService) GetCompany(ctx context.Context, req *contract.CompanyRequest) (*contract.CompanyDetail, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if req.ID == "" {
		return nil, apierror.MissingCompanyIDError
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, apierror.CompanyNotFoundError
	}

	company, err := s.Client.GetIndustry(ctx, req.ID)
	if err != nil {
		if errors.Is(err, catalogapi.ErrNotFound) {
			return nil, apierror.CompanyNotFoundError
		}
		log.Errorf("failed to fetch company %s: %v", req.ID, err)
		return nil, apierror.CompanyUnavailableError
	}
	return toCompanyDetail(company), nil
}

func (s *CatalogService) CatalogHealth(ctx context.Context) (*catalogapi.HealthStatus, apierror.ErrorResponse) {
	health, err := s.Client.Health(ctx)
	if err != nil {
		log.Warnf("catalog health check failed: %v", err)
		return nil, apierror.CatalogDownError
	}
	return health, nil
}
