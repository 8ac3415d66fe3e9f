package service

import (
	"context"

	"bizindustry/cmd/internal/contract"
	"bizindustry/cmd/internal/domain/entity"
	"bizindustry/cmd/internal/domain/policy"
	"bizindustry/cmd/internal/utils/apierror"
	"bizindustry/cmd/internal/utils/uid"

	"github.com/labstack/gommon/log"
)

type ResultsService struct {
	Client  CatalogClient
	Handoff *HandoffService
}

func NewResultsService(client CatalogClient, handoff *HandoffService) *ResultsService {
	return &ResultsService{
		Client:  client,
		Handoff: handoff,
	}
}

// Load builds the results page. A session's stored search is shown as-is,
// without checking it against the catalog again; sessions without one
// get the full unfiltered listing.
func (r *ResultsService) Load(ctx context.Context, sessionID string, filter entity.Filter) (*contract.ResultsPage, apierror.ErrorResponse) {
	results, query, ok, err := r.Handoff.Load(ctx, sessionID)
	if err != nil {
		log.Errorf("failed to read handoff of session %s, listing everything: %v", sessionID, err)
	}

	if !ok {
		results, err = r.Client.ListIndustries(ctx, nil)
		if err != nil {
			log.Errorf("failed to list industries: %v", err)
			return nil, apierror.ResultsUnavailableError
		}
		query = nil
	} else {
		log.Debugf("showing stored search %s to session %s", uid.Format(query.Revision), sessionID)
	}

	page := &contract.ResultsPage{
		Page:       contract.NewPage("Resultados", "results"),
		Filter:     filter,
		FromSearch: ok,
		Chips:      toChips(query),
		Filters:    toFilterButtons(results, filter),
		Cards:      toCompanyCards(policy.ApplyFilter(results, filter)),
	}
	if query != nil {
		page.SearchID = uid.Format(query.Revision)
	}
	page.Ready()
	return page, nil
}
