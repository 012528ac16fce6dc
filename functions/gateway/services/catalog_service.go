package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ayushijadhav2006/smile-share/functions/gateway/helpers"
	"github.com/ayushijadhav2006/smile-share/functions/gateway/services/dynamodb_service"
	internal_types "github.com/ayushijadhav2006/smile-share/functions/gateway/types"
)

// ErrCatalogUnavailable is returned when the activities fetch fails. The
// presentation layer maps it to a retryable state; it never crashes a load.
var ErrCatalogUnavailable = errors.New("activity catalog unavailable")

// CatalogService assembles the read-only snapshot the filter engine and
// suggester operate on: all activities plus the organization lookup built
// for them.
type CatalogService struct {
	ActivityService     internal_types.ActivityServiceInterface
	OrganizationService internal_types.OrganizationServiceInterface
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		ActivityService:     dynamodb_service.NewActivityService(),
		OrganizationService: dynamodb_service.NewOrganizationService(),
	}
}

// LoadCatalog fetches every activity and one organization record per
// distinct referenced NgoId. The snapshot is only returned fully assembled;
// organization lookup failures degrade to an "Unknown NGO" placeholder
// instead of failing the load.
func (s *CatalogService) LoadCatalog(ctx context.Context, db internal_types.DynamoDBAPI) (*internal_types.CatalogSnapshot, error) {
	activities, err := s.ActivityService.GetActivities(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	for i := range activities {
		if activities[i].EventDate == "" {
			continue
		}
		day, err := ParseEventDay(activities[i].EventDate)
		if err != nil {
			log.Printf("skipping unparsable event date %q for activity %s: %v", activities[i].EventDate, activities[i].Id, err)
			continue
		}
		activities[i].EventDay = day
	}

	organizations := make(map[string]internal_types.Organization)
	for _, activity := range activities {
		ngoId := activity.NgoId
		if ngoId == "" {
			continue
		}
		if _, seen := organizations[ngoId]; seen {
			continue
		}

		organization, err := s.OrganizationService.GetOrganizationById(ctx, db, ngoId)
		if err != nil {
			log.Printf("organization lookup failed for %s: %v", ngoId, err)
		}
		if organization == nil {
			organizations[ngoId] = internal_types.Organization{
				Id:      ngoId,
				NgoName: helpers.UNKNOWN_NGO_NAME,
			}
			continue
		}
		organizations[ngoId] = *organization
	}

	return &internal_types.CatalogSnapshot{
		Activities:    activities,
		Organizations: organizations,
	}, nil
}
