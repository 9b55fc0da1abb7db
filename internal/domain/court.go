package domain

import (
	"strings"
	"time"
)

// ServiceKind classifies a court service. The kind is set at data entry;
// ClassifyServiceKind is kept only as a fallback for legacy rows where the
// column is empty.
type ServiceKind string

const (
	// ServiceKindRental is the court rental itself, the base charge of a booking
	ServiceKindRental ServiceKind = "rental"
	// ServiceKindLighting is the illumination add-on, force-included for
	// covered courts and evening slots
	ServiceKindLighting ServiceKind = "lighting"
	// ServiceKindOther is any other add-on (equipment, cleaning, ...)
	ServiceKindOther ServiceKind = "other"
	// ServiceKindNone is the explicit "no service" sentinel; when it is the
	// base of a booking the forced-lighting rule may be suppressed
	ServiceKindNone ServiceKind = "none"
)

// Court represents a bookable court with an hourly rate
type Court struct {
	ID          int64
	Name        string
	Description *string
	HourlyRate  float64
	StatusID    int64
	StatusName  string
	// Covered is persisted at data entry; for legacy rows it is derived from
	// the description/status keywords at scan time
	Covered   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CourtService links one court to one service with its incremental price.
// A court has one-to-many services; the one with kind "rental" (or resolved
// by the fallback heuristic) is the base association of every booking.
type CourtService struct {
	ID              int64
	CourtID         int64
	ServiceID       int64
	ServiceName     string
	Kind            ServiceKind
	AdditionalPrice float64
}

// IsFree returns true if the service carries no additional price
func (s *CourtService) IsFree() bool {
	return s.AdditionalPrice == 0
}

// ResolveBaseService picks the base association (the court rental itself)
// among the court services. First match wins:
//  1. a free service that is not lighting;
//  2. a service of kind "rental";
//  3. any free service;
//  4. the first service in the list.
//
// Returns nil when the court has no services at all.
func ResolveBaseService(services []*CourtService) *CourtService {
	if len(services) == 0 {
		return nil
	}

	for _, svc := range services {
		if svc.IsFree() && svc.Kind != ServiceKindLighting {
			return svc
		}
	}

	for _, svc := range services {
		if svc.Kind == ServiceKindRental {
			return svc
		}
	}

	for _, svc := range services {
		if svc.IsFree() {
			return svc
		}
	}

	return services[0]
}

var (
	rentalKeywords   = []string{"rental", "court", "lease", "hire"}
	lightingKeywords = []string{"light", "illumin", "floodlight"}
	coveredKeywords  = []string{"covered", "roofed", "enclosed", "indoor", "domed"}
)

// ClassifyServiceKind derives a ServiceKind from a free-text service name.
// Legacy classifier: new rows carry an explicit kind instead.
func ClassifyServiceKind(name string) ServiceKind {
	lower := strings.ToLower(name)
	if strings.TrimSpace(lower) == "none" {
		return ServiceKindNone
	}
	for _, kw := range lightingKeywords {
		if strings.Contains(lower, kw) {
			return ServiceKindLighting
		}
	}
	for _, kw := range rentalKeywords {
		if strings.Contains(lower, kw) {
			return ServiceKindRental
		}
	}
	return ServiceKindOther
}

// ClassifyCovered derives the covered flag from the court description and
// status name. Legacy classifier, same contract as ClassifyServiceKind.
func ClassifyCovered(description, statusName string) bool {
	key := strings.ToLower(description + " " + statusName)
	for _, kw := range coveredKeywords {
		if strings.Contains(key, kw) {
			return true
		}
	}
	return false
}
