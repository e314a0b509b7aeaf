package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// Writes originate either from the scraper or from the seed routine, so
// the actor fields carry a system identity rather than a user ID.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
