package types

const (
	DateWindowUpcoming = "upcoming"
	DateWindowOngoing  = "ongoing"
	DateWindowPast     = "past"
)

// CatalogSnapshot pairs the loaded activities with the organization lookup
// built for them. It is assembled once per load and read-only afterwards;
// every NgoId referenced by Activities resolves in Organizations (missing
// NGOs are filled with an "Unknown NGO" placeholder at load time).
type CatalogSnapshot struct {
	Activities    []Activity              `json:"activities"`
	Organizations map[string]Organization `json:"organizations"`
}

// FilterCriteria is the current set of search inputs. Zero values disable
// the corresponding stage, except DateWindow where "" means no date filter.
type FilterCriteria struct {
	Query      string  `json:"q"`
	DateWindow string  `json:"date"`
	Category   string  `json:"category"`
	Location   string  `json:"location"`
	MinRating  float64 `json:"minRating"`
}

type ActivitySearchResponse struct {
	Count      int        `json:"count"`
	Activities []Activity `json:"activities"`
	Query      string     `json:"query,omitempty"`
	DateWindow string     `json:"dateWindow,omitempty"`
}
