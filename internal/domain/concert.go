package domain

import "context"

// Concert is a catalog event. The catalog is ingested externally and
// consumed read-only here; only the fields the search/filter/visibility
// features touch are modeled.
// swagger:model Concert
type Concert struct {
	ID             string          `json:"id"`
	TicketmasterID string          `json:"ticketmaster_id,omitempty"`
	Name           string          `json:"name"`
	Seatmap        string          `json:"seatmap,omitempty"`
	Images         []ConcertImage  `json:"images,omitempty"`
	Dates          ConcertDates    `json:"dates"`
	Venue          *ConcertVenue   `json:"venue,omitempty"`
	Attractions    []Attraction    `json:"attractions,omitempty"`
	Classification *Classification `json:"classification,omitempty"`
}

// ConcertImage is one promotional image variant.
type ConcertImage struct {
	URL    string `json:"url"`
	Ratio  string `json:"ratio,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// ConcertDates holds the (possibly partial) schedule information.
type ConcertDates struct {
	Start ConcertStart `json:"start"`
}

// ConcertStart holds the local start date/time. LocalDate is an ISO
// YYYY-MM-DD string, which makes range filters plain string comparisons.
type ConcertStart struct {
	LocalDate string `json:"local_date"`
	LocalTime string `json:"local_time,omitempty"`
}

// ConcertVenue describes where the concert takes place.
type ConcertVenue struct {
	Name    string        `json:"name"`
	City    *NamedRef     `json:"city,omitempty"`
	State   *StateRef     `json:"state,omitempty"`
	Country *CountryRef   `json:"country,omitempty"`
}

// NamedRef is a nested object carrying only a name.
type NamedRef struct {
	Name string `json:"name"`
}

// StateRef carries a state/province code.
type StateRef struct {
	Name      string `json:"name,omitempty"`
	StateCode string `json:"state_code,omitempty"`
}

// CountryRef carries a country code.
type CountryRef struct {
	Name        string `json:"name,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}

// Attraction is a performer on the lineup.
type Attraction struct {
	Name string `json:"name"`
}

// Classification holds the genre taxonomy of the concert.
type Classification struct {
	Segment *NamedRef `json:"segment,omitempty"`
	Genre   *NamedRef `json:"genre,omitempty"`
}

// PrimaryArtist returns the first listed attraction's name, falling back to
// the concert name.
func (c *Concert) PrimaryArtist() string {
	if len(c.Attractions) > 0 && c.Attractions[0].Name != "" {
		return c.Attractions[0].Name
	}
	return c.Name
}

// GenreName returns the primary genre name, or "".
func (c *Concert) GenreName() string {
	if c.Classification != nil && c.Classification.Genre != nil {
		return c.Classification.Genre.Name
	}
	return ""
}

// VenueName returns the venue name, or "".
func (c *Concert) VenueName() string {
	if c.Venue != nil {
		return c.Venue.Name
	}
	return ""
}

// CityName returns the venue city name, or "".
func (c *Concert) CityName() string {
	if c.Venue != nil && c.Venue.City != nil {
		return c.Venue.City.Name
	}
	return ""
}

// ConcertRepository defines read-only access to the concert catalog.
type ConcertRepository interface {
	GetByID(ctx context.Context, id string) (*Concert, error)
	// ListUpcoming returns concerts with local date >= fromDate
	// (YYYY-MM-DD), sorted ascending, capped at limit.
	ListUpcoming(ctx context.Context, fromDate string, limit int) ([]*Concert, error)
}
