package docs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"encoresocial/internal/docstore"
	"encoresocial/internal/domain"
)

type concertRepository struct {
	store docstore.Store
}

// NewConcertRepository returns a read-only domain.ConcertRepository backed
// by the concerts collection.
func NewConcertRepository(store docstore.Store) domain.ConcertRepository {
	return &concertRepository{store: store}
}

// concertDoc mirrors the ingested catalog document layout (camelCase,
// nested objects). Decoding goes through a JSON round trip rather than
// field-by-field lookups.
type concertDoc struct {
	TicketmasterID string `json:"ticketmasterId"`
	Name           string `json:"name"`
	Seatmap        string `json:"seatmap"`
	Images         []struct {
		URL    string `json:"url"`
		Ratio  string `json:"ratio"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	} `json:"images"`
	Dates struct {
		Start struct {
			LocalDate string `json:"localDate"`
			LocalTime string `json:"localTime"`
		} `json:"start"`
	} `json:"dates"`
	Venue *struct {
		Name string `json:"name"`
		City *struct {
			Name string `json:"name"`
		} `json:"city"`
		State *struct {
			Name      string `json:"name"`
			StateCode string `json:"stateCode"`
		} `json:"state"`
		Country *struct {
			Name        string `json:"name"`
			CountryCode string `json:"countryCode"`
		} `json:"country"`
	} `json:"venue"`
	Attractions []struct {
		Name string `json:"name"`
	} `json:"attractions"`
	Classification *struct {
		Segment *struct {
			Name string `json:"name"`
		} `json:"segment"`
		Genre *struct {
			Name string `json:"name"`
		} `json:"genre"`
	} `json:"classification"`
}

func docToConcert(id string, d docstore.Doc) (*domain.Concert, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode concert %s: %w", id, err)
	}
	var cd concertDoc
	if err := json.Unmarshal(raw, &cd); err != nil {
		return nil, fmt.Errorf("decode concert %s: %w", id, err)
	}

	c := &domain.Concert{
		ID:             id,
		TicketmasterID: cd.TicketmasterID,
		Name:           cd.Name,
		Seatmap:        cd.Seatmap,
	}
	c.Dates.Start.LocalDate = cd.Dates.Start.LocalDate
	c.Dates.Start.LocalTime = cd.Dates.Start.LocalTime
	for _, img := range cd.Images {
		c.Images = append(c.Images, domain.ConcertImage{
			URL: img.URL, Ratio: img.Ratio, Width: img.Width, Height: img.Height,
		})
	}
	if cd.Venue != nil {
		v := &domain.ConcertVenue{Name: cd.Venue.Name}
		if cd.Venue.City != nil {
			v.City = &domain.NamedRef{Name: cd.Venue.City.Name}
		}
		if cd.Venue.State != nil {
			v.State = &domain.StateRef{Name: cd.Venue.State.Name, StateCode: cd.Venue.State.StateCode}
		}
		if cd.Venue.Country != nil {
			v.Country = &domain.CountryRef{Name: cd.Venue.Country.Name, CountryCode: cd.Venue.Country.CountryCode}
		}
		c.Venue = v
	}
	for _, a := range cd.Attractions {
		c.Attractions = append(c.Attractions, domain.Attraction{Name: a.Name})
	}
	if cd.Classification != nil {
		cl := &domain.Classification{}
		if cd.Classification.Segment != nil {
			cl.Segment = &domain.NamedRef{Name: cd.Classification.Segment.Name}
		}
		if cd.Classification.Genre != nil {
			cl.Genre = &domain.NamedRef{Name: cd.Classification.Genre.Name}
		}
		c.Classification = cl
	}
	return c, nil
}

func (r *concertRepository) GetByID(ctx context.Context, id string) (*domain.Concert, error) {
	d, err := r.store.Get(ctx, ColConcerts, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return docToConcert(id, d)
}

func (r *concertRepository) ListUpcoming(ctx context.Context, fromDate string, limit int) ([]*domain.Concert, error) {
	docs, err := r.store.Query(ctx, ColConcerts, docstore.Query{
		Filters: []docstore.Filter{
			{Path: "dates.start.localDate", Op: docstore.OpGte, Value: fromDate},
		},
		OrderBy: "dates.start.localDate",
		Limit:   limit,
	})
	if err != nil {
		return nil, err
	}
	concerts := make([]*domain.Concert, 0, len(docs))
	for _, d := range docs {
		c, err := docToConcert(d.ID, d.Data)
		if err != nil {
			return nil, err
		}
		concerts = append(concerts, c)
	}
	return concerts, nil
}
