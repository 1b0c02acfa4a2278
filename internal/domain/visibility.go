package domain

import "context"

// Attendee is an attendance record joined with the attendee's user document
// for display.
// swagger:model Attendee
type Attendee struct {
	UserID        string       `json:"user_id"`
	Name          string       `json:"name"`
	Handle        string       `json:"handle"`
	SeatDetails   *SeatDetails `json:"seat_details,omitempty"`
	TaggedFriends []string     `json:"tagged_friends,omitempty"`
	Notes         *string      `json:"notes,omitempty"`
}

// VenueSection groups attendees seated in the same section.
// swagger:model VenueSection
type VenueSection struct {
	Name      string      `json:"name"`
	Attendees []*Attendee `json:"attendees"`
}

// VisibilityResolver derives friend-id sets and filters attendance down to
// "friends only". It is a read-only consumer of the friendship and
// attendance collections.
type VisibilityResolver interface {
	FriendIDsOf(ctx context.Context, userID string) (map[string]struct{}, error)
	// AttendeesFor returns the "going" attendees of the concert restricted
	// to the viewer's friends, optionally including the viewer, in scan
	// order.
	AttendeesFor(ctx context.Context, concertID, viewerID string, includeViewer bool) ([]*Attendee, error)
	// GroupBySection groups attendees by upper-cased, trimmed seat section.
	// Entries without a section are omitted rather than bucketed.
	GroupBySection(attendees []*Attendee) []VenueSection
	// FriendShows returns a friend's going and interested lists joined with
	// concerts; ErrForbidden when friendID is not a friend of viewerID.
	FriendShows(ctx context.Context, viewerID, friendID string) (going, interested []*AttendanceWithConcert, err error)
}
