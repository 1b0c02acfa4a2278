package helpers

import (
	"net/http"
	"strconv"
)

// ParsePage reads the page query parameter, defaulting to 1 and clamping
// negative or malformed values.
func ParsePage(r *http.Request) int {
	page := 1
	if s := r.URL.Query().Get("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			page = v
		}
	}
	return page
}

// PageMeta is the paging metadata included in paginated list responses.
// swagger:model PageMeta
type PageMeta struct {
	Page    int  `json:"page"`
	HasMore bool `json:"has_more"`
}
