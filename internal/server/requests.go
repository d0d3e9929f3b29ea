package server

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/vieclam/jobboard/internal/domain/models"
)

var validate = validator.New()

// searchRequest is the flat query-parameter shape of a search call.
type searchRequest struct {
	Keyword     string `validate:"max=200"`
	Location    string `validate:"max=100"`
	Type        string `validate:"max=50"`
	SalaryRange string `validate:"max=20"`
	Experience  string `validate:"max=50"`
	Page        int    `validate:"gte=0"`
	Limit       int    `validate:"gte=0,lte=50"`
}

func parseSearchRequest(r *http.Request) (searchRequest, error) {

	query := r.URL.Query()

	// malformed numbers degrade to zero, the engine normalizes defaults
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	request := searchRequest{
		Keyword:     query.Get("keyword"),
		Location:    query.Get("location"),
		Type:        query.Get("type"),
		SalaryRange: query.Get("salary"),
		Experience:  query.Get("experience"),
		Page:        page,
		Limit:       limit,
	}

	if err := validate.Struct(request); err != nil {
		return searchRequest{}, err
	}
	return request, nil
}

func (r searchRequest) toFilter() models.JobFilter {
	filter := models.JobFilter{
		Keyword:    r.Keyword,
		Location:   r.Location,
		Type:       r.Type,
		Experience: r.Experience,
		Page:       r.Page,
		Limit:      r.Limit,
	}
	return filter.WithSalaryRange(r.SalaryRange)
}

func userIDFrom(r *http.Request) (int64, bool) {
	userID, err := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)
	if err != nil || userID <= 0 {
		return 0, false
	}
	return userID, true
}

func jobIDFrom(raw string) (uint, bool) {
	jobID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || jobID == 0 {
		return 0, false
	}
	return uint(jobID), true
}
