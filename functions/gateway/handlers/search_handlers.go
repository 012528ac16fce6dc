package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ayushijadhav2006/smile-share/functions/gateway/helpers"
	"github.com/ayushijadhav2006/smile-share/functions/gateway/services"
	"github.com/ayushijadhav2006/smile-share/functions/gateway/transport"
	internal_types "github.com/ayushijadhav2006/smile-share/functions/gateway/types"
)

// SearchHandler serves the activity search page's data: the filtered
// result set and the autosuggest list, both computed over a snapshot
// loaded fresh per request.
type SearchHandler struct {
	CatalogService *services.CatalogService
}

func NewSearchHandler(catalogService *services.CatalogService) *SearchHandler {
	return &SearchHandler{CatalogService: catalogService}
}

// parseFilterCriteria reads the search query params. The date window
// defaults to "upcoming", matching the search page's initial state.
func parseFilterCriteria(r *http.Request) (internal_types.FilterCriteria, error) {
	criteria := internal_types.FilterCriteria{
		Query:      r.URL.Query().Get("q"),
		DateWindow: r.URL.Query().Get("date"),
		Category:   r.URL.Query().Get("category"),
		Location:   r.URL.Query().Get("location"),
	}
	if criteria.DateWindow == "" {
		criteria.DateWindow = internal_types.DateWindowUpcoming
	}

	if minRating := r.URL.Query().Get("min_rating"); minRating != "" {
		parsed, err := strconv.ParseFloat(minRating, 64)
		if err != nil {
			return criteria, errors.New("min_rating must be a number")
		}
		criteria.MinRating = parsed
	}

	return criteria, nil
}

func (h *SearchHandler) SearchActivities(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseFilterCriteria(r)
	if err != nil {
		transport.SendServerRes(w, []byte(err.Error()), http.StatusBadRequest, err)
		return
	}

	db := transport.GetDB()
	snapshot, err := h.CatalogService.LoadCatalog(r.Context(), db)
	if err != nil {
		transport.SendServerRes(w, []byte("Activities are unavailable right now, please try again"), http.StatusServiceUnavailable, err)
		return
	}

	results := services.ApplyFilters(snapshot, criteria)

	responseData := internal_types.ActivitySearchResponse{
		Count:      len(results),
		Activities: results,
		Query:      criteria.Query,
		DateWindow: criteria.DateWindow,
	}

	response, err := json.Marshal(responseData)
	if err != nil {
		transport.SendServerRes(w, []byte("Error marshaling JSON"), http.StatusInternalServerError, err)
		return
	}

	transport.SendServerRes(w, response, http.StatusOK, nil)
}

func (h *SearchHandler) SuggestActivities(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("q")

	db := transport.GetDB()
	snapshot, err := h.CatalogService.LoadCatalog(r.Context(), db)
	if err != nil {
		transport.SendServerRes(w, []byte("Activities are unavailable right now, please try again"), http.StatusServiceUnavailable, err)
		return
	}

	suggestions := services.SuggestActivities(snapshot.Activities, prefix)

	responseData := struct {
		Suggestions []internal_types.Activity `json:"suggestions"`
	}{
		Suggestions: suggestions,
	}

	response, err := json.Marshal(responseData)
	if err != nil {
		transport.SendServerRes(w, []byte("Error marshaling JSON"), http.StatusInternalServerError, err)
		return
	}

	transport.SendServerRes(w, response, http.StatusOK, nil)
}

// RecentSearchHandler exposes the per-user recent search list.
type RecentSearchHandler struct {
	RecentSearchService *services.RecentSearchService
}

func NewRecentSearchHandler(recentSearchService *services.RecentSearchService) *RecentSearchHandler {
	return &RecentSearchHandler{RecentSearchService: recentSearchService}
}

func (h *RecentSearchHandler) GetRecentSearches(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userId := vars[helpers.USER_ID_KEY]
	if userId == "" {
		transport.SendServerRes(w, []byte("Missing user ID"), http.StatusBadRequest, nil)
		return
	}

	searches := h.RecentSearchService.Load(r.Context(), userId)

	response, err := json.Marshal(struct {
		Searches []string `json:"searches"`
	}{Searches: searches})
	if err != nil {
		transport.SendServerRes(w, []byte("Error marshaling JSON"), http.StatusInternalServerError, err)
		return
	}

	transport.SendServerRes(w, response, http.StatusOK, nil)
}

func (h *RecentSearchHandler) RecordRecentSearch(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userId := vars[helpers.USER_ID_KEY]
	if userId == "" {
		transport.SendServerRes(w, []byte("Missing user ID"), http.StatusBadRequest, nil)
		return
	}

	var payload struct {
		Term string `json:"term"`
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		transport.SendServerRes(w, []byte("Failed to read request body: "+err.Error()), http.StatusBadRequest, err)
		return
	}
	err = json.Unmarshal(body, &payload)
	if err != nil {
		transport.SendServerRes(w, []byte("Invalid JSON payload: "+err.Error()), http.StatusUnprocessableEntity, err)
		return
	}

	searches, err := h.RecentSearchService.Record(r.Context(), userId, payload.Term)
	if err != nil {
		transport.SendServerRes(w, []byte("Failed to save search: "+err.Error()), http.StatusInternalServerError, err)
		return
	}

	response, err := json.Marshal(struct {
		Searches []string `json:"searches"`
	}{Searches: searches})
	if err != nil {
		transport.SendServerRes(w, []byte("Error marshaling JSON"), http.StatusInternalServerError, err)
		return
	}

	transport.SendServerRes(w, response, http.StatusOK, nil)
}

func (h *RecentSearchHandler) ClearRecentSearches(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userId := vars[helpers.USER_ID_KEY]
	if userId == "" {
		transport.SendServerRes(w, []byte("Missing user ID"), http.StatusBadRequest, nil)
		return
	}

	err := h.RecentSearchService.Clear(r.Context(), userId)
	if err != nil {
		transport.SendServerRes(w, []byte("Failed to clear searches: "+err.Error()), http.StatusInternalServerError, err)
		return
	}

	transport.SendServerRes(w, []byte(`{"message":"Recent searches cleared"}`), http.StatusOK, nil)
}

func SearchActivitiesHandler(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	handler := NewSearchHandler(services.NewCatalogService())
	return func(w http.ResponseWriter, r *http.Request) {
		handler.SearchActivities(w, r)
	}
}

func SuggestActivitiesHandler(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	handler := NewSearchHandler(services.NewCatalogService())
	return func(w http.ResponseWriter, r *http.Request) {
		handler.SuggestActivities(w, r)
	}
}

func GetRecentSearchesHandler(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	handler := NewRecentSearchHandler(services.NewRecentSearchService(transport.NewKVStore(transport.GetDB())))
	return func(w http.ResponseWriter, r *http.Request) {
		handler.GetRecentSearches(w, r)
	}
}

func RecordRecentSearchHandler(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	handler := NewRecentSearchHandler(services.NewRecentSearchService(transport.NewKVStore(transport.GetDB())))
	return func(w http.ResponseWriter, r *http.Request) {
		handler.RecordRecentSearch(w, r)
	}
}

func ClearRecentSearchesHandler(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	handler := NewRecentSearchHandler(services.NewRecentSearchService(transport.NewKVStore(transport.GetDB())))
	return func(w http.ResponseWriter, r *http.Request) {
		handler.ClearRecentSearches(w, r)
	}
}
