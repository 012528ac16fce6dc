package dynamodb_handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator"
	"github.com/gorilla/mux"

	"github.com/ayushijadhav2006/smile-share/functions/gateway/helpers"
	dynamodb_service "github.com/ayushijadhav2006/smile-share/functions/gateway/services/dynamodb_service"
	"github.com/ayushijadhav2006/smile-share/functions/gateway/transport"
	internal_types "github.com/ayushijadhav2006/smile-share/functions/gateway/types"
)

// Validator instance for struct validation
var validate *validator.Validate = validator.New()

// ActivityHandler handles activity CRUD requests
type ActivityHandler struct {
	ActivityService internal_types.ActivityServiceInterface
}

func NewActivityHandler(activityService internal_types.ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{ActivityService: activityService}
}

func (h *ActivityHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var createActivity internal_types.ActivityInsert
	body, err := io.ReadAll(r.Body)
	if err != nil {
		transport.SendServerRes(w, []byte("Failed to read request body: "+err.Error()), http.StatusBadRequest, err)
		return
	}

	err = json.Unmarshal(body, &createActivity)
	if err != nil {
		transport.SendServerRes(w, []byte("Invalid JSON payload: "+err.Error()), http.StatusUnprocessableEntity, err)
		return
	}

	err = validate.Struct(&createActivity)
	if err != nil {
		transport.SendServerRes(w, []byte("Invalid body: "+err.Error()), http.StatusBadRequest, err)
		return
	}

	db := transport.GetDB()
	res, err := h.ActivityService.InsertActivity(r.Context(), db, createActivity)
	if err != nil {
		transport.SendServerRes(w, []byte("Failed to create activity: "+err.Error()), http.StatusInternalServerError, err)
		return
	}

	response, err := json.Marshal(res)
	if err != nil {
		transport.SendServerRes(w, []byte("Error marshaling JSON"), http.StatusInternalServerError, err)
		return
	}

	transport.SendServerRes(w, response, http.StatusCreated, nil)
}

func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	activityId := vars[helpers.ACTIVITY_ID_KEY]
	if activityId == "" {
		transport.SendServerRes(w, []byte("Missing activity ID"), http.StatusBadRequest, nil)
		return
	}

	db := transport.GetDB()
	activity, err := h.ActivityService.GetActivityById(r.Context(), db, activityId)
	if err != nil {
		transport.SendServerRes(w, []byte("Failed to get activity: "+err.Error()), http.StatusNotFound, err)
		return
	}

	response, err := json.Marshal(activity)
	if err != nil {
		transport.SendServerRes(w, []byte("Error marshaling JSON"), http.StatusInternalServerError, err)
		return
	}

	transport.SendServerRes(w, response, http.StatusOK, nil)
}

func (h *ActivityHandler) GetActivities(w http.ResponseWriter, r *http.Request) {
	db := transport.GetDB()
	activities, err := h.ActivityService.GetActivities(r.Context(), db)
	if err != nil {
		transport.SendServerRes(w, []byte("Failed to get activities: "+err.Error()), http.StatusInternalServerError, err)
		return
	}

	response, err := json.Marshal(activities)
	if err != nil {
		transport.SendServerRes(w, []byte("Error marshaling JSON"), http.StatusInternalServerError, err)
		return
	}

	transport.SendServerRes(w, response, http.StatusOK, nil)
}

func CreateActivityHandler(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	activityService := dynamodb_service.NewActivityService()
	handler := NewActivityHandler(activityService)
	return func(w http.ResponseWriter, r *http.Request) {
		handler.CreateActivity(w, r)
	}
}

func GetActivityHandler(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	activityService := dynamodb_service.NewActivityService()
	handler := NewActivityHandler(activityService)
	return func(w http.ResponseWriter, r *http.Request) {
		handler.GetActivity(w, r)
	}
}

func GetActivitiesHandler(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	activityService := dynamodb_service.NewActivityService()
	handler := NewActivityHandler(activityService)
	return func(w http.ResponseWriter, r *http.Request) {
		handler.GetActivities(w, r)
	}
}
