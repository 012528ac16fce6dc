package dynamodb_handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/ayushijadhav2006/smile-share/functions/gateway/helpers"
	"github.com/ayushijadhav2006/smile-share/functions/gateway/services"
	dynamodb_service "github.com/ayushijadhav2006/smile-share/functions/gateway/services/dynamodb_service"
	"github.com/ayushijadhav2006/smile-share/functions/gateway/transport"
	internal_types "github.com/ayushijadhav2006/smile-share/functions/gateway/types"
)

var (
	statusPublisher     internal_types.ActivityStatusPublisherInterface
	statusPublisherOnce sync.Once
)

// getStatusPublisher connects to NATS at most once; a missing NATS_URL
// just disables live status updates instead of failing registrations.
func getStatusPublisher() internal_types.ActivityStatusPublisherInterface {
	statusPublisherOnce.Do(func() {
		if os.Getenv("NATS_URL") == "" {
			return
		}
		conn, err := services.GetNatsClient()
		if err != nil {
			log.Printf("NATS unavailable, status updates disabled: %v", err)
			return
		}
		natsService, err := services.NewNatsService(context.Background(), conn)
		if err != nil {
			log.Printf("NATS stream setup failed, status updates disabled: %v", err)
			return
		}
		statusPublisher = natsService
	})
	return statusPublisher
}

// ParticipantHandler handles participant registration requests
type ParticipantHandler struct {
	ParticipantService internal_types.ParticipantServiceInterface
	ActivityService    internal_types.ActivityServiceInterface
	StatusPublisher    internal_types.ActivityStatusPublisherInterface
}

func NewParticipantHandler(participantService internal_types.ParticipantServiceInterface, activityService internal_types.ActivityServiceInterface, statusPublisher internal_types.ActivityStatusPublisherInterface) *ParticipantHandler {
	return &ParticipantHandler{
		ParticipantService: participantService,
		ActivityService:    activityService,
		StatusPublisher:    statusPublisher,
	}
}

// RegisterParticipant mirrors the opt-in form flow: the activity must be
// accepting and below capacity, and a user may register only once.
func (h *ParticipantHandler) RegisterParticipant(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	activityId := vars[helpers.ACTIVITY_ID_KEY]
	if activityId == "" {
		transport.SendServerRes(w, []byte("Missing activity ID"), http.StatusBadRequest, nil)
		return
	}
	userId := vars[helpers.USER_ID_KEY]
	if userId == "" {
		transport.SendServerRes(w, []byte("Missing user ID"), http.StatusBadRequest, nil)
		return
	}

	var createParticipant internal_types.ParticipantInsert
	body, err := io.ReadAll(r.Body)
	if err != nil {
		transport.SendServerRes(w, []byte("Failed to read request body: "+err.Error()), http.StatusBadRequest, err)
		return
	}

	err = json.Unmarshal(body, &createParticipant)
	if err != nil {
		transport.SendServerRes(w, []byte("Invalid JSON payload: "+err.Error()), http.StatusUnprocessableEntity, err)
		return
	}

	err = validate.Struct(&createParticipant)
	if err != nil {
		transport.SendServerRes(w, []byte("Invalid body: "+err.Error()), http.StatusBadRequest, err)
		return
	}

	db := transport.GetDB()

	activity, err := h.ActivityService.GetActivityById(r.Context(), db, activityId)
	if err != nil {
		transport.SendServerRes(w, []byte("Activity not found"), http.StatusNotFound, err)
		return
	}

	if activity.ParticipationFormStatus != internal_types.FormStatusAccepting {
		transport.SendServerRes(w, []byte("Volunteer registration is currently closed"), http.StatusConflict, nil)
		return
	}
	if activity.NoOfParticipants >= activity.AcceptingParticipants {
		transport.SendServerRes(w, []byte("This activity is already full"), http.StatusConflict, nil)
		return
	}

	existing, err := h.ParticipantService.GetParticipantByPk(r.Context(), db, activityId, userId)
	if err != nil {
		transport.SendServerRes(w, []byte("Failed to check existing registration: "+err.Error()), http.StatusInternalServerError, err)
		return
	}
	if existing != nil {
		transport.SendServerRes(w, []byte("You have already registered for this activity"), http.StatusConflict, nil)
		return
	}

	createParticipant.ActivityId = activityId
	createParticipant.NgoId = activity.NgoId

	participant, err := h.ParticipantService.InsertParticipant(r.Context(), db, createParticipant, activityId, userId)
	if err != nil {
		if errors.Is(err, dynamodb_service.ErrAlreadyRegistered) {
			transport.SendServerRes(w, []byte("You have already registered for this activity"), http.StatusConflict, err)
			return
		}
		transport.SendServerRes(w, []byte("Failed to submit registration: "+err.Error()), http.StatusInternalServerError, err)
		return
	}

	updatedActivity, err := h.ActivityService.IncrementParticipantCount(r.Context(), db, activityId)
	if err != nil {
		transport.SendServerRes(w, []byte("Registration closed before your submission completed"), http.StatusConflict, err)
		return
	}

	if h.StatusPublisher != nil {
		publishErr := h.StatusPublisher.PublishStatus(r.Context(), internal_types.ActivityStatusUpdate{
			ActivityId:              updatedActivity.Id,
			NoOfParticipants:        updatedActivity.NoOfParticipants,
			AcceptingParticipants:   updatedActivity.AcceptingParticipants,
			ParticipationFormStatus: updatedActivity.ParticipationFormStatus,
			UpdatedAt:               time.Now(),
		})
		if publishErr != nil {
			log.Printf("failed to publish status update for %s: %v", updatedActivity.Id, publishErr)
		}
	}

	response, err := json.Marshal(participant)
	if err != nil {
		transport.SendServerRes(w, []byte("Error marshaling JSON"), http.StatusInternalServerError, err)
		return
	}

	transport.SendServerRes(w, response, http.StatusCreated, nil)
}

func (h *ParticipantHandler) GetParticipantsByActivityID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	activityId := vars[helpers.ACTIVITY_ID_KEY]
	if activityId == "" {
		transport.SendServerRes(w, []byte("Missing activity ID"), http.StatusBadRequest, nil)
		return
	}

	db := transport.GetDB()
	participants, err := h.ParticipantService.GetParticipantsByActivityID(r.Context(), db, activityId)
	if err != nil {
		transport.SendServerRes(w, []byte("Failed to get participants: "+err.Error()), http.StatusInternalServerError, err)
		return
	}

	responseData := struct {
		Count        int                         `json:"count"`
		Participants []internal_types.Participant `json:"participants"`
	}{
		Count:        len(participants),
		Participants: participants,
	}

	response, err := json.Marshal(responseData)
	if err != nil {
		transport.SendServerRes(w, []byte("Error marshaling JSON"), http.StatusInternalServerError, err)
		return
	}

	transport.SendServerRes(w, response, http.StatusOK, nil)
}

func RegisterParticipantHandler(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	participantService := dynamodb_service.NewParticipantService()
	activityService := dynamodb_service.NewActivityService()
	handler := NewParticipantHandler(participantService, activityService, getStatusPublisher())
	return func(w http.ResponseWriter, r *http.Request) {
		handler.RegisterParticipant(w, r)
	}
}

func GetParticipantsByActivityIDHandler(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	participantService := dynamodb_service.NewParticipantService()
	activityService := dynamodb_service.NewActivityService()
	handler := NewParticipantHandler(participantService, activityService, nil)
	return func(w http.ResponseWriter, r *http.Request) {
		handler.GetParticipantsByActivityID(w, r)
	}
}
