package dynamodb_handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ayushijadhav2006/smile-share/functions/gateway/helpers"
	dynamodb_service "github.com/ayushijadhav2006/smile-share/functions/gateway/services/dynamodb_service"
	"github.com/ayushijadhav2006/smile-share/functions/gateway/transport"
	internal_types "github.com/ayushijadhav2006/smile-share/functions/gateway/types"
)

type OrganizationHandler struct {
	OrganizationService internal_types.OrganizationServiceInterface
}

func NewOrganizationHandler(organizationService internal_types.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{OrganizationService: organizationService}
}

func (h *OrganizationHandler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	var createOrganization internal_types.OrganizationInsert
	body, err := io.ReadAll(r.Body)
	if err != nil {
		transport.SendServerRes(w, []byte("Failed to read request body: "+err.Error()), http.StatusBadRequest, err)
		return
	}

	err = json.Unmarshal(body, &createOrganization)
	if err != nil {
		transport.SendServerRes(w, []byte("Invalid JSON payload: "+err.Error()), http.StatusUnprocessableEntity, err)
		return
	}

	err = validate.Struct(&createOrganization)
	if err != nil {
		transport.SendServerRes(w, []byte("Invalid body: "+err.Error()), http.StatusBadRequest, err)
		return
	}

	db := transport.GetDB()
	res, err := h.OrganizationService.InsertOrganization(r.Context(), db, createOrganization)
	if err != nil {
		transport.SendServerRes(w, []byte("Failed to create organization: "+err.Error()), http.StatusInternalServerError, err)
		return
	}

	response, err := json.Marshal(res)
	if err != nil {
		transport.SendServerRes(w, []byte("Error marshaling JSON"), http.StatusInternalServerError, err)
		return
	}

	transport.SendServerRes(w, response, http.StatusCreated, nil)
}

func (h *OrganizationHandler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ngoId := vars[helpers.NGO_ID_KEY]
	if ngoId == "" {
		transport.SendServerRes(w, []byte("Missing NGO ID"), http.StatusBadRequest, nil)
		return
	}

	db := transport.GetDB()
	organization, err := h.OrganizationService.GetOrganizationById(r.Context(), db, ngoId)
	if err != nil {
		transport.SendServerRes(w, []byte("Failed to get organization: "+err.Error()), http.StatusInternalServerError, err)
		return
	}
	if organization == nil {
		transport.SendServerRes(w, []byte("Organization not found"), http.StatusNotFound, nil)
		return
	}

	response, err := json.Marshal(organization)
	if err != nil {
		transport.SendServerRes(w, []byte("Error marshaling JSON"), http.StatusInternalServerError, err)
		return
	}

	transport.SendServerRes(w, response, http.StatusOK, nil)
}

func CreateOrganizationHandler(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	organizationService := dynamodb_service.NewOrganizationService()
	handler := NewOrganizationHandler(organizationService)
	return func(w http.ResponseWriter, r *http.Request) {
		handler.CreateOrganization(w, r)
	}
}

func GetOrganizationHandler(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	organizationService := dynamodb_service.NewOrganizationService()
	handler := NewOrganizationHandler(organizationService)
	return func(w http.ResponseWriter, r *http.Request) {
		handler.GetOrganization(w, r)
	}
}
