package http

import (
	"net/http"

	"github.com/ametis-rh/paie-backend-go/internal/domain/organization"
	"github.com/ametis-rh/paie-backend-go/internal/handler/http/response"
)

type OrganizationHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type organizationHandlerImpl struct {
	organizationRepo organization.OrganizationRepository
}

func NewOrganizationHandler(organizationRepo organization.OrganizationRepository) OrganizationHandler {
	return &organizationHandlerImpl{organizationRepo: organizationRepo}
}

func (h *organizationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	org, err := h.organizationRepo.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, organization.ToResponse(org))
}
