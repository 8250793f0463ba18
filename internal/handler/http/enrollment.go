package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/medibridge/enroll-backend-go/internal/domain/enrollment"
	"github.com/medibridge/enroll-backend-go/internal/handler/http/response"
	"github.com/medibridge/enroll-backend-go/internal/pkg/validator"
)

type EnrollmentHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	SetCoverage(w http.ResponseWriter, r *http.Request)
	AddFamilyMember(w http.ResponseWriter, r *http.Request)
	RemoveFamilyMember(w http.ResponseWriter, r *http.Request)
	AddParent(w http.ResponseWriter, r *http.Request)
	RemoveParent(w http.ResponseWriter, r *http.Request)
	GetPremium(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
}

type EnrollmentHandlerImpl struct {
	enrollmentService enrollment.EnrollmentService
}

func NewEnrollmentHandler(enrollmentService enrollment.EnrollmentService) EnrollmentHandler {
	return &EnrollmentHandlerImpl{enrollmentService: enrollmentService}
}

// Get implements EnrollmentHandler.
func (e *EnrollmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	enrollmentResponse, err := e.enrollmentService.GetEnrollment(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, enrollmentResponse)
}

// SetCoverage implements EnrollmentHandler.
func (e *EnrollmentHandlerImpl) SetCoverage(w http.ResponseWriter, r *http.Request) {
	var coverageReq enrollment.CoverageRequest

	if err := json.NewDecoder(r.Body).Decode(&coverageReq); err != nil {
		slog.Error("Set coverage decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := e.enrollmentService.SetCoverage(r.Context(), coverageReq); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Parental coverage updated", nil)
}

// AddFamilyMember implements EnrollmentHandler.
func (e *EnrollmentHandlerImpl) AddFamilyMember(w http.ResponseWriter, r *http.Request) {
	var addReq enrollment.AddFamilyMemberRequest

	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		slog.Error("Add family member decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := e.enrollmentService.AddFamilyMember(r.Context(), addReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Family member added", created)
}

// RemoveFamilyMember implements EnrollmentHandler.
func (e *EnrollmentHandlerImpl) RemoveFamilyMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	if err := e.enrollmentService.RemoveFamilyMember(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Family member removed", nil)
}

// AddParent implements EnrollmentHandler.
func (e *EnrollmentHandlerImpl) AddParent(w http.ResponseWriter, r *http.Request) {
	var addReq enrollment.AddParentRequest

	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		slog.Error("Add parent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := e.enrollmentService.AddParent(r.Context(), addReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Parent added", created)
}

// RemoveParent implements EnrollmentHandler.
func (e *EnrollmentHandlerImpl) RemoveParent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	if err := e.enrollmentService.RemoveParent(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Parent removed", nil)
}

// GetPremium implements EnrollmentHandler.
func (e *EnrollmentHandlerImpl) GetPremium(w http.ResponseWriter, r *http.Request) {
	premium, err := e.enrollmentService.GetPremium(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, premium)
}

// Submit implements EnrollmentHandler.
func (e *EnrollmentHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	submitted, err := e.enrollmentService.Submit(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	slog.Info("Enrollment submitted", "enrollment_id", submitted.EnrollmentID)
	response.Created(w, "Enrollment submitted successfully", submitted)
}
