package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/medibridge/enroll-backend-go/internal/domain/employee"
	"github.com/medibridge/enroll-backend-go/internal/handler/http/response"
	"github.com/medibridge/enroll-backend-go/internal/pkg/validator"
)

type EmployeeHandler interface {
	GetMe(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// GetMe implements EmployeeHandler.
func (e *EmployeeHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	emp, err := e.employeeService.GetCurrentEmployee(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, emp)
}

// List implements EmployeeHandler.
func (e *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var batchID *string
	if raw := r.URL.Query().Get("batch_id"); raw != "" {
		if !validator.IsValidUUID(raw) {
			response.BadRequest(w, "batch_id must be a valid UUID", nil)
			return
		}
		batchID = &raw
	}

	employees, err := e.employeeService.ListEmployees(r.Context(), batchID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employees)
}

// GetByID implements EmployeeHandler.
func (e *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	emp, err := e.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, emp)
}

// Create implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := e.employeeService.CreateEmployee(r.Context(), createReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created successfully", created)
}

// Update implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	var updateReq employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := e.employeeService.UpdateEmployee(r.Context(), id, updateReq); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated successfully", nil)
}

// Delete implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	if err := e.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}
