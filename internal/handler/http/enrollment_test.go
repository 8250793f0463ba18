package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibridge/enroll-backend-go/internal/domain/enrollment"
	"github.com/medibridge/enroll-backend-go/internal/handler/http/response"
)

// stubEnrollmentService returns canned values so handler tests stay free of
// the database.
type stubEnrollmentService struct {
	enrollmentResp enrollment.EnrollmentResponse
	premiumResp    enrollment.PremiumBreakdownResponse
	dependentResp  enrollment.DependentResponse
	submitResp     enrollment.SubmitResponse
	err            error
}

func (s *stubEnrollmentService) GetEnrollment(ctx context.Context) (enrollment.EnrollmentResponse, error) {
	return s.enrollmentResp, s.err
}

func (s *stubEnrollmentService) SetCoverage(ctx context.Context, req enrollment.CoverageRequest) error {
	return s.err
}

func (s *stubEnrollmentService) AddFamilyMember(ctx context.Context, req enrollment.AddFamilyMemberRequest) (enrollment.DependentResponse, error) {
	return s.dependentResp, s.err
}

func (s *stubEnrollmentService) RemoveFamilyMember(ctx context.Context, id string) error {
	return s.err
}

func (s *stubEnrollmentService) AddParent(ctx context.Context, req enrollment.AddParentRequest) (enrollment.DependentResponse, error) {
	return s.dependentResp, s.err
}

func (s *stubEnrollmentService) RemoveParent(ctx context.Context, id string) error {
	return s.err
}

func (s *stubEnrollmentService) GetPremium(ctx context.Context) (enrollment.PremiumBreakdownResponse, error) {
	return s.premiumResp, s.err
}

func (s *stubEnrollmentService) Submit(ctx context.Context) (enrollment.SubmitResponse, error) {
	return s.submitResp, s.err
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestEnrollmentHandlerGetPremium(t *testing.T) {
	handler := NewEnrollmentHandler(&stubEnrollmentService{
		premiumResp: enrollment.PremiumBreakdownResponse{
			Description:   "2 parents coverage",
			BasePremium:   72407,
			Total:         67884,
			RemainingDays: 290,
			PolicyYear:    "2024-25",
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/enrollment/premium", nil)
	rec := httptest.NewRecorder()
	handler.GetPremium(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "2 parents coverage", data["description"])
	assert.Equal(t, float64(67884), data["total"])
	assert.Equal(t, "2024-25", data["policy_year"])
}

func TestEnrollmentHandlerAddFamilyMemberRuleViolation(t *testing.T) {
	handler := NewEnrollmentHandler(&stubEnrollmentService{
		err: &enrollment.CompositionError{Violations: []string{"Only one spouse can be covered"}},
	})

	body, _ := json.Marshal(enrollment.AddFamilyMemberRequest{
		Name: "Second Spouse", Relation: "Spouse", DOB: "1992-01-01", Gender: "Male",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/enrollment/family-members", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.AddFamilyMember(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "RULE_VIOLATION", resp.Error.Code)
	assert.Equal(t, []string{"Only one spouse can be covered"}, resp.Error.Errors)
}

func TestEnrollmentHandlerSubmitAlreadySubmitted(t *testing.T) {
	handler := NewEnrollmentHandler(&stubEnrollmentService{
		err: enrollment.ErrAlreadySubmitted,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/enrollment/submit", nil)
	rec := httptest.NewRecorder()
	handler.Submit(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "CONFLICT", resp.Error.Code)
}

func TestEnrollmentHandlerSubmitSuccess(t *testing.T) {
	handler := NewEnrollmentHandler(&stubEnrollmentService{
		submitResp: enrollment.SubmitResponse{
			EnrollmentID: "e1f2a3b4-0000-0000-0000-000000000001",
			Status:       "pending",
			SubmittedAt:  "2024-06-15T10:00:00Z",
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/enrollment/submit", nil)
	rec := httptest.NewRecorder()
	handler.Submit(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestEnrollmentHandlerSetCoverageBadJSON(t *testing.T) {
	handler := NewEnrollmentHandler(&stubEnrollmentService{})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/enrollment/parental-coverage", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.SetCoverage(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEnrollmentHandlerRemoveParentInvalidID(t *testing.T) {
	handler := NewEnrollmentHandler(&stubEnrollmentService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/enrollment/parents/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	handler.RemoveParent(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
