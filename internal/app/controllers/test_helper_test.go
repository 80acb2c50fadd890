package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/oyelaran/studentbase/internal/app/models/dto"
	"github.com/oyelaran/studentbase/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := middleware.RegisterCustomValidators(); err != nil {
		panic(err)
	}
}

// fakeAuthService returns canned responses for authentication operations
type fakeAuthService struct {
	registerResp *dto.StudentResponse
	registerErr  error
	loginResp    *dto.TokenResponse
	loginErr     error
	refreshResp  *dto.TokenResponse
	refreshErr   error
	logoutErr    error
}

func (f *fakeAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.StudentResponse, error) {
	return f.registerResp, f.registerErr
}

func (f *fakeAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	return f.refreshResp, f.refreshErr
}

func (f *fakeAuthService) Logout(ctx context.Context, refreshToken string) error {
	return f.logoutErr
}

// fakeStudentService returns canned responses for student operations
type fakeStudentService struct {
	listResp    *dto.StudentListResponse
	listErr     error
	studentResp *dto.StudentResponse
	studentErr  error
	matricResp  *dto.MatricNumberResponse
	matricErr   error

	lastStudentID string
	lastUsername  string
}

func (f *fakeStudentService) List(ctx context.Context, page, size int) (*dto.StudentListResponse, error) {
	return f.listResp, f.listErr
}

func (f *fakeStudentService) GetByUsername(ctx context.Context, username string) (*dto.StudentResponse, error) {
	f.lastUsername = username
	return f.studentResp, f.studentErr
}

func (f *fakeStudentService) GetByMatricNumber(ctx context.Context, matricNumber string) (*dto.StudentResponse, error) {
	return f.studentResp, f.studentErr
}

func (f *fakeStudentService) GetProfile(ctx context.Context, studentID string) (*dto.StudentResponse, error) {
	f.lastStudentID = studentID
	return f.studentResp, f.studentErr
}

func (f *fakeStudentService) UpdateName(ctx context.Context, studentID string, req *dto.UpdateNameRequest) (*dto.StudentResponse, error) {
	f.lastStudentID = studentID
	return f.studentResp, f.studentErr
}

func (f *fakeStudentService) AssignMatricNumber(ctx context.Context, username string) (*dto.MatricNumberResponse, error) {
	f.lastUsername = username
	return f.matricResp, f.matricErr
}

// performRequest runs a request against the router and returns the recorder
func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		data, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of an API response envelope
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response envelope: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		t.Fatalf("failed to decode response data: %v", err)
	}
}

// decodeError unmarshals an error response
func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorDetail {
	t.Helper()

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return resp.Error
}
