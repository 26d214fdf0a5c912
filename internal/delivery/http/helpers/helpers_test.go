package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Title    string   `json:"title" validate:"required,max=10"`
	Capacity int      `json:"capacity" validate:"min=0"`
	Status   string   `json:"status" validate:"omitempty,oneof=confirmed tentative"`
	Tags     []string `json:"tags" validate:"dive,required"`
}

func (s sampleRequest) Validate() []string { return ValidateStruct(s) }

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestWriteJSONErrorDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSONErrorDetails(rr, http.StatusConflict, ErrCodeVenueConflict, "busy", map[string]string{"venue": "Hall A"})

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	resp := decodeBody(t, rr)
	assert.Nil(t, resp.Data)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeVenueConflict, resp.Error.Code)
	assert.Equal(t, map[string]any{"venue": "Hall A"}, resp.Error.Details)
}

func TestWriteJSONError_OmitsDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSONError(rr, http.StatusNotFound, ErrCodeNotFound, "missing")
	assert.NotContains(t, rr.Body.String(), "details")
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantOK      bool
		wantCode    string
		wantMessage []string
	}{
		{name: "valid", body: `{"title":"Talk","capacity":10,"status":"confirmed","tags":["go"]}`, wantOK: true},
		{name: "malformed json", body: `{"title":`, wantCode: ErrCodeBadRequest},
		{name: "unknown field", body: `{"title":"Talk","room":"A"}`, wantCode: ErrCodeBadRequest},
		{
			name:        "field rules",
			body:        `{"title":"","capacity":-1,"status":"maybe","tags":[""]}`,
			wantCode:    ErrCodeValidation,
			wantMessage: []string{"title is required", "capacity must be at least 0", "status must be one of confirmed, tentative", "tags[0] is required"},
		},
		{
			name:        "too long",
			body:        `{"title":"a very long title"}`,
			wantCode:    ErrCodeValidation,
			wantMessage: []string{"title must be at most 10"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			var dest sampleRequest
			ok := DecodeAndValidate(rr, req, &dest)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				return
			}
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			resp := decodeBody(t, rr)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			for _, m := range tt.wantMessage {
				assert.Contains(t, resp.Error.Message, m)
			}
		})
	}
}
