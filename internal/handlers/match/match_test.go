package match

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/decentracode/creditcore/internal/domain"
	"github.com/decentracode/creditcore/internal/dto"
)

func NewMock(t *testing.T) (*MatchHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestMatchReviewersHandler(t *testing.T) {
	handler, service := NewMock(t)
	first := uuid.New()
	second := uuid.New()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedCount int
	}{
		{
			name: "Ranked reviewers returned",
			body: fmt.Sprintf(`{"language": "go", "candidate_ids": [%q, %q]}`, first, second),
			prepareMock: func() {
				service.EXPECT().
					Rank(gomock.Any(), "go", []uuid.UUID{first, second}).
					Return([]domain.RankedReviewer{
						{ID: second, Username: "carol", StakedCredits: 1000, ReputationScore: 10},
						{ID: first, Username: "alice", StakedCredits: 500, ReputationScore: 50},
					}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 2,
		},
		{
			name: "Empty pool returns empty list",
			body: `{"language": "go", "candidate_ids": []}`,
			prepareMock: func() {
				service.EXPECT().
					Rank(gomock.Any(), "go", []uuid.UUID{}).
					Return(nil, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 0,
		},
		{
			name:         "Missing language",
			body:         `{"candidate_ids": []}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid candidate id",
			body:         `{"language": "go", "candidate_ids": ["nope"]}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid body",
			body:         `{"language": `,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"language": "go", "candidate_ids": []}`,
			prepareMock: func() {
				service.EXPECT().
					Rank(gomock.Any(), "go", []uuid.UUID{}).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/match", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.MatchReviewers(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.MatchReviewerResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedCount)
				if tt.expectedCount == 2 {
					assert.Equal(t, "carol", body[0].Username)
				}
			}
		})
	}
}
