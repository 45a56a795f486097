//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"support-notify/internal/handler/api"
	reqdto "support-notify/internal/handler/dto/request"
	"support-notify/internal/handler/middleware"
	"support-notify/internal/usecase/commands"
	"support-notify/tests/common/httptest"
	"support-notify/tests/common/testutil"
	commandsmock "support-notify/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FeedbackHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockFeedbackCommands
	handler      *api.FeedbackHandler
}

func (s *FeedbackHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockFeedbackCommands(s.mockCtrl)
	s.handler = api.NewFeedbackHandler(s.mockCommands)

	group := s.router.Group("/api", middleware.RequireTenant())
	group.POST("/feedback", s.handler.Ingest)
}

func (s *FeedbackHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFeedbackHandlerSuite(t *testing.T) {
	suite.Run(t, new(FeedbackHandlerTestSuite))
}

// ================================================================================
// TestIngest
// ================================================================================

func (s *FeedbackHandlerTestSuite) TestIngest() {
	url := "/api/feedback"

	reqBody := reqdto.DeliveryFeedbackRequest{
		ExternalID: "msg-42",
		Event:      "delivered",
	}

	s.Run("success: returns 202 Accepted", func() {
		s.mockCommands.EXPECT().
			Apply(gomock.Any(), testTenant, gomock.Any()).
			DoAndReturn(func(_ any, _ string, req commands.FeedbackRequest) error {
				s.Equal("msg-42", req.ExternalID)
				return nil
			}).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testTenant)

		var resp map[string]string
		httptest.AssertSuccessResponse(s.T(), w, http.StatusAccepted, &resp)
		s.Equal("accepted", resp["status"])
	})

	s.Run("provider event is normalized", func() {
		s.mockCommands.EXPECT().
			Apply(gomock.Any(), testTenant, gomock.Any()).
			DoAndReturn(func(_ any, _ string, req commands.FeedbackRequest) error {
				s.Equal("bounced", string(req.Event))
				return nil
			}).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("event", "  BOUNCED  "))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, testTenant)
		s.Equal(http.StatusAccepted, w.Code)
	})

	bindFailures := []handlerTestCase{
		{name: "missing field: external_id", mutate: testutil.Field("external_id", nil)},
		{name: "missing field: event", mutate: testutil.Field("event", nil)},
	}
	for _, tc := range bindFailures {
		s.Run(tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, testTenant)
			httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("unrecognized event returns 400", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("event", "teleported"))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, testTenant)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid feedback event")
	})

	s.Run("missing tenant header returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "X-Tenant-ID")
	})
}
