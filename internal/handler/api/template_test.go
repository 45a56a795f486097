//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"support-notify/internal/handler/api"
	resdto "support-notify/internal/handler/dto/response"
	"support-notify/internal/handler/middleware"
	"support-notify/internal/pkg/errs"
	"support-notify/internal/usecase/commands"
	"support-notify/internal/usecase/queries"
	"support-notify/tests/common/builder"
	"support-notify/tests/common/httptest"
	"support-notify/tests/common/testutil"
	commandsmock "support-notify/tests/mock/commands"
	queriesmock "support-notify/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TemplateHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTemplateCommands
	mockQueries  *queriesmock.MockTemplateQueries
	handler      *api.TemplateHandler
}

func (s *TemplateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTemplateCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTemplateQueries(s.mockCtrl)
	s.handler = api.NewTemplateHandler(s.mockCommands, s.mockQueries)

	group := s.router.Group("/api", middleware.RequireTenant())
	group.POST("/templates", s.handler.Create)
	group.GET("/templates", s.handler.List)
	group.GET("/templates/:id", s.handler.Get)
	group.PATCH("/templates/:id", s.handler.Update)
	group.POST("/templates/:id/default", s.handler.SetDefault)
}

func (s *TemplateHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTemplateHandlerSuite(t *testing.T) {
	suite.Run(t, new(TemplateHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *TemplateHandlerTestSuite) TestCreate() {
	url := "/api/templates"

	reqBody := builder.NewTemplateBuilder().BuildCreateRequestDTO()
	returnView := builder.NewTemplateBuilder().BuildView()
	expectedResult := &commands.CreateTemplateResult{TemplateID: returnView.ID}

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), testTenant, gomock.Any()).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testTenant, returnView.ID).
			Return(returnView, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testTenant)

		var resp resdto.TemplateResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(returnView.ID, resp.ID)
		s.Equal(returnView.Name, resp.Name)
	})

	missing := []handlerTestCase{
		{name: "missing field: name", mutate: testutil.Field("name", nil)},
		{name: "missing field: channel", mutate: testutil.Field("channel", nil)},
		{name: "missing field: body", mutate: testutil.Field("body", nil)},
	}
	for _, tc := range missing {
		s.Run(tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, testTenant)
			httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("unknown channel returns 400", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("channel", "fax"))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, testTenant)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "invalid notification channel")
	})

	s.Run("duplicate name returns 409", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), testTenant, gomock.Any()).
			Return(nil, errs.ErrDuplicateTemplate).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testTenant)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Already exists")
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *TemplateHandlerTestSuite) TestGet() {
	returnView := builder.NewTemplateBuilder().BuildView()
	url := fmt.Sprintf("/api/templates/%s", returnView.ID)

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testTenant, returnView.ID).
			Return(returnView, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testTenant)

		var resp resdto.TemplateResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(returnView.Name, resp.Name)
	})

	s.Run("unknown id returns 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testTenant, returnView.ID).
			Return(nil, queries.ErrTemplateNotFound).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testTenant)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Not found")
	})

	s.Run("invalid id returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/templates/junk", nil, testTenant)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid id")
	})
}

func (s *TemplateHandlerTestSuite) TestList() {
	views := []*queries.TemplateView{
		builder.NewTemplateBuilder().BuildView(),
		builder.NewTemplateBuilder().BuildView(),
	}

	s.Run("channel filter is forwarded", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), testTenant, "email").
			Return(views, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/templates?channel=email", nil, testTenant)

		var resp struct {
			Templates []*resdto.TemplateResponse `json:"templates"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp.Templates, 2)
	})

	s.Run("no filter lists everything", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), testTenant, "").
			Return(nil, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/templates", nil, testTenant)
		s.Equal(http.StatusOK, w.Code)
	})
}

// ================================================================================
// TestUpdate / TestSetDefault
// ================================================================================

func (s *TemplateHandlerTestSuite) TestUpdate() {
	returnView := builder.NewTemplateBuilder().BuildView()
	url := fmt.Sprintf("/api/templates/%s", returnView.ID)
	newBody := "Hi {{name}}, your ticket {{ticket_id}} was updated."

	s.Run("success: reloads the updated view", func() {
		s.mockCommands.EXPECT().
			Update(gomock.Any(), testTenant, returnView.ID, gomock.Any()).
			DoAndReturn(func(_ any, _ string, _ uuid.UUID, req commands.UpdateTemplateRequest) error {
				s.NotNil(req.Body)
				s.Equal(newBody, *req.Body)
				return nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testTenant, returnView.ID).
			Return(returnView, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"body": newBody}, testTenant)

		var resp resdto.TemplateResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(returnView.ID, resp.ID)
	})

	s.Run("unknown id returns 404", func() {
		s.mockCommands.EXPECT().
			Update(gomock.Any(), testTenant, returnView.ID, gomock.Any()).
			Return(errs.ErrTemplateNotFound).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"is_active": false}, testTenant)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Not found")
	})
}

func (s *TemplateHandlerTestSuite) TestSetDefault() {
	id := uuid.New()
	url := fmt.Sprintf("/api/templates/%s/default", id)

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().SetDefault(gomock.Any(), testTenant, id).Return(nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, testTenant)
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("unknown id returns 404", func() {
		s.mockCommands.EXPECT().SetDefault(gomock.Any(), testTenant, id).
			Return(errs.ErrTemplateNotFound).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, testTenant)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Not found")
	})
}
