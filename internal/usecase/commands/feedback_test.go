//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"support-notify/internal/domain/notification"
	"support-notify/internal/infra"
	"support-notify/internal/pkg/clock"
	"support-notify/internal/usecase/commands"
	"support-notify/tests/common/builder"
	sharedmock "support-notify/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FeedbackUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	repo     *sharedmock.MockNotificationRepository
	cache    *sharedmock.MockNotificationCache
	clock    *clock.MockClock
	uc       commands.FeedbackCommands
}

func (s *FeedbackUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.repo = sharedmock.NewMockNotificationRepository(s.mockCtrl)
	s.cache = sharedmock.NewMockNotificationCache(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.uc = commands.NewFeedbackUseCase(s.repo, s.cache, s.clock, discardLogger())
}

func (s *FeedbackUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFeedbackUseCaseSuite(t *testing.T) {
	suite.Run(t, new(FeedbackUseCaseTestSuite))
}

func (s *FeedbackUseCaseTestSuite) sentRecord() *notification.Notification {
	n := builder.NewNotificationBuilder().MustBuildDomain()
	s.Require().NoError(n.MarkProcessing(s.clock.Now()))
	s.Require().NoError(n.MarkSent(s.clock.Now(), "msg-1", ""))
	return n
}

func (s *FeedbackUseCaseTestSuite) TestApply() {
	ctx := context.Background()

	s.Run("delivered callback advances the record", func() {
		n := s.sentRecord()

		s.repo.EXPECT().FindByExternalID(gomock.Any(), "acme", "msg-1").Return(n, nil)
		var persisted *notification.Notification
		s.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *notification.Notification) error {
				persisted = n
				return nil
			})
		s.cache.EXPECT().Invalidate(gomock.Any(), "acme", n.ID)

		err := s.uc.Apply(ctx, "acme", commands.FeedbackRequest{
			ExternalID: "msg-1",
			Event:      notification.FeedbackDelivered,
		})
		s.Require().NoError(err)
		s.Require().NotNil(persisted)
		s.Equal(notification.StatusDelivered, persisted.Status)
		s.NotNil(persisted.DeliveredAt)
	})

	s.Run("clicked callback backfills open and delivery", func() {
		n := s.sentRecord()

		s.repo.EXPECT().FindByExternalID(gomock.Any(), "acme", "msg-1").Return(n, nil)
		s.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), "acme", n.ID)

		err := s.uc.Apply(ctx, "acme", commands.FeedbackRequest{
			ExternalID: "msg-1",
			Event:      notification.FeedbackClicked,
		})
		s.Require().NoError(err)
		s.Equal(notification.StatusClicked, n.Status)
		s.NotNil(n.OpenedAt)
		s.NotNil(n.DeliveredAt)
	})

	s.Run("bounce records the reason", func() {
		n := s.sentRecord()

		s.repo.EXPECT().FindByExternalID(gomock.Any(), "acme", "msg-1").Return(n, nil)
		s.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), "acme", n.ID)

		err := s.uc.Apply(ctx, "acme", commands.FeedbackRequest{
			ExternalID: "msg-1",
			Event:      notification.FeedbackBounced,
			Reason:     "mailbox does not exist",
		})
		s.Require().NoError(err)
		s.Equal(notification.StatusBounced, n.Status)
		s.Require().NotNil(n.LastError)
		s.Equal("mailbox does not exist", *n.LastError)
	})

	s.Run("replayed callback is idempotent", func() {
		n := s.sentRecord()
		firstSeen := s.clock.Now()
		n.MarkDelivered(firstSeen)

		s.repo.EXPECT().FindByExternalID(gomock.Any(), "acme", "msg-1").Return(n, nil)
		s.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), "acme", n.ID)

		s.clock.Add(time.Hour)
		err := s.uc.Apply(ctx, "acme", commands.FeedbackRequest{
			ExternalID: "msg-1",
			Event:      notification.FeedbackDelivered,
		})
		s.Require().NoError(err)
		s.Equal(firstSeen, *n.DeliveredAt)
	})

	s.Run("unknown external id is dropped silently", func() {
		s.repo.EXPECT().FindByExternalID(gomock.Any(), "acme", "msg-gone").Return(nil, notFoundErr())

		err := s.uc.Apply(ctx, "acme", commands.FeedbackRequest{
			ExternalID: "msg-gone",
			Event:      notification.FeedbackDelivered,
		})
		s.Require().NoError(err)
	})

	s.Run("store failure propagates", func() {
		dbErr := infra.WrapRepoErr(discardLogger(), infra.KindDBFailure, "query failed", errors.New("broken pipe"))
		s.repo.EXPECT().FindByExternalID(gomock.Any(), "acme", "msg-1").Return(nil, dbErr)

		err := s.uc.Apply(ctx, "acme", commands.FeedbackRequest{
			ExternalID: "msg-1",
			Event:      notification.FeedbackDelivered,
		})
		s.Require().Error(err)
		s.True(infra.IsKind(err, infra.KindDBFailure))
	})

	s.Run("unrecognized event", func() {
		n := s.sentRecord()
		s.repo.EXPECT().FindByExternalID(gomock.Any(), "acme", "msg-1").Return(n, nil)

		err := s.uc.Apply(ctx, "acme", commands.FeedbackRequest{
			ExternalID: "msg-1",
			Event:      notification.FeedbackEvent("snoozed"),
		})
		s.Require().ErrorIs(err, notification.ErrInvalidStatus)
	})
}
