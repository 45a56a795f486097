//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"support-notify/internal/domain/notification"
	"support-notify/internal/infra"
	"support-notify/internal/pkg/clock"
	"support-notify/internal/pkg/errs"
	"support-notify/internal/usecase/commands"
	"support-notify/tests/common/builder"
	commandsmock "support-notify/tests/mock/commands"
	sharedmock "support-notify/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func notFoundErr() error {
	return infra.WrapRepoErr(discardLogger(), infra.KindNotFound, "no rows", errors.New("no rows in result set"))
}

type NotificationUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	repo     *sharedmock.MockNotificationRepository
	tplRepo  *sharedmock.MockTemplateRepository
	resolver *commandsmock.MockTemplateResolver
	sender   *commandsmock.MockChannelSender
	cache    *sharedmock.MockNotificationCache
	clock    *clock.MockClock
	uc       commands.NotificationCommands
}

func (s *NotificationUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.repo = sharedmock.NewMockNotificationRepository(s.mockCtrl)
	s.tplRepo = sharedmock.NewMockTemplateRepository(s.mockCtrl)
	s.resolver = commandsmock.NewMockTemplateResolver(s.mockCtrl)
	s.sender = commandsmock.NewMockChannelSender(s.mockCtrl)
	s.cache = sharedmock.NewMockNotificationCache(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	s.sender.EXPECT().Channel().Return(notification.ChannelEmail).AnyTimes()
	registry := commands.NewSenderRegistry(s.sender)

	s.uc = commands.NewNotificationUseCase(s.repo, s.tplRepo, s.resolver, registry, s.cache, s.clock, discardLogger())
}

func (s *NotificationUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNotificationUseCaseSuite(t *testing.T) {
	suite.Run(t, new(NotificationUseCaseTestSuite))
}

// ================================================================================
// Create
// ================================================================================

// expectImmediateDispatch absorbs the follow-up dispatch a ready create fires,
// without replaying the whole send pipeline.
func (s *NotificationUseCaseTestSuite) expectImmediateDispatch() chan struct{} {
	dispatched := make(chan struct{})
	s.repo.EXPECT().FindByID(gomock.Any(), "acme", gomock.Any()).
		DoAndReturn(func(context.Context, string, uuid.UUID) (*notification.Notification, error) {
			close(dispatched)
			return nil, notFoundErr()
		})
	return dispatched
}

func (s *NotificationUseCaseTestSuite) awaitDispatch(ch <-chan struct{}) {
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		s.FailNow("expected an immediate dispatch attempt")
	}
}

func (s *NotificationUseCaseTestSuite) TestCreate() {
	ctx := context.Background()

	s.Run("success without a configured template", func() {
		req := builder.NewNotificationBuilder().BuildCreateCommand()

		s.resolver.EXPECT().
			Resolve(gomock.Any(), "acme", req.EventType, req.Channel, gomock.Any()).
			Return(nil, nil)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		dispatched := s.expectImmediateDispatch()

		result, err := s.uc.Create(ctx, "acme", req)
		s.Require().NoError(err)
		s.Require().NotNil(result)
		s.True(result.Ready)
		s.awaitDispatch(dispatched)
	})

	s.Run("explicit template id renders its content", func() {
		tpl := builder.NewTemplateBuilder().MustBuildDomain()
		req := builder.NewNotificationBuilder().BuildCreateCommand()
		req.TemplateID = &tpl.ID

		s.tplRepo.EXPECT().FindByID(gomock.Any(), "acme", tpl.ID).Return(tpl, nil)
		s.resolver.EXPECT().Render(tpl, req.TemplateVariables).Return(commands.RenderedContent{
			Subject: "Ticket T-100 created",
			Body:    "Hello Alice, ticket T-100 is open.",
		})

		var created *notification.Notification
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *notification.Notification) error {
				created = n
				return nil
			})
		dispatched := s.expectImmediateDispatch()

		_, err := s.uc.Create(ctx, "acme", req)
		s.awaitDispatch(dispatched)
		s.Require().NoError(err)
		s.Require().NotNil(created)
		s.Require().NotNil(created.TemplateID)
		s.Equal(tpl.ID, *created.TemplateID)
		s.Equal("Ticket T-100 created", created.Subject)
		s.Equal("Hello Alice, ticket T-100 is open.", created.Body)
	})

	s.Run("explicit template id not found", func() {
		tpl := builder.NewTemplateBuilder().MustBuildDomain()
		req := builder.NewNotificationBuilder().BuildCreateCommand()
		req.TemplateID = &tpl.ID

		s.tplRepo.EXPECT().FindByID(gomock.Any(), "acme", tpl.ID).Return(nil, notFoundErr())

		_, err := s.uc.Create(ctx, "acme", req)
		s.Require().ErrorIs(err, errs.ErrTemplateNotFound)
	})

	s.Run("empty body and no template renders nothing to send", func() {
		req := builder.NewNotificationBuilder().BuildCreateCommand()
		req.Body = ""

		s.resolver.EXPECT().
			Resolve(gomock.Any(), "acme", req.EventType, req.Channel, gomock.Any()).
			Return(nil, nil)

		_, err := s.uc.Create(ctx, "acme", req)
		s.Require().ErrorIs(err, notification.ErrMissingContent)
	})

	s.Run("validation failure never reaches the store", func() {
		req := builder.NewNotificationBuilder().BuildCreateCommand()
		req.Channel = "pigeon"

		_, err := s.uc.Create(ctx, "acme", req)
		s.Require().ErrorIs(err, notification.ErrInvalidChannel)
	})

	s.Run("scheduled notification is not ready", func() {
		req := builder.NewNotificationBuilder().BuildCreateCommand()
		future := s.clock.Now().Add(2 * time.Hour)
		req.ScheduledAt = &future

		s.resolver.EXPECT().
			Resolve(gomock.Any(), "acme", req.EventType, req.Channel, gomock.Any()).
			Return(nil, nil)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.uc.Create(ctx, "acme", req)
		s.Require().NoError(err)
		s.False(result.Ready)
	})

	s.Run("ready record is sent without waiting for a batch", func() {
		req := builder.NewNotificationBuilder().BuildCreateCommand()

		s.resolver.EXPECT().
			Resolve(gomock.Any(), "acme", req.EventType, req.Channel, gomock.Any()).
			Return(nil, nil)

		var created *notification.Notification
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *notification.Notification) error {
				created = n
				return nil
			})
		s.repo.EXPECT().FindByID(gomock.Any(), "acme", gomock.Any()).
			DoAndReturn(func(context.Context, string, uuid.UUID) (*notification.Notification, error) {
				return created, nil
			})
		s.repo.EXPECT().ClaimForProcessing(gomock.Any(), "acme", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ uuid.UUID, now time.Time) (*notification.Notification, error) {
				c := *created
				if err := c.MarkProcessing(now); err != nil {
					return nil, err
				}
				return &c, nil
			})
		s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(&commands.SendResult{ExternalID: "msg-9"}, nil)

		var persisted *notification.Notification
		s.repo.EXPECT().UpdateFromProcessing(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *notification.Notification) (bool, error) {
				persisted = n
				return true, nil
			})
		finished := make(chan struct{})
		s.cache.EXPECT().Invalidate(gomock.Any(), "acme", gomock.Any()).
			Do(func(context.Context, string, uuid.UUID) { close(finished) })

		result, err := s.uc.Create(ctx, "acme", req)
		s.Require().NoError(err)
		s.True(result.Ready)

		select {
		case <-finished:
		case <-time.After(2 * time.Second):
			s.FailNow("expected the created record to be sent")
		}
		s.Require().NotNil(persisted)
		s.Equal(notification.StatusSent, persisted.Status)
		s.Require().NotNil(persisted.ExternalID)
		s.Equal("msg-9", *persisted.ExternalID)
	})
}

// ================================================================================
// Dispatch
// ================================================================================

func (s *NotificationUseCaseTestSuite) claimed(n *notification.Notification) *notification.Notification {
	c := *n
	s.Require().NoError(c.MarkProcessing(s.clock.Now()))
	return &c
}

func (s *NotificationUseCaseTestSuite) TestDispatch() {
	ctx := context.Background()

	s.Run("successful send marks the record sent", func() {
		n := builder.NewNotificationBuilder().MustBuildDomain()
		claimed := s.claimed(n)

		s.repo.EXPECT().FindByID(gomock.Any(), "acme", n.ID).Return(n, nil)
		s.repo.EXPECT().ClaimForProcessing(gomock.Any(), "acme", n.ID, gomock.Any()).Return(claimed, nil)
		s.sender.EXPECT().Send(gomock.Any(), claimed).Return(&commands.SendResult{
			ExternalID:       "msg-1",
			ProviderResponse: "accepted",
		}, nil)

		var persisted *notification.Notification
		s.repo.EXPECT().UpdateFromProcessing(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *notification.Notification) (bool, error) {
				persisted = n
				return true, nil
			})
		s.cache.EXPECT().Invalidate(gomock.Any(), "acme", n.ID)

		s.Require().NoError(s.uc.Dispatch(ctx, "acme", n.ID))
		s.Require().NotNil(persisted)
		s.Equal(notification.StatusSent, persisted.Status)
		s.Require().NotNil(persisted.ExternalID)
		s.Equal("msg-1", *persisted.ExternalID)
		s.Equal("Hello Alice, a ticket was created.", persisted.Body, "variables substituted before the send")
	})

	s.Run("not ready record is a no-op", func() {
		n := builder.NewNotificationBuilder().MustBuildDomain()
		s.Require().NoError(n.Cancel(s.clock.Now()))

		s.repo.EXPECT().FindByID(gomock.Any(), "acme", n.ID).Return(n, nil)

		s.Require().NoError(s.uc.Dispatch(ctx, "acme", n.ID))
	})

	s.Run("lost claim race is a no-op", func() {
		n := builder.NewNotificationBuilder().MustBuildDomain()

		s.repo.EXPECT().FindByID(gomock.Any(), "acme", n.ID).Return(n, nil)
		s.repo.EXPECT().ClaimForProcessing(gomock.Any(), "acme", n.ID, gomock.Any()).Return(nil, notFoundErr())

		s.Require().NoError(s.uc.Dispatch(ctx, "acme", n.ID))
	})

	s.Run("transient send failure schedules a retry", func() {
		n := builder.NewNotificationBuilder().MustBuildDomain()
		claimed := s.claimed(n)

		s.repo.EXPECT().FindByID(gomock.Any(), "acme", n.ID).Return(n, nil)
		s.repo.EXPECT().ClaimForProcessing(gomock.Any(), "acme", n.ID, gomock.Any()).Return(claimed, nil)
		s.sender.EXPECT().Send(gomock.Any(), claimed).Return(nil, errors.New("connection reset"))

		var persisted *notification.Notification
		s.repo.EXPECT().UpdateFromProcessing(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *notification.Notification) (bool, error) {
				persisted = n
				return true, nil
			})
		s.cache.EXPECT().Invalidate(gomock.Any(), "acme", n.ID)

		s.Require().NoError(s.uc.Dispatch(ctx, "acme", n.ID))
		s.Require().NotNil(persisted)
		s.Equal(notification.StatusPending, persisted.Status, "reverted for retry")
		s.Require().NotNil(persisted.NextRetryAt)
		s.Equal(s.clock.Now().Add(time.Minute), *persisted.NextRetryAt)
	})

	s.Run("permanent send failure rejects the record", func() {
		n := builder.NewNotificationBuilder().MustBuildDomain()
		claimed := s.claimed(n)

		s.repo.EXPECT().FindByID(gomock.Any(), "acme", n.ID).Return(n, nil)
		s.repo.EXPECT().ClaimForProcessing(gomock.Any(), "acme", n.ID, gomock.Any()).Return(claimed, nil)
		s.sender.EXPECT().Send(gomock.Any(), claimed).
			Return(nil, commands.Permanent(errors.New("recipient address rejected")))

		var persisted *notification.Notification
		s.repo.EXPECT().UpdateFromProcessing(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *notification.Notification) (bool, error) {
				persisted = n
				return true, nil
			})
		s.cache.EXPECT().Invalidate(gomock.Any(), "acme", n.ID)

		s.Require().NoError(s.uc.Dispatch(ctx, "acme", n.ID))
		s.Require().NotNil(persisted)
		s.Equal(notification.StatusRejected, persisted.Status)
		s.Nil(persisted.NextRetryAt)
	})

	s.Run("record cancelled mid-flight gets a late result", func() {
		n := builder.NewNotificationBuilder().MustBuildDomain()
		claimed := s.claimed(n)

		s.repo.EXPECT().FindByID(gomock.Any(), "acme", n.ID).Return(n, nil)
		s.repo.EXPECT().ClaimForProcessing(gomock.Any(), "acme", n.ID, gomock.Any()).Return(claimed, nil)
		s.sender.EXPECT().Send(gomock.Any(), claimed).Return(&commands.SendResult{ExternalID: "msg-2"}, nil)
		s.repo.EXPECT().UpdateFromProcessing(gomock.Any(), gomock.Any()).Return(false, nil)
		s.repo.EXPECT().
			RecordLateResult(gomock.Any(), "acme", n.ID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		s.Require().NoError(s.uc.Dispatch(ctx, "acme", n.ID))
	})

	s.Run("channel without a sender is rejected", func() {
		n := builder.NewNotificationBuilder().
			WithChannel(notification.ChannelWebhook).
			With(func(b *builder.NotificationBuilder) { b.Destination = "https://hooks.example.com/x" }).
			MustBuildDomain()
		claimed := s.claimed(n)

		s.repo.EXPECT().FindByID(gomock.Any(), "acme", n.ID).Return(n, nil)
		s.repo.EXPECT().ClaimForProcessing(gomock.Any(), "acme", n.ID, gomock.Any()).Return(claimed, nil)

		var persisted *notification.Notification
		s.repo.EXPECT().UpdateFromProcessing(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *notification.Notification) (bool, error) {
				persisted = n
				return true, nil
			})
		s.cache.EXPECT().Invalidate(gomock.Any(), "acme", n.ID)

		s.Require().NoError(s.uc.Dispatch(ctx, "acme", n.ID))
		s.Require().NotNil(persisted)
		s.Equal(notification.StatusRejected, persisted.Status)
	})

	s.Run("linked template is re-rendered at dispatch time", func() {
		tpl := builder.NewTemplateBuilder().MustBuildDomain()
		n := builder.NewNotificationBuilder().MustBuildDomain()
		n.ApplyTemplate(tpl.ID, tpl.Name, "stale subject", "stale body", nil)
		claimed := s.claimed(n)

		s.repo.EXPECT().FindByID(gomock.Any(), "acme", n.ID).Return(n, nil)
		s.repo.EXPECT().ClaimForProcessing(gomock.Any(), "acme", n.ID, gomock.Any()).Return(claimed, nil)
		s.tplRepo.EXPECT().FindByID(gomock.Any(), "acme", tpl.ID).Return(tpl, nil)
		s.resolver.EXPECT().Render(tpl, claimed.TemplateVariables).Return(commands.RenderedContent{
			Subject: "current subject",
			Body:    "current body",
		})
		s.sender.EXPECT().Send(gomock.Any(), claimed).Return(&commands.SendResult{ExternalID: "msg-3"}, nil)
		s.repo.EXPECT().UpdateFromProcessing(gomock.Any(), gomock.Any()).Return(true, nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), "acme", n.ID)

		s.Require().NoError(s.uc.Dispatch(ctx, "acme", n.ID))
		s.Equal("current subject", claimed.Subject)
		s.Equal("current body", claimed.Body)
	})

	s.Run("unknown record", func() {
		n := builder.NewNotificationBuilder().MustBuildDomain()
		s.repo.EXPECT().FindByID(gomock.Any(), "acme", n.ID).Return(nil, notFoundErr())

		err := s.uc.Dispatch(ctx, "acme", n.ID)
		s.Require().ErrorIs(err, errs.ErrNotificationNotFound)
	})
}

// ================================================================================
// Cancel
// ================================================================================

func (s *NotificationUseCaseTestSuite) TestCancel() {
	ctx := context.Background()

	s.Run("cancels a pending record", func() {
		n := builder.NewNotificationBuilder().MustBuildDomain()

		s.repo.EXPECT().FindByID(gomock.Any(), "acme", n.ID).Return(n, nil)
		var persisted *notification.Notification
		s.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *notification.Notification) error {
				persisted = n
				return nil
			})
		s.cache.EXPECT().Invalidate(gomock.Any(), "acme", n.ID)

		s.Require().NoError(s.uc.Cancel(ctx, "acme", n.ID))
		s.Require().NotNil(persisted)
		s.Equal(notification.StatusCancelled, persisted.Status)
	})

	s.Run("sent record cannot be cancelled", func() {
		n := builder.NewNotificationBuilder().MustBuildDomain()
		s.Require().NoError(n.MarkProcessing(s.clock.Now()))
		s.Require().NoError(n.MarkSent(s.clock.Now(), "msg-1", ""))

		s.repo.EXPECT().FindByID(gomock.Any(), "acme", n.ID).Return(n, nil)

		err := s.uc.Cancel(ctx, "acme", n.ID)
		s.Require().ErrorIs(err, notification.ErrNotCancellable)
	})

	s.Run("unknown record", func() {
		n := builder.NewNotificationBuilder().MustBuildDomain()
		s.repo.EXPECT().FindByID(gomock.Any(), "acme", n.ID).Return(nil, notFoundErr())

		err := s.uc.Cancel(ctx, "acme", n.ID)
		s.Require().ErrorIs(err, errs.ErrNotificationNotFound)
	})
}
