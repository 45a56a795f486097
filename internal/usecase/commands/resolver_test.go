//go:build unit

package commands_test

import (
	"context"
	"testing"

	"support-notify/internal/domain/notification"
	domtpl "support-notify/internal/domain/template"
	"support-notify/internal/usecase/commands"
	"support-notify/tests/common/builder"
	sharedmock "support-notify/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTemplateResolverResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("direct hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := sharedmock.NewMockTemplateRepository(ctrl)
		resolver := commands.NewTemplateResolver(repo)

		tpl := builder.NewTemplateBuilder().MustBuildDomain()
		repo.EXPECT().
			FindDefault(gomock.Any(), "acme", "ticket.created", notification.ChannelEmail, "de").
			Return(tpl, nil)

		got, err := resolver.Resolve(ctx, "acme", "ticket.created", notification.ChannelEmail, "de")
		require.NoError(t, err)
		assert.Equal(t, tpl, got)
	})

	t.Run("falls back to the base language", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := sharedmock.NewMockTemplateRepository(ctrl)
		resolver := commands.NewTemplateResolver(repo)

		tpl := builder.NewTemplateBuilder().MustBuildDomain()
		repo.EXPECT().
			FindDefault(gomock.Any(), "acme", "ticket.created", notification.ChannelEmail, "de").
			Return(nil, notFoundErr())
		repo.EXPECT().
			FindDefault(gomock.Any(), "acme", "ticket.created", notification.ChannelEmail, domtpl.DefaultLanguage).
			Return(tpl, nil)

		got, err := resolver.Resolve(ctx, "acme", "ticket.created", notification.ChannelEmail, "de")
		require.NoError(t, err)
		assert.Equal(t, tpl, got)
	})

	t.Run("no default configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := sharedmock.NewMockTemplateRepository(ctrl)
		resolver := commands.NewTemplateResolver(repo)

		repo.EXPECT().
			FindDefault(gomock.Any(), "acme", "ticket.created", notification.ChannelEmail, domtpl.DefaultLanguage).
			Return(nil, notFoundErr())

		got, err := resolver.Resolve(ctx, "acme", "ticket.created", notification.ChannelEmail, "")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestTemplateResolverRender(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := sharedmock.NewMockTemplateRepository(ctrl)
	resolver := commands.NewTemplateResolver(repo)

	html := "<p>Hello {{name}}</p>"
	tpl := builder.NewTemplateBuilder().With(func(b *builder.TemplateBuilder) {
		b.HTMLBody = &html
	}).MustBuildDomain()

	content := resolver.Render(tpl, map[string]string{"name": "Alice", "ticket_id": "T-9"})

	assert.Equal(t, "Ticket T-9 created", content.Subject)
	assert.Equal(t, "Hello Alice, ticket T-9 is open.", content.Body)
	require.NotNil(t, content.HTMLBody)
	assert.Equal(t, "<p>Hello Alice</p>", *content.HTMLBody)
}
