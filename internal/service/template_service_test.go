package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edutrack-api/internal/store"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

func TestTemplateLifecycle(t *testing.T) {
	svc := NewTemplateService(store.NewRoster(), nil, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, TemplateRequest{Keyword: "tiến bộ", Content: "Em có nhiều tiến bộ trong tháng qua.", Category: "khen"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	templates := svc.List(ctx)
	require.Len(t, templates, 1)
	assert.Equal(t, "tiến bộ", templates[0].Keyword)

	updated, err := svc.Update(ctx, created.ID, TemplateRequest{Keyword: "tiến bộ", Content: "Em tiến bộ rõ rệt.", Category: "khen"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Em tiến bộ rõ rệt.", svc.List(ctx)[0].Content)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Empty(t, svc.List(ctx))
}

func TestTemplateValidation(t *testing.T) {
	svc := NewTemplateService(store.NewRoster(), nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, TemplateRequest{Content: "thiếu keyword"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	_, err = svc.Create(ctx, TemplateRequest{Keyword: "thiếu nội dung"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestTemplateNotFound(t *testing.T) {
	svc := NewTemplateService(store.NewRoster(), nil, nil)
	ctx := context.Background()

	_, err := svc.Update(ctx, "missing", TemplateRequest{Keyword: "k", Content: "c"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))

	err = svc.Delete(ctx, "missing")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}
