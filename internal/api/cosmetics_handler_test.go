package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyquest/backend/internal/api"
	"github.com/studyquest/backend/internal/store"
)

func TestAvatar(t *testing.T) {
	s := newTestServer(t)
	s.createUser("alice")

	rec := s.do(http.MethodGet, "/cosmetics/avatar/alice", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Avatar not found.", detail(t, rec))

	rec = s.do(http.MethodPut, "/cosmetics/avatar/alice", map[string]any{"avatar_name": "Ace", "outfit": "robe"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	a := decode[store.Avatar](t, rec)
	assert.Equal(t, "default", a.Theme)
	require.NotNil(t, a.AvatarName)
	assert.Equal(t, "Ace", *a.AvatarName)

	rec = s.do(http.MethodPut, "/cosmetics/avatar/alice", map[string]any{"hairstyle": "bun", "theme": "dark"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/cosmetics/avatar/alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	a = decode[store.Avatar](t, rec)
	assert.Equal(t, "dark", a.Theme)
	assert.Nil(t, a.AvatarName)
	require.NotNil(t, a.Hairstyle)
	assert.Equal(t, "bun", *a.Hairstyle)

	rec = s.do(http.MethodPut, "/cosmetics/avatar/ghost", map[string]any{"theme": "dark"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBadges(t *testing.T) {
	s := newTestServer(t)
	s.createUser("alice")

	for _, b := range []map[string]any{
		{"name": "Scholar", "description": "Reach 100 XP", "xp_required": 100},
		{"name": "Rookie", "description": "Start out", "xp_required": 0},
	} {
		rec := s.do(http.MethodPost, "/cosmetics/badges", b)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := s.do(http.MethodPost, "/cosmetics/badges", map[string]any{"name": "Rookie", "description": "again"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(http.MethodPost, "/cosmetics/badges", map[string]any{"name": "Icon", "description": "d", "icon_url": "not a url"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/cosmetics/badges", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	badges := decode[[]store.Badge](t, rec)
	require.Len(t, badges, 2)
	assert.Equal(t, "Rookie", badges[0].Name)

	s.do(http.MethodPost, "/progress", map[string]any{"user": "alice", "duration_minutes": 60})

	rec = s.do(http.MethodGet, "/cosmetics/badges/alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[api.UserBadgesResponse](t, rec)
	assert.Equal(t, 60, resp.TotalXP)
	require.Len(t, resp.Badges, 2)
	assert.True(t, resp.Badges[0].Unlocked)
	assert.False(t, resp.Badges[1].Unlocked)

	rec = s.do(http.MethodGet, "/cosmetics/badges/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
