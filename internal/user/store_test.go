package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSeedsUsers(t *testing.T) {
	s := NewStore()

	got := s.List()
	require.Len(t, got, 2)
	assert.Equal(t, "john.doe", got[0].Username)
	assert.Equal(t, "jane.smith", got[1].Username)
	assert.False(t, got[0].CreatedAt.IsZero())
}

func TestCreateGivesDefaultProfile(t *testing.T) {
	s := NewStore()

	u := s.Create(User{Username: "sam.jones", Email: "sam@example.com"})
	assert.Equal(t, 3, u.ID)

	p, err := s.Profile(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "en", p.PreferredLanguage)
	assert.Equal(t, "light", p.Theme)
	assert.Empty(t, p.Preferences)
}

func TestGetNotFound(t *testing.T) {
	s := NewStore()

	_, err := s.Get(99)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestSearchFilters(t *testing.T) {
	s := NewStore()

	byEmail := s.Search("jane", "")
	require.Len(t, byEmail, 1)
	assert.Equal(t, "jane.smith", byEmail[0].Username)

	byUsername := s.Search("", "doe")
	require.Len(t, byUsername, 1)
	assert.Equal(t, "john.doe", byUsername[0].Username)

	both := s.Search("example.com", "smith")
	require.Len(t, both, 1)
	assert.Equal(t, "jane.smith", both[0].Username)

	assert.Len(t, s.Search("", ""), 2)
	assert.Empty(t, s.Search("nobody", ""))
}

func TestUpdateProfileReplaces(t *testing.T) {
	s := NewStore()

	updated, err := s.UpdateProfile(1, Profile{
		PreferredLanguage: "fr",
		Theme:             "dark",
		Preferences:       map[string]string{"newsletter": "weekly"},
	})
	require.NoError(t, err)
	assert.Equal(t, "fr", updated.PreferredLanguage)

	got, err := s.Profile(1)
	require.NoError(t, err)
	assert.Equal(t, "dark", got.Theme)
	assert.Equal(t, "weekly", got.Preferences["newsletter"])
}

func TestUpdateProfileNotFound(t *testing.T) {
	s := NewStore()

	_, err := s.UpdateProfile(99, DefaultProfile())
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileCopiesPreferences(t *testing.T) {
	s := NewStore()

	p, err := s.Profile(1)
	require.NoError(t, err)
	p.Preferences["injected"] = "yes"

	again, err := s.Profile(1)
	require.NoError(t, err)
	assert.NotContains(t, again.Preferences, "injected")
}
