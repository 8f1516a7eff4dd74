package impl

import (
	"context"
	"testing"
	"time"

	"accounthub/internal/domain/entity"
	domainerrors "accounthub/internal/domain/errors"
	"accounthub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileService(store *fakeStore) usecase.ProfileUsecase {
	return NewProfileService(
		&fakeTxManager{store: store},
		&fakeProfileRepo{store: store},
		newTestLogger(),
	)
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }

func TestUpdateProfile_MergePreservesUnsetFields(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")
	srv := newProfileService(store)

	_, err := srv.UpdateProfile(context.Background(), account.ID, &usecase.UpdateProfileInput{
		FirstName: strPtr("Alice"),
		Bio:       strPtr("Engineer"),
	})
	require.NoError(t, err)

	updated, err := srv.UpdateProfile(context.Background(), account.ID, &usecase.UpdateProfileInput{
		LastName: strPtr("Smith"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", updated.FirstName)
	assert.Equal(t, "Smith", updated.LastName)
	assert.Equal(t, "Engineer", updated.Bio)
	assert.Equal(t, "Alice Smith", updated.FullName())
}

func TestUpdateProfile_MergeCanToggleVisibility(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")

	updated, err := newProfileService(store).UpdateProfile(context.Background(), account.ID, &usecase.UpdateProfileInput{
		IsPublic: boolPtr(false),
	})

	require.NoError(t, err)
	assert.False(t, updated.IsPublic)
}

func TestUpdateProfile_CreatesProfileWhenMissing(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")
	delete(store.profiles, account.ID)

	updated, err := newProfileService(store).UpdateProfile(context.Background(), account.ID, &usecase.UpdateProfileInput{
		FirstName: strPtr("Alice"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.FirstName)
	assert.True(t, updated.IsPublic)
	assert.Equal(t, entity.GenderNotSpecified, updated.Gender)
	assert.Contains(t, store.profiles, account.ID)
}

func TestUpdateProfile_FutureBirthDateRejected(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")

	_, err := newProfileService(store).UpdateProfile(context.Background(), account.ID, &usecase.UpdateProfileInput{
		BirthDate: timePtr(time.Now().AddDate(1, 0, 0)),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUpdateProfile_MissingAccount(t *testing.T) {
	store := newFakeStore()

	_, err := newProfileService(store).UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateProfileInput{
		FirstName: strPtr("Ghost"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestUpdateVisibility(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")
	srv := newProfileService(store)

	updated, err := srv.UpdateVisibility(context.Background(), account.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsPublic)
	assert.False(t, store.profiles[account.ID].IsPublic)
}

func TestUpdateVisibility_MissingProfile(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")
	delete(store.profiles, account.ID)

	_, err := newProfileService(store).UpdateVisibility(context.Background(), account.ID, false)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestSearchPublic(t *testing.T) {
	store := newFakeStore()
	srv := newProfileService(store)
	alice := createAccount(t, store, "alice", "alice@example.com")
	bob := createAccount(t, store, "bob", "bob@example.com")
	carol := createAccount(t, store, "carol", "carol@example.com")

	store.profiles[alice.ID].FirstName = "Alice"
	store.profiles[alice.ID].LastName = "Smith"
	store.profiles[bob.ID].FirstName = "Bob"
	store.profiles[bob.ID].LastName = "Smithson"
	store.profiles[carol.ID].FirstName = "Carol"
	store.profiles[carol.ID].LastName = "Smith"
	// Private profiles never show up in search results.
	store.profiles[carol.ID].IsPublic = false

	results, err := srv.SearchPublic(context.Background(), "  smith  ")
	require.NoError(t, err)
	require.Len(t, results, 2)

	names := []string{results[0].LastName, results[1].LastName}
	assert.ElementsMatch(t, []string{"Smith", "Smithson"}, names)
}

func TestSearchPublic_EmptyTermListsAllPublic(t *testing.T) {
	store := newFakeStore()
	srv := newProfileService(store)
	createAccount(t, store, "alice", "alice@example.com")
	createAccount(t, store, "bob", "bob@example.com")

	results, err := srv.SearchPublic(context.Background(), "   ")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchPublic_ExcludesInactiveAccounts(t *testing.T) {
	store := newFakeStore()
	alice := createAccount(t, store, "alice", "alice@example.com")
	store.profiles[alice.ID].FirstName = "Alice"
	store.accounts[alice.ID].Status = entity.StatusInactive

	results, err := newProfileService(store).SearchPublic(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProfilesByAgeRange(t *testing.T) {
	store := newFakeStore()
	srv := newProfileService(store)
	young := createAccount(t, store, "young", "young@example.com")
	mid := createAccount(t, store, "mid", "mid@example.com")
	old := createAccount(t, store, "old", "old@example.com")

	today := time.Now()
	store.profiles[young.ID].BirthDate = timePtr(today.AddDate(-18, 0, 0))
	store.profiles[mid.ID].BirthDate = timePtr(today.AddDate(-30, 0, 0))
	store.profiles[old.ID].BirthDate = timePtr(today.AddDate(-65, 0, 0))

	results, err := srv.ProfilesByAgeRange(context.Background(), 25, 40)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, mid.ID, results[0].AccountID)
}

func TestProfilesByAgeRange_BoundariesInclusive(t *testing.T) {
	store := newFakeStore()
	srv := newProfileService(store)
	account := createAccount(t, store, "alice", "alice@example.com")

	// Born exactly minAge years ago: on the upper boundary of the window.
	today := time.Now()
	store.profiles[account.ID].BirthDate = timePtr(today.AddDate(-25, 0, 0))

	results, err := srv.ProfilesByAgeRange(context.Background(), 25, 40)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestProfilesByAgeRange_InvalidRange(t *testing.T) {
	store := newFakeStore()
	srv := newProfileService(store)

	_, err := srv.ProfilesByAgeRange(context.Background(), 40, 25)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))

	_, err = srv.ProfilesByAgeRange(context.Background(), -1, 25)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestCompletionStats_EmptyProfile(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")

	stats, err := newProfileService(store).CompletionStats(context.Background(), account.ID)

	require.NoError(t, err)
	assert.Equal(t, 0, stats.CompletionPercentage)
	assert.Equal(t, 0, stats.CompletedFields)
	assert.Equal(t, 9, stats.TotalFields)
	assert.Equal(t, []string{
		"First Name", "Last Name", "Bio", "Location", "Birth Date",
		"Phone Number", "Website", "Profile Image", "Gender",
	}, stats.MissingFields)
}

func TestCompletionStats_PartialProfileTruncatesPercentage(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")
	profile := store.profiles[account.ID]
	profile.FirstName = "Alice"
	profile.LastName = "Smith"
	profile.Location = "Berlin"
	profile.Gender = entity.GenderFemale

	stats, err := newProfileService(store).CompletionStats(context.Background(), account.ID)

	require.NoError(t, err)
	// 4 of 9 fields: 44.44% truncates to 44.
	assert.Equal(t, 44, stats.CompletionPercentage)
	assert.Equal(t, 4, stats.CompletedFields)
	assert.Equal(t, 9, stats.TotalFields)
	assert.Equal(t, []string{"Bio", "Birth Date", "Phone Number", "Website", "Profile Image"}, stats.MissingFields)
}

func TestCompletionStats_FullProfile(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")
	profile := store.profiles[account.ID]
	profile.FirstName = "Alice"
	profile.LastName = "Smith"
	profile.Bio = "Engineer"
	profile.Location = "Berlin"
	profile.BirthDate = timePtr(time.Now().AddDate(-30, 0, 0))
	profile.PhoneNumber = "+49123456"
	profile.Website = "https://alice.example.com"
	profile.ProfileImageURL = "https://alice.example.com/me.png"
	profile.Gender = entity.GenderFemale

	stats, err := newProfileService(store).CompletionStats(context.Background(), account.ID)

	require.NoError(t, err)
	assert.Equal(t, 100, stats.CompletionPercentage)
	assert.Equal(t, 9, stats.CompletedFields)
	assert.Empty(t, stats.MissingFields)
}

func TestCompletionStats_AbsentProfile(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")
	delete(store.profiles, account.ID)

	stats, err := newProfileService(store).CompletionStats(context.Background(), account.ID)

	require.NoError(t, err)
	assert.Equal(t, 0, stats.CompletionPercentage)
	assert.Equal(t, 0, stats.CompletedFields)
	assert.Equal(t, 0, stats.TotalFields)
	assert.Equal(t, []string{"Profile not created"}, stats.MissingFields)
}
