package impl

import (
	"context"
	"testing"

	"accounthub/internal/domain/entity"
	domainerrors "accounthub/internal/domain/errors"
	"accounthub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsService(store *fakeStore) usecase.SettingsUsecase {
	return NewSettingsService(
		&fakeTxManager{store: store},
		&fakeAccountRepo{store: store},
		&fakeSettingsRepo{store: store},
		newTestLogger(),
	)
}

func themePtr(t entity.Theme) *entity.Theme { return &t }

func TestGetSettings(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")

	settings, err := newSettingsService(store).GetSettings(context.Background(), account.ID)

	require.NoError(t, err)
	assert.Equal(t, account.ID, settings.AccountID)
	assert.Equal(t, entity.ThemeLight, settings.Theme)
}

func TestGetSettings_Missing(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")
	delete(store.settings, account.ID)

	_, err := newSettingsService(store).GetSettings(context.Background(), account.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSettingsNotFound))
}

func TestUpdateSettings_MergePreservesUnsetFields(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")
	srv := newSettingsService(store)

	updated, err := srv.UpdateSettings(context.Background(), account.ID, &usecase.UpdateSettingsInput{
		Theme:        themePtr(entity.ThemeDark),
		ItemsPerPage: intPtr(50),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ThemeDark, updated.Theme)
	assert.Equal(t, 50, updated.ItemsPerPage)
	// Untouched fields keep their defaults.
	assert.Equal(t, "en", updated.LanguageCode)
	assert.Equal(t, "UTC", updated.TimeZone)
	assert.True(t, updated.EmailNotifications)
	assert.Equal(t, 1440, updated.SessionTimeout)
}

func TestUpdateSettings_UnknownTheme(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")

	_, err := newSettingsService(store).UpdateSettings(context.Background(), account.ID, &usecase.UpdateSettingsInput{
		Theme: themePtr(entity.Theme("NEON")),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUpdateSettings_SessionTimeoutOutOfRange(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")
	srv := newSettingsService(store)

	_, err := srv.UpdateSettings(context.Background(), account.ID, &usecase.UpdateSettingsInput{
		SessionTimeout: intPtr(29),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = srv.UpdateSettings(context.Background(), account.ID, &usecase.UpdateSettingsInput{
		SessionTimeout: intPtr(10081),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUpdateSettings_CreatesSettingsWhenMissing(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")
	delete(store.settings, account.ID)

	updated, err := newSettingsService(store).UpdateSettings(context.Background(), account.ID, &usecase.UpdateSettingsInput{
		Theme: themePtr(entity.ThemeAuto),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ThemeAuto, updated.Theme)
	assert.Equal(t, "en", updated.LanguageCode)
	assert.Contains(t, store.settings, account.ID)
}

func TestUpdateNotificationPreferences_OverwritesAllFour(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")

	updated, err := newSettingsService(store).UpdateNotificationPreferences(context.Background(), account.ID, &usecase.NotificationPreferencesInput{
		EmailNotifications:    false,
		PushNotifications:     false,
		SMSNotifications:      true,
		NotificationFrequency: entity.FrequencyDaily,
	})

	require.NoError(t, err)
	assert.False(t, updated.EmailNotifications)
	assert.False(t, updated.PushNotifications)
	assert.True(t, updated.SMSNotifications)
	assert.Equal(t, entity.FrequencyDaily, updated.NotificationFrequency)
}

func TestUpdateNotificationPreferences_UnknownFrequency(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")

	_, err := newSettingsService(store).UpdateNotificationPreferences(context.Background(), account.ID, &usecase.NotificationPreferencesInput{
		NotificationFrequency: entity.NotificationFrequency("SOMETIMES"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUpdatePrivacyPreferences(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")

	updated, err := newSettingsService(store).UpdatePrivacyPreferences(context.Background(), account.ID, &usecase.PrivacyPreferencesInput{
		ProfileVisibility: false,
		AllowMessages:     false,
		ShowOnlineStatus:  false,
	})

	require.NoError(t, err)
	assert.False(t, updated.ProfileVisibility)
	assert.False(t, updated.AllowMessages)
	assert.False(t, updated.ShowOnlineStatus)
}

func TestUpdatePrivacyPreferences_MissingSettings(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")
	delete(store.settings, account.ID)

	_, err := newSettingsService(store).UpdatePrivacyPreferences(context.Background(), account.ID, &usecase.PrivacyPreferencesInput{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSettingsNotFound))
}

func TestUpdateSecurityPreferences_BoundsInclusive(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")
	srv := newSettingsService(store)

	updated, err := srv.UpdateSecurityPreferences(context.Background(), account.ID, &usecase.SecurityPreferencesInput{
		TwoFactorEnabled: true,
		SessionTimeout:   entity.MinSessionTimeoutMinutes,
	})
	require.NoError(t, err)
	assert.True(t, updated.TwoFactorEnabled)
	assert.Equal(t, entity.MinSessionTimeoutMinutes, updated.SessionTimeout)

	updated, err = srv.UpdateSecurityPreferences(context.Background(), account.ID, &usecase.SecurityPreferencesInput{
		SessionTimeout: entity.MaxSessionTimeoutMinutes,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MaxSessionTimeoutMinutes, updated.SessionTimeout)
}

func TestUpdateSecurityPreferences_RejectsOutOfRangeBeforeLookup(t *testing.T) {
	store := newFakeStore()
	account := createAccount(t, store, "alice", "alice@example.com")
	before := store.settings[account.ID].SessionTimeout

	_, err := newSettingsService(store).UpdateSecurityPreferences(context.Background(), account.ID, &usecase.SecurityPreferencesInput{
		SessionTimeout: entity.MaxSessionTimeoutMinutes + 1,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
	assert.Equal(t, before, store.settings[account.ID].SessionTimeout)
}

func TestAccountsByTheme_FiltersInactive(t *testing.T) {
	store := newFakeStore()
	srv := newSettingsService(store)
	alice := createAccount(t, store, "alice", "alice@example.com")
	bob := createAccount(t, store, "bob", "bob@example.com")

	store.settings[alice.ID].Theme = entity.ThemeDark
	store.settings[bob.ID].Theme = entity.ThemeDark
	store.accounts[bob.ID].Status = entity.StatusSuspended

	accounts, err := srv.AccountsByTheme(context.Background(), entity.ThemeDark)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, alice.ID, accounts[0].ID)
}

func TestAccountsByTheme_UnknownTheme(t *testing.T) {
	store := newFakeStore()

	_, err := newSettingsService(store).AccountsByTheme(context.Background(), entity.Theme("NEON"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestAnalytics_CountsAreIndependent(t *testing.T) {
	store := newFakeStore()
	srv := newSettingsService(store)
	alice := createAccount(t, store, "alice", "alice@example.com")
	bob := createAccount(t, store, "bob", "bob@example.com")
	carol := createAccount(t, store, "carol", "carol@example.com")

	// alice: email on, push off. bob: email off, push on. carol: defaults
	// (both on). The push count must track push flags, not the email count.
	store.settings[alice.ID].PushNotifications = false
	store.settings[bob.ID].EmailNotifications = false
	store.settings[bob.ID].Theme = entity.ThemeDark
	store.settings[bob.ID].LanguageCode = "de"
	store.settings[carol.ID].TwoFactorEnabled = true

	analytics, err := srv.Analytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), analytics.TotalSettings)
	assert.Equal(t, int64(2), analytics.LightThemeAccounts)
	assert.Equal(t, int64(1), analytics.DarkThemeAccounts)
	assert.Equal(t, int64(0), analytics.AutoThemeAccounts)
	assert.Equal(t, int64(2), analytics.EmailNotificationUsers)
	assert.Equal(t, int64(2), analytics.PushNotificationUsers)
	assert.Equal(t, int64(1), analytics.TwoFactorUsers)
	assert.Equal(t, int64(2), analytics.EnglishUsers)
}
