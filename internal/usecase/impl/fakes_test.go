package impl

import (
	"context"
	"sort"
	"strings"
	"time"

	"accounthub/internal/domain/entity"
	"accounthub/internal/domain/repository"

	"github.com/google/uuid"
)

// fakeStore is a shared in-memory backing store for the fake repositories.
// Profiles and settings are keyed by the owning account ID, mirroring the 1:1
// ownership in the schema.
type fakeStore struct {
	accounts map[uuid.UUID]*entity.Account
	profiles map[uuid.UUID]*entity.Profile
	settings map[uuid.UUID]*entity.Settings
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts: make(map[uuid.UUID]*entity.Account),
		profiles: make(map[uuid.UUID]*entity.Profile),
		settings: make(map[uuid.UUID]*entity.Settings),
	}
}

func (s *fakeStore) snapshot() *fakeStore {
	clone := newFakeStore()
	for id, account := range s.accounts {
		clone.accounts[id] = copyAccount(account)
	}
	for id, profile := range s.profiles {
		clone.profiles[id] = copyProfile(profile)
	}
	for id, settings := range s.settings {
		clone.settings[id] = copySettings(settings)
	}

	return clone
}

func (s *fakeStore) accountIDByUsername(username string) uuid.UUID {
	for id, account := range s.accounts {
		if account.Username == username {
			return id
		}
	}

	return uuid.Nil
}

func (s *fakeStore) restore(from *fakeStore) {
	s.accounts = from.accounts
	s.profiles = from.profiles
	s.settings = from.settings
}

func copyAccount(a *entity.Account) *entity.Account {
	clone := *a
	clone.Profile = nil
	clone.Settings = nil

	return &clone
}

func copyProfile(p *entity.Profile) *entity.Profile {
	clone := *p
	if p.BirthDate != nil {
		birthDate := *p.BirthDate
		clone.BirthDate = &birthDate
	}

	return &clone
}

func copySettings(st *entity.Settings) *entity.Settings {
	clone := *st

	return &clone
}

// --- Account repository fake ---

type fakeAccountRepo struct {
	store *fakeStore
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	account, ok := r.store.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return r.attach(account), nil
}

func (r *fakeAccountRepo) FindByIdentifier(_ context.Context, usernameOrEmail string) (*entity.Account, error) {
	for _, account := range r.store.accounts {
		if account.Username == usernameOrEmail || account.Email == usernameOrEmail {
			return r.attach(account), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *fakeAccountRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, account := range r.store.accounts {
		if account.Username == username {
			return true, nil
		}
	}

	return false, nil
}

func (r *fakeAccountRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, account := range r.store.accounts {
		if account.Email == email {
			return true, nil
		}
	}

	return false, nil
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now
	r.store.accounts[account.ID] = copyAccount(account)

	return nil
}

func (r *fakeAccountRepo) Update(_ context.Context, account *entity.Account) error {
	if _, ok := r.store.accounts[account.ID]; !ok {
		return repository.ErrAccountNotFound
	}
	r.store.accounts[account.ID] = copyAccount(account)

	return nil
}

func (r *fakeAccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.accounts[id]; !ok {
		return repository.ErrAccountNotFound
	}
	delete(r.store.accounts, id)
	delete(r.store.profiles, id)
	delete(r.store.settings, id)

	return nil
}

func (r *fakeAccountRepo) ListActiveWithPublicProfiles(_ context.Context) ([]*entity.Account, error) {
	var out []*entity.Account
	for _, account := range r.store.accounts {
		profile, ok := r.store.profiles[account.ID]
		if ok && account.Status == entity.StatusActive && profile.IsPublic {
			out = append(out, r.attach(account))
		}
	}
	sortAccounts(out)

	return out, nil
}

func (r *fakeAccountRepo) ListByTheme(_ context.Context, theme entity.Theme) ([]*entity.Account, error) {
	var out []*entity.Account
	for _, account := range r.store.accounts {
		settings, ok := r.store.settings[account.ID]
		if ok && settings.Theme == theme {
			out = append(out, r.attach(account))
		}
	}
	sortAccounts(out)

	return out, nil
}

func (r *fakeAccountRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.store.accounts)), nil
}

func (r *fakeAccountRepo) CountByStatus(_ context.Context, status entity.AccountStatus) (int64, error) {
	var count int64
	for _, account := range r.store.accounts {
		if account.Status == status {
			count++
		}
	}

	return count, nil
}

func (r *fakeAccountRepo) attach(account *entity.Account) *entity.Account {
	clone := copyAccount(account)
	if profile, ok := r.store.profiles[account.ID]; ok {
		clone.Profile = copyProfile(profile)
	}
	if settings, ok := r.store.settings[account.ID]; ok {
		clone.Settings = copySettings(settings)
	}

	return clone
}

// --- Profile repository fake ---

type fakeProfileRepo struct {
	store *fakeStore
}

func (r *fakeProfileRepo) FindByAccountID(_ context.Context, accountID uuid.UUID) (*entity.Profile, error) {
	profile, ok := r.store.profiles[accountID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return copyProfile(profile), nil
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *entity.Profile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	r.store.profiles[profile.AccountID] = copyProfile(profile)

	return nil
}

func (r *fakeProfileRepo) Update(_ context.Context, profile *entity.Profile) error {
	r.store.profiles[profile.AccountID] = copyProfile(profile)

	return nil
}

func (r *fakeProfileRepo) SearchPublicByName(_ context.Context, term string) ([]*entity.Profile, error) {
	needle := strings.ToLower(term)

	var out []*entity.Profile
	for accountID, profile := range r.store.profiles {
		if !r.publicAndActive(accountID, profile) {
			continue
		}
		if strings.Contains(strings.ToLower(profile.FirstName), needle) ||
			strings.Contains(strings.ToLower(profile.LastName), needle) {
			out = append(out, copyProfile(profile))
		}
	}
	sortProfiles(out)

	return out, nil
}

func (r *fakeProfileRepo) ListPublicActive(_ context.Context) ([]*entity.Profile, error) {
	var out []*entity.Profile
	for accountID, profile := range r.store.profiles {
		if r.publicAndActive(accountID, profile) {
			out = append(out, copyProfile(profile))
		}
	}
	sortProfiles(out)

	return out, nil
}

func (r *fakeProfileRepo) ListByBirthDateRange(_ context.Context, from, to time.Time) ([]*entity.Profile, error) {
	var out []*entity.Profile
	for accountID, profile := range r.store.profiles {
		if !r.publicAndActive(accountID, profile) || profile.BirthDate == nil {
			continue
		}
		if profile.BirthDate.Before(from) || profile.BirthDate.After(to) {
			continue
		}
		out = append(out, copyProfile(profile))
	}
	sortProfiles(out)

	return out, nil
}

func (r *fakeProfileRepo) CountByVisibility(_ context.Context, isPublic bool) (int64, error) {
	var count int64
	for _, profile := range r.store.profiles {
		if profile.IsPublic == isPublic {
			count++
		}
	}

	return count, nil
}

func (r *fakeProfileRepo) publicAndActive(accountID uuid.UUID, profile *entity.Profile) bool {
	account, ok := r.store.accounts[accountID]

	return ok && account.Status == entity.StatusActive && profile.IsPublic
}

// --- Settings repository fake ---

type fakeSettingsRepo struct {
	store *fakeStore
}

func (r *fakeSettingsRepo) FindByAccountID(_ context.Context, accountID uuid.UUID) (*entity.Settings, error) {
	settings, ok := r.store.settings[accountID]
	if !ok {
		return nil, repository.ErrSettingsNotFound
	}

	return copySettings(settings), nil
}

func (r *fakeSettingsRepo) Create(_ context.Context, settings *entity.Settings) error {
	if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}
	now := time.Now()
	settings.CreatedAt = now
	settings.UpdatedAt = now
	r.store.settings[settings.AccountID] = copySettings(settings)

	return nil
}

func (r *fakeSettingsRepo) Update(_ context.Context, settings *entity.Settings) error {
	r.store.settings[settings.AccountID] = copySettings(settings)

	return nil
}

func (r *fakeSettingsRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.store.settings)), nil
}

func (r *fakeSettingsRepo) CountByTheme(_ context.Context, theme entity.Theme) (int64, error) {
	var count int64
	for _, settings := range r.store.settings {
		if settings.Theme == theme {
			count++
		}
	}

	return count, nil
}

func (r *fakeSettingsRepo) CountEmailNotificationsEnabled(_ context.Context) (int64, error) {
	var count int64
	for _, settings := range r.store.settings {
		if settings.EmailNotifications {
			count++
		}
	}

	return count, nil
}

func (r *fakeSettingsRepo) CountPushNotificationsEnabled(_ context.Context) (int64, error) {
	var count int64
	for _, settings := range r.store.settings {
		if settings.PushNotifications {
			count++
		}
	}

	return count, nil
}

func (r *fakeSettingsRepo) CountTwoFactorEnabled(_ context.Context) (int64, error) {
	var count int64
	for _, settings := range r.store.settings {
		if settings.TwoFactorEnabled {
			count++
		}
	}

	return count, nil
}

func (r *fakeSettingsRepo) CountByLanguageCode(_ context.Context, languageCode string) (int64, error) {
	var count int64
	for _, settings := range r.store.settings {
		if settings.LanguageCode == languageCode {
			count++
		}
	}

	return count, nil
}

// --- Transaction manager fake ---

// fakeTxManager mimics transactional semantics by restoring a snapshot of the
// store when the callback fails, so atomicity tests observe real rollbacks.
type fakeTxManager struct {
	store *fakeStore
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	before := tm.store.snapshot()
	if err := fn(&fakeRepoFactory{store: tm.store}); err != nil {
		tm.store.restore(before)

		return err
	}

	return nil
}

type fakeRepoFactory struct {
	store *fakeStore
}

func (f *fakeRepoFactory) AccountRepo() repository.AccountRepository {
	return &fakeAccountRepo{store: f.store}
}

func (f *fakeRepoFactory) ProfileRepo() repository.ProfileRepository {
	return &fakeProfileRepo{store: f.store}
}

func (f *fakeRepoFactory) SettingsRepo() repository.SettingsRepository {
	return &fakeSettingsRepo{store: f.store}
}

func sortAccounts(accounts []*entity.Account) {
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].ID.String() < accounts[j].ID.String()
	})
}

func sortProfiles(profiles []*entity.Profile) {
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].ID.String() < profiles[j].ID.String()
	})
}
