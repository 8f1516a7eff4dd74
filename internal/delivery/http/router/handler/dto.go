package handler

import (
	"time"

	"accounthub/internal/domain/entity"
)

// accountResponse is the wire shape of an account. The password never leaves
// the service.
type accountResponse struct {
	ID        string            `json:"id"`
	Username  string            `json:"username"`
	Email     string            `json:"email"`
	Status    string            `json:"status"`
	Profile   *profileResponse  `json:"profile,omitempty"`
	Settings  *settingsResponse `json:"settings,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type profileResponse struct {
	ID              string     `json:"id"`
	AccountID       string     `json:"accountId"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	FullName        string     `json:"fullName"`
	Bio             string     `json:"bio"`
	Location        string     `json:"location"`
	Website         string     `json:"website"`
	PhoneNumber     string     `json:"phoneNumber"`
	BirthDate       *time.Time `json:"birthDate"`
	Gender          string     `json:"gender"`
	ProfileImageURL string     `json:"profileImageUrl"`
	IsPublic        bool       `json:"isPublic"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type settingsResponse struct {
	ID        string `json:"id"`
	AccountID string `json:"accountId"`

	Theme        string `json:"theme"`
	LanguageCode string `json:"languageCode"`
	TimeZone     string `json:"timeZone"`
	DateFormat   string `json:"dateFormat"`

	ProfileVisibility bool `json:"profileVisibility"`
	AllowMessages     bool `json:"allowMessages"`
	ShowOnlineStatus  bool `json:"showOnlineStatus"`

	EmailNotifications    bool   `json:"emailNotifications"`
	PushNotifications     bool   `json:"pushNotifications"`
	SMSNotifications      bool   `json:"smsNotifications"`
	NotificationFrequency string `json:"notificationFrequency"`

	ItemsPerPage     int  `json:"itemsPerPage"`
	AutoSave         bool `json:"autoSave"`
	AutoSaveInterval int  `json:"autoSaveInterval"`

	TwoFactorEnabled bool `json:"twoFactorEnabled"`
	SessionTimeout   int  `json:"sessionTimeout"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toAccountResponse(account *entity.Account) *accountResponse {
	if account == nil {
		return nil
	}

	return &accountResponse{
		ID:        account.ID.String(),
		Username:  account.Username,
		Email:     account.Email,
		Status:    string(account.Status),
		Profile:   toProfileResponse(account.Profile),
		Settings:  toSettingsResponse(account.Settings),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

func toAccountResponseList(accounts []*entity.Account) []*accountResponse {
	out := make([]*accountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, toAccountResponse(account))
	}

	return out
}

func toProfileResponse(profile *entity.Profile) *profileResponse {
	if profile == nil {
		return nil
	}

	return &profileResponse{
		ID:              profile.ID.String(),
		AccountID:       profile.AccountID.String(),
		FirstName:       profile.FirstName,
		LastName:        profile.LastName,
		FullName:        profile.FullName(),
		Bio:             profile.Bio,
		Location:        profile.Location,
		Website:         profile.Website,
		PhoneNumber:     profile.PhoneNumber,
		BirthDate:       profile.BirthDate,
		Gender:          string(profile.Gender),
		ProfileImageURL: profile.ProfileImageURL,
		IsPublic:        profile.IsPublic,
		CreatedAt:       profile.CreatedAt,
		UpdatedAt:       profile.UpdatedAt,
	}
}

func toProfileResponseList(profiles []*entity.Profile) []*profileResponse {
	out := make([]*profileResponse, 0, len(profiles))
	for _, profile := range profiles {
		out = append(out, toProfileResponse(profile))
	}

	return out
}

func toSettingsResponse(settings *entity.Settings) *settingsResponse {
	if settings == nil {
		return nil
	}

	return &settingsResponse{
		ID:                    settings.ID.String(),
		AccountID:             settings.AccountID.String(),
		Theme:                 string(settings.Theme),
		LanguageCode:          settings.LanguageCode,
		TimeZone:              settings.TimeZone,
		DateFormat:            string(settings.DateFormat),
		ProfileVisibility:     settings.ProfileVisibility,
		AllowMessages:         settings.AllowMessages,
		ShowOnlineStatus:      settings.ShowOnlineStatus,
		EmailNotifications:    settings.EmailNotifications,
		PushNotifications:     settings.PushNotifications,
		SMSNotifications:      settings.SMSNotifications,
		NotificationFrequency: string(settings.NotificationFrequency),
		ItemsPerPage:          settings.ItemsPerPage,
		AutoSave:              settings.AutoSave,
		AutoSaveInterval:      settings.AutoSaveInterval,
		TwoFactorEnabled:      settings.TwoFactorEnabled,
		SessionTimeout:        settings.SessionTimeout,
		CreatedAt:             settings.CreatedAt,
		UpdatedAt:             settings.UpdatedAt,
	}
}
