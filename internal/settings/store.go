package settings

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"

	"github.com/guttosm/dashpulse/internal/domain/models"
)

// PreferencesListener is called after preferences change, outside the store lock.
// Listener calls are serialized in update order and must not update preferences.
type PreferencesListener func(prev, next models.Preferences)

// Store keeps the single user's settings in memory.
type Store struct {
	// notifyMu orders preference writes together with their listener calls.
	notifyMu  sync.Mutex
	mu        sync.RWMutex
	current   models.Settings
	listeners []PreferencesListener
}

// Defaults returns the settings a fresh store starts with.
func Defaults() models.Settings {
	return models.Settings{
		Profile: models.Profile{
			Username:  "CurrentUserName",
			Email:     "user@example.com",
			FullName:  "User Full Name",
			AvatarURL: "https://github.com/shadcn.png",
			Bio:       "Passionate stock trader and enthusiast.",
		},
		Preferences: models.Preferences{
			Theme:            models.ThemeDark,
			DefaultGraphType: models.TrendLine,
			DataRefreshRate:  models.Refresh5s,
		},
		Notifications: models.Notifications{
			EmailPriceAlerts:  true,
			PushMarketNews:    false,
			NotificationSound: true,
		},
	}
}

// NewStore returns a store holding Defaults().
func NewStore() *Store {
	return &Store{current: Defaults()}
}

// Get returns a copy of the current settings.
func (s *Store) Get() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Preferences returns the current preferences.
func (s *Store) Preferences() models.Preferences {
	return s.Get().Preferences
}

// OnPreferencesChange registers l. Listeners run in registration order.
func (s *Store) OnPreferencesChange(l PreferencesListener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// UpdatePreferences validates p and stores it. Empty fields keep their current value.
func (s *Store) UpdatePreferences(p models.Preferences) (models.Preferences, error) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	prev := s.current.Preferences
	next, err := mergePreferences(prev, p)
	if err != nil {
		s.mu.Unlock()
		return prev, err
	}
	s.current.Preferences = next
	listeners := append([]PreferencesListener(nil), s.listeners...)
	s.mu.Unlock()

	if next != prev {
		for _, l := range listeners {
			l(prev, next)
		}
	}
	return next, nil
}

// UpdateNotifications replaces the notification toggles.
func (s *Store) UpdateNotifications(n models.Notifications) models.Notifications {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Notifications = n
	return n
}

// UpdateProfile validates p and replaces the profile.
func (s *Store) UpdateProfile(p models.Profile) (models.Profile, error) {
	p.Username = strings.TrimSpace(p.Username)
	p.Email = strings.TrimSpace(p.Email)
	p.FullName = strings.TrimSpace(p.FullName)
	p.AvatarURL = strings.TrimSpace(p.AvatarURL)
	if err := ValidateProfile(p); err != nil {
		return models.Profile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Profile = p
	return p, nil
}

// ValidateProfile checks p against the binding rules declared on models.Profile.
func ValidateProfile(p models.Profile) error {
	if err := binding.Validator.ValidateStruct(p); err != nil {
		return fmt.Errorf("invalid profile: %v: %w", err, models.ErrInvalidArgument)
	}
	return nil
}

// ParseTheme accepts light, dark or system in any case.
func ParseTheme(s string) (models.Theme, error) {
	t := models.Theme(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case models.ThemeLight, models.ThemeDark, models.ThemeSystem:
		return t, nil
	}
	return "", fmt.Errorf("unknown theme %q: %w", s, models.ErrInvalidArgument)
}

// ParseRefreshRate accepts real-time, 5s, 15s or manual in any case.
func ParseRefreshRate(s string) (models.RefreshRate, error) {
	r := models.RefreshRate(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case models.RefreshRealTime, models.Refresh5s, models.Refresh15s, models.RefreshManual:
		return r, nil
	}
	return "", fmt.Errorf("unknown refresh rate %q: %w", s, models.ErrInvalidArgument)
}

func mergePreferences(cur, in models.Preferences) (models.Preferences, error) {
	out := cur
	if in.Theme != "" {
		t, err := ParseTheme(string(in.Theme))
		if err != nil {
			return cur, err
		}
		out.Theme = t
	}
	if in.DefaultGraphType != "" {
		vt, err := models.ParseVisualizationType(string(in.DefaultGraphType))
		if err != nil {
			return cur, err
		}
		out.DefaultGraphType = vt
	}
	if in.DataRefreshRate != "" {
		r, err := ParseRefreshRate(string(in.DataRefreshRate))
		if err != nil {
			return cur, err
		}
		out.DataRefreshRate = r
	}
	return out, nil
}
