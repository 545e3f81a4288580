package models

// Settings is the full user settings document.
type Settings struct {
	Profile       Profile       `json:"profile"`
	Preferences   Preferences   `json:"preferences"`
	Notifications Notifications `json:"notifications"`
}

// Profile holds the editable account fields. Validation tags are enforced by gin binding.
type Profile struct {
	Username  string `json:"username" binding:"required,min=3,max=20" example:"CurrentUserName"`
	Email     string `json:"email" binding:"required,email" example:"user@example.com"`
	FullName  string `json:"full_name" example:"User Full Name"`
	AvatarURL string `json:"avatar_url" binding:"omitempty,url" example:"https://github.com/shadcn.png"`
	Bio       string `json:"bio" binding:"max=200" example:"Passionate stock trader and enthusiast."`
}

// Theme is the UI color scheme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// RefreshRate controls how often ticker quotes are refreshed.
type RefreshRate string

const (
	RefreshRealTime RefreshRate = "real-time"
	Refresh5s       RefreshRate = "5s"
	Refresh15s      RefreshRate = "15s"
	RefreshManual   RefreshRate = "manual"
)

// Preferences holds display preferences.
type Preferences struct {
	Theme            Theme             `json:"theme" example:"dark"`
	DefaultGraphType VisualizationType `json:"default_graph_type" example:"trend-line"`
	DataRefreshRate  RefreshRate       `json:"data_refresh_rate" example:"5s"`
}

// Notifications holds notification toggles.
type Notifications struct {
	EmailPriceAlerts  bool `json:"email_price_alerts"`
	PushMarketNews    bool `json:"push_market_news"`
	NotificationSound bool `json:"notification_sound"`
}
