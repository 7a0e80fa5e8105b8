package config

// OAuthConfig содержит учетные данные приложения Facebook. Пустые
// значения отключают вход через провайдера, но не мешают запуску.
type OAuthConfig struct {
	FacebookClientID     string `yaml:"facebook_client_id" env:"MENU_FACEBOOK_CLIENT_ID" env-default:""`
	FacebookClientSecret string `yaml:"facebook_client_secret" env:"MENU_FACEBOOK_CLIENT_SECRET" env-default:""`
	FacebookRedirectURL  string `yaml:"facebook_redirect_url" env:"MENU_FACEBOOK_REDIRECT_URL" env-default:""`
}
