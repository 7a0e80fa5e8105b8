package config

import "time"

// SessionConfig содержит настройки сессионных cookie. Секрет подписи
// обязателен: рабочего значения по умолчанию у него нет.
type SessionConfig struct {
	Secret     string        `yaml:"secret" env:"MENU_SESSION_SECRET" env-required:"true"`
	TTL        time.Duration `yaml:"ttl" env:"MENU_SESSION_TTL" env-default:"24h"`
	CookieName string        `yaml:"cookie_name" env:"MENU_SESSION_COOKIE" env-default:"menu_session"`
	BcryptCost int           `yaml:"bcrypt_cost" env:"MENU_BCRYPT_COST" env-default:"10"`
}
