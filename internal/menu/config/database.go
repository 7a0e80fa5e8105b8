package config

import (
	"fmt"
)

// PostgresConfig содержит настройки подключения к базе данных. Пароль
// не имеет значения по умолчанию и обязан приходить из окружения.
type PostgresConfig struct {
	Host     string `yaml:"host" env:"MENU_POSTGRES_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"MENU_POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"MENU_POSTGRES_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"MENU_POSTGRES_PASSWORD" env-required:"true"`
	Database string `yaml:"database" env:"MENU_POSTGRES_DB" env-default:"restomenu"`
	MinConn  int    `yaml:"min_conn" env:"MENU_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn  int    `yaml:"max_conn" env:"MENU_POSTGRES_MAX_CONN" env-default:"10"`
	Migrate  bool   `yaml:"migrate" env:"MENU_POSTGRES_MIGRATE" env-default:"false"`
}

// GetDSN возвращает строку подключения к PostgreSQL.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Database)
}

// GetConnectionURL возвращает URL-строку подключения для миграций.
func (p *PostgresConfig) GetConnectionURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Database)
}
