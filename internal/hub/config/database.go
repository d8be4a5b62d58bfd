package config

import "fmt"

// PostgresConfig is the database connection configuration.
type PostgresConfig struct {
	Host           string `yaml:"host" env:"HUB_POSTGRES_HOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"HUB_POSTGRES_PORT" env-default:"5432"`
	User           string `yaml:"user" env:"HUB_POSTGRES_USER" env-default:"postgres"`
	Password       string `yaml:"password" env:"HUB_POSTGRES_PASSWORD" env-required:"true"`
	Database       string `yaml:"database" env:"HUB_POSTGRES_DB" env-default:"agrohub"`
	MinConn        int    `yaml:"min_conn" env:"HUB_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn        int    `yaml:"max_conn" env:"HUB_POSTGRES_MAX_CONN" env-default:"10"`
	MigrationsPath string `yaml:"migrations_path" env:"HUB_MIGRATIONS_PATH" env-default:"file://migrations/hub"`
}

// GetDSN returns the pgx connection string.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Database)
}

// GetConnectionURL returns the URL form of the connection string used by the
// migration runner.
func (p *PostgresConfig) GetConnectionURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Database)
}
