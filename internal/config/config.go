package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config содержит настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Export   ExportConfig
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Port string
}

// DatabaseConfig - настройки подключения к БД.
// Driver выбирает между встраиваемой sqlite (по умолчанию) и postgres.
type DatabaseConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// ExportConfig - настройки выгрузок.
// AttendanceMirror - необязательный путь к плоскому CSV-зеркалу журнала
// посещаемости; пустое значение отключает зеркалирование.
type ExportConfig struct {
	Dir              string
	AttendanceMirror string
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Load загружает конфигурацию из переменных окружения.
// Файл .env, если присутствует, подгружается перед чтением окружения.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite"),
			Path:     getEnv("DB_PATH", "attendance.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "attendance"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Export: ExportConfig{
			Dir:              getEnv("EXPORTS_DIR", "exports"),
			AttendanceMirror: getEnv("ATTENDANCE_MIRROR", ""),
		},
	}
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
