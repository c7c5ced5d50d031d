package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	apperrors "user-session/pkg/errors"
)

// DefaultDateLayout is the layout used for SESSION_DATE_BIRTH when none is configured.
const DefaultDateLayout = "2006-01-02"

// Config holds all configuration for the application
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Profile ProfileConfig
}

// AppConfig holds application-wide settings
type AppConfig struct {
	Env string `mapstructure:"APP_ENV" validate:"required"`
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level          string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn warning error dpanic panic fatal"`
	Format         string `mapstructure:"LOG_FORMAT" validate:"oneof=json console"`
	OutputPath     string `mapstructure:"LOG_OUTPUT_PATH"`
	EnableSampling bool   `mapstructure:"LOG_ENABLE_SAMPLING"`
	ServiceName    string `mapstructure:"SERVICE_NAME" validate:"required"`
	ServiceVersion string `mapstructure:"SERVICE_VERSION"`
}

// ProfileConfig is the profile the CLI opens a session with.
// Only DateBirth is interpreted; the other values are used as given.
type ProfileConfig struct {
	FirstName  string `mapstructure:"SESSION_FIRST_NAME"`
	FullName   string `mapstructure:"SESSION_FULL_NAME"`
	Username   string `mapstructure:"SESSION_USERNAME"`
	Email      string `mapstructure:"SESSION_EMAIL"`
	DateBirth  string `mapstructure:"SESSION_DATE_BIRTH"`
	DateLayout string `mapstructure:"SESSION_DATE_LAYOUT" validate:"required"`
}

// BirthDate parses DateBirth with DateLayout. An empty DateBirth yields the zero time.
func (p ProfileConfig) BirthDate() (time.Time, error) {
	if p.DateBirth == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(p.DateLayout, p.DateBirth)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("SESSION_DATE_BIRTH",
			fmt.Sprintf("%q does not match layout %q", p.DateBirth, p.DateLayout))
	}
	return t, nil
}

// LoadConfig reads configuration from app.env in path and from environment variables.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app") // Look for app.env
	v.SetConfigType("env")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is okay if we have env vars
	}

	setDefaults(v)

	var config Config

	config.App.Env = v.GetString("APP_ENV")

	config.Logger.Level = v.GetString("LOG_LEVEL")
	config.Logger.Format = v.GetString("LOG_FORMAT")
	config.Logger.OutputPath = v.GetString("LOG_OUTPUT_PATH")
	config.Logger.EnableSampling = v.GetBool("LOG_ENABLE_SAMPLING")
	config.Logger.ServiceName = v.GetString("SERVICE_NAME")
	config.Logger.ServiceVersion = v.GetString("SERVICE_VERSION")

	config.Profile.FirstName = v.GetString("SESSION_FIRST_NAME")
	config.Profile.FullName = v.GetString("SESSION_FULL_NAME")
	config.Profile.Username = v.GetString("SESSION_USERNAME")
	config.Profile.Email = v.GetString("SESSION_EMAIL")
	config.Profile.DateBirth = v.GetString("SESSION_DATE_BIRTH")
	config.Profile.DateLayout = v.GetString("SESSION_DATE_LAYOUT")

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the loaded values and the birth date format.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("mapstructure")
	})

	for _, section := range []any{c.App, c.Logger, c.Profile} {
		if err := validate.Struct(section); err != nil {
			return formatValidationError(err)
		}
	}

	if _, err := c.Profile.BirthDate(); err != nil {
		return err
	}
	return nil
}

// formatValidationError reports the first failing field by its environment key.
func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err
	}

	e := validationErrors[0]
	switch e.Tag() {
	case "required":
		return apperrors.NewValidationError(e.Field(), "is required")
	case "oneof":
		return apperrors.NewValidationError(e.Field(), fmt.Sprintf("must be one of %s, got %q", e.Param(), e.Value()))
	default:
		return apperrors.NewValidationError(e.Field(), "is invalid")
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")

	if v.GetString("APP_ENV") == "production" {
		v.SetDefault("LOG_LEVEL", "info")
		v.SetDefault("LOG_FORMAT", "json")
		v.SetDefault("LOG_ENABLE_SAMPLING", true)
	} else {
		v.SetDefault("LOG_LEVEL", "debug")
		v.SetDefault("LOG_FORMAT", "console")
		v.SetDefault("LOG_ENABLE_SAMPLING", false)
	}
	v.SetDefault("LOG_OUTPUT_PATH", "stdout")
	v.SetDefault("SERVICE_NAME", "user-session")
	v.SetDefault("SERVICE_VERSION", "1.0.0")

	v.SetDefault("SESSION_DATE_LAYOUT", DefaultDateLayout)
}
