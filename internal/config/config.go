// Package config loads the server settings from an optional YAML file and the
// environment.
package config

import (
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

type Config struct {
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	HTTP      HTTPServer `yaml:"http"`
	Site      Site       `yaml:"site"`
	Content   Content    `yaml:"content"`
	Contact   Contact    `yaml:"contact"`
	SMTP      SMTP       `yaml:"smtp"`
	Analytics Analytics  `yaml:"analytics"`
	Admin     Admin      `yaml:"admin"`
}

type HTTPServer struct {
	Address      string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"30s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Site struct {
	// Origin is the absolute base URL used in the sitemap and robots.txt.
	// Empty means the content metadata's site URL.
	Origin    string `yaml:"origin" env:"SITE_ORIGIN"`
	ResumeURL string `yaml:"resume_url" env:"RESUME_URL" env-default:"https://resume.shivalgupta.me"`
	SceneSeed int64  `yaml:"scene_seed" env:"SCENE_SEED" env-default:"20250101"`
}

type Content struct {
	Path  string `yaml:"path" env:"CONTENT_PATH"`
	Watch bool   `yaml:"watch" env:"CONTENT_WATCH"`
}

const (
	DriverRelay = "relay"
	DriverSMTP  = "smtp"
)

type Contact struct {
	Driver    string        `yaml:"driver" env:"CONTACT_DRIVER" env-default:"relay"`
	Endpoint  string        `yaml:"endpoint" env:"CONTACT_ENDPOINT" env-default:"https://api.web3forms.com/submit"`
	AccessKey string        `yaml:"access_key" env:"CONTACT_ACCESS_KEY"`
	Timeout   time.Duration `yaml:"timeout" env:"CONTACT_TIMEOUT" env-default:"15s"`
}

type SMTP struct {
	Host string `yaml:"host" env:"SMTP_HOST" env-default:"smtp.gmail.com"`
	Port string `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	User string `yaml:"user" env:"SMTP_USER"`
	Pass string `yaml:"pass" env:"SMTP_PASS"`
	To   string `yaml:"to" env:"TO_EMAIL"`
}

type Analytics struct {
	// DBPath enables visitor analytics when set.
	DBPath    string        `yaml:"db_path" env:"ANALYTICS_DB_PATH"`
	Retention time.Duration `yaml:"retention" env:"ANALYTICS_RETENTION" env-default:"8760h"`
}

type Admin struct {
	Username string `yaml:"username" env:"ADMIN_USERNAME"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD"`
}

// Load reads path (if any) and then the environment. PORT, as set by most
// hosting platforms, overrides the listen address.
func Load(path string) (cfg *Config, err error) {
	cfg = &Config{}

	if path != "" {
		if _, statErr := os.Stat(path); statErr != nil {
			err = errors.Wrapf(statErr, "config file not readable: %s", path)
			return nil, err
		}
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		err = errors.Wrap(err, "cannot read config")
		return nil, err
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.HTTP.Address = ":" + port
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return nil, err
	}

	return cfg, err
}

// Validate checks the settings that would otherwise only fail at request time.
func (c *Config) Validate() error {
	switch c.Env {
	case "dev", "prod":
	default:
		return errors.Errorf("env must be dev or prod, got %q", c.Env)
	}

	if c.Site.Origin != "" {
		u, err := url.Parse(c.Site.Origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.Errorf("site.origin must be an absolute URL, got %q", c.Site.Origin)
		}
	}

	switch c.Contact.Driver {
	case DriverRelay:
		if c.Contact.AccessKey == "" && c.IsProd() {
			return errors.New("contact.access_key is required for the relay driver (set CONTACT_ACCESS_KEY)")
		}
	case DriverSMTP:
		if c.SMTP.User == "" || c.SMTP.Pass == "" || c.SMTP.To == "" {
			return errors.New("smtp.user, smtp.pass and smtp.to are required for the smtp driver")
		}
	default:
		return errors.Errorf("contact.driver must be relay or smtp, got %q", c.Contact.Driver)
	}

	if c.Analytics.DBPath != "" && c.IsProd() && (c.Admin.Username == "" || c.Admin.Password == "") {
		return errors.New("admin.username and admin.password are required when analytics are enabled in prod")
	}

	return nil
}

func (c *Config) IsProd() bool {
	return c.Env == "prod"
}
