package mailer

import "time"

// Connection security modes accepted by Config.Security.
const (
	SecuritySSL      = "ssl"
	SecurityStartTLS = "starttls"
	SecurityNone     = "none"
)

// Config holds relay settings and the operator's default sender.
// Embed it in the app config for env parsing with caarlos0/env.
type Config struct {
	Host           string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SenderEmail    string `env:"SENDER_EMAIL"`
	SenderPassword string `env:"EMAIL_PASSWORD"`
	Security       string `env:"SMTP_SECURITY" envDefault:"ssl" validate:"oneof=ssl starttls none"`
	Port           int    `env:"SMTP_PORT" envDefault:"465" validate:"min=1,max=65535"`

	// DialTimeout overrides the client's connection timeout. Zero keeps the library default.
	DialTimeout time.Duration `env:"SMTP_DIAL_TIMEOUT" validate:"gte=0"`
}

const (
	defaultHost = "smtp.gmail.com"
	defaultPort = 465
)

func (c Config) withDefaults() Config {
	if c.Host == "" {
		c.Host = defaultHost
	}
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Security == "" {
		c.Security = SecuritySSL
	}
	return c
}
