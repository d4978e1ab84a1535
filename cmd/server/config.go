package main

import (
	"time"

	"github.com/dmitrymomot/cardkit/pkg/captcha"
	"github.com/dmitrymomot/cardkit/pkg/checkout"
	"github.com/dmitrymomot/cardkit/pkg/config"
	"github.com/dmitrymomot/cardkit/pkg/email"
	"github.com/dmitrymomot/cardkit/pkg/httpserver"
	"github.com/dmitrymomot/cardkit/pkg/logger"
	"github.com/dmitrymomot/cardkit/pkg/redis"
)

type appConfig struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	Name            string `env:"APP_NAME" envDefault:"cardkit"`
	SupportInbox    string `env:"SUPPORT_INBOX" envDefault:"support@localhost"`
	AssetsDir       string `env:"ASSETS_DIR" envDefault:"./web/assets"`
	ContactRedirect string `env:"CONTACT_REDIRECT_URL" envDefault:"/?contact=sent"`
}

// contactLimit allows Burst submissions per client IP and one more every
// Interval.
type contactLimit struct {
	Burst    int           `env:"CONTACT_RATE_BURST" envDefault:"5"`
	Interval time.Duration `env:"CONTACT_RATE_INTERVAL" envDefault:"10m"`
}

type configs struct {
	app      appConfig
	log      logger.Config
	http     httpserver.Config
	redis    redis.Config
	email    email.Config
	captcha  captcha.Config
	checkout checkout.Config
	limit    contactLimit
}

func loadConfigs() (configs, error) {
	var c configs
	for _, load := range []func() error{
		func() error { return config.Load(&c.app) },
		func() error { return config.Load(&c.log) },
		func() error { return config.Load(&c.http) },
		func() error { return config.Load(&c.redis) },
		func() error { return config.Load(&c.email) },
		func() error { return config.Load(&c.captcha) },
		func() error { return config.Load(&c.checkout) },
		func() error { return config.Load(&c.limit) },
	} {
		if err := load(); err != nil {
			return configs{}, err
		}
	}
	return c, nil
}
