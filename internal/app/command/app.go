// Package command собирает CLI quist: разбирает флаги, читает настройки
// и запускает жизненный цикл gist.
package command

import (
	"net/http"

	"github.com/m-molecula741/quist/internal/app/auth"
	"github.com/m-molecula741/quist/internal/app/config"
	"github.com/m-molecula741/quist/internal/app/gist"
	"github.com/m-molecula741/quist/internal/app/logger"
	"github.com/m-molecula741/quist/internal/app/usecase"
	"github.com/urfave/cli/v2"
)

// флаг -> ключ конфигурации
var flagKeys = map[string]string{
	"basic-auth":  config.KeyBasicAuth,
	"description": config.KeyDescription,
	"log-level":   config.KeyLogLevel,
	"api-url":     config.KeyAPIURL,
	"timeout":     config.KeyTimeout,
}

// New создает приложение. exit сигнализирует, что gist пора удалять.
func New(out usecase.Output, exit <-chan struct{}) *cli.App {
	return &cli.App{
		Name:                 config.Name,
		Usage:                "share files as a GitHub Gist until Ctrl-C",
		UsageText:            "quist --basic-auth user:token [--description TEXT] FILE...",
		Version:              config.Version,
		HideHelpCommand:      true,
		EnableBashCompletion: true,
		Writer:               out.Stdout,
		ErrWriter:            out.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "basic-auth",
				Aliases: []string{"a"},
				Usage:   "GitHub credentials as `user:token`",
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "gist description",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn, error",
			},
			&cli.StringFlag{
				Name:  "api-url",
				Usage: "GitHub API base URL",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "timeout of a single API request",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, out, exit)
		},
	}
}

func run(c *cli.Context, out usecase.Output, exit <-chan struct{}) error {
	v := config.NewViper()
	for flag, key := range flagKeys {
		if c.IsSet(flag) {
			v.Set(key, c.Value(flag))
		}
	}

	cfg, err := config.Load(v, c.Args().Slice())
	if err != nil {
		return err
	}

	log := logger.New(out.Stderr, cfg.LogLevel)

	cred, err := auth.Parse(cfg.BasicAuth)
	if err != nil {
		return err
	}
	log.Debug().Str("api", cfg.APIURL).Stringer("credential", cred).Msg("Configuration loaded")

	client := gist.NewClient(cfg.APIURL, cred,
		gist.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		gist.WithLogger(log),
	)

	lifecycle := usecase.NewLifecycle(client, usecase.OSFileReader{}, out, log)
	return lifecycle.Run(c.Context, usecase.Request{
		Paths:       cfg.Files,
		Description: cfg.Description,
	}, exit)
}
