// Command quist публикует файлы как временный GitHub Gist, печатает его
// URL и удаляет gist по Ctrl-C:
//
//	quist --basic-auth user:token main.go go.mod
package main

import (
	"context"
	"log"
	"os"

	"github.com/m-molecula741/quist/internal/app/command"
	"github.com/m-molecula741/quist/internal/app/config"
	"github.com/m-molecula741/quist/internal/app/usecase"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix(config.Name + ": ")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Слушаем сигнал до любых сетевых запросов, чтобы ранний Ctrl-C не потерялся.
	exit := usecase.NotifyOnInterrupt(ctx)

	out := usecase.Output{Stdout: os.Stdout, Stderr: os.Stderr}
	if err := command.New(out, exit).RunContext(ctx, os.Args); err != nil {
		cancel()
		log.Fatal(err)
	}
}
