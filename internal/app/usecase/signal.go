package usecase

import (
	"context"
	"os"
	"os/signal"
)

// NotifyOnInterrupt возвращает канал, в который придет ровно одно значение
// после первого os.Interrupt. Сигнал, полученный до чтения из канала,
// не теряется. После первого сигнала обработка снимается, и повторный
// Ctrl-C завершает процесс как обычно.
func NotifyOnInterrupt(ctx context.Context) <-chan struct{} {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	exit := make(chan struct{}, 1)
	go func() {
		defer signal.Stop(sig)
		select {
		case <-sig:
			exit <- struct{}{}
		case <-ctx.Done():
		}
	}()

	return exit
}
