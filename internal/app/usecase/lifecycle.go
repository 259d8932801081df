package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/m-molecula741/quist/internal/app/gist"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type Lifecycle struct {
	client GistClient
	files  FileReader
	out    Output
	log    zerolog.Logger
}

func NewLifecycle(client GistClient, files FileReader, out Output, log zerolog.Logger) *Lifecycle {
	return &Lifecycle{
		client: client,
		files:  files,
		out:    out,
		log:    log,
	}
}

// Run публикует файлы, печатает URL и ждет значения из exit, после чего
// удаляет gist. Если контекст завершится раньше, gist останется на сервере
// и вернется ErrInterruptedBeforeDelete.
func (l *Lifecycle) Run(ctx context.Context, req Request, exit <-chan struct{}) error {
	entries, err := l.collect(ctx, req.Paths)
	if err != nil {
		return err
	}

	paste, err := l.create(ctx, buildGist(entries, req.Description))
	if err != nil {
		return err
	}

	if err := l.announce(paste); err != nil {
		l.log.Warn().Err(err).Str("id", paste.ID).Msg("Cannot print gist URL, deleting it right away")
		return errors.Join(err, l.delete(ctx, paste.ID))
	}

	select {
	case <-exit:
		l.log.Debug().Str("id", paste.ID).Msg("Termination requested")
	case <-ctx.Done():
		return fmt.Errorf("%w: gist %q still exists: %v", ErrInterruptedBeforeDelete, paste.ID, ctx.Err())
	}

	if err := l.delete(ctx, paste.ID); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(l.out.Stderr, "Gist %q successfully deleted! Bye.\n", paste.ID); err != nil {
		return fmt.Errorf("write confirmation: %w", err)
	}
	return nil
}

// collect читает все файлы параллельно. Первая ошибка отменяет остальные чтения.
func (l *Lifecycle) collect(ctx context.Context, paths []string) ([]FileEntry, error) {
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}

	entries := make([]FileEntry, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			content, err := l.files.ReadFile(gctx, path)
			if err != nil {
				return &ReadError{Path: path, Err: err}
			}
			entries[i] = FileEntry{Name: filepath.Base(path), Content: content}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	for i := 1; i < len(entries); i++ {
		if entries[i].Name == entries[i-1].Name {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFileName, entries[i].Name)
		}
	}

	l.log.Debug().Int("files", len(entries)).Msg("Files collected")
	return entries, nil
}

func buildGist(entries []FileEntry, description string) *gist.Gist {
	g := &gist.Gist{Files: make(gist.FileMap, len(entries))}
	if description != "" {
		g.Description = &description
	}
	for _, e := range entries {
		g.Files[e.Name] = gist.NewFile(e.Content)
	}
	return g
}

func (l *Lifecycle) create(ctx context.Context, g *gist.Gist) (gist.Created, error) {
	resp, err := l.client.Create(ctx, g)
	if err != nil {
		return gist.Created{}, err
	}
	if !resp.OK() {
		return gist.Created{}, &RemotePasteError{Stage: StageCreate, Message: resp.Err.Message}
	}

	l.log.Info().Str("id", resp.Value.ID).Str("url", resp.Value.URL).Msg("Gist created")
	return resp.Value, nil
}

// announce печатает URL. Перевод строки уходит в stderr, чтобы stdout
// содержал только сам URL.
func (l *Lifecycle) announce(paste gist.Created) error {
	if _, err := fmt.Fprint(l.out.Stderr, "URL created: "); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	if _, err := fmt.Fprint(l.out.Stdout, paste.URL); err != nil {
		return fmt.Errorf("write gist url: %w", err)
	}
	if _, err := fmt.Fprint(l.out.Stderr, "\nWaiting for termination in order to delete the Gist...\n"); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}

func (l *Lifecycle) delete(ctx context.Context, id string) error {
	resp, err := l.client.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return &RemotePasteError{Stage: StageDelete, PasteID: id, Message: resp.Err.Message}
	}

	l.log.Info().Str("id", id).Msg("Gist deleted")
	return nil
}
