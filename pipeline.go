package cbmapper

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bodgit/cbmapper/format"
)

// ErrIncomplete is returned by Scan when at least one file or map couldn't
// be rendered
var ErrIncomplete = errors.New("cbmapper: not every file could be rendered")

func hasExtension(file string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(file))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// outputs records which input file claimed each image name. Names are
// compared case insensitively.
type outputs struct {
	sync.Mutex
	names map[string]string
}

func newOutputs() *outputs {
	return &outputs{
		names: make(map[string]string),
	}
}

// claim reserves name for file, returning the file that already holds it
// if there is one
func (o *outputs) claim(name, file string) (string, bool) {
	o.Lock()
	defer o.Unlock()

	key := strings.ToLower(name)
	if other, ok := o.names[key]; ok {
		return other, false
	}
	o.names[key] = file
	return file, true
}

func (m *Mapper) findFiles(ctx context.Context, base string, extensions []string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' && file != base {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			if !hasExtension(file, extensions) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

// load returns the maps for file, from the catalog if possible
func (m *Mapper) load(file string, t format.Title) ([]Map, error) {
	if m.catalog == nil {
		return m.Render(file, t)
	}

	crc, err := crcFile(file)
	if err != nil {
		return nil, err
	}

	maps, err := m.catalog.Find(crc, t)
	if err != nil {
		return nil, err
	}
	if maps != nil {
		m.logger.Printf("%s: found in catalog with CRC \"%s\"\n", file, crc)
		return maps, nil
	}

	if maps, err = m.Render(file, t); err != nil {
		return nil, err
	}

	if firstError(maps) != nil {
		return maps, nil
	}

	if err := m.catalog.Add(crc, t, maps); err != nil {
		return nil, err
	}

	return maps, nil
}

func (m *Mapper) fileWorker(ctx context.Context, base, output string, t format.Title, opts Options, claimed *outputs, failed *int64, in <-chan string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			rel, err := filepath.Rel(base, file)
			if err != nil {
				errc <- err
				return
			}
			name := filepath.Join(output, strings.TrimSuffix(rel, filepath.Ext(rel))+opts.Format.Extension())

			// Scenarios and saved games often share a name
			if other, ok := claimed.claim(name, file); !ok {
				m.logger.Printf("%s: %s already written from %s\n", file, name, other)
				atomic.AddInt64(failed, 1)
				continue
			}

			maps, err := m.load(file, t)
			if err != nil {
				// Most likely a file for a different title
				m.logger.Println(err)
				atomic.AddInt64(failed, 1)
				continue
			}

			if err := os.MkdirAll(filepath.Dir(name), 0o777); err != nil {
				errc <- err
				return
			}

			if err := m.write(maps, name, opts); err != nil {
				errc <- err
				return
			}
			if firstError(maps) != nil {
				atomic.AddInt64(failed, 1)
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan renders every file for title t found below path, writing the images
// below output mirroring the directory structure. Files that can't be
// rendered, or whose image name was already used by another file, are
// logged and skipped and ErrIncomplete is returned at the end.
func (m *Mapper) Scan(path, output string, t format.Title, opts Options) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := m.findFiles(ctx, dir, t.Extensions())
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	claimed := newOutputs()

	var failed int64
	for i := 0; i < workers; i++ {
		errc, err := m.fileWorker(ctx, dir, output, t, opts, claimed, &failed, files)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	if err := waitForPipeline(errcList...); err != nil {
		return err
	}

	if atomic.LoadInt64(&failed) > 0 {
		return ErrIncomplete
	}

	return nil
}
