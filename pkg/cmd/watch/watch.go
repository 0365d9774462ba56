package watch

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1gp-track-go/log"
	"github.com/mpapenbr/f1gp-track-go/pkg/cmd/util"
	"github.com/mpapenbr/f1gp-track-go/pkg/export"
	"github.com/mpapenbr/f1gp-track-go/pkg/trackfile"
)

var (
	writeExport bool
	initialScan bool
	settle      time.Duration
)

func NewWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch DIR",
		Short: "decodes track files in DIR whenever they are created or changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()
			return startWatch(log.AddToContext(ctx, log.Default().Named("watch")), args[0])
		},
	}
	cmd.Flags().BoolVar(&writeExport, "export", false,
		"write <name>.racing.json next to each decoded file")
	cmd.Flags().BoolVar(&initialScan, "initial-scan", true,
		"decode existing files on start")
	cmd.Flags().DurationVar(&settle, "settle", 250*time.Millisecond,
		"wait this long after the last change before decoding a file")
	return cmd
}

func startWatch(ctx context.Context, dir string) error {
	logger := log.GetFromContext(ctx)
	p := newProcessor(logger, util.NewDecoder(logger))
	if initialScan {
		matches, err := filepath.Glob(filepath.Join(dir, "*"))
		if err != nil {
			return err
		}
		for _, path := range matches {
			if util.IsTrackFile(path) {
				p.process(path)
			}
		}
	}
	w := &dirWatcher{dir: dir, settle: settle, log: logger, onChange: p.process}
	return w.run(ctx)
}

// processor decodes changed files. Files whose content did not change since
// the last decode are skipped.
type processor struct {
	log      *log.Logger
	decoder  *trackfile.Decoder
	lastHash map[string]string
}

func newProcessor(logger *log.Logger, d *trackfile.Decoder) *processor {
	return &processor{log: logger, decoder: d, lastHash: map[string]string{}}
}

func (p *processor) process(path string) {
	logger := p.log
	f, err := util.DecodeFile(p.decoder, path, "")
	if err != nil {
		logger.Warn("could not decode file", log.String("file", path), log.ErrorField(err))
		return
	}
	if p.lastHash[path] == f.Hash {
		logger.Debug("content unchanged", log.String("file", path))
		return
	}
	p.lastHash[path] = f.Hash
	s := f.Summarize()
	logger.Info("decoded",
		log.String("file", path),
		log.String("name", s.Name),
		log.Int("sections", s.SectionCount),
		log.Float64("length", s.Length),
		log.Int("skip", s.SectionSkip),
		log.Uint32("checksum", s.Checksum))
	if !writeExport {
		return
	}
	data, err := export.Render(export.NewDocument(f.Asset, path), true)
	if err != nil {
		logger.Warn("could not render export", log.ErrorField(err))
		return
	}
	target := filepath.Join(filepath.Dir(path), export.FileName(s.Name))
	if err := os.WriteFile(target, data, 0o600); err != nil {
		logger.Warn("could not write export", log.String("file", target), log.ErrorField(err))
	}
}

// dirWatcher calls onChange for track files in dir once no further change
// was seen for the settle duration.
type dirWatcher struct {
	dir      string
	settle   time.Duration
	log      *log.Logger
	onChange func(path string)
	// signals that the watch is registered
	ready chan struct{}
}

func (w *dirWatcher) run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(w.dir); err != nil {
		return err
	}
	w.log.Info("watching", log.String("dir", w.dir))
	if w.ready != nil {
		close(w.ready)
	}

	deb := newDebouncer(w.settle)
	defer deb.close()
	for {
		select {
		case <-ctx.Done():
			w.log.Info("context done, stopping watch")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !util.IsTrackFile(event.Name) ||
				!(event.Has(fsnotify.Create) || event.Has(fsnotify.Write)) {
				continue
			}
			w.log.Debug("change detected",
				log.String("file", event.Name), log.String("op", event.Op.String()))
			deb.touch(event.Name)
		case p := <-deb.due:
			if deb.current(p) {
				w.onChange(p.path)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", log.ErrorField(err))
		}
	}
}

type pending struct {
	path string
	gen  uint64
}

// debouncer delivers a path on due once it was not touched for settle.
// touch, current and close must be called from the same goroutine.
type debouncer struct {
	settle time.Duration
	due    chan pending
	stop   chan struct{}
	gen    map[string]uint64
	timers map[string]*time.Timer
	wg     sync.WaitGroup
}

func newDebouncer(settle time.Duration) *debouncer {
	return &debouncer{
		settle: settle,
		due:    make(chan pending),
		stop:   make(chan struct{}),
		gen:    map[string]uint64{},
		timers: map[string]*time.Timer{},
	}
}

func (d *debouncer) touch(path string) {
	if t, found := d.timers[path]; found && t.Stop() {
		d.wg.Done()
	}
	d.gen[path]++
	p := pending{path: path, gen: d.gen[path]}
	d.wg.Add(1)
	d.timers[path] = time.AfterFunc(d.settle, func() {
		defer d.wg.Done()
		select {
		case d.due <- p:
		case <-d.stop:
		}
	})
}

// current reports whether p is the latest delivery for its path.
// A timer that fired before the path was touched again delivers a stale p.
// Generations are never reset so a stale p cannot match a later touch.
func (d *debouncer) current(p pending) bool {
	if d.gen[p.path] != p.gen {
		return false
	}
	delete(d.timers, p.path)
	return true
}

// close stops pending timers and waits until fired ones gave up delivering
func (d *debouncer) close() {
	for _, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
	}
	close(d.stop)
	d.wg.Wait()
}
