package runtime

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/catena/internal/logging"
	"github.com/aretw0/catena/pkg/domain"
	"github.com/aretw0/catena/pkg/ports"
)

const (
	defaultReadBufferSize  = 64 * 1024
	defaultWriteBufferSize = 64 * 1024
)

// Transducer turns a sequence of input sources into formatted output.
// A Transducer is immutable; each Run starts from a fresh line counter.
type Transducer struct {
	cfg       domain.Config
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
	readSize  int
	writeSize int
	lineMode  bool
}

// TransducerOption configures a Transducer.
type TransducerOption func(*Transducer)

// WithLogger sets the structured logger used for debug tracing.
func WithLogger(logger *slog.Logger) TransducerOption {
	return func(t *Transducer) {
		t.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) TransducerOption {
	return func(t *Transducer) {
		t.hooks = hooks
	}
}

// WithBufferSizes overrides the read and write buffer sizes.
// Non-positive values keep the defaults.
func WithBufferSizes(read, write int) TransducerOption {
	return func(t *Transducer) {
		if read > 0 {
			t.readSize = read
		}
		if write > 0 {
			t.writeSize = write
		}
	}
}

// NewTransducer creates a Transducer for the given configuration.
func NewTransducer(cfg domain.Config, opts ...TransducerOption) *Transducer {
	t := &Transducer{
		cfg:       cfg,
		readSize:  defaultReadBufferSize,
		writeSize: defaultWriteBufferSize,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = logging.NewNop()
	}
	return t
}

// Config returns the configuration the Transducer was built with.
func (t *Transducer) Config() domain.Config {
	return t.cfg
}

// state is the mutable part of one run. It spans every source of the run.
type state struct {
	number    int64
	prevBlank bool
	line      []byte
	out       []byte
}

// Run resolves each path in order and writes the transformed content to w.
// The first open, read or write error aborts the run; later paths are not
// opened. Output buffered before the error is still flushed to w.
func (t *Transducer) Run(w io.Writer, resolver ports.SourceResolver, paths []string) (err error) {
	if resolver == nil {
		return domain.ErrNilResolver
	}

	bw := bufio.NewWriterSize(w, t.writeSize)
	defer func() {
		if ferr := bw.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("write output: %w", ferr)
		}
	}()

	st := &state{number: 1, line: make([]byte, 0, 256)}
	for _, path := range paths {
		if err := t.runSource(bw, resolver, path, st); err != nil {
			return err
		}
	}
	return nil
}

func (t *Transducer) runSource(bw *bufio.Writer, resolver ports.SourceResolver, path string, st *state) (err error) {
	ev := &domain.SourceEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventSourceOpen},
		Path:      path,
		FastPath:  t.fastPath(),
	}

	src, err := resolver.Open(path)
	if err != nil {
		t.fail(ev, err)
		return err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			err = domain.NewSourceError(path, cerr)
		}
		if err != nil {
			t.fail(ev, err)
			return
		}
		ev.Type = domain.EventSourceClose
		ev.Timestamp = time.Now()
		t.logger.Debug("source done",
			"path", path,
			"bytes", ev.BytesRead,
			"lines", ev.LinesEmitted,
			"squeezed", ev.LinesSqueezed,
		)
		if t.hooks.OnSourceClose != nil {
			t.hooks.OnSourceClose(ev)
		}
	}()

	t.logger.Debug("source open", "path", path, "fast_path", ev.FastPath)
	if t.hooks.OnSourceOpen != nil {
		t.hooks.OnSourceOpen(ev)
	}

	if ev.FastPath {
		return t.copySource(bw, src, ev)
	}
	return t.transformSource(bw, src, st, ev)
}

func (t *Transducer) fastPath() bool {
	return t.cfg.IsPassthrough() && !t.lineMode
}

func (t *Transducer) fail(ev *domain.SourceEvent, err error) {
	ev.Type = domain.EventSourceError
	ev.Timestamp = time.Now()
	ev.Err = err
	t.logger.Debug("source failed", "path", ev.Path, "error", err)
	if t.hooks.OnSourceError != nil {
		t.hooks.OnSourceError(ev)
	}
}

// copySource moves the whole stream to the output without looking at lines.
func (t *Transducer) copySource(bw *bufio.Writer, src ports.Source, ev *domain.SourceEvent) error {
	cr := &countingReader{r: src}
	_, err := io.Copy(bw, cr)
	ev.BytesRead = cr.n
	if err == nil {
		return nil
	}
	if cr.err != nil && errors.Is(err, cr.err) {
		return domain.NewSourceError(src.Path(), err)
	}
	return fmt.Errorf("write output: %w", err)
}

func (t *Transducer) transformSource(bw *bufio.Writer, src ports.Source, st *state, ev *domain.SourceEvent) error {
	br := bufio.NewReaderSize(src, t.readSize)
	for {
		line, rerr := readLine(br, st.line[:0])
		st.line = line
		ev.BytesRead += int64(len(line))

		if rerr != nil && rerr != io.EOF {
			// A fragment cut short by a failed read is never emitted.
			return domain.NewSourceError(src.Path(), rerr)
		}

		if len(line) > 0 {
			if err := t.emitLine(bw, st, ev); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}

		if rerr == io.EOF {
			return nil
		}
	}
}

// emitLine applies squeezing, numbering, the end marker and the byte rewrite
// to st.line, in that order.
func (t *Transducer) emitLine(bw *bufio.Writer, st *state, ev *domain.SourceEvent) error {
	line := st.line
	blank := isBlank(line)

	if t.cfg.SqueezeBlank {
		if st.prevBlank && blank {
			ev.LinesSqueezed++
			return nil
		}
		st.prevBlank = blank
	}

	if t.cfg.Numbering == domain.NumberAll || (t.cfg.Numbering == domain.NumberNonEmpty && !blank) {
		st.out = appendNumberPrefix(st.out[:0], st.number)
		if _, err := bw.Write(st.out); err != nil {
			return err
		}
		st.number++
	}

	if t.cfg.EndMarker.Set && line[len(line)-1] == '\n' {
		line = insertBeforeNewline(line, t.cfg.EndMarker.Value)
		st.line = line
	}

	ev.LinesEmitted++
	if !t.cfg.RewritesBytes() {
		_, err := bw.Write(line)
		return err
	}

	st.out = t.rewrite(st.out[:0], line)
	_, err := bw.Write(st.out)
	return err
}

// rewrite appends the visible form of line to dst.
// A configured tab marker wins over non-printing escaping for TAB.
func (t *Transducer) rewrite(dst, line []byte) []byte {
	for _, b := range line {
		switch {
		case b == '\t' && t.cfg.TabMarker.Set:
			dst = append(dst, t.cfg.TabMarker.Value...)
		case t.cfg.ShowNonPrinting:
			dst = AppendVisible(dst, b)
		default:
			dst = append(dst, b)
		}
	}
	return dst
}

// readLine reads up to and including the next '\n' into buf.
// At end of stream it returns the final partial line, if any, with io.EOF.
func readLine(r *bufio.Reader, buf []byte) ([]byte, error) {
	for {
		chunk, err := r.ReadSlice('\n')
		buf = append(buf, chunk...)
		if err == bufio.ErrBufferFull {
			continue
		}
		return buf, err
	}
}

func isBlank(line []byte) bool {
	return len(line) == 1 && line[0] == '\n'
}

// insertBeforeNewline places marker between the content and the trailing '\n'.
func insertBeforeNewline(line []byte, marker string) []byte {
	line = append(line[:len(line)-1], marker...)
	return append(line, '\n')
}

type countingReader struct {
	r   io.Reader
	n   int64
	err error
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	if err != nil && err != io.EOF {
		c.err = err
	}
	return n, err
}
