// Package publish sends decoded track summaries to NATS.
package publish

import (
	"context"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/ohler55/ojg/oj"

	"github.com/mpapenbr/f1gp-track-go/log"
	"github.com/mpapenbr/f1gp-track-go/pkg/model"
)

const (
	DefaultSubjectPrefix = "gptrack"
	DefaultFlushTimeout  = 5 * time.Second
)

// Conn is the part of *nats.Conn used by the Publisher
type Conn interface {
	Publish(subj string, data []byte) error
	FlushWithContext(ctx context.Context) error
}

var _ Conn = (*nats.Conn)(nil)

type (
	Publisher struct {
		conn         Conn
		prefix       string
		flushTimeout time.Duration
		l            *log.Logger
	}
	Option func(*Publisher)
)

func NewPublisher(conn Conn, opts ...Option) *Publisher {
	ret := &Publisher{
		conn:         conn,
		prefix:       DefaultSubjectPrefix,
		flushTimeout: DefaultFlushTimeout,
		l:            log.Default().Named("nats"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func WithSubjectPrefix(prefix string) Option {
	return func(p *Publisher) {
		if prefix != "" {
			p.prefix = prefix
		}
	}
}

// WithFlushTimeout bounds the flush when the caller's context has no deadline
func WithFlushTimeout(d time.Duration) Option {
	return func(p *Publisher) {
		if d > 0 {
			p.flushTimeout = d
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(p *Publisher) {
		p.l = l
	}
}

// Connect opens a NATS connection with the settings used by the commands
func Connect(url string) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.Name("gptrack"),
		nats.MaxReconnects(5),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			log.Default().Named("nats").Warn("nats error", log.ErrorField(err))
		}),
	)
}

// Subject returns <prefix>.track.<name>. Characters that are not valid in a
// subject token are replaced by '_'.
func Subject(prefix, name string) string {
	token := strings.Map(func(r rune) rune {
		switch {
		case r == '.', r == '*', r == '>', r <= ' ', r == 0x7F:
			return '_'
		default:
			return r
		}
	}, name)
	if token == "" {
		token = "_"
	}
	return prefix + ".track." + token
}

// Publish sends the summary as JSON and waits for the server to process it.
// nats requires a deadline for the flush, the flush timeout is used if ctx
// has none.
func (p *Publisher) Publish(ctx context.Context, summary *model.TrackSummary) error {
	data, err := oj.Marshal(summary)
	if err != nil {
		return err
	}
	subject := Subject(p.prefix, summary.Name)
	if err := p.conn.Publish(subject, data); err != nil {
		return err
	}
	p.l.Debug("published track summary",
		log.String("subject", subject),
		log.Int("bytes", len(data)))
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.flushTimeout)
		defer cancel()
	}
	return p.conn.FlushWithContext(ctx)
}
