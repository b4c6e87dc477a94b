package samples

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	errors2 "github.com/savid/latstats/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Set holds latency samples in milliseconds, in input order.
type Set []float64

type options struct {
	attempts uint
	delay    time.Duration
}

type Option func(*options)

// WithOpenRetry retries opening a file that does not exist yet. attempts
// counts the first try, so 1 disables retrying.
func WithOpenRetry(attempts uint, delay time.Duration) Option {
	return func(o *options) {
		if attempts > 0 {
			o.attempts = attempts
		}

		o.delay = delay
	}
}

// Load reads one sample per line from the file at path.
func Load(ctx context.Context, path string, opts ...Option) (Set, error) {
	if path == "" {
		return nil, errors2.NewUsageError("enter filename as the first argument")
	}

	o := options{attempts: 1, delay: 500 * time.Millisecond}
	for _, opt := range opts {
		opt(&o)
	}

	log := logrus.WithField("path", path)

	var f *os.File

	err := retry.Do(
		func() error {
			var err error
			f, err = os.Open(path)

			return err
		},
		retry.Context(ctx),
		retry.Attempts(o.attempts),
		retry.Delay(o.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, fs.ErrNotExist)
		}),
		retry.OnRetry(func(n uint, err error) {
			log.WithError(err).
				WithField("attempt", n+1).
				Debug("Sample file not available, retrying")
		}),
	)
	if err != nil {
		return nil, errors2.NewIOError(path, err)
	}

	defer f.Close()

	set, err := Parse(f)
	if err != nil {
		var pe *errors2.ParseError
		if errors.As(err, &pe) {
			return nil, err
		}

		return nil, errors2.NewIOError(path, err)
	}

	log.WithField("count", len(set)).Debug("Loaded samples")

	return set, nil
}

// Parse reads newline-delimited samples from r. Surrounding whitespace is
// ignored but blank lines are rejected.
func Parse(r io.Reader) (Set, error) {
	set := make(Set, 0, 1024)
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++

		text := scanner.Text()

		// Out-of-range values saturate to ±Inf rather than failing.
		v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, errors2.NewParseError(line, text, err)
		}

		set = append(set, v)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return set, nil
}
