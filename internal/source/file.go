// Dimension sources for the command line.
package source

import (
	"bufio"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/dalibo/xprod/internal/product"
)

// File reads one value per line, each time the dimension is opened.
//
// Blank lines and lines starting with # are skipped. Values are trimmed.
// Opening is retried up to attempts times on transient errors.
func File(path string, attempts uint) product.Sequence[string] {
	if attempts == 0 {
		attempts = 1
	}
	return product.SequenceFunc[string](func() (product.Cursor[string], error) {
		var fo *os.File
		err := retry.Do(
			func() (err error) {
				fo, err = os.Open(path)
				return
			},
			retry.Attempts(attempts),
			retry.Delay(10*time.Millisecond),
			retry.MaxDelay(time.Second),
			retry.RetryIf(IsErrorRecoverable),
			retry.OnRetry(LogRetryError),
			retry.LastErrorOnly(true),
		)
		if err != nil {
			return nil, err
		}
		return &lineCursor{file: fo, scanner: bufio.NewScanner(fo)}, nil
	})
}

// Implements retry.RetryIfFunc
func IsErrorRecoverable(err error) bool {
	// Retrying don't create the file nor fix permissions.
	return !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrPermission)
}

// Implements retry.OnRetryFunc
func LogRetryError(n uint, err error) {
	slog.Debug("Retrying.", "err", err.Error(), "attempt", n)
}

type lineCursor struct {
	file    *os.File
	scanner *bufio.Scanner
	value   string
	err     error
}

func (c *lineCursor) Next() bool {
	if c.file == nil {
		return false
	}
	for c.scanner.Scan() {
		line := strings.TrimSpace(c.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c.value = line
		return true
	}
	c.value = ""
	c.err = c.scanner.Err()
	_ = c.Close()
	return false
}

func (c *lineCursor) Value() string {
	return c.value
}

func (c *lineCursor) Err() error {
	return c.err
}

func (c *lineCursor) Close() error {
	if c.file == nil {
		return nil
	}
	err := c.file.Close()
	c.file = nil
	return err
}
