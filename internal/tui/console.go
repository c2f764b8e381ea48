// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
)

const maxLineSize = 1 << 20

// ErrLineTooLong is returned by [Console.ReadLine] for a line longer than
// the console accepts. The line is discarded and reading can continue.
var ErrLineTooLong = errors.New("input line too long")

type lineResult struct {
	text string
	err  error
}

// Console reads input one line at a time. Reads are served by a single
// goroutine started on first use so that a blocked read can be abandoned
// when the context is canceled.
type Console struct {
	in    io.Reader
	once  sync.Once
	lines chan lineResult

	// err is the terminal read error. It is set before lines is closed.
	err error
}

// NewConsole returns a Console reading from in.
func NewConsole(in io.Reader) *Console {
	return &Console{in: in, lines: make(chan lineResult)}
}

// ReadLine returns the next input line without its line terminator.
// It returns io.EOF at end of input and ctx.Err() when ctx is done first.
// Once input has ended every call returns the same terminal error.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.once.Do(func() { go c.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-c.lines:
		if !ok {
			return "", c.err
		}
		return res.text, res.err
	}
}

func (c *Console) scan() {
	defer close(c.lines)

	reader := bufio.NewReader(c.in)
	for {
		line, err := readLine(reader)
		switch {
		case errors.Is(err, ErrLineTooLong):
			c.lines <- lineResult{err: err}
		case err != nil:
			c.err = err
			return
		default:
			c.lines <- lineResult{text: line}
		}
	}
}

// readLine reads up to the next newline. An unterminated last line is
// returned as is; io.EOF is only reported when no bytes remain. Lines over
// maxLineSize are consumed up to their newline and reported as
// [ErrLineTooLong].
func readLine(r *bufio.Reader) (string, error) {
	var (
		buf     []byte
		tooLong bool
	)

	for {
		chunk, err := r.ReadSlice('\n')
		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > maxLineSize+len("\r\n") {
				tooLong, buf = true, nil
			}
		}

		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF) && (len(buf) > 0 || tooLong):
		case err != nil:
			return "", err
		}

		line := bytes.TrimSuffix(bytes.TrimSuffix(buf, []byte("\n")), []byte("\r"))
		if tooLong || len(line) > maxLineSize {
			return "", ErrLineTooLong
		}
		return string(line), nil
	}
}
