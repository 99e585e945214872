package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const (
	successColor = "\x1b[32m"
	defaultColor = "\x1b[0m"
)

// ProgressIndicator renders a terminal spinner next to a status message while
// a long running operation is in progress.
type ProgressIndicator struct {
	mu         sync.Mutex
	delay      time.Duration
	writer     io.Writer
	message    string
	lastOutput string
	stopChan   chan struct{}

	// StopMsg is printed once the indicator is stopped.
	StopMsg string
}

// NewProgressIndicator instantiates a new progress indicator writing to
// stderr.
func NewProgressIndicator(msg string, delay time.Duration) *ProgressIndicator {
	return &ProgressIndicator{
		delay:    delay,
		writer:   os.Stderr,
		message:  msg,
		stopChan: make(chan struct{}, 1),
	}
}

// Start starts spinning the progress indicator.
func (pi *ProgressIndicator) Start() {
	go func() {
		for {
			for _, r := range `⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏` {
				select {
				case <-pi.stopChan:
					return
				default:
					pi.mu.Lock()
					output := fmt.Sprintf("\r%s%s %c%s", pi.message, successColor, r, defaultColor)
					fmt.Fprint(pi.writer, output)
					pi.lastOutput = output
					pi.mu.Unlock()

					time.Sleep(pi.delay)
				}
			}
		}
	}()
}

// Stop stops the progress indicator and prints the stop message, if any.
func (pi *ProgressIndicator) Stop() {
	pi.mu.Lock()
	defer pi.mu.Unlock()

	pi.clear()
	if len(pi.StopMsg) > 0 {
		fmt.Fprintln(pi.writer, pi.StopMsg)
	}
	pi.stopChan <- struct{}{}
}

// clear erases the last rendered line. Caller must hold the lock.
func (pi *ProgressIndicator) clear() {
	n := utf8.RuneCountInString(pi.lastOutput)
	fmt.Fprint(pi.writer, "\r"+strings.Repeat(" ", n)+"\r")
	pi.lastOutput = ""
}
