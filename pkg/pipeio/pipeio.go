// Package pipeio bridges a WebSocket stream with local I/O. It is used by
// the CLI to connect the resulting stream to the terminal.
package pipeio

import (
	"fmt"
	"io"
	"sync"
)

// Pipe copies bidirectionally between the two endpoints until one side
// fails or closes, then closes both. Copy errors are reported through
// logfunc; Pipe itself returns when both directions have settled.
func Pipe(rwc1 io.ReadWriteCloser, rwc2 io.ReadWriteCloser, logfunc func(error)) {
	var wg sync.WaitGroup
	var o sync.Once

	close := func() {
		rwc1.Close()
		rwc2.Close()

		wg.Done()
	}
	wg.Add(1)

	go func() {
		if _, err := io.Copy(rwc1, rwc2); err != nil {
			logfunc(fmt.Errorf("io.Copy(rwc1, rwc2): %w", err))
		}

		o.Do(close)
	}()

	go func() {
		if _, err := io.Copy(rwc2, rwc1); err != nil {
			logfunc(fmt.Errorf("io.Copy(rwc2, rwc1): %w", err))
		}

		o.Do(close)
	}()

	wg.Wait()
}
