package vault

import (
	"fmt"
	"io"
)

// Notifier surfaces fire-and-forget text notices to the user.
type Notifier interface {
	Notify(message string)
}

// WriterNotifier prints notices to a writer, one per line.
type WriterNotifier struct {
	w io.Writer
}

// NewWriterNotifier creates a notifier backed by w.
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(message string) {
	fmt.Fprintln(n.w, message)
}
