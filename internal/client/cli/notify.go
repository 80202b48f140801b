package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/esgportal/internal/client/session"
)

// printNotifier shows manager notifications as they happen.
type printNotifier struct {
	out io.Writer
}

func (n printNotifier) Notify(_ context.Context, level session.Level, msg string) {
	if level == session.LevelInfo {
		fmt.Fprintln(n.out, msg)
		return
	}
	fmt.Fprintf(n.out, "[%s] %s\n", level, msg)
}
