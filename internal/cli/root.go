package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if u, err := a.auth.CurrentUser(); err == nil {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return fmt.Sprintf("(%s)", a.auth.State())
}

func (a *App) Root(ctx context.Context) {
	printlnFn("EMG tracker CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
