package cli

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"go.uber.org/zap"
)

// BrowserOpener prints an outbound URL and tries to open it in the system
// browser. It implements contracts.LinkOpener.
type BrowserOpener struct {
	out io.Writer
	log *zap.Logger
}

// NewBrowserOpener creates an opener writing to out.
func NewBrowserOpener(out io.Writer, log *zap.Logger) *BrowserOpener {
	return &BrowserOpener{out: out, log: log}
}

// Open prints the URL so it is always usable, then attempts a best-effort
// browser launch. The hand-off is one-way; nothing is awaited.
func (b *BrowserOpener) Open(url string) error {
	fmt.Fprintln(b.out, url)

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}
	b.log.Debug("opened checkout link", zap.String("url", url))
	return nil
}
