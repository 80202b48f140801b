package cli

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/esgportal/internal/autherr"
	"github.com/dmitrijs2005/esgportal/internal/client/config"
	"github.com/dmitrijs2005/esgportal/internal/client/session"
	"github.com/dmitrijs2005/esgportal/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
	ModeLocal   Mode = "local"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	backend    *backend
	manager    *session.Manager
	reader     *bufio.Reader
	out        io.Writer
	httpClient *http.Client

	modeMu sync.Mutex
	mode   Mode
}

// NewApp builds the backend selected by c.Mode and a session manager on
// top of it. Input is read from stdin.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	reader := bufio.NewReader(os.Stdin)
	flow := promptFlow{reader: reader, out: os.Stdout}

	var (
		b   *backend
		err error
	)
	switch c.Mode {
	case config.ModeMemory:
		b = newMemoryBackend(flow)
	default:
		b, err = newGRPCBackend(ctx, c, logger, flow)
		if err != nil {
			logger.Error(ctx, "error initializing backend", "error", err)
			return nil, err
		}
	}

	return newApp(c, logger, b, reader, os.Stdout), nil
}

func newApp(c *config.Config, logger logging.Logger, b *backend, reader *bufio.Reader, out io.Writer) *App {
	a := &App{
		config:     c,
		logger:     logger,
		backend:    b,
		reader:     reader,
		out:        out,
		httpClient: &http.Client{Timeout: time.Minute},
		mode:       ModeLocal,
	}
	a.manager = session.NewManager(b.provider, b.store, printNotifier{out: out}, logger)
	if b.pinger != nil {
		a.mode = ModeOffline
	}
	return a
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	if a.mode != mode {
		a.mode = mode
		a.logger.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

func (a *App) Mode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

// Run resumes the saved session, then serves the REPL until the user
// quits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	stop := a.manager.Start(ctx)
	defer stop()

	if err := a.backend.restore(ctx); err != nil {
		a.logger.Warn(ctx, "could not resume saved session", "error", err)
		a.say("Could not resume the saved session: %s", autherr.Message(err))
	}

	a.waitSettled(ctx, 5*time.Second)

	if a.backend.pinger != nil {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)
	}

	a.say("ESG portal CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// waitSettled blocks until the manager has processed the first
// notification, so the first prompt shows the real session.
func (a *App) waitSettled(ctx context.Context, timeout time.Duration) {
	ch, cancel := a.manager.Watch()
	defer cancel()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case s, ok := <-ch:
			if !ok || !s.IsLoading {
				return
			}
		case <-timer.C:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) close() {
	_ = a.manager.Close()
	if err := a.backend.close(); err != nil {
		a.logger.Warn(context.Background(), "error closing backend", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.manager.Snapshot().SignedIn()
}

// StartOnlineStatusWatcher pings the server every interval and flips the
// mode shown in the prompt. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.backend.pinger.Ping(pingCtx)
	cancel()

	if err != nil {
		a.setMode(ModeOffline)
	} else {
		a.setMode(ModeOnline)
	}
}
