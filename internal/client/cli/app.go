package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/gophdrop/internal/client/client"
	"github.com/dmitrijs2005/gophdrop/internal/client/config"
	"github.com/dmitrijs2005/gophdrop/internal/client/confirm"
	"github.com/dmitrijs2005/gophdrop/internal/client/session"
	"github.com/dmitrijs2005/gophdrop/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const pingTimeout = 3 * time.Second

type App struct {
	config  *config.Config
	api     client.Client
	session *session.Session
	confirm *confirm.Flow
	metrics prometheus.Gatherer
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer
	tty    bool

	mu   sync.Mutex
	mode Mode
}

// NewApp wires the REST client, session and confirmation flow for c.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	reg := prometheus.NewRegistry()
	m, err := client.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	api, err := client.NewHTTPClient(c.APIBaseURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log),
		client.WithMetrics(m),
	)
	if err != nil {
		return nil, err
	}

	a := newApp(c, api, reg, log, os.Stdin, os.Stdout)
	a.tty = isTerminal(int(os.Stdout.Fd()))
	return a, nil
}

func newApp(c *config.Config, api client.Client, metrics prometheus.Gatherer, log logging.Logger, in io.Reader, out io.Writer) *App {
	s := session.New(api, log)
	return &App{
		config:  c,
		api:     api,
		session: s,
		confirm: confirm.NewFlow(s),
		metrics: metrics,
		log:     log.With("component", "cli"),
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		a.session.Close()
		_ = a.api.Close()
	}()
	a.Root(ctx)
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

// checkOnline pings the API once and updates the mode.
func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := a.api.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher probes the API every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		a.log.Warn(ctx, "online status watcher disabled", "interval", interval)
		return
	}
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
