package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-board/internal/config"
	"github.com/vancomm/minesweeper-board/internal/middleware"
)

type App struct {
	log    *logrus.Logger
	router *http.ServeMux
	board  *config.Board
	addr   string
}

func New(log *logrus.Logger, board *config.Board, addr string) *App {
	app := &App{
		log:    log,
		router: http.NewServeMux(),
		board:  board,
		addr:   addr,
	}

	app.loadRoutes()

	return app
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Logging(a.log),
		middleware.Cors(),
	)
}

// Start serves until ctx is cancelled, then shuts the server down.
func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:    a.addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.log.Infof("ready to serve @ %s", a.addr)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
