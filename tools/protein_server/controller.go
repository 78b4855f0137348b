package protein_server

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"prot_classifier_go/config"
	pc "prot_classifier_go/tools/protein_classifier"
)

// Run starts the web form and JSON API and blocks until SIGINT or SIGTERM.
func Run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(out)
	addr := fs.String("addr", "", "Listen address (default \":\" + PORT)")
	logLevel := fs.String("log_level", "", "debug, info, warn or error; overrides PROTCLASS_LOG_LEVEL")
	model := pc.RegisterModelFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unrecognized arguments: %v (use -h to view valid flags)", fs.Args())
	}

	settings, err := config.Load()
	if err != nil {
		return err
	}
	if err := model.Apply(settings); err != nil {
		return err
	}
	if *addr != "" {
		settings.ListenAddr = *addr
	}
	if *logLevel != "" {
		if settings.LogLevel, err = config.ParseLogLevel(*logLevel); err != nil {
			return err
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.LogLevel}))
	slog.SetDefault(logger)

	svc, arts, err := pc.LoadService(settings)
	if err != nil {
		return err
	}
	defer arts.Close()
	logger.Info("model loaded",
		"bundle", settings.BundlePath,
		"labels", settings.LabelsPath,
		"backend", arts.Backend,
		"classes", arts.Labels.Len(),
		"features", arts.Vectorizer.Dim(),
	)

	if settings.LogLevel > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := NewServer(svc, arts.Labels.Classes(), logger).Router()
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	srv := &http.Server{
		Addr:         settings.ListenAddr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	ln, err := net.Listen("tcp", settings.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", settings.ListenAddr, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting protein classification server", "addr", ln.Addr().String())
	return serve(ctx, srv, ln, logger)
}

// serve runs srv on ln until ctx is done, then shuts it down gracefully.
// It returns only after in-flight requests have drained.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, logger *slog.Logger) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		logger.Info("shutting down")

		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			logger.Error("shutdown error", "err", err)
		}
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	<-done
	return nil
}
