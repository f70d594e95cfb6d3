// roomcrawl-server serves the game over SSH. Every connection plays its own
// independent run.
//
//	go build -o roomcrawl-server ./cmd/server
//	./roomcrawl-server [-config roomcrawl.yaml] [-addr :2222] [-key roomcrawl_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomcrawl/internal/config"
	"roomcrawl/internal/game"
	"roomcrawl/internal/logger"
	internalssh "roomcrawl/internal/ssh"

	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (defaults apply when empty)")
	addr := flag.String("addr", "", "Listen address, overrides server.addr")
	keyFile := flag.String("key", "", "PEM host key path, overrides server.host_key (generated if absent)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *keyFile != "" {
		cfg.Server.HostKey = *keyFile
	}

	log, closer, err := logger.New(cfg.Log, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

// serve runs the SSH server until ctx is cancelled, then shuts it down.
func serve(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	signer, err := loadOrCreateHostKey(cfg.Server.HostKey, log)
	if err != nil {
		return err
	}

	srv := &gossh.Server{
		Addr:    cfg.Server.Addr,
		Handler: sessionHandler(cfg.Game, log),
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: anyone who can reach the port may play.
		HostSigners: []gossh.Signer{signer},
	}

	ln, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("addr", ln.Addr().String()).Info("roomcrawl SSH server listening")
		err := srv.Serve(ln)
		switch {
		case err == nil, errors.Is(err, gossh.ErrServerClosed):
			return nil
		case errors.Is(err, net.ErrClosed) && ctx.Err() != nil:
			// Shutdown closed the listener before Serve registered it.
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		// Serve may not have registered the listener yet.
		defer ln.Close()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// sessionHandler plays one run per connection. It blocks for the lifetime of
// the game so the SSH session stays open.
func sessionHandler(cfg config.GameConfig, log *logrus.Logger) gossh.Handler {
	return func(s gossh.Session) {
		sessLog := log.WithFields(logrus.Fields{
			"session": uuid.NewString(),
			"user":    s.User(),
			"remote":  s.RemoteAddr().String(),
		})
		sessLog.Info("player connected")
		defer sessLog.Info("player disconnected")

		screen, err := internalssh.NewScreen(s, sessLog)
		if err != nil {
			sessLog.WithError(err).Warn("cannot open screen")
			fmt.Fprintf(s, "%v\n", err)
			_ = s.Exit(1)
			return
		}

		g := game.New(screen, game.SettingsFrom(cfg, sessLog))
		if err := g.Run(s.Context()); err != nil {
			sessLog.WithError(err).Error("game ended with error")
		}
		_ = s.Exit(0)
	}
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log logrus.FieldLogger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.WithField("path", path).Info("loaded host key")
			return signer, nil
		}
		log.WithField("path", path).Warn("host key unreadable, generating a new one")
	}

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	block, err := xssh.MarshalPrivateKey(key, "roomcrawl server")
	if err != nil {
		return nil, fmt.Errorf("marshal host key: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		// The key still works for this process.
		log.WithError(err).WithField("path", path).Warn("could not persist host key")
	} else {
		log.WithField("path", path).Info("generated new ed25519 host key")
	}
	return signer, nil
}
