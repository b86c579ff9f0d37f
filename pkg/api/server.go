package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hellokube/hellokube/pkg/logging"
	"github.com/hellokube/hellokube/pkg/serializer"
	"github.com/hellokube/hellokube/pkg/server"
)

const (
	name           = "hellod"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/hellokube/hellokube/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the responder and blocks until shutdown.
// It configures logging, wires signal handling, and handles graceful
// shutdown. Returns an error if the server fails to start or encounters a
// fatal error (e.g., the port is already bound).
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(map[string]http.HandlerFunc{
			"/version": handleVersion,
		}),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// VersionResponse reports the build identity of the running daemon.
type VersionResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// handleVersion answers GET /version with the build information injected
// at link time.
func handleVersion(w http.ResponseWriter, _ *http.Request) {
	serializer.RespondJSON(w, http.StatusOK, VersionResponse{
		Name:    name,
		Version: version,
		Commit:  commit,
		Date:    date,
	})
}
