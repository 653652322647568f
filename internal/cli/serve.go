package cli

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cactat/cactat/internal/config"
	"github.com/cactat/cactat/internal/handlers"
	"github.com/cactat/cactat/internal/services"
	"github.com/cactat/cactat/internal/web"
)

// SubmissionsPath is where the page posts valid submissions
const SubmissionsPath = "/api/submissions"

// ServerDependencies holds all dependencies needed for the server
type ServerDependencies struct {
	ServerConfig      config.ServerConfig
	FormHandler       http.Handler
	PrivacyHandler    http.Handler
	SubmissionHandler http.Handler
	Static            fs.FS
}

// NewServerDependencies wires the page handlers and the submissions API
// around the given repository
func NewServerDependencies(cfg config.ServerConfig, repo services.SubmissionRepository) (ServerDependencies, error) {
	var deps ServerDependencies
	deps.ServerConfig = cfg

	tmpl, err := web.Templates()
	if err != nil {
		return deps, fmt.Errorf("failed to parse templates: %w", err)
	}

	page := handlers.NewFormPage(SubmissionsPath)
	deps.FormHandler = handlers.NewFormHandler(tmpl, page)
	deps.PrivacyHandler = handlers.NewPrivacyHandler(tmpl, page)
	deps.SubmissionHandler = handlers.NewSubmissionHandler(services.NewSubmissionService(repo))
	deps.Static = web.Static()

	return deps, nil
}

// RunServe starts the web server and blocks until a shutdown signal
func RunServe(deps ServerDependencies) error {
	listener, server, err := StartServer(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	timeout := deps.ServerConfig.ShutdownTimeout
	if timeout <= 0 {
		return WaitForShutdown(server, nil)
	}
	return WaitForShutdownWithTimeout(server, nil, timeout)
}

// Routes builds the request multiplexer for deps
func Routes(deps ServerDependencies) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", deps.FormHandler)
	mux.Handle("/privacy.html", deps.PrivacyHandler)
	mux.Handle(SubmissionsPath, deps.SubmissionHandler)
	mux.Handle(SubmissionsPath+"/{id}", deps.SubmissionHandler)
	if deps.Static != nil {
		mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(deps.Static))))
	}
	return mux
}

// StartServer creates and starts the HTTP server, returning the listener and server
func StartServer(deps ServerDependencies) (net.Listener, *http.Server, error) {
	addr := fmt.Sprintf(":%s", deps.ServerConfig.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	server := &http.Server{
		Handler:           Routes(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", listener.Addr().String())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return listener, server, nil
}

// WaitForShutdown waits for a shutdown signal and gracefully shuts down the server
// If shutdown channel is nil, a new channel will be created and registered with signal.Notify
func WaitForShutdown(server *http.Server, shutdown chan os.Signal) error {
	return WaitForShutdownWithTimeout(server, shutdown, 30*time.Second)
}

// WaitForShutdownWithTimeout allows specifying a custom shutdown timeout
func WaitForShutdownWithTimeout(server *http.Server, shutdown chan os.Signal, shutdownTimeout time.Duration) error {
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(shutdown)
	}

	sig := <-shutdown
	log.Printf("Received signal: %v, shutting down server...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		// http.Server.Close does not surface listener close errors, so this
		// branch only reports failures of Close itself
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	log.Println("Server stopped")
	return nil
}
