package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	benefithandler "welfare/internal/benefits/handler"
	benefitservice "welfare/internal/benefits/service"
	certhandler "welfare/internal/certificates/handler"
	certservice "welfare/internal/certificates/service"
	citizenhandler "welfare/internal/citizens/handler"
	citizenservice "welfare/internal/citizens/service"
	"welfare/internal/eventlog"
	jwttoken "welfare/internal/jwt_token"
	"welfare/internal/platform/config"
	"welfare/internal/platform/health"
	"welfare/internal/platform/logger"
	"welfare/internal/platform/metrics"
	reporthandler "welfare/internal/reports/handler"
	reportservice "welfare/internal/reports/service"
	"welfare/internal/seeder"
	httptransport "welfare/internal/transport/http"
	userhandler "welfare/internal/users/handler"
	userservice "welfare/internal/users/service"
	"welfare/pkg/platform/middleware/metadata"
	"welfare/pkg/platform/middleware/request"
	"welfare/pkg/platform/tracing"
	"welfare/pkg/secrets"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "welfare:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("initializing welfare registry",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
	)

	registry := prometheus.NewRegistry()
	appMetrics := metrics.New(registry)
	checks := health.New(cfg.Environment)

	in, err := openInfra(ctx, cfg, log, registry, appMetrics, checks)
	if err != nil {
		return err
	}
	defer in.close()
	go in.recordStats(ctx, appMetrics)

	events := in.eventLogger(cfg, log, appMetrics)
	defer events.Close()

	st := in.stores
	tokens := jwttoken.NewJWTService(cfg.SessionSigningKey, jwttoken.Issuer, cfg.SessionTTL)

	citizens := citizenservice.New(st.citizens, st.regions,
		citizenservice.WithLogger(log),
		citizenservice.WithMetrics(appMetrics),
		citizenservice.WithTx(st.tx),
		citizenservice.WithEventLogger(events),
	)
	benefits := benefitservice.New(st.categories, st.grants, st.citizens,
		benefitservice.WithLogger(log),
		benefitservice.WithMetrics(appMetrics),
		benefitservice.WithTx(st.tx),
		benefitservice.WithEventLogger(events),
	)
	certificates := certservice.New(st.certificates, st.citizens,
		certservice.WithLogger(log),
		certservice.WithMetrics(appMetrics),
		certservice.WithTx(st.tx),
		certservice.WithEventLogger(events),
	)
	guard, err := in.loginGuard(cfg, log)
	if err != nil {
		return err
	}
	users := userservice.New(st.users, secrets.NewHasher(0),
		userservice.WithLogger(log),
		userservice.WithMetrics(appMetrics),
		userservice.WithTx(st.tx),
		userservice.WithEventLogger(events),
		userservice.WithSessions(tokens, in.revocations),
		userservice.WithLoginGuard(guard),
	)
	eventQueries := eventlog.NewService(st.events)
	reports := reportservice.New(citizens, benefits, certificates, eventQueries,
		reportservice.WithLogger(log),
		reportservice.WithMetrics(appMetrics),
		reportservice.WithEventLogger(events),
		reportservice.WithTracer(tracing.NewOTel(nil)),
	)

	if admin := cfg.BootstrapAdmin; admin.Username != "" {
		created, err := users.EnsureAdmin(ctx, admin.Username, admin.Password)
		if err != nil {
			return fmt.Errorf("bootstrap administrator: %w", err)
		}
		if created {
			log.Info("bootstrap administrator created", "username", admin.Username)
		}
	}

	if cfg.SeedDemoData {
		_, err := seeder.New(seeder.Services{
			Regions:      citizens,
			Citizens:     citizens,
			Categories:   benefits,
			Grants:       benefits,
			Certificates: certificates,
			Users:        users,
		}, log).SeedAll(ctx)
		if err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	}

	trusted, err := metadata.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		return err
	}
	router := httptransport.NewRouter(httptransport.Config{
		Logger:      log,
		Tokens:      tokens,
		Revocations: in.revocations,
		Metadata:    metadata.NewMiddleware(&metadata.Config{TrustedProxies: trusted}),
		HTTPMetrics: request.NewMetrics(registry),
		Gatherer:    registry,
	}, httptransport.Routes{
		Health:       checks,
		Users:        userhandler.New(users, log),
		Citizens:     citizenhandler.New(citizens, log),
		Benefits:     benefithandler.New(benefits, log).WithExpiryWindow(cfg.ExpiringWindowDays),
		Certificates: certhandler.New(certificates, log),
		Reports:      reporthandler.New(reports, log),
		Events:       eventlog.NewHandler(eventQueries, log),
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info("server stopped")
	return nil
}
