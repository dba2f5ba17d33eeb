package tls

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/emmawebdev2005/ShopGenius/pkg/config"
	"github.com/spiffe/go-spiffe/v2/spiffetls/tlsconfig"
	"github.com/spiffe/go-spiffe/v2/workloadapi"
	"go.uber.org/zap"
)

// Source serves SPIFFE X.509 SVIDs from the local SPIRE agent. SPIRE rotates
// them on its own; the source always hands out the current one.
type Source struct {
	x509   *workloadapi.X509Source
	logger *zap.Logger
}

// NewSource connects to the workload API. It returns a nil Source when TLS
// is disabled, and a nil Source is safe to Close.
func NewSource(ctx context.Context, cfg config.TLS, logger *zap.Logger) (*Source, error) {
	if !cfg.Enabled {
		logger.Info("TLS is disabled")
		return nil, nil
	}

	source, err := workloadapi.NewX509Source(
		ctx,
		workloadapi.WithClientOptions(
			workloadapi.WithAddr(cfg.SocketPath),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create X509Source: %w", err)
	}

	logger.Info("SPIRE TLS configuration loaded",
		zap.String("socket_path", cfg.SocketPath),
		zap.Bool("mtls_enabled", true))

	return &Source{x509: source, logger: logger}, nil
}

// ServerConfig is an mTLS config accepting any SPIFFE ID from the trust domain bundle.
func (s *Source) ServerConfig() *tls.Config {
	c := tlsconfig.MTLSServerConfig(s.x509, s.x509, tlsconfig.AuthorizeAny())
	c.MinVersion = tls.VersionTLS12
	return c
}

// Watch logs certificate status every interval until ctx is done.
func (s *Source) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.logStatus()
		}
	}
}

func (s *Source) logStatus() {
	svid, err := s.x509.GetX509SVID()
	if err != nil {
		s.logger.Error("Failed to get X509 SVID", zap.Error(err))
		return
	}
	if len(svid.Certificates) == 0 {
		s.logger.Warn("X509 SVID has no certificates", zap.String("spiffe_id", svid.ID.String()))
		return
	}

	expiry := svid.Certificates[0].NotAfter
	s.logger.Info("Certificate status",
		zap.String("spiffe_id", svid.ID.String()),
		zap.Time("expiry", expiry),
		zap.Duration("ttl", time.Until(expiry)))
}

func (s *Source) Close() error {
	if s == nil || s.x509 == nil {
		return nil
	}
	return s.x509.Close()
}
