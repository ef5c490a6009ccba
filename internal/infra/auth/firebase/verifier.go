// Package firebase implements the identity verifier adapter on top of the
// Firebase Admin SDK.
package firebase

import (
	"context"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"assetverse/config"
	"assetverse/internal/domain/entity"
	domainerrors "assetverse/internal/domain/errors"
	"assetverse/internal/domain/service"

	"github.com/pkg/errors"
)

type tokenVerifier struct {
	client *auth.Client
	logger *slog.Logger
}

// NewTokenVerifier creates a Firebase-backed token verifier.
func NewTokenVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.TokenVerifier, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is missing")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &tokenVerifier{client: client, logger: logger}, nil
}

// Verify validates the ID token and returns the verified principal. Every
// SDK rejection collapses to the domain Unauthorized error so verifier
// internals never leak to callers.
func (v *tokenVerifier) Verify(ctx context.Context, idToken string) (*entity.Principal, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.logger.Debug("ID token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized.WrapMessage("token verification failed")
	}

	email, _ := token.Claims["email"].(string)

	return &entity.Principal{
		Email:     email,
		SubjectID: token.UID,
	}, nil
}
