// ABOUTME: Claim lookup repository; currently a deterministic local stub
// ABOUTME: Intended to front an external fact-check index once one is selected
package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"credibility-checker/domain"
)

//go:generate mockgen -source=factcheck_repository.go -destination=../test/mocks/repository_mocks.go -package=mocks

// ClaimLookupRepository resolves free-text claims against known fact checks.
type ClaimLookupRepository interface {
	LookupClaim(ctx context.Context, claim string) (*domain.ClaimLookupResult, error)
}

type claimLookupStub struct {
	logger *slog.Logger
}

// NewClaimLookupStub returns a repository that acknowledges every claim
// without verifying it. TODO: replace with the Google Fact Check Tools API
// client once an API key is provisioned.
func NewClaimLookupStub(logger *slog.Logger) ClaimLookupRepository {
	return &claimLookupStub{logger: logger}
}

func (r *claimLookupStub) LookupClaim(ctx context.Context, claim string) (*domain.ClaimLookupResult, error) {
	r.logger.Info("claim lookup requested", slog.Int("claim_length", len(claim)))

	return &domain.ClaimLookupResult{
		ID:        uuid.NewString(),
		Claim:     claim,
		Verified:  false,
		Verdict:   "unverified",
		Message:   "Fact-check lookup is not yet available. The claim was recorded but not verified.",
		CheckedAt: time.Now().UTC(),
	}, nil
}
