package application

import (
	"context"
	"fmt"

	"chaingen/internal/application/port"
	"chaingen/internal/domain"
	domainRepo "chaingen/internal/domain/repository"

	"go.uber.org/zap"
)

// Compile-time check to ensure service implements ChainGenerator
var _ port.ChainGenerator = (*service)(nil)

// service implements port.ChainGenerator by chaining the fetcher, generator and writer.
type service struct {
	fetcher   *Fetcher
	generator *Generator
	writer    domainRepo.ArtifactWriter
	output    string
	logger    *zap.Logger
}

// NewService creates the generation pipeline writing to output.
func NewService(
	fetcher *Fetcher,
	generator *Generator,
	writer domainRepo.ArtifactWriter,
	output string,
	logger *zap.Logger,
) port.ChainGenerator {
	return &service{
		fetcher:   fetcher,
		generator: generator,
		writer:    writer,
		output:    output,
		logger:    logger.Named("ChainGenerator"),
	}
}

// Run executes one fetch-generate-write cycle. Nothing is written unless generation succeeds.
func (s *service) Run(ctx context.Context) (port.Result, error) {
	data, source, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return port.Result{}, err
	}
	s.logger.Debug("Chain list obtained", zap.String("source", source), zap.Int("bytes", len(data)))

	src, count, err := s.generator.Generate(ctx, data)
	if err != nil {
		return port.Result{}, err
	}

	changed, err := s.writer.Write(ctx, s.output, src)
	if err != nil {
		return port.Result{}, fmt.Errorf("%w: failed to write %s: %w", domain.ErrGeneration, s.output, err)
	}

	s.logger.Info("Chain enumeration written",
		zap.String("output", s.output), zap.Int("variants", count), zap.Bool("changed", changed),
	)
	return port.Result{
		Source:   source,
		Output:   s.output,
		Variants: count,
		Changed:  changed,
	}, nil
}
