package application

import (
	"context"
	"fmt"

	"chaingen/internal/domain"
	"chaingen/internal/domain/entity"
	domainRepo "chaingen/internal/domain/repository"
	domainService "chaingen/internal/domain/service"

	"go.uber.org/zap"
)

// Generator turns a raw chain list document into enumeration source.
type Generator struct {
	parser    domainService.RecordParser
	renderer  domainService.Renderer
	overrides domainRepo.OverrideRepository
	pkg       string
	logger    *zap.Logger
}

// NewGenerator creates a generator emitting package pkg.
func NewGenerator(
	parser domainService.RecordParser,
	renderer domainService.Renderer,
	overrides domainRepo.OverrideRepository,
	pkg string,
	logger *zap.Logger,
) *Generator {
	return &Generator{
		parser:    parser,
		renderer:  renderer,
		overrides: overrides,
		pkg:       pkg,
		logger:    logger.Named("Generator"),
	}
}

// Generate parses data and renders the variants. It returns the source and the variant count.
func (g *Generator) Generate(ctx context.Context, data []byte) ([]byte, int, error) {
	records, err := g.parser.Parse(data)
	if err != nil {
		return nil, 0, err
	}
	unique := dedupe(records, g.logger)

	overrides := entity.Overrides{}
	if g.overrides != nil {
		overrides, err = g.overrides.Load(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: failed to load overrides: %w", domain.ErrGeneration, err)
		}
	}

	variants, err := buildVariants(unique, overrides, g.renderer.Reserved())
	if err != nil {
		return nil, 0, err
	}

	src, err := g.renderer.Render(g.pkg, variants)
	if err != nil {
		return nil, 0, err
	}

	g.logger.Info("Generated chain enumeration",
		zap.String("package", g.pkg),
		zap.Int("records", len(records)),
		zap.Int("variants", len(variants)),
	)
	return src, len(variants), nil
}
