package service

import "chaingen/internal/domain/entity"

// Renderer turns an ordered list of variants into source text.
type Renderer interface {
	// Render must return identical bytes for identical input.
	Render(pkg string, variants []entity.Variant) ([]byte, error)

	// Reserved lists identifiers the rendered source declares itself.
	Reserved() []string
}
