package service

import "chaingen/internal/domain/entity"

// RecordParser decodes a raw chain list document into records in source order.
type RecordParser interface {
	Parse(data []byte) ([]entity.ChainRecord, error)
}
