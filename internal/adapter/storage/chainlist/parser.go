package chainlist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	dto "chaingen/internal/adapter/storage/chainlist/dto"
	"chaingen/internal/domain"
	"chaingen/internal/domain/entity"
	domainService "chaingen/internal/domain/service"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Compile-time check
var _ domainService.RecordParser = (*Parser)(nil)

// Parser decodes the chain list document into validated records.
type Parser struct {
	mode   entity.ParseMode
	logger *zap.Logger
}

// NewParser creates a parser applying mode to records that miss a required field.
func NewParser(mode entity.ParseMode, logger *zap.Logger) *Parser {
	return &Parser{
		mode:   mode,
		logger: logger.Named("ChainlistParser"),
	}
}

// Parse decodes data, a JSON array of chain objects, preserving source order.
// In strict mode every invalid record is reported and nothing is returned.
// In lenient mode invalid records are logged and skipped.
func (p *Parser) Parse(data []byte) ([]entity.ChainRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: chain list must be a JSON array", domain.ErrParse)
	}

	var rawItems []json.RawMessage
	if err := json.Unmarshal(trimmed, &rawItems); err != nil {
		return nil, fmt.Errorf("%w: failed to decode chain list: %v", domain.ErrParse, err)
	}

	records := make([]entity.ChainRecord, 0, len(rawItems))
	var errs []error
	for i, item := range rawItems {
		record, recErr := p.parseRecord(i, item)
		if recErr != nil {
			if p.mode == entity.ParseModeLenient {
				p.logger.Warn("Skipping malformed chain record",
					zap.Int("index", i), zap.String("reason", recErr.Error()),
				)
				continue
			}
			errs = append(errs, recErr)
			continue
		}
		records = append(records, record)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %d malformed chain record(s): %w", domain.ErrParse, len(errs), multierr.Combine(errs...))
	}

	p.logger.Debug("Parsed chain list",
		zap.Int("entries", len(rawItems)), zap.Int("accepted", len(records)),
	)
	return records, nil
}

// parseRecord validates the required fields of one entry and maps it to a domain record.
func (p *Parser) parseRecord(index int, item json.RawMessage) (entity.ChainRecord, *domain.RecordError) {
	recErr := &domain.RecordError{Index: index}

	var raw dto.ChainRaw
	if err := json.Unmarshal(item, &raw); err != nil {
		recErr.Reason = fmt.Sprintf("is not a valid chain object: %v", err)
		return entity.ChainRecord{}, recErr
	}

	if raw.ChainID == nil {
		recErr.Reason = "missing chainId"
		return entity.ChainRecord{}, recErr
	}
	chainID, err := strconv.ParseUint(raw.ChainID.String(), 10, 64)
	if err != nil {
		recErr.Reason = fmt.Sprintf("has invalid chainId %q: must be a non-negative integer", raw.ChainID.String())
		return entity.ChainRecord{}, recErr
	}
	recErr.ChainID, recErr.HasID = chainID, true

	if raw.Name == nil || strings.TrimSpace(*raw.Name) == "" {
		recErr.Reason = "missing name"
		return entity.ChainRecord{}, recErr
	}

	currency, reason := validateCurrency(raw.Currency)
	if reason != "" {
		recErr.Reason = reason
		return entity.ChainRecord{}, recErr
	}

	return toDomainChain(chainID, strings.TrimSpace(*raw.Name), currency, raw, p.logger), nil
}

func validateCurrency(raw *dto.CurrencyRaw) (entity.Currency, string) {
	if raw == nil {
		return entity.Currency{}, "missing nativeCurrency"
	}
	if raw.Name == nil {
		return entity.Currency{}, "missing nativeCurrency.name"
	}
	if raw.Symbol == nil || strings.TrimSpace(*raw.Symbol) == "" {
		return entity.Currency{}, "missing nativeCurrency.symbol"
	}
	if raw.Decimals == nil {
		return entity.Currency{}, "missing nativeCurrency.decimals"
	}
	decimals, err := strconv.ParseUint(raw.Decimals.String(), 10, 8)
	if err != nil {
		return entity.Currency{}, fmt.Sprintf("has invalid nativeCurrency.decimals %q: must be an integer in 0..255",
			raw.Decimals.String(),
		)
	}
	return entity.Currency{
		Name:     *raw.Name,
		Symbol:   *raw.Symbol,
		Decimals: uint8(decimals),
	}, ""
}
