package chainlist

import (
	"encoding/json"

	dto "chaingen/internal/adapter/storage/chainlist/dto"
	"chaingen/internal/domain/entity"

	"go.uber.org/zap"
)

// toDomainChain builds a domain record from validated required fields and the raw cosmetic ones.
// A cosmetic field that fails to decode is dropped with a warning.
func toDomainChain(
	chainID uint64,
	name string,
	currency entity.Currency,
	raw dto.ChainRaw,
	logger *zap.Logger,
) entity.ChainRecord {
	fieldLogger := logger.With(zap.Uint64("chainId", chainID))

	record := entity.ChainRecord{
		ChainID:  chainID,
		Name:     name,
		Currency: currency,
	}

	record.ShortName, _ = decodeOptional[string](raw.ShortName, "shortName", fieldLogger)
	record.Chain, _ = decodeOptional[string](raw.Chain, "chain", fieldLogger)
	record.InfoURL, _ = decodeOptional[string](raw.InfoURL, "infoURL", fieldLogger)
	record.Icon, _ = decodeOptional[string](raw.Icon, "icon", fieldLogger)
	record.Status, _ = decodeOptional[string](raw.Status, "status", fieldLogger)
	record.Faucets, _ = decodeOptional[[]string](raw.Faucets, "faucets", fieldLogger)

	if slip44, ok := decodeOptional[uint64](raw.Slip44, "slip44", fieldLogger); ok {
		record.Slip44 = &slip44
	}

	if rpcs, ok := decodeOptional[[]string](raw.RPC, "rpc", fieldLogger); ok && len(rpcs) > 0 {
		record.RPC = make([]entity.RPCURL, 0, len(rpcs))
		for _, rpcStr := range rpcs {
			rpcURL, err := entity.NewRPCURL(rpcStr)
			if err != nil {
				fieldLogger.Warn("Skipping invalid RPC URL during mapping",
					zap.String("rawUrl", rpcStr),
					zap.Error(err))
				continue
			}
			record.RPC = append(record.RPC, rpcURL)
		}
	}

	if explorers, ok := decodeOptional[[]dto.ExplorerRaw](raw.Explorers, "explorers", fieldLogger); ok && len(explorers) > 0 {
		record.Explorers = make([]entity.Explorer, len(explorers))
		for j, eRaw := range explorers {
			record.Explorers[j] = entity.Explorer{
				Name:     eRaw.Name,
				URL:      eRaw.URL,
				Standard: eRaw.Standard,
				Icon:     eRaw.Icon,
			}
		}
	}

	if features, ok := decodeOptional[[]dto.FeatureRaw](raw.Features, "features", fieldLogger); ok && len(features) > 0 {
		record.Features = make([]string, len(features))
		for j, fRaw := range features {
			record.Features[j] = fRaw.Name
		}
	}

	return record
}

// decodeOptional unmarshals a cosmetic field and reports whether a value was present and valid.
func decodeOptional[T any](raw json.RawMessage, field string, logger *zap.Logger) (T, bool) {
	var v T
	if len(raw) == 0 || string(raw) == "null" {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Warn("Dropping malformed optional field",
			zap.String("field", field),
			zap.ByteString("value", raw[:min(256, len(raw))]),
			zap.Error(err))
		var zero T
		return zero, false
	}
	return v, true
}
