package application

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"chaingen/internal/domain"
	"chaingen/internal/domain/entity"
	"chaingen/internal/pkg/ident"

	"go.uber.org/zap"
)

// dedupe keeps the first record for every chain ID, preserving input order.
func dedupe(records []entity.ChainRecord, logger *zap.Logger) []entity.ChainRecord {
	seen := make(map[uint64]int, len(records))
	out := make([]entity.ChainRecord, 0, len(records))
	for _, r := range records {
		if first, dup := seen[r.ChainID]; dup {
			logger.Warn("Dropping duplicate chain id",
				zap.Uint64("chainId", r.ChainID),
				zap.String("name", r.Name),
				zap.String("keptName", out[first].Name),
			)
			continue
		}
		seen[r.ChainID] = len(out)
		out = append(out, r)
	}
	return out
}

// buildVariants names every record and returns the variants in ascending chain ID order.
// Records must have unique chain IDs.
//
// Override identifiers are claimed first. The remaining chains take their sanitized
// name in ascending ID order; a name that is already taken or reserved gets the
// chain ID appended, or "_" and the chain ID when that is taken as well.
func buildVariants(records []entity.ChainRecord, overrides entity.Overrides, reserved []string) ([]entity.Variant, error) {
	sorted := slices.Clone(records)
	slices.SortFunc(sorted, func(a, b entity.ChainRecord) int {
		return cmp.Compare(a.ChainID, b.ChainID)
	})

	isReserved := make(map[string]bool, len(reserved))
	for _, name := range reserved {
		isReserved[name] = true
	}
	taken := make(map[string]uint64, len(sorted))
	variants := make([]entity.Variant, len(sorted))

	for i, r := range sorted {
		variants[i] = entity.Variant{Record: r}
		ov, ok := overrides.Lookup(r.ChainID)
		if !ok {
			continue
		}
		variants[i].BlockTime = ov.BlockTime
		if ov.Identifier == "" {
			continue
		}
		if !ident.IsExported(ov.Identifier) {
			return nil, fmt.Errorf("%w: override identifier %q for chain id %d is not an exported Go identifier",
				domain.ErrGeneration, ov.Identifier, r.ChainID,
			)
		}
		if isReserved[ov.Identifier] {
			return nil, fmt.Errorf("%w: override identifier %q for chain id %d is reserved",
				domain.ErrGeneration, ov.Identifier, r.ChainID,
			)
		}
		if owner, dup := taken[ov.Identifier]; dup {
			return nil, fmt.Errorf("%w: override identifier %q used by chain ids %d and %d",
				domain.ErrGeneration, ov.Identifier, owner, r.ChainID,
			)
		}
		taken[ov.Identifier] = r.ChainID
		variants[i].Identifier = ov.Identifier
	}

	for i := range variants {
		if variants[i].Identifier != "" {
			continue
		}
		id := variants[i].Record.ChainID
		name := ident.ForChain(variants[i].Record.Name, id)
		if _, dup := taken[name]; dup || isReserved[name] {
			suffixed, err := suffixName(name, id, taken)
			if err != nil {
				return nil, err
			}
			name = suffixed
		}
		taken[name] = id
		variants[i].Identifier = name
	}

	return variants, nil
}

// suffixName disambiguates name with id. Sanitized names never contain '_', so
// name_id can only be taken by an override identifier.
func suffixName(name string, id uint64, taken map[string]uint64) (string, error) {
	idStr := strconv.FormatUint(id, 10)
	for _, candidate := range []string{name + idStr, name + "_" + idStr} {
		if _, dup := taken[candidate]; !dup {
			return candidate, nil
		}
	}
	owner := taken[name+"_"+idStr]
	return "", fmt.Errorf("%w: identifier %q for chain id %d collides with chain id %d",
		domain.ErrGeneration, name+"_"+idStr, id, owner,
	)
}
