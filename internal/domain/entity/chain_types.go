package entity

import (
	"fmt"
	"strings"
	"time"
)

// ParseMode selects what happens to records missing a required field.
type ParseMode string

// Known parse modes.
const (
	ParseModeStrict  ParseMode = "strict"
	ParseModeLenient ParseMode = "lenient"
)

// ParseParseMode converts a configuration string into a ParseMode.
func ParseParseMode(s string) (ParseMode, error) {
	switch ParseMode(strings.ToLower(strings.TrimSpace(s))) {
	case ParseModeStrict:
		return ParseModeStrict, nil
	case ParseModeLenient:
		return ParseModeLenient, nil
	default:
		return "", fmt.Errorf("unknown parse mode %q (want %q or %q)", s, ParseModeStrict, ParseModeLenient)
	}
}

// ChainRecord is one validated entry of the chain list.
type ChainRecord struct {
	ChainID   uint64
	Name      string
	ShortName string
	Chain     string
	Currency  Currency
	RPC       []RPCURL
	Explorers []Explorer
	Faucets   []string
	Features  []string
	InfoURL   string
	Icon      string
	Slip44    *uint64
	Status    string
}

// Currency defines the native currency details of a chain.
type Currency struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// Explorer defines details about a block explorer for a chain.
type Explorer struct {
	Name     string
	URL      string
	Standard string
	Icon     string
}

// Variant is a chain record bound to its generated identifier.
type Variant struct {
	Identifier string
	Record     ChainRecord
	// BlockTime is zero when the average block time is unknown.
	BlockTime time.Duration
}

// ChainOverride adjusts how a single chain is generated.
type ChainOverride struct {
	Identifier string        `yaml:"identifier,omitempty"`
	BlockTime  time.Duration `yaml:"blockTime,omitempty"`
}

// Overrides maps chain IDs to their generation overrides.
type Overrides struct {
	Chains map[uint64]ChainOverride `yaml:"chains"`
}

// Lookup returns the override for chainID, if any.
func (o Overrides) Lookup(chainID uint64) (ChainOverride, bool) {
	ov, ok := o.Chains[chainID]
	return ov, ok
}

// Merge returns a copy of o with every entry of other applied on top.
// Zero fields in other keep the value from o.
func (o Overrides) Merge(other Overrides) Overrides {
	out := Overrides{Chains: make(map[uint64]ChainOverride, len(o.Chains)+len(other.Chains))}
	for id, ov := range o.Chains {
		out.Chains[id] = ov
	}
	for id, ov := range other.Chains {
		cur := out.Chains[id]
		if ov.Identifier != "" {
			cur.Identifier = ov.Identifier
		}
		if ov.BlockTime != 0 {
			cur.BlockTime = ov.BlockTime
		}
		out.Chains[id] = cur
	}
	return out
}
