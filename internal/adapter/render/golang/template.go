package golang

// tmplSource is the Go source template for the chain enumeration.
const tmplSource = `// Code generated by chaingen. DO NOT EDIT.

package {{.Package}}

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Chain identifies an EVM network. Its value is the network's chain ID.
type Chain uint64
{{if .Variants}}
const (
{{- range .Variants}}
	// {{.Identifier}} is {{comment .Record.Name}} (chain ID {{.Record.ChainID}}).
	{{.Identifier}} Chain = {{.Record.ChainID}}
{{- end}}
)
{{end}}
// ErrUnknownChain is returned for chain IDs without a generated variant.
var ErrUnknownChain = errors.New("chain id not supported")

// NativeCurrency is the gas and value token of a chain.
type NativeCurrency struct {
	Name     string ` + "`json:\"name\"`" + `
	Symbol   string ` + "`json:\"symbol\"`" + `
	Decimals uint8  ` + "`json:\"decimals\"`" + `
}

// Explorer is a block explorer of a chain.
type Explorer struct {
	Name     string
	URL      string
	Standard string
	Icon     string
}

// Info is the full generated metadata of a chain.
type Info struct {
	ID             uint64
	Name           string
	ShortName      string
	Slug           string
	NativeCurrency NativeCurrency
	RPCURLs        []string
	Explorers      []Explorer
	Faucets        []string
	Features       []string
	InfoURL        string
	Icon           string
	Slip44         uint64
	HasSlip44      bool
	// BlockTime is zero when the average block time is unknown.
	BlockTime time.Duration
}

// AddChainParams holds EIP-3085 wallet_addEthereumChain parameters.
type AddChainParams struct {
	ChainID           string         ` + "`json:\"chainId\"`" + `
	ChainName         string         ` + "`json:\"chainName\"`" + `
	NativeCurrency    NativeCurrency ` + "`json:\"nativeCurrency\"`" + `
	RPCURLs           []string       ` + "`json:\"rpcUrls\"`" + `
	BlockExplorerURLs []string       ` + "`json:\"blockExplorerUrls,omitempty\"`" + `
	IconURLs          []string       ` + "`json:\"iconUrls,omitempty\"`" + `
}

var all = []Chain{
{{- range .Variants}}
	{{.Identifier}},
{{- end}}
}

var infos = map[Chain]*Info{
{{- range .Variants}}
	{{.Identifier}}: {
		ID:        {{.Record.ChainID}},
		Name:      {{quote .Record.Name}},
		ShortName: {{quote .Record.ShortName}},
		Slug:      {{quote .Record.Chain}},
		NativeCurrency: NativeCurrency{
			Name:     {{quote .Record.Currency.Name}},
			Symbol:   {{quote .Record.Currency.Symbol}},
			Decimals: {{.Record.Currency.Decimals}},
		},
		RPCURLs: {{rpcs .Record.RPC}},
		Explorers: {{explorers .Record.Explorers}},
		Faucets: {{strs .Record.Faucets}},
		Features: {{strs .Record.Features}},
		InfoURL: {{quote .Record.InfoURL}},
		Icon: {{quote .Record.Icon}},
{{- with .Record.Slip44}}
		Slip44: {{deref .}},
		HasSlip44: true,
{{- end}}
{{- if .BlockTime}}
		BlockTime: {{duration .BlockTime}},
{{- end}}
	},
{{- end}}
}

// All returns every generated chain in ascending chain ID order.
func All() []Chain {
	out := make([]Chain, len(all))
	copy(out, all)
	return out
}

// FromID returns the chain with the given ID.
func FromID(id uint64) (Chain, error) {
	c := Chain(id)
	if _, ok := infos[c]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownChain, id)
	}
	return c, nil
}

// Valid reports whether c is a generated chain.
func (c Chain) Valid() bool {
	_, ok := infos[c]
	return ok
}

// ID returns the numeric chain ID.
func (c Chain) ID() uint64 {
	return uint64(c)
}

// ChainIDHex returns the chain ID as a 0x-prefixed hex string (EIP-695).
func (c Chain) ChainIDHex() string {
	return "0x" + strconv.FormatUint(uint64(c), 16)
}

// Name returns the display name, or "" for unknown chains.
func (c Chain) Name() string {
	if info, ok := infos[c]; ok {
		return info.Name
	}
	return ""
}

// String returns the display name, or Chain(<id>) for unknown chains.
func (c Chain) String() string {
	if info, ok := infos[c]; ok {
		return info.Name
	}
	return "Chain(" + strconv.FormatUint(uint64(c), 10) + ")"
}

// ShortName returns the short name of the chain.
func (c Chain) ShortName() string {
	if info, ok := infos[c]; ok {
		return info.ShortName
	}
	return ""
}

// NativeCurrency returns the name, symbol and decimals of the native currency.
func (c Chain) NativeCurrency() (name, symbol string, decimals uint8) {
	if info, ok := infos[c]; ok {
		return info.NativeCurrency.Name, info.NativeCurrency.Symbol, info.NativeCurrency.Decimals
	}
	return "", "", 0
}

// RPCURLs returns the RPC endpoints in source order.
func (c Chain) RPCURLs() []string {
	if info, ok := infos[c]; ok {
		return cloneStrings(info.RPCURLs)
	}
	return nil
}

// Explorers returns the block explorers of the chain.
func (c Chain) Explorers() []Explorer {
	if info, ok := infos[c]; ok && len(info.Explorers) > 0 {
		out := make([]Explorer, len(info.Explorers))
		copy(out, info.Explorers)
		return out
	}
	return nil
}

// Faucets returns the faucet URLs of the chain.
func (c Chain) Faucets() []string {
	if info, ok := infos[c]; ok {
		return cloneStrings(info.Faucets)
	}
	return nil
}

// Features returns the names of the features the chain supports.
func (c Chain) Features() []string {
	if info, ok := infos[c]; ok {
		return cloneStrings(info.Features)
	}
	return nil
}

// InfoURL returns the information URL of the chain.
func (c Chain) InfoURL() string {
	if info, ok := infos[c]; ok {
		return info.InfoURL
	}
	return ""
}

// Slip44 returns the SLIP-44 coin type, if the chain has one.
func (c Chain) Slip44() (uint64, bool) {
	if info, ok := infos[c]; ok && info.HasSlip44 {
		return info.Slip44, true
	}
	return 0, false
}

// BlockTime returns the average block time, if known.
func (c Chain) BlockTime() (time.Duration, bool) {
	if info, ok := infos[c]; ok && info.BlockTime > 0 {
		return info.BlockTime, true
	}
	return 0, false
}

// BlocksIn returns how many blocks are produced in d, if the block time is known.
func (c Chain) BlocksIn(d time.Duration) (float64, bool) {
	bt, ok := c.BlockTime()
	if !ok {
		return 0, false
	}
	return float64(d) / float64(bt), true
}

// Info returns a copy of the generated metadata of the chain.
func (c Chain) Info() (Info, bool) {
	info, ok := infos[c]
	if !ok {
		return Info{}, false
	}
	out := *info
	out.RPCURLs = cloneStrings(info.RPCURLs)
	out.Explorers = c.Explorers()
	out.Faucets = cloneStrings(info.Faucets)
	out.Features = cloneStrings(info.Features)
	return out, true
}

// AddChainParams returns the EIP-3085 parameters for adding the chain to a wallet.
// Only explorers following EIP-3091, or declaring no standard, are included.
// IconURLs holds the chain icon, when it has one.
func (c Chain) AddChainParams() (AddChainParams, bool) {
	info, ok := infos[c]
	if !ok {
		return AddChainParams{}, false
	}
	params := AddChainParams{
		ChainID:        c.ChainIDHex(),
		ChainName:      info.Name,
		NativeCurrency: info.NativeCurrency,
		RPCURLs:        cloneStrings(info.RPCURLs),
	}
	for _, e := range info.Explorers {
		if e.Standard == "EIP3091" || e.Standard == "" {
			params.BlockExplorerURLs = append(params.BlockExplorerURLs, e.URL)
		}
	}
	if info.Icon != "" {
		params.IconURLs = []string{info.Icon}
	}
	return params, true
}

// UnmarshalJSON accepts a chain ID as a JSON number, a decimal string or a 0x-prefixed hex string.
func (c *Chain) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	var (
		id  uint64
		err error
	)
	if hex, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		id, err = strconv.ParseUint(hex, 16, 64)
	} else {
		id, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil {
		return fmt.Errorf("invalid chain id %s: %w", data, err)
	}
	chain, err := FromID(id)
	if err != nil {
		return err
	}
	*c = chain
	return nil
}

func cloneStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
`
