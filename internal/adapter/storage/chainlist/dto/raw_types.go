package chainlist_dto

import "encoding/json"

// ChainRaw is one chain list entry as received from the source.
// Required fields are pointers so that absence can be told apart from zero values.
// Cosmetic fields stay raw and are decoded one by one, so a malformed value only drops that field.
type ChainRaw struct {
	ChainID   *json.Number    `json:"chainId"`
	Name      *string         `json:"name"`
	Currency  *CurrencyRaw    `json:"nativeCurrency"`
	ShortName json.RawMessage `json:"shortName,omitempty"`
	Chain     json.RawMessage `json:"chain,omitempty"`
	RPC       json.RawMessage `json:"rpc,omitempty"`
	Explorers json.RawMessage `json:"explorers,omitempty"`
	Faucets   json.RawMessage `json:"faucets,omitempty"`
	Features  json.RawMessage `json:"features,omitempty"`
	InfoURL   json.RawMessage `json:"infoURL,omitempty"`
	Icon      json.RawMessage `json:"icon,omitempty"`
	Slip44    json.RawMessage `json:"slip44,omitempty"`
	Status    json.RawMessage `json:"status,omitempty"`
}

// CurrencyRaw defines the native currency details of a chain from raw data.
type CurrencyRaw struct {
	Name     *string      `json:"name"`
	Symbol   *string      `json:"symbol"`
	Decimals *json.Number `json:"decimals"`
}

// ExplorerRaw defines details about a block explorer for a chain from raw data.
type ExplorerRaw struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Standard string `json:"standard"`
	Icon     string `json:"icon,omitempty"`
}

// FeatureRaw defines a feature supported by a chain from raw data.
type FeatureRaw struct {
	Name string `json:"name"`
}
