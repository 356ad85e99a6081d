package chainlist

import (
	"errors"
	"testing"

	"chaingen/internal/domain"
	"chaingen/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const twoChains = `[
  {
    "name": "Ethereum Mainnet",
    "chain": "ETH",
    "rpc": ["https://eth.llamarpc.com", "wss://ethereum.example.org/ws", "not a url", "https://mainnet.infura.io/v3/${INFURA_API_KEY}"],
    "features": [{"name": "EIP155"}, {"name": "EIP1559"}],
    "faucets": [],
    "nativeCurrency": {"name": "Ether", "symbol": "ETH", "decimals": 18},
    "infoURL": "https://ethereum.org",
    "shortName": "eth",
    "chainId": 1,
    "networkId": 1,
    "slip44": 60,
    "explorers": [{"name": "etherscan", "url": "https://etherscan.io", "standard": "EIP3091"}]
  },
  {
    "name": "Gnosis",
    "chainId": 100,
    "shortName": 42,
    "rpc": "https://rpc.gnosischain.com",
    "nativeCurrency": {"name": "xDAI", "symbol": "XDAI", "decimals": 18}
  }
]`

func TestParser_Parse(t *testing.T) {
	p := NewParser(entity.ParseModeStrict, zap.NewNop())

	records, err := p.Parse([]byte(twoChains))
	require.NoError(t, err)
	require.Len(t, records, 2)

	eth := records[0]
	assert.Equal(t, uint64(1), eth.ChainID)
	assert.Equal(t, "Ethereum Mainnet", eth.Name)
	assert.Equal(t, "eth", eth.ShortName)
	assert.Equal(t, "ETH", eth.Chain)
	assert.Equal(t, entity.Currency{Name: "Ether", Symbol: "ETH", Decimals: 18}, eth.Currency)
	assert.Equal(t, []string{"EIP155", "EIP1559"}, eth.Features)
	assert.Equal(t, "https://ethereum.org", eth.InfoURL)
	require.NotNil(t, eth.Slip44)
	assert.Equal(t, uint64(60), *eth.Slip44)
	require.Len(t, eth.Explorers, 1)
	assert.Equal(t, "EIP3091", eth.Explorers[0].Standard)

	rpcs := make([]string, len(eth.RPC))
	for i, u := range eth.RPC {
		rpcs[i] = u.String()
	}
	assert.Equal(t, []string{
		"https://eth.llamarpc.com",
		"wss://ethereum.example.org/ws",
		"https://mainnet.infura.io/v3/${INFURA_API_KEY}",
	}, rpcs, "invalid URLs are skipped and order is kept")

	gnosis := records[1]
	assert.Equal(t, uint64(100), gnosis.ChainID)
	assert.Empty(t, gnosis.ShortName, "malformed cosmetic field is dropped")
	assert.Empty(t, gnosis.RPC)
	assert.Nil(t, gnosis.Slip44)
}

func TestParser_StrictReportsEveryBadRecord(t *testing.T) {
	data := `[
	  {"chainId": 1, "name": "Ethereum Mainnet", "nativeCurrency": {"name": "Ether", "symbol": "ETH", "decimals": 18}},
	  {"chainId": 137, "name": "Polygon Mainnet"},
	  {"name": "No Id", "nativeCurrency": {"name": "X", "symbol": "X", "decimals": 18}},
	  {"chainId": 5, "name": "  ", "nativeCurrency": {"name": "X", "symbol": "X", "decimals": 18}}
	]`
	p := NewParser(entity.ParseModeStrict, zap.NewNop())

	records, err := p.Parse([]byte(data))
	require.Error(t, err)
	assert.Nil(t, records)
	assert.True(t, errors.Is(err, domain.ErrParse))
	assert.Contains(t, err.Error(), "chain id 137 missing nativeCurrency")
	assert.Contains(t, err.Error(), "record 2 missing chainId")
	assert.Contains(t, err.Error(), "chain id 5 missing name")
	assert.Contains(t, err.Error(), "3 malformed chain record(s)")

	var recErr *domain.RecordError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, uint64(137), recErr.ChainID)
}

func TestParser_LenientSkipsBadRecords(t *testing.T) {
	data := `[
	  {"chainId": 137, "name": "Polygon Mainnet"},
	  {"chainId": 1, "name": "Ethereum Mainnet", "nativeCurrency": {"name": "Ether", "symbol": "ETH", "decimals": 18}}
	]`
	p := NewParser(entity.ParseModeLenient, zap.NewNop())

	records, err := p.Parse([]byte(data))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, uint64(1), records[0].ChainID)
}

func TestParser_RequiredFieldReasons(t *testing.T) {
	tests := []struct {
		name   string
		record string
		reason string
	}{
		{"negative id", `{"chainId": -1, "name": "A", "nativeCurrency": {"name": "A", "symbol": "A", "decimals": 18}}`, "invalid chainId"},
		{"fractional id", `{"chainId": 1.5, "name": "A", "nativeCurrency": {"name": "A", "symbol": "A", "decimals": 18}}`, "invalid chainId"},
		{"id overflow", `{"chainId": 18446744073709551616, "name": "A", "nativeCurrency": {"name": "A", "symbol": "A", "decimals": 18}}`, "invalid chainId"},
		{"no symbol", `{"chainId": 7, "name": "A", "nativeCurrency": {"name": "A", "decimals": 18}}`, "missing nativeCurrency.symbol"},
		{"no currency name", `{"chainId": 7, "name": "A", "nativeCurrency": {"symbol": "A", "decimals": 18}}`, "missing nativeCurrency.name"},
		{"no decimals", `{"chainId": 7, "name": "A", "nativeCurrency": {"name": "A", "symbol": "A"}}`, "missing nativeCurrency.decimals"},
		{"decimals overflow", `{"chainId": 7, "name": "A", "nativeCurrency": {"name": "A", "symbol": "A", "decimals": 256}}`, "invalid nativeCurrency.decimals"},
		{"not an object", `"chain"`, "not a valid chain object"},
	}
	p := NewParser(entity.ParseModeStrict, zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse([]byte("[" + tt.record + "]"))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrParse)
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestParser_DocumentErrors(t *testing.T) {
	p := NewParser(entity.ParseModeLenient, zap.NewNop())

	for name, data := range map[string]string{
		"empty":     "",
		"object":    `{"chainId": 1}`,
		"truncated": `[{"chainId": 1,`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := p.Parse([]byte(data))
			assert.ErrorIs(t, err, domain.ErrParse)
		})
	}
}

func TestParser_EmptyArray(t *testing.T) {
	p := NewParser(entity.ParseModeStrict, zap.NewNop())

	records, err := p.Parse([]byte(" [] \n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParser_DuplicateIDsArePreserved(t *testing.T) {
	data := `[
	  {"chainId": 1, "name": "First", "nativeCurrency": {"name": "A", "symbol": "A", "decimals": 18}},
	  {"chainId": 1, "name": "Second", "nativeCurrency": {"name": "A", "symbol": "A", "decimals": 18}}
	]`
	p := NewParser(entity.ParseModeStrict, zap.NewNop())

	records, err := p.Parse([]byte(data))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "First", records[0].Name)
	assert.Equal(t, "Second", records[1].Name)
}
