package application

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"chaingen/internal/adapter/render/golang"
	"chaingen/internal/adapter/storage/chainlist"
	"chaingen/internal/adapter/storage/file"
	"chaingen/internal/adapter/storage/overrides"
	"chaingen/internal/config"
	"chaingen/internal/domain"
	"chaingen/internal/domain/entity"
	"chaingen/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleChains = `[
  {"chainId": 137, "name": "Polygon Mainnet", "shortName": "matic",
   "nativeCurrency": {"name": "POL", "symbol": "POL", "decimals": 18},
   "rpc": ["https://polygon-rpc.com"]},
  {"chainId": 1, "name": "Ethereum Mainnet", "shortName": "eth",
   "nativeCurrency": {"name": "Ether", "symbol": "ETH", "decimals": 18},
   "rpc": ["https://eth.llamarpc.com"], "slip44": 60},
  {"chainId": 1, "name": "Ethereum Mainnet Copy",
   "nativeCurrency": {"name": "Ether", "symbol": "ETH", "decimals": 18}}
]`

func newPipeline(t *testing.T, sourcePath string, mode entity.ParseMode) (*Fetcher, *Generator, string, string) {
	t.Helper()
	logger := zap.NewNop()
	dir := t.TempDir()
	output := filepath.Join(dir, "chains", "chains_gen.go")
	cacheCfg := config.CacheConfig{Dir: filepath.Join(dir, "cache"), File: "chains.json"}

	fetcher := NewFetcher(
		chainlist.NewFileSource(sourcePath, logger),
		nil,
		file.NewCacheRepository(cacheCfg, logger),
		cacheCfg,
		logger,
	)
	generator := NewGenerator(
		chainlist.NewParser(mode, logger),
		golang.NewRenderer(filepath.Base(output)),
		overrides.NewRepository("", logger),
		"chains",
		logger,
	)
	return fetcher, generator, output, cacheCfg.CachePath()
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chains.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestService_Run(t *testing.T) {
	sourcePath := writeSource(t, sampleChains)
	fetcher, generator, output, cachePath := newPipeline(t, sourcePath, entity.ParseModeStrict)
	svc := NewService(fetcher, generator, file.NewWriter(zap.NewNop()), output, zap.NewNop())

	result, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sourcePath, result.Source)
	assert.Equal(t, output, result.Output)
	assert.Equal(t, 2, result.Variants)
	assert.True(t, result.Changed)

	src, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Regexp(t, `EthereumMainnet\s+Chain = 1\n`, string(src))
	assert.Regexp(t, `PolygonMainnet\s+Chain = 137\n`, string(src))
	assert.NotContains(t, string(src), "Ethereum Mainnet Copy")
	assert.Contains(t, string(src), "12 * time.Second", "built-in block time for chain 1")
	assert.FileExists(t, cachePath)

	again, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, again.Changed, "second run with the same input is a no-op")
}

func TestService_ParseFailureWritesNothing(t *testing.T) {
	sourcePath := writeSource(t, `[{"chainId": 137, "name": "Polygon Mainnet"}]`)
	fetcher, generator, output, _ := newPipeline(t, sourcePath, entity.ParseModeStrict)
	svc := NewService(fetcher, generator, file.NewWriter(zap.NewNop()), output, zap.NewNop())

	_, err := svc.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.Contains(t, err.Error(), "chain id 137 missing nativeCurrency")
	assert.NoFileExists(t, output)
}

func TestService_LenientMode(t *testing.T) {
	sourcePath := writeSource(t, `[
	  {"chainId": 137, "name": "Polygon Mainnet"},
	  {"chainId": 1, "name": "Ethereum Mainnet", "nativeCurrency": {"name": "Ether", "symbol": "ETH", "decimals": 18}}
	]`)
	fetcher, generator, output, _ := newPipeline(t, sourcePath, entity.ParseModeLenient)
	svc := NewService(fetcher, generator, file.NewWriter(zap.NewNop()), output, zap.NewNop())

	result, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Variants)
}

func TestService_MissingSource(t *testing.T) {
	fetcher, generator, output, _ := newPipeline(t, filepath.Join(t.TempDir(), "absent.json"), entity.ParseModeStrict)
	svc := NewService(fetcher, generator, file.NewWriter(zap.NewNop()), output, zap.NewNop())

	_, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrFetch)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoFileExists(t, output)
}

type failingWriter struct{}

func (failingWriter) Write(context.Context, string, []byte) (bool, error) {
	return false, errors.New("disk full")
}

func TestService_WriteFailure(t *testing.T) {
	sourcePath := writeSource(t, sampleChains)
	fetcher, generator, output, _ := newPipeline(t, sourcePath, entity.ParseModeStrict)
	svc := NewService(fetcher, generator, failingWriter{}, output, zap.NewNop())

	_, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrGeneration)
	assert.Contains(t, err.Error(), "disk full")
}

func TestGenerator_ShuffledInputIsIdentical(t *testing.T) {
	logger := zap.NewNop()
	generator := NewGenerator(
		chainlist.NewParser(entity.ParseModeStrict, logger),
		golang.NewRenderer("chains_gen.go"),
		nil,
		"chains",
		logger,
	)

	a := `[
	  {"chainId": 1, "name": "Ethereum Mainnet", "nativeCurrency": {"name": "Ether", "symbol": "ETH", "decimals": 18}},
	  {"chainId": 10, "name": "OP Mainnet", "nativeCurrency": {"name": "Ether", "symbol": "ETH", "decimals": 18}}
	]`
	b := `[
	  {"chainId": 10, "name": "OP Mainnet", "nativeCurrency": {"name": "Ether", "symbol": "ETH", "decimals": 18}},
	  {"chainId": 1, "name": "Ethereum Mainnet", "nativeCurrency": {"name": "Ether", "symbol": "ETH", "decimals": 18}}
	]`

	first, n, err := generator.Generate(context.Background(), []byte(a))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	second, _, err := generator.Generate(context.Background(), []byte(b))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	consts := regexp.MustCompile(`(?m)^\t(\w+)\s+Chain = (\d+)$`).FindAllStringSubmatch(string(first), -1)
	require.Len(t, consts, 2)
	assert.Equal(t, []string{"EthereumMainnet", "1"}, consts[0][1:])
	assert.Equal(t, []string{"OPMainnet", "10"}, consts[1][1:])
}

func TestGenerator_OverrideLoadFailure(t *testing.T) {
	logger := zap.NewNop()
	generator := NewGenerator(
		chainlist.NewParser(entity.ParseModeStrict, logger),
		golang.NewRenderer("chains_gen.go"),
		overrides.NewRepository(filepath.Join(t.TempDir(), "missing.yaml"), logger),
		"chains",
		logger,
	)

	_, _, err := generator.Generate(context.Background(), []byte(`[]`))
	assert.ErrorIs(t, err, domain.ErrGeneration)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGenerator_NamesWithForbiddenSourceRunes(t *testing.T) {
	logger := zap.NewNop()
	generator := NewGenerator(
		chainlist.NewParser(entity.ParseModeStrict, logger),
		golang.NewRenderer("chains_gen.go"),
		nil,
		"chains",
		logger,
	)

	data := `[
	  {"chainId": 7, "name": "Foo\u0000Bar", "nativeCurrency": {"name": "Ether", "symbol": "ETH", "decimals": 18}},
	  {"chainId": 8, "name": "Baz\ufeffQux", "nativeCurrency": {"name": "Ether", "symbol": "ETH", "decimals": 18}}
	]`

	src, n, err := generator.Generate(context.Background(), []byte(data))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Regexp(t, `FooBar\s+Chain = 7\n`, string(src))
	assert.Regexp(t, `BazQux\s+Chain = 8\n`, string(src))
	assert.NotContains(t, string(src), "\x00")
	assert.NotContains(t, string(src), "\ufeff")
}
