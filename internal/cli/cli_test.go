package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/greencart/internal/carbon"
	"github.com/rshade/greencart/internal/cli"
	"github.com/rshade/greencart/internal/config"
)

// setupCLITest isolates the config home, silences logging and removes
// simulated latency.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvNoLatency, "true")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// executeCmd runs the root command with args and returns combined output.
func executeCmd(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return buf.String(), err
}

func TestRootCmd_Structure(t *testing.T) {
	cmd := cli.NewRootCmd("1.2.3")
	assert.Equal(t, "greencart", cmd.Use)
	assert.Equal(t, "1.2.3", cmd.Version)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))

	for _, path := range [][]string{
		{"serve"},
		{"carbon", "estimate"}, {"carbon", "rate"}, {"carbon", "compare"}, {"carbon", "suggest"},
		{"catalog", "list"}, {"catalog", "browse"}, {"catalog", "scrape"},
		{"config", "init"}, {"config", "get"}, {"config", "show"}, {"config", "validate"},
	} {
		found, _, err := cmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], found.Name())
	}
}

func TestCarbonEstimate_Table(t *testing.T) {
	setupCLITest(t)

	out, err := executeCmd(t, context.Background(),
		"carbon", "estimate", "--name", "Steak", "--category", "meat & seafood",
		"--price", "10", "--weight", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Steak")
	assert.Contains(t, out, "Meat & Seafood")
	assert.Contains(t, out, "1.00 kg (high confidence)")
	assert.Contains(t, out, "15.80 kg CO₂e")
	assert.Contains(t, out, "F (Very Poor)")
	assert.Contains(t, out, "high")
	assert.Contains(t, out, "Equivalent to driving ~82 miles or charging ~1,922 smartphones")
	assert.Contains(t, out, "Try plant-based protein alternatives")
}

func TestCarbonEstimate_JSONInfersWeight(t *testing.T) {
	setupCLITest(t)

	out, err := executeCmd(t, context.Background(),
		"carbon", "estimate", "--category", "Dairy", "--price", "3.48", "--output", "json")
	require.NoError(t, err)

	var got struct {
		Footprint struct {
			Total      float64 `json:"totalFootprint"`
			Confidence string  `json:"confidence"`
		} `json:"footprint"`
		Rating struct {
			Grade string `json:"rating"`
		} `json:"rating"`
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 3.86, got.Footprint.Total, 1e-9)
	assert.Equal(t, "medium", got.Footprint.Confidence)
	assert.Equal(t, "C", got.Rating.Grade)
	assert.NotNil(t, got.Suggestions)
}

func TestCarbonEstimate_RequiresCategory(t *testing.T) {
	setupCLITest(t)

	_, err := executeCmd(t, context.Background(), "carbon", "estimate", "--price", "3")
	require.Error(t, err)
}

func TestCarbonRate(t *testing.T) {
	setupCLITest(t)

	tests := []struct {
		arg  string
		want string
	}{
		{arg: "0.5", want: "A (Excellent)"},
		{arg: "3", want: "C (Fair)"},
		{arg: "15", want: "F (Very Poor)"},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			out, err := executeCmd(t, context.Background(), "carbon", "rate", tt.arg)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}

	_, err := executeCmd(t, context.Background(), "carbon", "rate", "NaN")
	require.Error(t, err)
}

func TestCarbonRate_NegativeGradesAsExcellent(t *testing.T) {
	setupCLITest(t)

	out, err := executeCmd(t, context.Background(), "carbon", "rate", "--", "-0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "-0.50 kg CO₂e: A (Excellent), low footprint")

	out, err = executeCmd(t, context.Background(), "carbon", "rate", "-o", "json", "--", "-0.5")
	require.NoError(t, err)
	var got struct {
		Rating struct {
			Grade string `json:"rating"`
		} `json:"rating"`
		Class string `json:"footprintClass"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "A", got.Rating.Grade)
	assert.Equal(t, "low", got.Class)
}

const basketYAML = `products:
  - name: Apples
    category: Fresh Produce
    price: 2
    weight: 1
  - name: Steak
    category: Meat & Seafood
    price: 12
    weight: 1
  - name: Milk
    category: Dairy
    price: 3.48
`

func TestCarbonCompare(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "basket.yaml")
	require.NoError(t, os.WriteFile(path, []byte(basketYAML), 0600))

	out, err := executeCmd(t, context.Background(), "carbon", "compare", "--file", path, "--output", "json")
	require.NoError(t, err)

	var got struct {
		Best struct {
			Name string `json:"name"`
		} `json:"bestProduct"`
		Worst struct {
			Name string `json:"name"`
		} `json:"worstProduct"`
		Average float64 `json:"averageFootprint"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Apples", got.Best.Name)
	assert.Equal(t, "Steak", got.Worst.Name)
	assert.InDelta(t, 6.82, got.Average, 1e-9)

	out, err = executeCmd(t, context.Background(), "carbon", "compare", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Best:    Apples")
	assert.Contains(t, out, "Average: 6.82 kg CO₂e")
}

func TestCarbonCompare_HelpExampleUsesKnownCategories(t *testing.T) {
	setupCLITest(t)
	compare, _, err := cli.NewRootCmd("test").Find([]string{"carbon", "compare"})
	require.NoError(t, err)

	idx := strings.Index(compare.Long, "products:")
	require.NotEqual(t, -1, idx)
	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, os.WriteFile(path, []byte(compare.Long[idx:]), 0600))

	out, err := executeCmd(t, context.Background(), "carbon", "compare", "-f", path, "-o", "json")
	require.NoError(t, err)
	var got struct {
		Ranked []struct {
			Category string `json:"category"`
		} `json:"ranked"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Ranked, 2)
	for _, p := range got.Ranked {
		_, ok := carbon.ParseCategory(p.Category)
		assert.True(t, ok, p.Category)
	}
}

func TestCarbonCompare_BareListAndEmpty(t *testing.T) {
	setupCLITest(t)
	dir := t.TempDir()

	list := filepath.Join(dir, "list.yaml")
	require.NoError(t, os.WriteFile(list, []byte("- name: Bread\n  category: Bakery\n  price: 2.5\n"), 0600))
	out, err := executeCmd(t, context.Background(), "carbon", "compare", "-f", list)
	require.NoError(t, err)
	assert.Contains(t, out, "Bread")

	for name, content := range map[string]string{
		"empty.yaml":       "products: []\n",
		"no-products.yaml": "basket: weekly\n",
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
		_, err = executeCmd(t, context.Background(), "carbon", "compare", "-f", path)
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), "at least one product is required", name)
	}
}

func TestCarbonSuggest(t *testing.T) {
	setupCLITest(t)

	out, err := executeCmd(t, context.Background(),
		"carbon", "suggest", "--category", "Electronics", "--price", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "Buy refurbished or second-hand when possible")

	out, err = executeCmd(t, context.Background(),
		"carbon", "suggest", "--category", "Fresh Produce", "--price", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "No suggestions")
}

func TestCatalogList(t *testing.T) {
	setupCLITest(t)

	out, err := executeCmd(t, context.Background(), "catalog", "list", "--category", "grocery", "--output", "json")
	require.NoError(t, err)

	var got struct {
		Products []struct {
			ID              string  `json:"id"`
			CarbonFootprint float64 `json:"carbonFootprint"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Products, 9)

	out, err = executeCmd(t, context.Background(), "catalog", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Organic Bananas")
}

func TestCatalogList_UnseededFallsBackToVendor(t *testing.T) {
	home := setupCLITest(t)
	cfgPath := filepath.Join(home, "config.yaml")
	cfg := config.New()
	cfg.Store.Seed = false
	require.NoError(t, cfg.Save(cfgPath))

	out, err := executeCmd(t, context.Background(), "catalog", "list", "--category", "electronics", "-o", "json")
	require.NoError(t, err)

	var got struct {
		Products []struct {
			Category string `json:"category"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotEmpty(t, got.Products)
	for _, p := range got.Products {
		assert.Equal(t, "Electronics", p.Category)
	}
}

func TestCatalogScrape(t *testing.T) {
	setupCLITest(t)

	out, err := executeCmd(t, context.Background(), "catalog", "scrape")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully scraped 8 products")
}

func TestCatalogBrowse_RequiresTerminal(t *testing.T) {
	setupCLITest(t)

	_, err := executeCmd(t, context.Background(), "catalog", "browse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestConfigGet(t *testing.T) {
	setupCLITest(t)

	out, err := executeCmd(t, context.Background(), "config", "get", "server.addr")
	require.NoError(t, err)
	assert.Equal(t, ":8080\n", out)

	out, err = executeCmd(t, context.Background(), "config", "get", "vendor")
	require.NoError(t, err)
	assert.Contains(t, out, "max_items: 8")

	_, err = executeCmd(t, context.Background(), "config", "get", "server.nope")
	require.Error(t, err)
}

func TestConfigShow(t *testing.T) {
	setupCLITest(t)
	t.Setenv(config.EnvAddr, ":7070")

	out, err := executeCmd(t, context.Background(), "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "# defaults (no config file)")
	assert.Contains(t, out, "7070")

	out, err = executeCmd(t, context.Background(), "config", "show", "-o", "json")
	require.NoError(t, err)
	var tree map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &tree))
	assert.Contains(t, tree, "loyalty")
}

func TestOverlayReplacesConfigSections(t *testing.T) {
	home := setupCLITest(t)
	cfg := config.New()
	cfg.Server.Addr = ":6060"
	require.NoError(t, cfg.Save(filepath.Join(home, "config.yaml")))

	overlay := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte("loyalty:\n  starting_balance: 500\n"), 0600))

	out, err := executeCmd(t, context.Background(), "--overlay", overlay, "config", "get", "loyalty.starting_balance")
	require.NoError(t, err)
	assert.Equal(t, "500\n", out)

	out, err = executeCmd(t, context.Background(), "--overlay", overlay, "config", "get", "server.addr")
	require.NoError(t, err)
	assert.Equal(t, ":6060\n", out)

	_, err = executeCmd(t, context.Background(), "--overlay", filepath.Join(t.TempDir(), "missing.yaml"),
		"carbon", "rate", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading overlay file")
}

func TestInvalidOutputFormat(t *testing.T) {
	setupCLITest(t)

	_, err := executeCmd(t, context.Background(), "carbon", "rate", "1", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestServe_StopsWhenContextCancelled(t *testing.T) {
	setupCLITest(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := executeCmd(t, ctx, "serve", "--addr", "127.0.0.1:0")
	require.NoError(t, err)
	assert.Contains(t, out, "GreenCart API listening on http://127.0.0.1:")
}

func TestDebugFlag(t *testing.T) {
	setupCLITest(t)

	_, err := executeCmd(t, context.Background(), "--debug", "carbon", "rate", "1")
	require.NoError(t, err)
}
