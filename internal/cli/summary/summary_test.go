package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/stockbox/internal/cli"
	"github.com/thenoetrevino/stockbox/internal/testutil"
	clitest "github.com/thenoetrevino/stockbox/internal/testutil/cli"
)

func TestSummaryCommand(t *testing.T) {
	store, testApp := clitest.SetupCLITest(t)
	testutil.CreateTestProduct(t, store, "Bolt", 10, "Hardware", "Box A")
	testutil.CreateTestProduct(t, store, "Nut", 5, "hardware", "")
	testutil.CreateTestProduct(t, store, "Screw", 20, "", "")

	t.Run("JSON totals", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, testApp, SummaryCmd(), []string{"--json"})
		require.NoError(t, err)

		data := clitest.ParseJSON(t, output)["data"].(map[string]any)
		assert.Equal(t, float64(35), data["grand_total"])
		totals := data["totals"].([]any)
		require.NotEmpty(t, totals)
		first := totals[0].(map[string]any)
		assert.Equal(t, "Uncategorized", first["label"])
		assert.Equal(t, float64(20), first["quantity"])
	})

	t.Run("filtered by box", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, testApp, SummaryCmd(), []string{"--box", "box a", "--json"})
		require.NoError(t, err)

		data := clitest.ParseJSON(t, output)["data"].(map[string]any)
		assert.Equal(t, float64(10), data["grand_total"])
	})

	t.Run("human-readable chart", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, testApp, SummaryCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "Uncategorized")
		assert.Contains(t, output, "█")
		assert.Contains(t, output, "35")
	})

	t.Run("malformed bound", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, testApp, SummaryCmd(), []string{"--max", "lots"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))
	})
}
