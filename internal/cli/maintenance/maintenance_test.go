package maintenance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/stockbox/internal/cli"
	"github.com/thenoetrevino/stockbox/internal/testutil"
	clitest "github.com/thenoetrevino/stockbox/internal/testutil/cli"
)

func TestSeedCommand(t *testing.T) {
	store, testApp := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, testApp, SeedCmd(),
		[]string{"--boxes", "3", "--products", "30", "--seed", "7", "--json"})
	require.NoError(t, err)

	data := clitest.ParseJSON(t, output)["data"].(map[string]any)
	assert.Equal(t, float64(3), data["boxes_created"])
	assert.Equal(t, float64(30), data["products_created"])

	products, err := store.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 30)
	for _, p := range products {
		assert.GreaterOrEqual(t, p.Quantity, 1)
		assert.LessOrEqual(t, p.Quantity, 500)
		assert.NotNil(t, p.BoxID)
	}

	t.Run("negative count", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, testApp, SeedCmd(), []string{"--products", "-1"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
	})
}

func TestResetCommand(t *testing.T) {
	store, testApp := clitest.SetupCLITest(t)
	testutil.CreateTestProduct(t, store, "Bolt", 10, "Hardware", "Box A")

	t.Run("requires confirmation", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, testApp, ResetCmd(), nil)
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))

		products, err := store.ListProducts(context.Background())
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("wipes products and boxes", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, testApp, ResetCmd(), []string{"--yes"})
		require.NoError(t, err)

		products, err := store.ListProducts(context.Background())
		require.NoError(t, err)
		assert.Empty(t, products)
		boxes, err := store.ListBoxes(context.Background())
		require.NoError(t, err)
		assert.Empty(t, boxes)

		p := testutil.CreateTestProduct(t, store, "Nut", 1, "", "")
		assert.Equal(t, 1, p.ID)
	})
}
