package prodex_test

import (
	"testing"

	"github.com/scrapeworks/prodex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFinalizable() *prodex.Product {
	p := prodex.NewProduct()
	p.SetTitle("Cordless Drill XB-100")
	return p
}

func TestProduct_Defaults(t *testing.T) {
	t.Parallel()

	p := prodex.NewProduct()

	assert.True(t, p.InStock())
	assert.True(t, p.Prime())
	assert.Equal(t, prodex.CurrencyUSD, p.Currency())
	assert.Zero(t, p.Price())
	assert.Empty(t, p.Images())
}

func TestProduct_SetterCoercion(t *testing.T) {
	t.Parallel()

	t.Run("price coerces non-numeric input to zero", func(t *testing.T) {
		t.Parallel()

		p := prodex.NewProduct()
		p.SetPrice(nil)
		assert.Zero(t, p.Price())
		p.SetPrice("19.99")
		assert.Equal(t, 19.99, p.Price())
	})

	t.Run("prime and freeShipping reset on non-boolean input", func(t *testing.T) {
		t.Parallel()

		p := prodex.NewProduct()
		p.SetPrime("1")
		assert.False(t, p.Prime())
		p.SetFreeShipping(1)
		assert.False(t, p.FreeShipping())
		p.SetPrime(true)
		assert.True(t, p.Prime())
	})

	t.Run("quantity truncates fractional input", func(t *testing.T) {
		t.Parallel()

		p := prodex.NewProduct()
		p.SetQuantity(499.9)
		assert.Equal(t, 499, p.Quantity())
	})

	t.Run("expiration resets on non-integer input", func(t *testing.T) {
		t.Parallel()

		p := prodex.NewProduct()
		p.SetExpiration(2.5)
		assert.Zero(t, p.Expiration())
		p.SetExpiration(30)
		assert.Equal(t, 30, p.Expiration())
		p.SetExpiration("30")
		assert.Zero(t, p.Expiration())
	})

	t.Run("images wraps scalar and rejects other shapes", func(t *testing.T) {
		t.Parallel()

		p := prodex.NewProduct()
		p.SetImages("https://img.example/1.jpg")
		assert.Equal(t, []string{"https://img.example/1.jpg"}, p.Images())
		p.SetImages(42)
		assert.Empty(t, p.Images())
	})
}

func TestProduct_Finalize_Sentinels(t *testing.T) {
	t.Parallel()

	t.Run("defaults mpn ean isbn and brand", func(t *testing.T) {
		t.Parallel()

		rec, err := newFinalizable().Finalize()
		require.NoError(t, err)

		assert.Equal(t, prodex.DoesNotApply, rec.Specifications["mpn"])
		assert.Equal(t, prodex.DoesNotApply, rec.Specifications["ean"])
		assert.Equal(t, prodex.DoesNotApply, rec.Specifications["isbn"])
		assert.Equal(t, prodex.DoesNotApply, rec.Specifications["brand"])
		assert.Equal(t, prodex.DoesNotApply, rec.Brand)
	})

	t.Run("keeps scraped values", func(t *testing.T) {
		t.Parallel()

		p := newFinalizable()
		p.SetBrand("Bosch")
		p.AddSpecification("brand", "Bosch")
		p.AddSpecification("mpn", "XB-100")

		rec, err := p.Finalize()
		require.NoError(t, err)

		assert.Equal(t, "Bosch", rec.Specifications["brand"])
		assert.Equal(t, "Bosch", rec.Brand)
		assert.Equal(t, "XB-100", rec.Specifications["mpn"])
		assert.Equal(t, prodex.DoesNotApply, rec.Specifications["ean"])
	})

	t.Run("capitalized Brand key suppresses the sentinel", func(t *testing.T) {
		t.Parallel()

		p := newFinalizable()
		p.SetBrand("Makita")
		p.AddSpecification("Brand", "Makita")

		rec, err := p.Finalize()
		require.NoError(t, err)

		assert.Equal(t, "Makita", rec.Specifications["Brand"])
		_, hasLower := rec.Specifications["brand"]
		assert.False(t, hasLower)
	})
}

func TestProduct_Finalize_StockInvariant(t *testing.T) {
	t.Parallel()

	t.Run("unpriced item goes out of stock with zero quantity", func(t *testing.T) {
		t.Parallel()

		p := newFinalizable()
		p.SetInStock(true)
		p.SetQuantity(500)

		rec, err := p.Finalize()
		require.NoError(t, err)

		assert.False(t, rec.InStock)
		assert.Zero(t, rec.Quantity)
	})

	t.Run("out of stock item has zero quantity", func(t *testing.T) {
		t.Parallel()

		p := newFinalizable()
		p.SetPrice(9.99)
		p.SetInStock(false)
		p.SetQuantity(500)

		rec, err := p.Finalize()
		require.NoError(t, err)

		assert.False(t, rec.InStock)
		assert.Zero(t, rec.Quantity)
	})

	t.Run("priced in-stock item keeps quantity", func(t *testing.T) {
		t.Parallel()

		p := newFinalizable()
		p.SetPrice(9.99)
		p.SetQuantity(500)

		rec, err := p.Finalize()
		require.NoError(t, err)

		assert.True(t, rec.InStock)
		assert.Equal(t, 500, rec.Quantity)
	})
}

func TestProduct_Finalize_CleanDescription(t *testing.T) {
	t.Parallel()

	p := newFinalizable()
	p.SetDescription("a  b\n\n\tc   d")

	rec, err := p.Finalize()
	require.NoError(t, err)
	assert.Equal(t, "a b c d", rec.Description)

	// Idempotent: collapsing an already-clean description is a no-op.
	p2 := newFinalizable()
	p2.SetDescription(rec.Description)
	rec2, err := p2.Finalize()
	require.NoError(t, err)
	assert.Equal(t, rec.Description, rec2.Description)
}

func TestProduct_Finalize_CollapsesPairs(t *testing.T) {
	t.Parallel()

	t.Run("last write wins on duplicate specification keys", func(t *testing.T) {
		t.Parallel()

		p := newFinalizable()
		p.AddSpecification("k", "a")
		p.AddSpecification("k", "b")

		rec, err := p.Finalize()
		require.NoError(t, err)
		assert.Equal(t, "b", rec.Specifications["k"])
	})

	t.Run("features collapse by position key", func(t *testing.T) {
		t.Parallel()

		p := newFinalizable()
		p.AddFeature("1", "first")
		p.AddFeature("2", "second")
		p.AddFeature("2", "second again")

		rec, err := p.Finalize()
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"1": "first", "2": "second again"}, rec.Features)
	})
}

func TestProduct_Finalize_RequiresTitle(t *testing.T) {
	t.Parallel()

	_, err := prodex.NewProduct().Finalize()
	require.Error(t, err)
	assert.Equal(t, prodex.EINVALID, prodex.ErrorCode(err))
}

func TestProduct_PruneSpecifications(t *testing.T) {
	t.Parallel()

	p := newFinalizable()
	p.AddSpecification("Shipping", "Amazon Global")
	p.AddSpecification("Delivery Destinations: see help", "worldwide")
	p.AddSpecification("Color", "Blue")

	p.PruneSpecifications("Amazon", "Delivery Destinations")

	specs := p.Specifications()
	require.Len(t, specs, 1)
	assert.Equal(t, "Color", specs[0].Key)
}

func TestProduct_RemoveOperations(t *testing.T) {
	t.Parallel()

	p := prodex.NewProduct()
	p.AddFeature("1", "one")
	p.AddFeature("2", "two")
	p.RemoveFeature("1")
	require.Len(t, p.Features(), 1)
	assert.Equal(t, "2", p.Features()[0].Key)

	p.AddSpecification("mpn", "X")
	p.AddSpecification("mpn", "Y")
	p.RemoveSpecification("mpn")
	require.Len(t, p.Specifications(), 1)
	assert.Equal(t, "Y", p.Specifications()[0].Value)

	p.AddData("addon", true)
	p.RemoveData("addon")
	assert.Empty(t, p.AdditionalData())
}

func TestErrors(t *testing.T) {
	t.Parallel()

	err := prodex.Errorf(prodex.ENOTFOUND, "record %q not found", "B0TEST")
	assert.Equal(t, prodex.ENOTFOUND, prodex.ErrorCode(err))
	assert.Equal(t, `record "B0TEST" not found`, prodex.ErrorMessage(err))
	assert.Empty(t, prodex.ErrorCode(nil))
}
