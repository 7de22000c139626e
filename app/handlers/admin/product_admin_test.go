package admin

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	t.Run("creates and returns 201", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.doJSON(t, http.MethodPost, "/admin/products", map[string]interface{}{
			"name_en": "Classic Poutine",
			"name_fr": "Poutine classique",
			"price":   "12.50",
			"stock":   20,
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Classic poutine", body["name_en"])
		assert.Equal(t, "Poutine classique", body["name_fr"])
		require.Len(t, env.products.items, 1)
		assert.Equal(t, "classic poutine", env.products.items[1].NameEN)
		assert.True(t, env.products.items[1].Price.Equal(decimal.RequireFromString("12.50")))
	})

	t.Run("missing english name returns 422", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.doJSON(t, http.MethodPost, "/admin/products", map[string]interface{}{"name_fr": "Poutine"})

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		errs := decodeBody(t, rec)["errors"].(map[string]interface{})
		assert.Contains(t, errs, "name_en")
	})
}

func TestGetProducts(t *testing.T) {
	env := newTestEnv(t)

	createRec := env.doJSON(t, http.MethodPost, "/admin/products", map[string]interface{}{
		"name_en": "Classic Poutine",
		"name_fr": "Poutine classique",
		"price":   "12.50",
	})
	require.Equal(t, http.StatusCreated, createRec.Code)

	attachRec := env.doJSON(t, http.MethodPost, "/admin/products/1/options", map[string]interface{}{
		"name_en": "Extra Cheese", "name_fr": "Fromage en plus", "extra_price": "2.00",
	})
	require.Equal(t, http.StatusCreated, attachRec.Code)

	rec := env.doJSON(t, http.MethodGet, "/admin/products", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	products := decodeBody(t, rec)["products"].([]interface{})
	require.Len(t, products, 1)
	product := products[0].(map[string]interface{})
	assert.Equal(t, "$12.50", product["formatted_price"])

	options := product["options"].([]interface{})
	require.Len(t, options, 1)
	attached := options[0].(map[string]interface{})
	assert.Equal(t, "Extra cheese", attached["name_en"])
	assert.Equal(t, "2.00", attached["extra_price"])
}

func TestAddProductOption(t *testing.T) {
	t.Run("upserts the option and sets the pivot on first attach", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.doJSON(t, http.MethodPost, "/admin/products", map[string]interface{}{
			"name_en": "Classic Poutine", "name_fr": "Poutine classique",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = env.doJSON(t, http.MethodPost, "/admin/products/1/options", map[string]interface{}{
			"name_en": "Extra Cheese", "name_fr": "Fromage en plus", "extra_price": "2.00",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Extra cheese", decodeBody(t, rec)["name_en"])
		require.Len(t, env.options.items, 1)
		extra := env.prodOptions.links[pair{1, 1}]
		assert.True(t, extra.Equal(decimal.RequireFromString("2.00")))

		// Re-attach with a different pivot: the stored extra_price stays.
		rec = env.doJSON(t, http.MethodPost, "/admin/products/1/options", map[string]interface{}{
			"name_en": "Extra Cheese", "name_fr": "Fromage en plus", "extra_price": "5.00",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Len(t, env.options.items, 1)
		extra = env.prodOptions.links[pair{1, 1}]
		assert.True(t, extra.Equal(decimal.RequireFromString("2.00")))
	})

	t.Run("attaching an existing option keeps its details", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.doJSON(t, http.MethodPost, "/admin/products", map[string]interface{}{
			"name_en": "Classic Poutine", "name_fr": "Poutine classique",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		categoryID := env.seedCategory(t, "sauces", "sauces")
		rec = env.doJSON(t, http.MethodPost, "/admin/options", map[string]interface{}{
			"name_en":        "BBQ Sauce",
			"name_fr":        "Sauce BBQ",
			"description_en": "smoky",
			"description_fr": "fumée",
			"thumbnail":      "http://localhost:8080/images/1_abcd1234.png",
			"category_id":    categoryID,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = env.doJSON(t, http.MethodPost, "/admin/products/1/options", map[string]interface{}{
			"name_en": "BBQ Sauce",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		require.Len(t, env.options.items, 1)
		stored := env.options.items[1]
		assert.Equal(t, "sauce bbq", stored.NameFR)
		assert.Equal(t, "smoky", stored.DescriptionEN)
		assert.Equal(t, "fumée", stored.DescriptionFR)
		assert.Equal(t, "http://localhost:8080/images/1_abcd1234.png", stored.Thumbnail)
	})

	t.Run("options added without a french name stay distinct", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.doJSON(t, http.MethodPost, "/admin/products", map[string]interface{}{
			"name_en": "Classic Poutine", "name_fr": "Poutine classique",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = env.doJSON(t, http.MethodPost, "/admin/products/1/options", map[string]interface{}{"name_en": "Fries"})
		require.Equal(t, http.StatusCreated, rec.Code)
		rec = env.doJSON(t, http.MethodPost, "/admin/products/1/options", map[string]interface{}{"name_en": "Salad"})
		require.Equal(t, http.StatusCreated, rec.Code)

		require.Len(t, env.options.items, 2)
		assert.Equal(t, "fries", env.options.items[1].NameEN)
		assert.Equal(t, "salad", env.options.items[2].NameEN)
		assert.Len(t, env.prodOptions.links, 2)
	})

	t.Run("unknown product returns 404", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.doJSON(t, http.MethodPost, "/admin/products/9/options", map[string]interface{}{
			"name_en": "Extra Cheese", "name_fr": "Fromage en plus",
		})

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAddProductCategory(t *testing.T) {
	env := newTestEnv(t)
	rec := env.doJSON(t, http.MethodPost, "/admin/products", map[string]interface{}{
		"name_en": "Classic Poutine", "name_fr": "Poutine classique",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.doJSON(t, http.MethodPost, "/admin/products/1/categories", map[string]interface{}{
		"name_en": "Mains", "name_fr": "Plats principaux",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, env.categories.items, 1)
	assert.True(t, env.prodCategory.links[pair{1, 1}])

	// Re-adding by the english name alone must not blank the french one.
	rec = env.doJSON(t, http.MethodPost, "/admin/products/1/categories", map[string]interface{}{
		"name_en": "Mains",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, env.categories.items, 1)
	assert.Equal(t, "plats principaux", env.categories.items[1].NameFR)
}

func TestDeleteProduct(t *testing.T) {
	t.Run("detaches links then deletes", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.doJSON(t, http.MethodPost, "/admin/products", map[string]interface{}{
			"name_en": "Classic Poutine", "name_fr": "Poutine classique",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		optionID := env.seedOption(t, "extra cheese", "fromage en plus")
		env.prodOptions.links[pair{1, optionID}] = decimal.NewFromInt(2)

		rec = env.doJSON(t, http.MethodDelete, "/admin/products/1", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, env.products.items)
		assert.Empty(t, env.prodOptions.links)
		assert.Len(t, env.options.items, 1)
	})

	t.Run("unknown product returns 404", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.doJSON(t, http.MethodDelete, "/admin/products/9", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
