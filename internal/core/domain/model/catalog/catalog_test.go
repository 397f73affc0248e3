package catalog_test

import (
	"strings"
	"testing"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(t *testing.T, s string) kernel.Money {
	t.Helper()
	p, err := kernel.NewPrice(decimal.RequireFromString(s))
	require.NoError(t, err)
	return p
}

func TestNewCategory(t *testing.T) {
	t.Run("derives slug from title", func(t *testing.T) {
		c, err := catalog.NewCategory("  Main Courses! ", "")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Main Courses!", c.Title())
		assert.Equal(t, "main-courses", c.Slug())
		assert.Zero(t, c.ID())
	})

	t.Run("keeps explicit slug", func(t *testing.T) {
		c, err := catalog.NewCategory("Desserts", "sweet_things")

		require.NoError(t, err)
		assert.Equal(t, "sweet_things", c.Slug())
	})

	t.Run("rejects empty title", func(t *testing.T) {
		c, err := catalog.NewCategory(" ", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, c)
	})

	t.Run("rejects too long title", func(t *testing.T) {
		_, err := catalog.NewCategory(strings.Repeat("a", 256), "")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects malformed slug", func(t *testing.T) {
		_, err := catalog.NewCategory("Drinks", "hot drinks")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCategory_Update(t *testing.T) {
	c, err := catalog.RestoreCategory(3, "Drinks", "drinks")
	require.NoError(t, err)

	t.Run("changes only given fields", func(t *testing.T) {
		title := "Cold drinks"
		require.NoError(t, c.Update(&title, nil))

		assert.Equal(t, "Cold drinks", c.Title())
		assert.Equal(t, "drinks", c.Slug())
	})

	t.Run("leaves category untouched when any field is invalid", func(t *testing.T) {
		title, slug := "Hot drinks", "not a slug"
		require.Error(t, c.Update(&title, &slug))

		assert.Equal(t, "Cold drinks", c.Title())
		assert.Equal(t, "drinks", c.Slug())
	})
}

func TestCategory_AssignID(t *testing.T) {
	c, err := catalog.NewCategory("Starters", "")
	require.NoError(t, err)

	require.NoError(t, c.AssignID(7))
	assert.Equal(t, int64(7), c.ID())
	require.Error(t, c.AssignID(8))
}

func TestZeroValueCategoryIsNotValid(t *testing.T) {
	var c catalog.Category
	require.ErrorIs(t, c.Validate(), catalog.ErrCategoryIsNotConstructed)
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Main Courses":     "main-courses",
		"  Fish & Chips  ": "fish-chips",
		"Greek--Salad":     "greek-salad",
		"already-a-slug":   "already-a-slug",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, catalog.Slugify(in))
		})
	}
}

func TestNewMenuItem(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		m, err := catalog.NewMenuItem("Bruschetta", price(t, "9.00"), true, 1)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "Bruschetta", m.Title())
		assert.Equal(t, "9.00", m.Price().String())
		assert.True(t, m.Featured())
		assert.Equal(t, int64(1), m.CategoryID())
	})

	t.Run("collects every invalid field", func(t *testing.T) {
		m, err := catalog.NewMenuItem("", kernel.ZeroMoney(), false, 0)

		require.Error(t, err)
		assert.Nil(t, m)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "category_id")
	})
}

func TestMenuItem_Apply(t *testing.T) {
	newItem := func(t *testing.T) *catalog.MenuItem {
		m, err := catalog.RestoreMenuItem(4, "Lemon Dessert", price(t, "5.50"), false, 2)
		require.NoError(t, err)
		return m
	}

	t.Run("partial change", func(t *testing.T) {
		m := newItem(t)
		featured := true
		p := price(t, "6.25")

		require.NoError(t, m.Apply(catalog.MenuItemChanges{Featured: &featured, Price: &p}))

		assert.Equal(t, "Lemon Dessert", m.Title())
		assert.Equal(t, "6.25", m.Price().String())
		assert.True(t, m.Featured())
		assert.Equal(t, int64(2), m.CategoryID())
	})

	t.Run("invalid change is atomic", func(t *testing.T) {
		m := newItem(t)
		empty := ""
		featured := true
		p := price(t, "1.00")

		require.Error(t, m.Apply(catalog.MenuItemChanges{Title: &empty, Featured: &featured, Price: &p}))

		assert.Equal(t, "Lemon Dessert", m.Title())
		assert.Equal(t, "5.50", m.Price().String())
		assert.False(t, m.Featured())
	})
}
