package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatItemID(t *testing.T) {
	assert.Equal(t, "ITEM0001", FormatItemID(1))
	assert.Equal(t, "ITEM0042", FormatItemID(42))
	assert.Equal(t, "ITEM12345", FormatItemID(12345))
}

func TestValidate(t *testing.T) {
	item := CatalogItem{Name: "Widget", Description: "A widget", UnitPrice: 10}
	assert.NoError(t, item.Validate())

	item.UnitPrice = -0.01
	assert.ErrorIs(t, item.Validate(), ErrInvalidPrice)

	item.UnitPrice = 0
	assert.NoError(t, item.Validate())

	item.Name = " "
	assert.ErrorIs(t, item.Validate(), ErrInvalidName)

	item.Name = "Widget"
	item.Description = ""
	assert.ErrorIs(t, item.Validate(), ErrInvalidDescription)
}
