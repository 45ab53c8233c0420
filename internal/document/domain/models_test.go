package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindValid(t *testing.T) {
	assert.True(t, KindInvoice.Valid())
	assert.True(t, KindQuote.Valid())
	assert.False(t, Kind("Receipt").Valid())
	assert.False(t, Kind("").Valid())
}

func TestClientSnapshotValidate(t *testing.T) {
	assert.NoError(t, ClientSnapshot{Name: "Acme"}.Validate())
	assert.ErrorIs(t, ClientSnapshot{Name: "   "}.Validate(), ErrMissingClient)
}

func TestDraftAddRemoveLine(t *testing.T) {
	var d Draft

	d.AddLine("ITEM0001", 2)
	d.AddLine("ITEM0002", 1)
	d.AddLine("ITEM0003", 4)

	d.RemoveLine(1)
	assert.Len(t, d.Lines, 2)
	assert.Equal(t, "ITEM0001", d.Lines[0].ItemID)
	assert.Equal(t, "ITEM0003", d.Lines[1].ItemID)

	// Out-of-range indexes are ignored.
	d.RemoveLine(-1)
	d.RemoveLine(5)
	assert.Len(t, d.Lines, 2)
}
