package catalog_test

import (
	"testing"

	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []catalog.ModelRecord {
	return []catalog.ModelRecord{
		{Name: "JTT", Year: 1992, TaxonomicGroup: "General", MatrixType: "Exchangeability"},
		{Name: "mtMam", Year: 2005, TaxonomicGroup: "Mammalia", MatrixType: "Exchangeability"},
		{Name: "FLU", Year: 2010, TaxonomicGroup: "Viruses", MatrixType: "Exchangeability"},
		{Name: "PAM250", Year: 1978, TaxonomicGroup: "General", MatrixType: "PAM"},
	}
}

func TestByName(t *testing.T) {
	records := testRecords()

	rec, ok := catalog.ByName(records, "FLU")
	require.True(t, ok)
	assert.Equal(t, 2010, rec.Year)

	_, ok = catalog.ByName(records, "nope")
	assert.False(t, ok)
}

func TestDistinctValues(t *testing.T) {
	records := testRecords()

	assert.Equal(t,
		[]string{"General", "Mammalia", "Viruses"},
		catalog.TaxonomicGroups(records),
	)
	assert.Equal(t,
		[]string{"Exchangeability", "PAM"},
		catalog.MatrixTypes(records),
	)
	assert.Equal(t, []int{1978, 1992, 2005, 2010}, catalog.Years(records))
}

func TestDistinctSkipsEmpty(t *testing.T) {
	records := []catalog.ModelRecord{
		{Name: "A", TaxonomicGroup: "Fungi"},
		{Name: "B", TaxonomicGroup: "  "},
	}
	assert.Equal(t, []string{"Fungi"}, catalog.TaxonomicGroups(records))
}

func TestIDIsStable(t *testing.T) {
	a := catalog.ModelRecord{Name: "WAG"}
	b := catalog.ModelRecord{Name: "WAG", Year: 2001}
	assert.Equal(t, a.ID(), b.ID(), "ID depends only on the name")
	assert.NotEmpty(t, a.ID())
}
