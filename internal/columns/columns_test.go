package columns

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnTypeValid(t *testing.T) {
	assert.True(t, TypeFree.Valid())
	assert.True(t, TypeDropdown.Valid())
	assert.False(t, ColumnType("").Valid())
	assert.False(t, ColumnType("number").Valid())
}

func TestCleanOptions(t *testing.T) {
	cases := []struct {
		input    []string
		expected []string
	}{
		{[]string{"A", " ", "B", ""}, []string{"A", "B"}},
		{[]string{" x ", "y"}, []string{"x", "y"}},
		{[]string{"", "  "}, []string{}},
		{nil, []string{}},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, CleanOptions(c.input), "CleanOptions(%q)", c.input)
	}
}

func TestCustomColumnJSON(t *testing.T) {
	free, err := json.Marshal(CustomColumn{Name: "Notes", Type: TypeFree, Options: []string{"stale"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Notes","type":"free"}`, string(free))

	dropdown, err := json.Marshal(CustomColumn{Name: "Region", Type: TypeDropdown, Options: []string{"A", "B"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Region","type":"dropdown","options":["A","B"]}`, string(dropdown))

	empty, err := json.Marshal(CustomColumn{Name: "Rank", Type: TypeDropdown})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Rank","type":"dropdown","options":[]}`, string(empty))
}

func TestCustomColumnUnmarshal(t *testing.T) {
	var c CustomColumn
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Region","type":"dropdown","options":["A"]}`), &c))
	assert.Equal(t, CustomColumn{Name: "Region", Type: TypeDropdown, Options: []string{"A"}}, c)
}

func TestCatalog(t *testing.T) {
	assert.Len(t, RequiredColumns, 5)
	assert.Len(t, DynamicCatalog, 6)

	for _, key := range []string{"prefecture", "address", "email", "inflow_date", "inflow_source", "list_name"} {
		assert.True(t, IsCatalogKey(key), key)
	}
	assert.False(t, IsCatalogKey("industry"))

	c, ok := Lookup("prefecture")
	require.True(t, ok)
	assert.Equal(t, "県域", c.Header)
}

func TestHeaderRow(t *testing.T) {
	headers := HeaderRow(
		[]string{"email", "prefecture", "unknown"},
		[]CustomColumn{{Name: "備考", Type: TypeFree}},
	)

	assert.Equal(t, []string{
		"顧客法人名", "担当者名（姓）", "担当者名（名）", "電話番号", "業種",
		"メールアドレス", "県域", "unknown", "備考",
	}, headers)
}
