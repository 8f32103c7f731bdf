package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) Date {
	t.Helper()
	d, err := ParseDate(value)
	require.NoError(t, err)
	return d
}

func TestDateScan(t *testing.T) {
	want := "2022-10-11"
	inputs := []any{
		time.Date(2022, 10, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2022, 10, 11, 23, 59, 0, 0, time.UTC),
		"2022-10-11",
		"2022-10-11T00:00:00Z",
		[]byte("2022-10-11 00:00:00"),
	}
	for _, input := range inputs {
		var d Date
		require.NoError(t, d.Scan(input), "%v", input)
		assert.Equal(t, want, d.String())
	}
}

func TestDateScanRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, d.Scan(42))
	assert.Error(t, d.Scan("10/11"))
	assert.Error(t, d.Scan("2022-13-40"))
}

func TestDateValue(t *testing.T) {
	v, err := mustDate(t, "2022-10-03").Value()
	require.NoError(t, err)
	assert.Equal(t, "2022-10-03", v)
}

func TestNullDateScanAndValue(t *testing.T) {
	var n NullDate
	require.NoError(t, n.Scan(nil))
	assert.False(t, n.Valid)
	v, err := n.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, n.Scan("2022-10-03"))
	assert.True(t, n.Valid)
	v, err = n.Value()
	require.NoError(t, err)
	assert.Equal(t, "2022-10-03", v)
}

func TestInvoiceJSONUsesDateLayout(t *testing.T) {
	inv := Invoice{
		ID:       1,
		CompCode: "peachpie",
		Amt:      45.44,
		Paid:     false,
		AddDate:  mustDate(t, "2022-10-11"),
	}
	body, err := json.Marshal(inv)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1,
		"comp_code": "peachpie",
		"amt": 45.44,
		"paid": false,
		"add_date": "2022-10-11",
		"paid_date": null
	}`, string(body))

	var decoded Invoice
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "2022-10-11", decoded.AddDate.String())
	assert.False(t, decoded.PaidDate.Valid)

	inv.PaidDate = NewNullDate(mustDate(t, "2022-10-20"))
	body, err = json.Marshal(inv)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"paid_date":"2022-10-20"`)
}

func TestDateOfDropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	d := DateOf(time.Date(2023, 3, 1, 1, 30, 0, 0, loc))
	assert.Equal(t, "2023-03-01", d.String())
	assert.True(t, d.Equal(mustDate(t, "2023-03-01")))
}
