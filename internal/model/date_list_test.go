package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-14"`), &d))
	assert.Equal(t, "2025-03-14", d.String())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2025-03-14"`, string(out))
}

func TestDateJSON_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not a string", input: `20250314`},
		{name: "timestamp", input: `"2025-03-14T10:00:00Z"`},
		{name: "bad month", input: `"2025-13-01"`},
		{name: "garbage", input: `"next tuesday"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			assert.Error(t, json.Unmarshal([]byte(tt.input), &d))
		})
	}
}

func TestDateListValueAndScan(t *testing.T) {
	first, err := ParseDate("2025-01-02")
	require.NoError(t, err)
	second, err := ParseDate("2025-02-03")
	require.NoError(t, err)

	list := DateList{first, second}
	v, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, `["2025-01-02","2025-02-03"]`, v)

	t.Run("scan string", func(t *testing.T) {
		var got DateList
		require.NoError(t, got.Scan(v))
		assert.Equal(t, []string{"2025-01-02", "2025-02-03"}, []string{got[0].String(), got[1].String()})
	})

	t.Run("scan bytes", func(t *testing.T) {
		var got DateList
		require.NoError(t, got.Scan([]byte(`["2024-12-31"]`)))
		require.Len(t, got, 1)
		assert.Equal(t, "2024-12-31", got[0].String())
	})

	t.Run("scan nil", func(t *testing.T) {
		got := DateList{first}
		require.NoError(t, got.Scan(nil))
		assert.Nil(t, got)
	})

	t.Run("scan unsupported type", func(t *testing.T) {
		var got DateList
		assert.Error(t, got.Scan(42))
	})
}

func TestDateListNilValue(t *testing.T) {
	var list DateList
	v, err := list.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestStringListValueAndScan(t *testing.T) {
	list := StringList{"Beginner", "Expert, senior", `Say "hi"`}
	v, err := list.Value()
	require.NoError(t, err)

	var got StringList
	require.NoError(t, got.Scan(v))
	assert.Equal(t, list, got)
}
