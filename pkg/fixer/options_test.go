package fixer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocsfix/pkg/fixer"
)

func testOptionSet() *fixer.OptionSet {
	return fixer.NewOptionSet("demo",
		fixer.Option{Name: "flag", Type: fixer.TypeBool, Default: false},
		fixer.Option{Name: "count", Type: fixer.TypeInt, Default: 1},
		fixer.Option{Name: "mode", Type: fixer.TypeString, Default: "one", AllowedValues: []string{"one", "none"}},
		fixer.Option{Name: "items", Type: fixer.TypeStringList, Default: []string{"a"}, AllowedValues: []string{"a", "b"}},
		fixer.Option{
			Name:    "map",
			Type:    fixer.TypeStringMap,
			Default: map[string]string{"x": "y"},
			Normalize: func(v any) (any, error) {
				m := v.(map[string]string)
				out := make(map[string]string, len(m))
				for k, val := range m {
					if val == "" {
						return nil, errors.New("empty target")
					}
					out[strings.ToLower(k)] = val
				}
				return out, nil
			},
		},
	)
}

func TestOptionSet_Resolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     map[string]any
		check   func(t *testing.T, v fixer.Values)
		wantErr string
	}{
		{
			name: "defaults",
			raw:  nil,
			check: func(t *testing.T, v fixer.Values) {
				assert.False(t, v.Bool("flag"))
				assert.Equal(t, 1, v.Int("count"))
				assert.Equal(t, "one", v.String("mode"))
				assert.Equal(t, []string{"a"}, v.Strings("items"))
				assert.Equal(t, map[string]string{"x": "y"}, v.StringMap("map"))
			},
		},
		{
			name: "decoded values are coerced",
			raw: map[string]any{
				"count": float64(3),
				"items": []any{"b", "a"},
				"map":   map[string]any{"K": "v"},
			},
			check: func(t *testing.T, v fixer.Values) {
				assert.Equal(t, 3, v.Int("count"))
				assert.Equal(t, []string{"b", "a"}, v.Strings("items"))
				assert.Equal(t, map[string]string{"k": "v"}, v.StringMap("map"))
			},
		},
		{
			name:  "int64 from toml",
			raw:   map[string]any{"count": int64(7)},
			check: func(t *testing.T, v fixer.Values) { assert.Equal(t, 7, v.Int("count")) },
		},
		{name: "unknown key", raw: map[string]any{"bogus": 1}, wantErr: `option "bogus": unknown option, expected one of count, flag, items, map, mode`},
		{name: "wrong type", raw: map[string]any{"flag": "yes"}, wantErr: "expected bool, got string"},
		{name: "fractional int", raw: map[string]any{"count": 1.5}, wantErr: "expected int"},
		{name: "not allowed", raw: map[string]any{"mode": "two"}, wantErr: `value "two" is not allowed`},
		{name: "list item not allowed", raw: map[string]any{"items": []any{"c"}}, wantErr: `value "c" is not allowed`},
		{name: "list item wrong type", raw: map[string]any{"items": []any{1}}, wantErr: "item 0 is int"},
		{name: "normalize rejects", raw: map[string]any{"map": map[string]any{"a": ""}}, wantErr: "empty target"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := testOptionSet().Resolve(tt.raw)
			if tt.wantErr != "" {
				require.ErrorIs(t, err, fixer.ErrInvalidConfiguration)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.True(t, strings.HasPrefix(err.Error(), "[demo]"), err.Error())
				return
			}
			require.NoError(t, err)
			tt.check(t, v)
		})
	}
}

func TestOptionSet_Required(t *testing.T) {
	t.Parallel()

	set := fixer.NewOptionSet("demo", fixer.Option{Name: "target", Type: fixer.TypeString})
	_, err := set.Resolve(nil)

	var ce *fixer.ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "target", ce.Option)
	assert.Equal(t, "missing required option", ce.Msg)
}

func TestOptionSet_DefaultsAreCopies(t *testing.T) {
	t.Parallel()

	set := testOptionSet()
	v, err := set.Resolve(nil)
	require.NoError(t, err)
	v.Strings("items")[0] = "mutated"

	assert.Equal(t, []string{"a"}, set.Defaults()["items"])
}

func TestOptionSet_DuplicatePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		fixer.NewOptionSet("demo",
			fixer.Option{Name: "a", Type: fixer.TypeBool, Default: true},
			fixer.Option{Name: "a", Type: fixer.TypeBool, Default: false},
		)
	})
}

func TestConfigurator_KeepsPreviousOnError(t *testing.T) {
	t.Parallel()

	f := newOptionFake()
	assert.Equal(t, "$new", f.Values().String("to"))

	require.NoError(t, f.Configure(map[string]any{"to": "$x"}))
	require.Error(t, f.Configure(map[string]any{"to": 1}))
	assert.Equal(t, "$x", f.Values().String("to"))

	require.NoError(t, f.Configure(nil))
	assert.Equal(t, "$new", f.Values().String("to"))
}
