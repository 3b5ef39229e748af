package spinner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntCodec_Parse(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"12", 12, false},
		{"  42 ", 42, false},
		{"12.6", 13, false},
		{"12.5", 13, false},
		{"12.4", 12, false},
		{"-3", -3, false},
		{"7,5", 8, false},
		{"", 0, true},
		{"abc", 0, true},
		{"1.2.3", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"1e300", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := IntCodec{}.Parse(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNotANumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFloatCodec_Parse(t *testing.T) {
	c := FloatCodec{Precision: 2}

	got, err := c.Parse("1,25")
	require.NoError(t, err)
	assert.Equal(t, 1.25, got)

	_, err = c.Parse("ratio")
	require.ErrorIs(t, err, ErrNotANumber)
}

func TestFloatCodec_Format(t *testing.T) {
	tests := []struct {
		precision int
		value     float64
		want      string
	}{
		{2, 1.5, "1.50"},
		{2, 1.875, "1.88"},
		{3, 1.875, "1.875"},
		{0, 2.4, "2"},
	}

	for _, tt := range tests {
		got := FloatCodec{Precision: tt.precision}.Format(tt.value)
		assert.Equal(t, tt.want, got)
	}
}

func TestFloatCodec_Normalize(t *testing.T) {
	c := FloatCodec{Precision: 2}

	assert.Equal(t, 1.6, c.Normalize(1.5+0.1))
	assert.Equal(t, 0.3, c.Normalize(0.1+0.2))
	assert.Equal(t, 2.0, c.Normalize(1.999))
}

func TestIntCodec_Format(t *testing.T) {
	assert.Equal(t, "15", IntCodec{}.Format(15))
	assert.Equal(t, 15, IntCodec{}.Normalize(15))
}
