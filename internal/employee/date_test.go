package employee

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"single digits", "5/3/1990", time.Date(1990, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{"double digits", "05/03/1990", time.Date(1990, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{"mixed digits", "15/3/1985", time.Date(1985, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"surrounding whitespace", "  1/1/1985 ", time.Date(1985, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{"leap day", "29/2/2000", time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"1990-03-05",
		"5/3/90",
		"32/1/1990",
		"31/2/2021",
		"29/2/2001",
		"5/13/1990",
		"5/3/1990x",
		"abc",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDate(input)
			require.Error(t, err)

			var fe *FormatError
			require.True(t, errors.As(err, &fe), "expected *FormatError, got %T", err)
			assert.Equal(t, input, fe.Input)
			assert.Contains(t, err.Error(), InputPattern)
		})
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(1990, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "05/03/1990", FormatDate(d))
}

func TestDateRoundTrip(t *testing.T) {
	for year := 1900; year <= 2030; year += 13 {
		for month := time.January; month <= time.December; month++ {
			for _, day := range []int{1, 9, 10, 28} {
				canonical := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format("02/01/2006")
				parsed, err := ParseDate(canonical)
				require.NoError(t, err, canonical)
				assert.Equal(t, canonical, FormatDate(parsed))
			}
		}
	}
}
