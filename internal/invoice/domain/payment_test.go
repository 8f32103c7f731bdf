package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePaidDate(t *testing.T) {
	today := mustDate(t, "2024-05-17")
	earlier := NewNullDate(mustDate(t, "2022-10-03"))

	cases := []struct {
		name       string
		current    NullDate
		paid       bool
		want       NullDate
		transition PaymentTransition
	}{
		{"unpaid becomes paid", NullDate{}, true, NewNullDate(today), TransitionMarkPaid},
		{"paid becomes unpaid", earlier, false, NullDate{}, TransitionMarkUnpaid},
		{"unpaid stays unpaid", NullDate{}, false, NullDate{}, TransitionKeepUnpaid},
		{"paid stays paid", earlier, true, earlier, TransitionKeepPaid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, transition := ResolvePaidDate(tc.current, tc.paid, today)
			assert.Equal(t, tc.want.Valid, got.Valid)
			if tc.want.Valid {
				assert.True(t, tc.want.Date.Equal(got.Date))
			}
			assert.Equal(t, tc.transition, transition)
		})
	}
}

func TestResolvePaidDateDoesNotRefreshPaidDate(t *testing.T) {
	first, _ := ResolvePaidDate(NullDate{}, true, mustDate(t, "2024-05-17"))
	second, transition := ResolvePaidDate(first, true, mustDate(t, "2024-06-01"))

	assert.Equal(t, TransitionKeepPaid, transition)
	assert.Equal(t, "2024-05-17", second.Date.String())

	cleared, _ := ResolvePaidDate(second, false, mustDate(t, "2024-06-02"))
	assert.False(t, cleared.Valid)
}
