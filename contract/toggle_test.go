package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestTruthyTokens(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		value string
		want  bool
	}{
		"one":              {value: "1", want: true},
		"true":             {value: "true", want: true},
		"yes":              {value: "yes", want: true},
		"uppercase TRUE":   {value: "TRUE", want: true},
		"mixed case Yes":   {value: "Yes", want: true},
		"padded":           {value: " true ", want: true},
		"empty":            {value: "", want: false},
		"zero":             {value: "0", want: false},
		"false":            {value: "false", want: false},
		"on is not truthy": {value: "on", want: false},
		"garbage":          {value: "enabled", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tt := tt
			t.Parallel()
			assert.Equal(t, tt.want, truthy(tt.value))
		})
	}
}

func TestEnableDisable(t *testing.T) {
	defer Disable()

	Enable()
	assert.True(t, Enabled())
	Disable()
	assert.False(t, Enabled())
	Enable()
	assert.True(t, Enabled())
}

// Concurrent toggling and checking must be race-free: the toggle is an
// atomic, a deliberate strengthening over the original shared flag.
func TestToggleConcurrentAccess(t *testing.T) {
	defer Disable()

	c := New("concurrent", func(int) (int, error) { return 0, nil }).
		WithPrecondition(Pred(func(int) bool { return true }))

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 1000; j++ {
				Enable()
				Enabled()
				Disable()
			}
			return nil
		})
		g.Go(func() error {
			for j := 0; j < 1000; j++ {
				if _, err := c.Call(j); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
