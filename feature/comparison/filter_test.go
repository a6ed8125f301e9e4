package comparison_test

import (
	"testing"

	"github.com/ThomasBonnelye/invader-comparator/feature/comparison"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	results := map[string][]string{
		"Jace":   {"LY_07", "PA_1125", "PA_42"},
		"Vraska": {"NY_042"},
		"Ghost":  {},
	}

	t.Run("CaseInsensitiveSubstring", func(t *testing.T) {
		got := comparison.Filter(results, "pa_")
		assert.Equal(t, map[string][]string{
			"Jace":   {"PA_1125", "PA_42"},
			"Vraska": {},
			"Ghost":  {},
		}, got)
	})

	t.Run("EmptyTermReturnsUnchanged", func(t *testing.T) {
		assert.Equal(t, results, comparison.Filter(results, ""))
		assert.Equal(t, results, comparison.Filter(results, "   "))
	})

	t.Run("NoMatchesKeepsKeySet", func(t *testing.T) {
		got := comparison.Filter(results, "zzz")
		assert.Len(t, got, 3)
		for _, list := range got {
			assert.Empty(t, list)
		}
	})

	t.Run("PreservesOrder", func(t *testing.T) {
		got := comparison.Filter(results, "LY")
		// "1125" does not contain "ly"; only LY_07 survives for Jace
		assert.Equal(t, []string{"LY_07"}, got["Jace"])
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		_ = comparison.Filter(results, "pa_")
		assert.Equal(t, []string{"LY_07", "PA_1125", "PA_42"}, results["Jace"])
	})
}
