package testutil_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octogate/pkg/utils/testutil"
)

func TestGetEnvsOrSkip(t *testing.T) {
	t.Run("returns values in key order", func(t *testing.T) {
		t.Setenv("OCTOGATE_TEST_ENV_A", "alpha")
		t.Setenv("OCTOGATE_TEST_ENV_B", "beta")

		values := testutil.GetEnvsOrSkip(t, "OCTOGATE_TEST_ENV_B", "OCTOGATE_TEST_ENV_A")
		gt.A(t, values).Length(2)
		gt.V(t, values[0]).Equal("beta")
		gt.V(t, values[1]).Equal("alpha")
		gt.V(t, testutil.GetEnvOrSkip(t, "OCTOGATE_TEST_ENV_A")).Equal("alpha")
	})

	t.Run("skips when any key is unset", func(t *testing.T) {
		t.Setenv("OCTOGATE_TEST_ENV_A", "alpha")
		t.Setenv("OCTOGATE_TEST_ENV_UNSET", "")

		var skipped, reached bool
		t.Run("integration", func(t *testing.T) {
			defer func() { skipped = t.Skipped() }()
			testutil.GetEnvsOrSkip(t, "OCTOGATE_TEST_ENV_A", "OCTOGATE_TEST_ENV_UNSET")
			reached = true
		})
		gt.True(t, skipped)
		gt.False(t, reached)
	})
}
