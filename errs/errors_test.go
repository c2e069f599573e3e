package errs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/slitpore/errs"
)

func TestWrapf(t *testing.T) {
	err := errs.Wrapf("Build", errs.ErrInvalidDimension, "pore_width=%g", 0.0)
	assert.EqualError(t, err, "Build: pore_width=0: errs: invalid dimension")
	assert.ErrorIs(t, err, errs.ErrInvalidDimension)
	assert.NotErrorIs(t, err, errs.ErrConfiguration)
}

func TestSentinelsAreDistinct(t *testing.T) {
	all := []error{errs.ErrInvalidDimension, errs.ErrConfiguration, errs.ErrOverQuota, errs.ErrPackingFailed}
	for i, a := range all {
		for j, b := range all {
			assert.Equal(t, i == j, errors.Is(a, b), "%v vs %v", a, b)
		}
	}
}
