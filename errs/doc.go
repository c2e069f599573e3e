// Package errs defines the error taxonomy of the slit-pore construction
// engine: ErrInvalidDimension, ErrConfiguration, ErrOverQuota and
// ErrPackingFailed. Every package in the module wraps one of these with
// method context, so a single errors.Is check classifies any failure.
package errs
