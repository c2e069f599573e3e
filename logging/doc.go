// Package logging is the structured logging seam of slitpore.
//
// Library packages depend on the Logger interface only; the zap-backed
// implementation is selected by the command-line front end. The builder
// defaults to NewNopLogger and logs construction stages at Debug.
package logging
