// Package errors provides coded, categorized errors for the tally CLI,
// configuration loader and live server.
//
// Every error code is registered with a category, a message and a longer
// detail:
//
//	err := errors.New("T102").
//	    WithDetail("line 3: unexpected '}'").
//	    Wrap(parseErr)
//
// Format renders an error for the terminal; FormatJSON is used for the
// error frames the live server sends to clients.
//
// Error code ranges:
//   - T101-T199: configuration
//   - T201-T299: CLI
//   - T301-T399: live protocol
//   - T401-T499: runtime
package errors
