// Package errors provides the structured error type used across rpg-chargen.
//
// Errors carry a code, a user-facing message, an optional cause and metadata:
//
//	err := errors.NotFoundf("character %d not found", id)
//	err := errors.OutOfRangef("dice count must be between %d and %d", 1, 100)
//
// Wrapping keeps the code of the wrapped error so a repository NotFound
// still reaches the HTTP layer as a 404:
//
//	if err != nil {
//	    return nil, errors.Wrap(err, "failed to get character")
//	}
//
// Validation failures are collected with a ValidationBuilder and returned
// as a single InvalidArgument error:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("nome", c.Name, vb)
//	errors.ValidateRange("nivel", c.Level, 1, 20, vb)
//	return vb.Build()
//
// # Layer guidelines
//
// Repository layer:
//   - Return NotFound for missing rows, wrap driver errors (code INTERNAL)
//
// Orchestrator layer:
//   - Validate inputs (InvalidArgument, OutOfRange)
//   - Wrap repository errors with business context
//
// Handler layer:
//   - Render with WriteHTTP, which hides internal messages from clients
package errors
