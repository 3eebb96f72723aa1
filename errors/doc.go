/*
Package errors implements the error model shared by all yieldweave packages.

Each failure is categorized by a root error declared with Register. Root
errors carry an ABCI code so that clients can tell failures apart without
parsing messages. Extensions reuse the root errors declared here whenever
possible and register their own codes only for failures that are specific to
their domain, for example

	var ErrInvalidStatus = errors.Register(1203, "invalid status")

Always create an error instance at the point of failure, using Wrap or Wrapf:

	return errors.Wrap(errors.ErrNotFound, "strategy")

The innermost wrap attaches a stack trace. Once an error is created, use
fmt.Printf and friends to get more context:

	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created

To test the kind of an error, use the Is method of the root error:

	if errors.ErrNotFound.Is(err) { ... }
*/
package errors
