/*
Package weave defines the interfaces shared by all yieldweave packages:
storage, transactions, messages, handlers and the context helpers that carry
block information down the handler stack.

An application is built from extensions living under the x/ directory. Each
extension declares its messages and models, registers message handlers in a
Registry and consumes the collaborators it needs (authentication, other
extensions' controllers) through narrow interfaces passed to its
RegisterRoutes function.

We pass context through context.Context between app, decorators and
handlers. There exist two functions for every XYZ of type T that we want to
support in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)

WithXYZ may panic if the value was previously set to avoid lower-level
modules overwriting the value (eg. height, chain id).
*/
package weave
