/*
Package sigs provides basic authentication
middleware to verify the ed25519 signatures on the transaction,
and maintain sequences for replay protection.

Every successfully verified signature is exposed to the rest of the
handler stack as a signature condition, through the Authenticate
implementation of x.Authenticator.
*/
package sigs
