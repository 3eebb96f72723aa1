/*
Package app contains the pieces needed to assemble an application out of
extensions: a Router dispatching messages to their handlers by path, a
decorator chain builder, genesis loading and a BaseApp that binds the whole
stack to the tendermint ABCI interface.

A BaseApp is built around a CacheableKVStore supplied by the host. Every
block is processed in a deliver cache that is written to the host store on
Commit, while CheckTx runs against a separate cache that is discarded.
*/
package app
