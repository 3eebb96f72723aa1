/*
Package gconf implements a configuration store intended to be used as a
global, in-database configuration.

Each extension keeps a single configuration entity, stored under the
"_c:<package name>" key. The configuration can be loaded from the genesis
file using InitConfig and later read using Load.
*/
package gconf
