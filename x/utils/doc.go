/*
Package utils provides decorators shared by every application stack:
panic recovery, logging, atomic savepoints and message path tagging.
*/
package utils
