/*
Package x contains the extensions used to build a yieldweave application.

Extensions implement common functionality (Handler, Decorator,
etc.) and can be combined together to construct an application.
Collaborators that an extension depends on, such as authentication, are
declared here as narrow interfaces and passed into the extension
constructors.
*/
package x
