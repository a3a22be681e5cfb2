/*
Package sdk provides the entry point and runtime configuration for engine
guests running on a host through waPC.

New registers the guest handler and resolves the host platform. The resulting
RuntimeConfig is shared by capability clients (see the logging package).
DefaultNamespace is used when a namespace is not explicitly provided.
*/
package sdk
