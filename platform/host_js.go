//go:build js

package platform

// Host returns the browser variant. The handle is ignored.
func Host(_ any) Identifier {
	return WebHost{}
}
