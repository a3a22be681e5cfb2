//go:build ios

package platform

// Host returns the iOS variant. The handle is ignored.
func Host(_ any) Identifier {
	return IOSHost{}
}
