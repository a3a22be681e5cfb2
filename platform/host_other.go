//go:build !android && !ios && !js

package platform

// Host returns the desktop variant. The handle is ignored.
func Host(_ any) Identifier {
	return DesktopHost{}
}
