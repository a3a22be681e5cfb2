//go:build android

package platform

// Host returns the Android variant bound to handle.
func Host(handle any) Identifier {
	return NewAndroid(handle)
}
