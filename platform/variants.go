package platform

// AndroidHost binds the guest to an Android host context.
type AndroidHost struct {
	handle any
}

// NewAndroid creates the Android variant. The handle, typically the
// application context, is kept for other platform capabilities.
func NewAndroid(handle any) AndroidHost {
	return AndroidHost{handle: handle}
}

// PlatformType always returns Android.
func (AndroidHost) PlatformType() Type { return Android }

// Handle returns the host context given to NewAndroid.
func (a AndroidHost) Handle() any { return a.handle }

// DesktopHost is the variant for desktop hosts.
type DesktopHost struct{}

// PlatformType always returns Desktop.
func (DesktopHost) PlatformType() Type { return Desktop }

// WebHost is the variant for browser hosts.
type WebHost struct{}

// PlatformType always returns Web.
func (WebHost) PlatformType() Type { return Web }

// IOSHost is the variant for iOS hosts.
type IOSHost struct{}

// PlatformType always returns IOS.
func (IOSHost) PlatformType() Type { return IOS }
