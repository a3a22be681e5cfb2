package platform

import "strconv"

// Type identifies a host environment.
type Type int

const (
	// Unknown is the zero value and is never returned by a variant.
	Unknown Type = iota

	// Android is an Android application hosting the engine.
	Android

	// Desktop is a desktop window (Linux, macOS, Windows).
	Desktop

	// Web is a browser page.
	Web

	// IOS is an iOS application.
	IOS
)

var typeNames = map[Type]string{
	Unknown: "UNKNOWN",
	Android: "ANDROID",
	Desktop: "DESKTOP",
	Web:     "WEB",
	IOS:     "IOS",
}

// String returns the upper-case platform tag, e.g. "ANDROID".
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// Identifier answers which platform the guest is running on.
type Identifier interface {
	// PlatformType returns the fixed tag of the variant.
	PlatformType() Type
}

// Ensure every variant satisfies Identifier at compile time.
var (
	_ Identifier = AndroidHost{}
	_ Identifier = DesktopHost{}
	_ Identifier = WebHost{}
	_ Identifier = IOSHost{}
)
