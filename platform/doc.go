/*
Package platform reports which host environment the guest is running in.

Code that has to branch on the host (an Android application, a desktop
window, a browser, an iOS app) asks an Identifier for its Type instead of
probing the environment itself. Each host gets its own variant, and each
variant answers with a fixed Type for its whole lifetime.

Host picks the variant that matches the build target:

	id := platform.Host(appContext)
	if id.PlatformType() == platform.Android {
		// Android-only behaviour
	}

The handle given to Host or NewAndroid is retained for other platform
capabilities and is never inspected here.
*/
package platform
