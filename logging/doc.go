/*
Package logging routes leveled, tagged, printf-style log messages from engine
guests to the host's logging backend.

Until the host backend is reachable, every message is written to the console
as "<LEVEL>: <tag>\t<message>", followed by the stack trace of any attached
error. The first call that finds the backend ready copies the logger's
threshold to the backend once, and from then on messages are forwarded to the
backend instead of the console.

Logging never fails the caller. Messages below the threshold are dropped
before any formatting, a level outside DEBUG..ERROR is reported as an ERROR
entry ("Invalid log level:<n>") in place of the original message, and a
format string that does not match its arguments is logged verbatim.

The package-level functions use a process-wide Logger. Components that want
their own lifecycle create one with New:

	log, _ := logging.New(logging.Config{SDKConfig: sdk.Config()})
	log.SetLevel(logging.LevelDebug)
	log.Infof("Assets", "loaded %d textures", n)
*/
package logging
