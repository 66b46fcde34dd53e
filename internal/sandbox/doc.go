// Package sandbox drops the privileges of the pal CLI on OpenBSD before it
// starts probing.
//
// The probes need very little: reading a few files, creating and deleting
// ephemeral files in the temp directory, and talking to the terminal. On
// OpenBSD this package restricts the process to exactly that using:
//
//   - pledge(2): only the promises below are kept for the rest of the run.
//
//   - unveil(2): only the paths below stay visible; everything else
//     disappears once unveil is locked.
//
// # Pledge Promises
//
//   - stdio: Basic I/O, getpid, clock_gettime, isatty ioctls
//   - rpath: Reading the executable path and timezone data
//   - wpath: Writing ephemeral and log files
//   - cpath: Creating and unlinking ephemeral files, rotating logs
//   - tty:   Terminal queries for styled output
//
// # Unveiled Paths
//
//   - temp dir (rwc):           ephemeral files
//   - log dir (rwc):            only when logging to a file
//   - executable (r):           executable path resolution
//   - /dev/tty, /dev/null (rw): terminal access
//   - /usr/share/zoneinfo, /etc/localtime (r): log timestamps
//
// On other platforms Init and Shutdown are no-ops.
package sandbox
