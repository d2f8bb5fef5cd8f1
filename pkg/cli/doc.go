// Package cli is a minimal framework for single-command programs such as numf. A [Command] owns a
// [flag.FlagSet]; [Parse] accepts flags anywhere among the positional arguments, understands
// bundled one-letter bool flags ("-xp" is "-x -p") and stops at "--". [Run] hands the command a
// [State] with the remaining arguments and its I/O streams.
package cli
