// Package source provides byte-source implementations for the playback
// pipeline. Currently: files on local storage.
package source
