// Package drafts manages locally stored, unsent posts.
//
// ResolvePath decides where the drafts file lives: a bare filename that does not
// exist in the working directory is placed under $XDG_CACHE_HOME/threads-cli
// (falling back to ~/.cache/threads-cli), anything else is used as given. The
// file is created with an empty JSON array when missing.
//
// Store performs one read-modify-write cycle per operation against that file and
// keeps nothing in memory between calls. Writes go through a temp file and a
// rename so a crash never leaves half-written JSON behind. There is no locking:
// two processes mutating the same file concurrently can lose an update.
package drafts
