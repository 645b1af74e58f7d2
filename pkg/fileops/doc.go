// Package fileops provides the read-only file primitives the indexers build
// on: an ordered recursive walk with subtree pruning, and reads of walked files.
//
// # Walking
//
// Walk visits a directory tree in lexical order and reports every file as its
// absolute path plus the ordered segments of its path relative to the root.
// An IgnoreFunc sees each entry before it is visited; returning true for a
// directory skips the whole subtree without reading it.
//
//	entries, err := fileops.Walk(componentsDir, fileops.WalkOptions{
//	    IncludeExtensions: []string{".ts", ".tsx"},
//	    Ignore: func(rel []string, isDir bool) bool {
//	        return rel[0] == "ui"
//	    },
//	})
//
// Symlinks are reported as whatever the directory listing says they are and
// are never followed.
//
// # Reading
//
// ReadIndexed returns a walked file's exact contents. It follows symlinks and
// applies no size cap, so anything the walk lists can be read back.
package fileops
