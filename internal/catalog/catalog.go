// Package catalog builds the design-system indices: components, Storybook
// stories and markdown docs.
//
// Every function rebuilds its index from disk on each call. Nothing is cached
// and nothing is shared between calls, so concurrent callers only ever read.
// A missing source directory yields an empty index rather than an error.
package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sourceExtensions are the TypeScript extensions indexed for components and stories.
var sourceExtensions = []string{".ts", ".tsx"}

// sortByKey sorts items ascending by key using root-locale collation, falling
// back to byte order when the collator considers two keys equal. The sort is
// stable so equal keys keep walk order.
func sortByKey[T any](items []T, key func(T) string) {
	// Collators keep internal buffers and are not safe to share.
	c := collate.New(language.Und)
	sort.SliceStable(items, func(i, j int) bool {
		a, b := key(items[i]), key(items[j])
		if r := c.CompareString(a, b); r != 0 {
			return r < 0
		}
		return a < b
	})
}
