// Package search runs the bounded cross-index search over components and
// stories.
package search

import (
	"bytes"
	"strings"

	"dsmcp/internal/catalog"
	"dsmcp/internal/repopaths"
	"dsmcp/pkg/fileops"
)

// Kind tags the index a hit came from.
type Kind string

const (
	KindComponent Kind = "component"
	KindStory     Kind = "story"
)

// Match tells how a hit was found.
type Match string

const (
	MatchID     Match = "id"
	MatchSource Match = "source"
	MatchName   Match = "name"
)

// Hit is one search result. Component hits carry ID, story hits carry Name.
type Hit struct {
	Kind     Kind   `json:"kind"`
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	FilePath string `json:"filePath"`
	Match    Match  `json:"match"`
}

// FileReader reads component sources for includeSource searches.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// DiskReader reads indexed files with fileops.ReadIndexed.
type DiskReader struct{}

func (DiskReader) ReadFile(path string) ([]byte, error) {
	return fileops.ReadIndexed(path)
}

type options struct {
	reader FileReader
}

// Option configures a Search call.
type Option func(*options)

// WithReader replaces the reader used for source matching.
func WithReader(r FileReader) Option {
	return func(o *options) {
		o.reader = r
	}
}

// Search matches query case-insensitively against component ids and stems,
// optionally component sources, then story names. It stops as soon as limit
// hits are collected. A component matching on both id and source yields two
// hits. A component whose source cannot be read is only matched on its id.
func Search(paths repopaths.RepoPaths, query string, limit int, includeSource bool, opts ...Option) ([]Hit, error) {
	hits := []Hit{}
	if limit < 1 {
		return hits, nil
	}

	o := options{reader: DiskReader{}}
	for _, opt := range opts {
		opt(&o)
	}

	needle := strings.ToLower(query)

	components, err := catalog.ListComponents(paths)
	if err != nil {
		return nil, err
	}
	for _, c := range components {
		if len(hits) >= limit {
			return hits, nil
		}
		if strings.Contains(strings.ToLower(c.ID), needle) || strings.Contains(strings.ToLower(c.FileStem), needle) {
			hits = append(hits, Hit{Kind: KindComponent, ID: c.ID, FilePath: c.FilePath, Match: MatchID})
			if len(hits) >= limit {
				return hits, nil
			}
		}
		if !includeSource {
			continue
		}
		source, err := o.reader.ReadFile(c.FilePath)
		if err != nil {
			continue
		}
		if bytes.Contains(bytes.ToLower(source), []byte(needle)) {
			hits = append(hits, Hit{Kind: KindComponent, ID: c.ID, FilePath: c.FilePath, Match: MatchSource})
		}
	}

	if len(hits) >= limit {
		return hits, nil
	}

	stories, err := catalog.ListStories(paths)
	if err != nil {
		return nil, err
	}
	for _, s := range stories {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			hits = append(hits, Hit{Kind: KindStory, Name: s.Name, FilePath: s.FilePath, Match: MatchName})
			if len(hits) >= limit {
				break
			}
		}
	}
	return hits, nil
}
