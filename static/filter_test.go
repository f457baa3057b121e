package static

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	open := &Middleware{config: Config{}}
	filtered := &Middleware{config: Config{
		Only:         []string{"static.txt", "nested/app.css"},
		OnlyMatching: []string{"file"},
	}}

	tests := []struct {
		name     string
		m        *Middleware
		segments []string
		want     bool
	}{
		{name: "no_filters_allows_all", m: open, segments: []string{"anything", "goes.txt"}, want: true},
		{name: "no_filters_allows_root", m: open, segments: nil, want: true},
		{name: "exact_match", m: filtered, segments: []string{"static.txt"}, want: true},
		{name: "exact_match_nested", m: filtered, segments: []string{"nested", "app.css"}, want: true},
		{name: "basename_fragment", m: filtered, segments: []string{"myfile.css"}, want: true},
		{name: "basename_fragment_nested", m: filtered, segments: []string{"deep", "profile.js"}, want: true},
		{name: "fragment_only_in_dir", m: filtered, segments: []string{"file", "other.txt"}, want: false},
		{name: "no_match", m: filtered, segments: []string{"other.txt"}, want: false},
		{name: "root_with_filters", m: filtered, segments: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.allowed(tt.segments))
		})
	}
}
