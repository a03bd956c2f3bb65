package postgre

import (
	"testing"

	repo "bookme/internal/eventtype/repository"
)

func TestBuildGetOneQuery(t *testing.T) {
	r := &implRepository{}
	tests := []struct {
		name     string
		opt      repo.GetOneEventTypeOptions
		wantMods string
		wantArgs int
	}{
		{name: "No filters", opt: repo.GetOneEventTypeOptions{}, wantMods: "1=1", wantArgs: 0},
		{name: "By slug", opt: repo.GetOneEventTypeOptions{Slug: "intro-call"}, wantMods: "slug = $1", wantArgs: 1},
		{name: "By id and name", opt: repo.GetOneEventTypeOptions{ID: "1", Name: "Intro"}, wantMods: "id = $1 AND name = $2", wantArgs: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mods, args := r.buildGetOneQuery(tt.opt)
			if mods != tt.wantMods || len(args) != tt.wantArgs {
				t.Errorf("got %q %v", mods, args)
			}
		})
	}
}

func TestBuildListQuery(t *testing.T) {
	r := &implRepository{}

	mods, args := r.buildListQuery(repo.ListEventTypesOptions{Limit: 20, Offset: 40, OrderBy: "name ASC"})
	if mods != "ORDER BY name ASC LIMIT $1 OFFSET $2" || len(args) != 2 {
		t.Errorf("got %q %v", mods, args)
	}

	mods, _ = r.buildListQuery(repo.ListEventTypesOptions{OrderBy: "1; DROP TABLE event_types"})
	if mods != "ORDER BY created_at DESC" {
		t.Errorf("expected default ordering for unknown column, got %q", mods)
	}
}
