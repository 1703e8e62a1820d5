package gitops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func TestBuildArgs_Baselines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  Request
		want []string
	}{
		{"init", &InitRequest{}, []string{"init"}},
		{"clone", &CloneRequest{URL: "https://example.com/r.git"}, []string{"clone", "https://example.com/r.git", "--recursive"}},
		{"status", &StatusRequest{}, []string{"status"}},
		{"add", &AddRequest{}, []string{"add", "."}},
		{"commit", &CommitRequest{Message: "x"}, []string{"commit", "-m", "x"}},
		{"push", &PushRequest{}, []string{"push", "origin"}},
		{"pull", &PullRequest{}, []string{"pull", "origin"}},
		{"branch", &BranchRequest{}, []string{"branch"}},
		{"checkout", &CheckoutRequest{Branch: "main"}, []string{"checkout", "main"}},
		{"merge", &MergeRequest{Branch: "feature"}, []string{"merge", "feature"}},
		{"log", &LogRequest{}, []string{"log", "-10"}},
		{"diff", &DiffRequest{}, []string{"diff"}},
		{"stash", &StashRequest{}, []string{"stash", "push"}},
		{"remote", &RemoteRequest{}, []string{"remote"}},
		{"tag", &TagRequest{}, []string{"tag"}},
		{"reset", &ResetRequest{}, []string{"reset", "--mixed", "HEAD"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := BuildArgs(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildArgs_FlagMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  Request
		want []string
	}{
		{
			"init with branch, bare and path",
			&InitRequest{InitialBranch: "main", Bare: true, Path: "/tmp/repo"},
			[]string{"init", "--initial-branch=main", "--bare", "/tmp/repo"},
		},
		{
			"clone with everything",
			&CloneRequest{URL: "u", Path: "dst", Branch: "dev", Depth: 1},
			[]string{"clone", "u", "dst", "--branch", "dev", "--depth", "1", "--recursive"},
		},
		{
			"clone recursive disabled",
			&CloneRequest{URL: "u", Recursive: boolPtr(false)},
			[]string{"clone", "u"},
		},
		{
			"clone recursive explicit true",
			&CloneRequest{URL: "u", Recursive: boolPtr(true)},
			[]string{"clone", "u", "--recursive"},
		},
		{
			"status all flags",
			&StatusRequest{Short: true, Branch: true, Porcelain: true},
			[]string{"status", "--short", "--branch", "--porcelain"},
		},
		{
			"add all wins over update and files",
			&AddRequest{All: true, Update: true, Files: []string{"a"}},
			[]string{"add", "--all"},
		},
		{
			"add update wins over files",
			&AddRequest{Update: true, Files: []string{"a"}},
			[]string{"add", "--update"},
		},
		{
			"add explicit files",
			&AddRequest{Files: []string{"a.go", "dir/b.go"}},
			[]string{"add", "a.go", "dir/b.go"},
		},
		{
			"commit full",
			&CommitRequest{Message: "m", All: true, Amend: true, Author: "A <a@b.c>"},
			[]string{"commit", "-m", "m", "--all", "--amend", "--author=A <a@b.c>"},
		},
		{
			"push full",
			&PushRequest{Remote: "upstream", Branch: "dev", Force: true, SetUpstream: true, Tags: true},
			[]string{"push", "--force", "--set-upstream", "--tags", "upstream", "dev"},
		},
		{
			"pull rebase with branch",
			&PullRequest{Rebase: true, Branch: "dev"},
			[]string{"pull", "--rebase", "origin", "dev"},
		},
		{
			"pull ff false",
			&PullRequest{Ff: boolPtr(false)},
			[]string{"pull", "--no-ff", "origin"},
		},
		{
			"pull ff true",
			&PullRequest{Ff: boolPtr(true)},
			[]string{"pull", "--ff", "origin"},
		},
		{
			"branch create",
			&BranchRequest{Action: "create", Name: "dev"},
			[]string{"branch", "dev"},
		},
		{
			"branch delete",
			&BranchRequest{Action: "delete", Name: "dev"},
			[]string{"branch", "-d", "dev"},
		},
		{
			"branch rename",
			&BranchRequest{Action: "rename", Name: "old", NewName: "new"},
			[]string{"branch", "-m", "old", "new"},
		},
		{
			"branch list with all and remote",
			&BranchRequest{Action: "list", All: true, Remote: true},
			[]string{"branch", "--all", "--remote"},
		},
		{
			"checkout create force",
			&CheckoutRequest{Branch: "dev", Create: true, Force: true},
			[]string{"checkout", "-b", "--force", "dev"},
		},
		{
			"merge full",
			&MergeRequest{Branch: "dev", Message: "m", NoFf: true, Squash: true},
			[]string{"merge", "dev", "-m", "m", "--no-ff", "--squash"},
		},
		{
			"log full",
			&LogRequest{Limit: 5, Oneline: true, Graph: true, Author: "al", Since: "1.week", Until: "now"},
			[]string{"log", "-5", "--oneline", "--graph", "--author=al", "--since=1.week", "--until=now"},
		},
		{
			"diff full",
			&DiffRequest{Cached: true, Stat: true, NameOnly: true, Commit: "abc123"},
			[]string{"diff", "--cached", "--stat", "--name-only", "abc123"},
		},
		{
			"stash save with message and untracked",
			&StashRequest{Action: "save", Message: "wip", IncludeUntracked: true},
			[]string{"stash", "push", "-m", "wip", "--include-untracked"},
		},
		{
			"stash pop with index",
			&StashRequest{Action: "pop", Index: intPtr(2)},
			[]string{"stash", "pop", "stash@{2}"},
		},
		{
			"stash apply without index",
			&StashRequest{Action: "apply"},
			[]string{"stash", "apply"},
		},
		{
			"stash drop index zero",
			&StashRequest{Action: "drop", Index: intPtr(0)},
			[]string{"stash", "drop", "stash@{0}"},
		},
		{
			"stash clear",
			&StashRequest{Action: "clear"},
			[]string{"stash", "clear"},
		},
		{
			"stash list",
			&StashRequest{Action: "list"},
			[]string{"stash", "list"},
		},
		{
			"remote add",
			&RemoteRequest{Action: "add", Name: "origin", URL: "u"},
			[]string{"remote", "add", "origin", "u"},
		},
		{
			"remote remove",
			&RemoteRequest{Action: "remove", Name: "origin"},
			[]string{"remote", "remove", "origin"},
		},
		{
			"remote set-url",
			&RemoteRequest{Action: "set-url", Name: "origin", URL: "u"},
			[]string{"remote", "set-url", "origin", "u"},
		},
		{
			"remote show with name",
			&RemoteRequest{Action: "show", Name: "origin"},
			[]string{"remote", "show", "origin"},
		},
		{
			"remote show without name",
			&RemoteRequest{Action: "show"},
			[]string{"remote", "show"},
		},
		{
			"remote list verbose",
			&RemoteRequest{Verbose: true},
			[]string{"remote", "-v"},
		},
		{
			"tag create lightweight",
			&TagRequest{Action: "create", Name: "v1"},
			[]string{"tag", "v1"},
		},
		{
			"tag create annotated",
			&TagRequest{Action: "create", Name: "v1", Annotated: true, Message: "release"},
			[]string{"tag", "-a", "v1", "-m", "release"},
		},
		{
			"tag create annotated without message is lightweight",
			&TagRequest{Action: "create", Name: "v1", Annotated: true},
			[]string{"tag", "v1"},
		},
		{
			"tag create forced",
			&TagRequest{Action: "create", Name: "v1", Force: true},
			[]string{"tag", "v1", "-f"},
		},
		{
			"tag delete",
			&TagRequest{Action: "delete", Name: "v1"},
			[]string{"tag", "-d", "v1"},
		},
		{
			"reset hard to commit",
			&ResetRequest{Mode: "hard", Commit: "abc123"},
			[]string{"reset", "--hard", "abc123"},
		},
		{
			"reset soft default commit",
			&ResetRequest{Mode: "soft"},
			[]string{"reset", "--soft", "HEAD"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := BuildArgs(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildArgs_BooleanTogglesAreIsolated(t *testing.T) {
	t.Parallel()

	// Toggling a single boolean must add exactly that flag token.
	base, err := BuildArgs(&PushRequest{})
	require.NoError(t, err)
	assert.NotContains(t, base, "--force")

	forced, err := BuildArgs(&PushRequest{Force: true})
	require.NoError(t, err)
	assert.Contains(t, forced, "--force")
	assert.Len(t, forced, len(base)+1)
}

func TestBuildArgs_RequiredFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		req   Request
		field string
	}{
		{"clone without url", &CloneRequest{}, "url"},
		{"commit without message", &CommitRequest{}, "message"},
		{"checkout without branch", &CheckoutRequest{}, "branch"},
		{"merge without branch", &MergeRequest{}, "branch"},
		{"branch create without name", &BranchRequest{Action: "create"}, "name"},
		{"branch delete without name", &BranchRequest{Action: "delete"}, "name"},
		{"branch rename without name", &BranchRequest{Action: "rename"}, "name"},
		{"branch rename without newName", &BranchRequest{Action: "rename", Name: "a"}, "newName"},
		{"remote add without name", &RemoteRequest{Action: "add", URL: "u"}, "name"},
		{"remote add without url", &RemoteRequest{Action: "add", Name: "n"}, "url"},
		{"remote remove without name", &RemoteRequest{Action: "remove"}, "name"},
		{"remote set-url without url", &RemoteRequest{Action: "set-url", Name: "n"}, "url"},
		{"tag create without name", &TagRequest{Action: "create"}, "name"},
		{"tag delete without name", &TagRequest{Action: "delete"}, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := BuildArgs(tt.req)
			require.ErrorIs(t, err, ErrMissingArgument)
			var argErr *ArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.field, argErr.Field)
		})
	}
}

func TestBuildArgs_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  Request
	}{
		{"branch bogus action", &BranchRequest{Action: "explode"}},
		{"stash bogus action", &StashRequest{Action: "explode"}},
		{"remote bogus action", &RemoteRequest{Action: "explode"}},
		{"tag bogus action", &TagRequest{Action: "explode"}},
		{"reset bogus mode", &ResetRequest{Mode: "sideways"}},
		{"log negative limit", &LogRequest{Limit: -1}},
		{"clone negative depth", &CloneRequest{URL: "u", Depth: -1}},
		{"stash negative index", &StashRequest{Action: "pop", Index: intPtr(-1)}},
		{"nul byte in value", &CommitRequest{Message: "a\x00b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := BuildArgs(tt.req)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestBuildArgs_ShellMetacharactersStaySingleTokens(t *testing.T) {
	t.Parallel()

	msg := `a"; rm -rf /; echo "`
	got, err := BuildArgs(&CommitRequest{Message: msg})
	require.NoError(t, err)
	// The hostile message must remain exactly one argv token.
	assert.Equal(t, []string{"commit", "-m", msg}, got)

	branch := "dev$(touch /tmp/pwned)"
	got, err = BuildArgs(&CheckoutRequest{Branch: branch})
	require.NoError(t, err)
	assert.Equal(t, []string{"checkout", branch}, got)
}

func TestNewRequest(t *testing.T) {
	t.Parallel()

	for _, op := range All() {
		req, err := NewRequest(op)
		require.NoError(t, err, "operation %s", op)
		assert.Equal(t, op, req.Op())
	}

	_, err := NewRequest(Op("bogus"))
	require.ErrorIs(t, err, ErrUnknownOp)
}
