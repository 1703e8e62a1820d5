package gitops

import (
	"fmt"
	"strconv"
	"strings"
)

// BuildArgs validates a request and composes the git argument vector,
// starting with the verb. Boolean flags are appended only when true,
// valued flags only when present, and defaults only when the field was
// omitted. Ordering is fixed so composed invocations are reproducible.
func BuildArgs(r Request) ([]string, error) {
	args, err := r.args()
	if err != nil {
		return nil, err
	}
	// Arguments travel as discrete exec tokens, so shell metacharacters
	// are inert, but NUL can still truncate an argv entry.
	for _, a := range args {
		if strings.ContainsRune(a, 0) {
			return nil, invalidArg(r.Op(), "argument", "", "contains NUL byte")
		}
	}
	return args, nil
}

func (r *InitRequest) args() ([]string, error) {
	args := []string{"init"}
	if r.InitialBranch != "" {
		args = append(args, "--initial-branch="+r.InitialBranch)
	}
	if r.Bare {
		args = append(args, "--bare")
	}
	if r.Path != "" {
		args = append(args, r.Path)
	}
	return args, nil
}

func (r *CloneRequest) args() ([]string, error) {
	if r.URL == "" {
		return nil, missingArg(OpClone, "url")
	}
	args := []string{"clone", r.URL}
	if r.Path != "" {
		args = append(args, r.Path)
	}
	if r.Branch != "" {
		args = append(args, "--branch", r.Branch)
	}
	if r.Depth < 0 {
		return nil, invalidArg(OpClone, "depth", strconv.Itoa(r.Depth), "must be positive")
	}
	if r.Depth > 0 {
		args = append(args, "--depth", strconv.Itoa(r.Depth))
	}
	if r.Recursive == nil || *r.Recursive {
		args = append(args, "--recursive")
	}
	return args, nil
}

func (r *StatusRequest) args() ([]string, error) {
	args := []string{"status"}
	if r.Short {
		args = append(args, "--short")
	}
	if r.Branch {
		args = append(args, "--branch")
	}
	if r.Porcelain {
		args = append(args, "--porcelain")
	}
	return args, nil
}

func (r *AddRequest) args() ([]string, error) {
	args := []string{"add"}
	switch {
	case r.All:
		args = append(args, "--all")
	case r.Update:
		args = append(args, "--update")
	case len(r.Files) > 0:
		args = append(args, r.Files...)
	default:
		args = append(args, ".")
	}
	return args, nil
}

func (r *CommitRequest) args() ([]string, error) {
	if r.Message == "" {
		return nil, missingArg(OpCommit, "message")
	}
	args := []string{"commit", "-m", r.Message}
	if r.All {
		args = append(args, "--all")
	}
	if r.Amend {
		args = append(args, "--amend")
	}
	if r.Author != "" {
		args = append(args, "--author="+r.Author)
	}
	return args, nil
}

func (r *PushRequest) args() ([]string, error) {
	args := []string{"push"}
	if r.Force {
		args = append(args, "--force")
	}
	if r.SetUpstream {
		args = append(args, "--set-upstream")
	}
	if r.Tags {
		args = append(args, "--tags")
	}
	remote := r.Remote
	if remote == "" {
		remote = "origin"
	}
	args = append(args, remote)
	if r.Branch != "" {
		args = append(args, r.Branch)
	}
	return args, nil
}

func (r *PullRequest) args() ([]string, error) {
	args := []string{"pull"}
	if r.Rebase {
		args = append(args, "--rebase")
	}
	// Tri-state fast-forward: an omitted field emits nothing.
	if r.Ff != nil {
		if *r.Ff {
			args = append(args, "--ff")
		} else {
			args = append(args, "--no-ff")
		}
	}
	remote := r.Remote
	if remote == "" {
		remote = "origin"
	}
	args = append(args, remote)
	if r.Branch != "" {
		args = append(args, r.Branch)
	}
	return args, nil
}

func (r *BranchRequest) args() ([]string, error) {
	args := []string{"branch"}
	switch r.Action {
	case "create":
		if r.Name == "" {
			return nil, missingArg(OpBranch, "name")
		}
		args = append(args, r.Name)
	case "delete":
		if r.Name == "" {
			return nil, missingArg(OpBranch, "name")
		}
		args = append(args, "-d", r.Name)
	case "rename":
		if r.Name == "" {
			return nil, missingArg(OpBranch, "name")
		}
		if r.NewName == "" {
			return nil, missingArg(OpBranch, "newName")
		}
		args = append(args, "-m", r.Name, r.NewName)
	case "", "list":
		if r.All {
			args = append(args, "--all")
		}
		if r.Remote {
			args = append(args, "--remote")
		}
	default:
		return nil, invalidArg(OpBranch, "action", r.Action, "must be one of list, create, delete, rename")
	}
	return args, nil
}

func (r *CheckoutRequest) args() ([]string, error) {
	if r.Branch == "" {
		return nil, missingArg(OpCheckout, "branch")
	}
	args := []string{"checkout"}
	if r.Create {
		args = append(args, "-b")
	}
	if r.Force {
		args = append(args, "--force")
	}
	args = append(args, r.Branch)
	return args, nil
}

func (r *MergeRequest) args() ([]string, error) {
	if r.Branch == "" {
		return nil, missingArg(OpMerge, "branch")
	}
	args := []string{"merge", r.Branch}
	if r.Message != "" {
		args = append(args, "-m", r.Message)
	}
	if r.NoFf {
		args = append(args, "--no-ff")
	}
	if r.Squash {
		args = append(args, "--squash")
	}
	return args, nil
}

func (r *LogRequest) args() ([]string, error) {
	limit := r.Limit
	if limit == 0 {
		limit = 10
	}
	if limit < 0 {
		return nil, invalidArg(OpLog, "limit", strconv.Itoa(r.Limit), "must be positive")
	}
	args := []string{"log", fmt.Sprintf("-%d", limit)}
	if r.Oneline {
		args = append(args, "--oneline")
	}
	if r.Graph {
		args = append(args, "--graph")
	}
	if r.Author != "" {
		args = append(args, "--author="+r.Author)
	}
	if r.Since != "" {
		args = append(args, "--since="+r.Since)
	}
	if r.Until != "" {
		args = append(args, "--until="+r.Until)
	}
	return args, nil
}

func (r *DiffRequest) args() ([]string, error) {
	args := []string{"diff"}
	if r.Cached {
		args = append(args, "--cached")
	}
	if r.Stat {
		args = append(args, "--stat")
	}
	if r.NameOnly {
		args = append(args, "--name-only")
	}
	if r.Commit != "" {
		args = append(args, r.Commit)
	}
	return args, nil
}

func (r *StashRequest) args() ([]string, error) {
	args := []string{"stash"}
	switch r.Action {
	case "", "save":
		args = append(args, "push")
		if r.Message != "" {
			args = append(args, "-m", r.Message)
		}
		if r.IncludeUntracked {
			args = append(args, "--include-untracked")
		}
	case "pop", "apply", "drop":
		args = append(args, r.Action)
		if r.Index != nil {
			if *r.Index < 0 {
				return nil, invalidArg(OpStash, "index", strconv.Itoa(*r.Index), "must not be negative")
			}
			args = append(args, fmt.Sprintf("stash@{%d}", *r.Index))
		}
	case "clear":
		args = append(args, "clear")
	case "list":
		args = append(args, "list")
	default:
		return nil, invalidArg(OpStash, "action", r.Action, "must be one of save, pop, apply, drop, clear, list")
	}
	return args, nil
}

func (r *RemoteRequest) args() ([]string, error) {
	args := []string{"remote"}
	switch r.Action {
	case "add":
		if r.Name == "" {
			return nil, missingArg(OpRemote, "name")
		}
		if r.URL == "" {
			return nil, missingArg(OpRemote, "url")
		}
		args = append(args, "add", r.Name, r.URL)
	case "remove":
		if r.Name == "" {
			return nil, missingArg(OpRemote, "name")
		}
		args = append(args, "remove", r.Name)
	case "set-url":
		if r.Name == "" {
			return nil, missingArg(OpRemote, "name")
		}
		if r.URL == "" {
			return nil, missingArg(OpRemote, "url")
		}
		args = append(args, "set-url", r.Name, r.URL)
	case "show":
		args = append(args, "show")
		if r.Name != "" {
			args = append(args, r.Name)
		}
	case "", "list":
		if r.Verbose {
			args = append(args, "-v")
		}
	default:
		return nil, invalidArg(OpRemote, "action", r.Action, "must be one of list, add, remove, set-url, show")
	}
	return args, nil
}

func (r *TagRequest) args() ([]string, error) {
	args := []string{"tag"}
	switch r.Action {
	case "create":
		if r.Name == "" {
			return nil, missingArg(OpTag, "name")
		}
		if r.Annotated && r.Message != "" {
			args = append(args, "-a", r.Name, "-m", r.Message)
		} else {
			args = append(args, r.Name)
		}
		if r.Force {
			args = append(args, "-f")
		}
	case "delete":
		if r.Name == "" {
			return nil, missingArg(OpTag, "name")
		}
		args = append(args, "-d", r.Name)
	case "", "list":
		// bare "git tag" lists
	default:
		return nil, invalidArg(OpTag, "action", r.Action, "must be one of list, create, delete")
	}
	return args, nil
}

func (r *ResetRequest) args() ([]string, error) {
	mode := r.Mode
	if mode == "" {
		mode = "mixed"
	}
	switch mode {
	case "soft", "mixed", "hard":
	default:
		return nil, invalidArg(OpReset, "mode", r.Mode, "must be one of soft, mixed, hard")
	}
	commit := r.Commit
	if commit == "" {
		commit = "HEAD"
	}
	return []string{"reset", "--" + mode, commit}, nil
}
