package gitops

// Request is one version-control operation with its typed arguments.
// Implementations are the sixteen per-operation structs below; their
// JSON tags match the field names advertised in the tool catalog.
type Request interface {
	// Op returns the operation identifier.
	Op() Op

	// args validates the request and composes the git argument vector,
	// starting with the verb. Defaults are applied here, never when a
	// field was explicitly supplied.
	args() ([]string, error)

	// workDir returns the requested working directory, if any.
	workDir() string
}

// InitRequest creates a new repository.
type InitRequest struct {
	Repo          string `json:"repo,omitempty"`
	Path          string `json:"path,omitempty"`
	InitialBranch string `json:"initialBranch,omitempty"`
	Bare          bool   `json:"bare,omitempty"`
}

// CloneRequest clones a repository from a source URL.
type CloneRequest struct {
	Repo      string `json:"repo,omitempty"`
	URL       string `json:"url"`
	Path      string `json:"path,omitempty"`
	Branch    string `json:"branch,omitempty"`
	Depth     int    `json:"depth,omitempty"`
	Recursive *bool  `json:"recursive,omitempty"` // default true
}

// StatusRequest shows the working tree status.
type StatusRequest struct {
	Repo      string `json:"repo,omitempty"`
	Short     bool   `json:"short,omitempty"`
	Branch    bool   `json:"branch,omitempty"`
	Porcelain bool   `json:"porcelain,omitempty"`
}

// AddRequest stages changes. With neither all, update, nor files set,
// everything under the current directory is staged.
type AddRequest struct {
	Repo   string   `json:"repo,omitempty"`
	All    bool     `json:"all,omitempty"`
	Update bool     `json:"update,omitempty"`
	Files  []string `json:"files,omitempty"`
}

// CommitRequest records staged changes.
type CommitRequest struct {
	Repo    string `json:"repo,omitempty"`
	Message string `json:"message"`
	All     bool   `json:"all,omitempty"`
	Amend   bool   `json:"amend,omitempty"`
	Author  string `json:"author,omitempty"`
}

// PushRequest updates a remote with local commits.
type PushRequest struct {
	Repo        string `json:"repo,omitempty"`
	Remote      string `json:"remote,omitempty"` // default "origin"
	Branch      string `json:"branch,omitempty"`
	Force       bool   `json:"force,omitempty"`
	SetUpstream bool   `json:"setUpstream,omitempty"`
	Tags        bool   `json:"tags,omitempty"`
}

// PullRequest fetches and integrates changes from a remote.
// Ff is tri-state: nil emits no flag, false --no-ff, true --ff.
type PullRequest struct {
	Repo   string `json:"repo,omitempty"`
	Remote string `json:"remote,omitempty"` // default "origin"
	Branch string `json:"branch,omitempty"`
	Rebase bool   `json:"rebase,omitempty"`
	Ff     *bool  `json:"ff,omitempty"`
}

// BranchRequest lists, creates, deletes, or renames branches.
type BranchRequest struct {
	Repo    string `json:"repo,omitempty"`
	Action  string `json:"action,omitempty"` // list (default), create, delete, rename
	Name    string `json:"name,omitempty"`
	NewName string `json:"newName,omitempty"`
	All     bool   `json:"all,omitempty"`
	Remote  bool   `json:"remote,omitempty"`
}

// CheckoutRequest switches branches.
type CheckoutRequest struct {
	Repo   string `json:"repo,omitempty"`
	Branch string `json:"branch"`
	Create bool   `json:"create,omitempty"`
	Force  bool   `json:"force,omitempty"`
}

// MergeRequest merges a branch into the current branch.
type MergeRequest struct {
	Repo    string `json:"repo,omitempty"`
	Branch  string `json:"branch"`
	Message string `json:"message,omitempty"`
	NoFf    bool   `json:"noFf,omitempty"`
	Squash  bool   `json:"squash,omitempty"`
}

// LogRequest shows commit history.
type LogRequest struct {
	Repo    string `json:"repo,omitempty"`
	Limit   int    `json:"limit,omitempty"` // default 10
	Oneline bool   `json:"oneline,omitempty"`
	Graph   bool   `json:"graph,omitempty"`
	Author  string `json:"author,omitempty"`
	Since   string `json:"since,omitempty"`
	Until   string `json:"until,omitempty"`
}

// DiffRequest shows changes between commits or against the index.
type DiffRequest struct {
	Repo     string `json:"repo,omitempty"`
	Commit   string `json:"commit,omitempty"`
	Cached   bool   `json:"cached,omitempty"`
	Stat     bool   `json:"stat,omitempty"`
	NameOnly bool   `json:"nameOnly,omitempty"`
}

// StashRequest saves, restores, or lists stashed changes.
type StashRequest struct {
	Repo             string `json:"repo,omitempty"`
	Action           string `json:"action,omitempty"` // save (default), pop, apply, drop, clear, list
	Message          string `json:"message,omitempty"`
	IncludeUntracked bool   `json:"includeUntracked,omitempty"`
	Index            *int   `json:"index,omitempty"`
}

// RemoteRequest manages remote repository references.
type RemoteRequest struct {
	Repo    string `json:"repo,omitempty"`
	Action  string `json:"action,omitempty"` // list (default), add, remove, set-url, show
	Name    string `json:"name,omitempty"`
	URL     string `json:"url,omitempty"`
	Verbose bool   `json:"verbose,omitempty"`
}

// TagRequest creates, deletes, or lists tags.
type TagRequest struct {
	Repo      string `json:"repo,omitempty"`
	Action    string `json:"action,omitempty"` // list (default), create, delete
	Name      string `json:"name,omitempty"`
	Message   string `json:"message,omitempty"`
	Annotated bool   `json:"annotated,omitempty"`
	Force     bool   `json:"force,omitempty"`
}

// ResetRequest resets the current HEAD to a commit.
type ResetRequest struct {
	Repo   string `json:"repo,omitempty"`
	Mode   string `json:"mode,omitempty"`   // soft, mixed (default), hard
	Commit string `json:"commit,omitempty"` // default "HEAD"
}

func (r *InitRequest) Op() Op     { return OpInit }
func (r *CloneRequest) Op() Op    { return OpClone }
func (r *StatusRequest) Op() Op   { return OpStatus }
func (r *AddRequest) Op() Op      { return OpAdd }
func (r *CommitRequest) Op() Op   { return OpCommit }
func (r *PushRequest) Op() Op     { return OpPush }
func (r *PullRequest) Op() Op     { return OpPull }
func (r *BranchRequest) Op() Op   { return OpBranch }
func (r *CheckoutRequest) Op() Op { return OpCheckout }
func (r *MergeRequest) Op() Op    { return OpMerge }
func (r *LogRequest) Op() Op      { return OpLog }
func (r *DiffRequest) Op() Op     { return OpDiff }
func (r *StashRequest) Op() Op    { return OpStash }
func (r *RemoteRequest) Op() Op   { return OpRemote }
func (r *TagRequest) Op() Op      { return OpTag }
func (r *ResetRequest) Op() Op    { return OpReset }

func (r *InitRequest) workDir() string     { return r.Repo }
func (r *CloneRequest) workDir() string    { return r.Repo }
func (r *StatusRequest) workDir() string   { return r.Repo }
func (r *AddRequest) workDir() string      { return r.Repo }
func (r *CommitRequest) workDir() string   { return r.Repo }
func (r *PushRequest) workDir() string     { return r.Repo }
func (r *PullRequest) workDir() string     { return r.Repo }
func (r *BranchRequest) workDir() string   { return r.Repo }
func (r *CheckoutRequest) workDir() string { return r.Repo }
func (r *MergeRequest) workDir() string    { return r.Repo }
func (r *LogRequest) workDir() string      { return r.Repo }
func (r *DiffRequest) workDir() string     { return r.Repo }
func (r *StashRequest) workDir() string    { return r.Repo }
func (r *RemoteRequest) workDir() string   { return r.Repo }
func (r *TagRequest) workDir() string      { return r.Repo }
func (r *ResetRequest) workDir() string    { return r.Repo }
