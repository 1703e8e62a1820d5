package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"gitmcp.dev/gitmcp/internal/gitops"
)

// definition pairs an operation with its tool descriptor.
type definition struct {
	op   gitops.Op
	tool mcp.Tool
}

// repoOption is the working-directory field every operation accepts.
func repoOption() mcp.ToolOption {
	return mcp.WithString("repo",
		mcp.Description("Path to the repository working directory. Defaults to the server's configured directory."),
	)
}

// definitions returns the full tool catalog, one descriptor per
// operation, in catalog order. Purely descriptive; no side effects.
func definitions() []definition {
	return []definition{
		{gitops.OpInit, mcp.NewTool("init",
			mcp.WithDescription("Initialize a new git repository."),
			mcp.WithString("path", mcp.Description("Directory to initialize. Defaults to the working directory.")),
			mcp.WithString("initialBranch", mcp.Description("Name of the initial branch.")),
			mcp.WithBoolean("bare", mcp.Description("Create a bare repository.")),
			repoOption(),
		)},
		{gitops.OpClone, mcp.NewTool("clone",
			mcp.WithDescription("Clone a repository from a source URL."),
			mcp.WithString("url", mcp.Required(), mcp.Description("Source repository URL.")),
			mcp.WithString("path", mcp.Description("Target directory for the clone.")),
			mcp.WithString("branch", mcp.Description("Branch to check out after cloning.")),
			mcp.WithNumber("depth", mcp.Description("Create a shallow clone with this many commits.")),
			mcp.WithBoolean("recursive", mcp.DefaultBool(true), mcp.Description("Initialize submodules recursively.")),
			repoOption(),
		)},
		{gitops.OpStatus, mcp.NewTool("status",
			mcp.WithDescription("Show the working tree status."),
			mcp.WithBoolean("short", mcp.Description("Short-format output.")),
			mcp.WithBoolean("branch", mcp.Description("Include branch information.")),
			mcp.WithBoolean("porcelain", mcp.Description("Machine-readable output.")),
			repoOption(),
			mcp.WithReadOnlyHintAnnotation(true),
		)},
		{gitops.OpAdd, mcp.NewTool("add",
			mcp.WithDescription("Stage changes. Without all, update, or files, stages everything under the working directory."),
			mcp.WithBoolean("all", mcp.Description("Stage all changes, including deletions.")),
			mcp.WithBoolean("update", mcp.Description("Stage only tracked files.")),
			mcp.WithArray("files", mcp.Description("Specific files to stage."), mcp.Items(map[string]any{"type": "string"})),
			repoOption(),
		)},
		{gitops.OpCommit, mcp.NewTool("commit",
			mcp.WithDescription("Record staged changes."),
			mcp.WithString("message", mcp.Required(), mcp.Description("Commit message.")),
			mcp.WithBoolean("all", mcp.Description("Automatically stage modified and deleted files.")),
			mcp.WithBoolean("amend", mcp.Description("Amend the previous commit.")),
			mcp.WithString("author", mcp.Description("Override the author, as \"Name <email>\".")),
			repoOption(),
		)},
		{gitops.OpPush, mcp.NewTool("push",
			mcp.WithDescription("Update a remote with local commits."),
			mcp.WithString("remote", mcp.DefaultString("origin"), mcp.Description("Remote name.")),
			mcp.WithString("branch", mcp.Description("Branch to push.")),
			mcp.WithBoolean("force", mcp.Description("Force-push, overwriting the remote.")),
			mcp.WithBoolean("setUpstream", mcp.Description("Set the upstream for the branch.")),
			mcp.WithBoolean("tags", mcp.Description("Push tags as well.")),
			repoOption(),
		)},
		{gitops.OpPull, mcp.NewTool("pull",
			mcp.WithDescription("Fetch and integrate changes from a remote."),
			mcp.WithString("remote", mcp.DefaultString("origin"), mcp.Description("Remote name.")),
			mcp.WithString("branch", mcp.Description("Branch to pull.")),
			mcp.WithBoolean("rebase", mcp.Description("Rebase instead of merging.")),
			mcp.WithBoolean("ff", mcp.Description("Fast-forward policy: true requires --ff, false forces a merge commit. Omit for git's default.")),
			repoOption(),
		)},
		{gitops.OpBranch, mcp.NewTool("branch",
			mcp.WithDescription("List, create, delete, or rename branches."),
			mcp.WithString("action", mcp.DefaultString("list"), mcp.Enum("list", "create", "delete", "rename"), mcp.Description("Branch operation to perform.")),
			mcp.WithString("name", mcp.Description("Branch name (required for create, delete, rename).")),
			mcp.WithString("newName", mcp.Description("New branch name (required for rename).")),
			mcp.WithBoolean("all", mcp.Description("List both local and remote branches.")),
			mcp.WithBoolean("remote", mcp.Description("List remote branches only.")),
			repoOption(),
		)},
		{gitops.OpCheckout, mcp.NewTool("checkout",
			mcp.WithDescription("Switch branches."),
			mcp.WithString("branch", mcp.Required(), mcp.Description("Branch to check out.")),
			mcp.WithBoolean("create", mcp.Description("Create the branch first.")),
			mcp.WithBoolean("force", mcp.Description("Discard local changes if necessary.")),
			repoOption(),
		)},
		{gitops.OpMerge, mcp.NewTool("merge",
			mcp.WithDescription("Merge a branch into the current branch."),
			mcp.WithString("branch", mcp.Required(), mcp.Description("Branch to merge.")),
			mcp.WithString("message", mcp.Description("Merge commit message.")),
			mcp.WithBoolean("noFf", mcp.Description("Always create a merge commit.")),
			mcp.WithBoolean("squash", mcp.Description("Squash the merged commits.")),
			repoOption(),
		)},
		{gitops.OpLog, mcp.NewTool("log",
			mcp.WithDescription("Show commit history."),
			mcp.WithNumber("limit", mcp.DefaultNumber(10), mcp.Description("Maximum number of commits to show.")),
			mcp.WithBoolean("oneline", mcp.Description("One line per commit.")),
			mcp.WithBoolean("graph", mcp.Description("Draw the commit graph.")),
			mcp.WithString("author", mcp.Description("Only commits by this author.")),
			mcp.WithString("since", mcp.Description("Only commits after this date.")),
			mcp.WithString("until", mcp.Description("Only commits before this date.")),
			repoOption(),
			mcp.WithReadOnlyHintAnnotation(true),
		)},
		{gitops.OpDiff, mcp.NewTool("diff",
			mcp.WithDescription("Show changes between commits or against the index."),
			mcp.WithString("commit", mcp.Description("Commit or range to diff against.")),
			mcp.WithBoolean("cached", mcp.Description("Diff staged changes.")),
			mcp.WithBoolean("stat", mcp.Description("Show a diffstat instead of the patch.")),
			mcp.WithBoolean("nameOnly", mcp.Description("Show only changed file names.")),
			repoOption(),
			mcp.WithReadOnlyHintAnnotation(true),
		)},
		{gitops.OpStash, mcp.NewTool("stash",
			mcp.WithDescription("Save, restore, or list stashed changes."),
			mcp.WithString("action", mcp.DefaultString("save"), mcp.Enum("save", "pop", "apply", "drop", "clear", "list"), mcp.Description("Stash operation to perform.")),
			mcp.WithString("message", mcp.Description("Stash description (save only).")),
			mcp.WithBoolean("includeUntracked", mcp.Description("Include untracked files (save only).")),
			mcp.WithNumber("index", mcp.Description("Stash entry index (pop, apply, drop).")),
			repoOption(),
		)},
		{gitops.OpRemote, mcp.NewTool("remote",
			mcp.WithDescription("Manage remote repository references."),
			mcp.WithString("action", mcp.DefaultString("list"), mcp.Enum("list", "add", "remove", "set-url", "show"), mcp.Description("Remote operation to perform.")),
			mcp.WithString("name", mcp.Description("Remote name (required for add, remove, set-url).")),
			mcp.WithString("url", mcp.Description("Remote URL (required for add, set-url).")),
			mcp.WithBoolean("verbose", mcp.Description("Show URLs when listing.")),
			repoOption(),
		)},
		{gitops.OpTag, mcp.NewTool("tag",
			mcp.WithDescription("Create, delete, or list tags."),
			mcp.WithString("action", mcp.DefaultString("list"), mcp.Enum("list", "create", "delete"), mcp.Description("Tag operation to perform.")),
			mcp.WithString("name", mcp.Description("Tag name (required for create, delete).")),
			mcp.WithString("message", mcp.Description("Tag message (annotated tags).")),
			mcp.WithBoolean("annotated", mcp.Description("Create an annotated tag (requires message).")),
			mcp.WithBoolean("force", mcp.Description("Replace an existing tag.")),
			repoOption(),
		)},
		{gitops.OpReset, mcp.NewTool("reset",
			mcp.WithDescription("Reset the current HEAD to a commit."),
			mcp.WithString("mode", mcp.DefaultString("mixed"), mcp.Enum("soft", "mixed", "hard"), mcp.Description("Reset mode.")),
			mcp.WithString("commit", mcp.DefaultString("HEAD"), mcp.Description("Commit to reset to.")),
			repoOption(),
			mcp.WithDestructiveHintAnnotation(true),
		)},
	}
}

// Register adds every operation's tool and handler to the server.
func Register(s *server.MCPServer, d *gitops.Dispatcher) {
	for _, def := range definitions() {
		s.AddTool(def.tool, handle(d, def.op))
	}
}

// NewServer builds an MCP server with the full catalog registered.
func NewServer(d *gitops.Dispatcher, version string) *server.MCPServer {
	s := server.NewMCPServer("gitmcp", version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	Register(s, d)
	return s
}

// Descriptor describes one operation for catalog listings.
type Descriptor struct {
	Op          gitops.Op `json:"operation"`
	Description string    `json:"description"`
	Required    []string  `json:"required,omitempty"`
}

// Catalog returns the operation descriptors in catalog order.
func Catalog() []Descriptor {
	defs := definitions()
	out := make([]Descriptor, 0, len(defs))
	for _, def := range defs {
		out = append(out, Descriptor{
			Op:          def.op,
			Description: def.tool.Description,
			Required:    def.tool.InputSchema.Required,
		})
	}
	return out
}
