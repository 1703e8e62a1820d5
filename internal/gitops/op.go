package gitops

// Op identifies a supported version-control operation.
type Op string

// The fixed set of operations exposed by the server.
const (
	OpInit     Op = "init"
	OpClone    Op = "clone"
	OpStatus   Op = "status"
	OpAdd      Op = "add"
	OpCommit   Op = "commit"
	OpPush     Op = "push"
	OpPull     Op = "pull"
	OpBranch   Op = "branch"
	OpCheckout Op = "checkout"
	OpMerge    Op = "merge"
	OpLog      Op = "log"
	OpDiff     Op = "diff"
	OpStash    Op = "stash"
	OpRemote   Op = "remote"
	OpTag      Op = "tag"
	OpReset    Op = "reset"
)

// All returns the supported operations in catalog order.
func All() []Op {
	return []Op{
		OpInit, OpClone, OpStatus, OpAdd, OpCommit, OpPush, OpPull,
		OpBranch, OpCheckout, OpMerge, OpLog, OpDiff, OpStash,
		OpRemote, OpTag, OpReset,
	}
}

// newRequest maps each operation to its request constructor.
// Built once at init; never mutated at runtime.
var newRequest = map[Op]func() Request{
	OpInit:     func() Request { return &InitRequest{} },
	OpClone:    func() Request { return &CloneRequest{} },
	OpStatus:   func() Request { return &StatusRequest{} },
	OpAdd:      func() Request { return &AddRequest{} },
	OpCommit:   func() Request { return &CommitRequest{} },
	OpPush:     func() Request { return &PushRequest{} },
	OpPull:     func() Request { return &PullRequest{} },
	OpBranch:   func() Request { return &BranchRequest{} },
	OpCheckout: func() Request { return &CheckoutRequest{} },
	OpMerge:    func() Request { return &MergeRequest{} },
	OpLog:      func() Request { return &LogRequest{} },
	OpDiff:     func() Request { return &DiffRequest{} },
	OpStash:    func() Request { return &StashRequest{} },
	OpRemote:   func() Request { return &RemoteRequest{} },
	OpTag:      func() Request { return &TagRequest{} },
	OpReset:    func() Request { return &ResetRequest{} },
}

// NewRequest returns an empty request for the given operation.
func NewRequest(op Op) (Request, error) {
	ctor, ok := newRequest[op]
	if !ok {
		return nil, &UnknownOpError{Op: op}
	}
	return ctor(), nil
}
