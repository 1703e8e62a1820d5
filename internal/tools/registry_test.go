package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitmcp.dev/gitmcp/internal/gitops"
)

func TestCatalog_CoversAllOperations(t *testing.T) {
	t.Parallel()

	catalog := Catalog()
	require.Len(t, catalog, len(gitops.All()))

	for i, op := range gitops.All() {
		assert.Equal(t, op, catalog[i].Op)
		assert.NotEmpty(t, catalog[i].Description, "operation %s has no description", op)
	}
}

func TestCatalog_RequiredFields(t *testing.T) {
	t.Parallel()

	want := map[gitops.Op][]string{
		gitops.OpClone:    {"url"},
		gitops.OpCommit:   {"message"},
		gitops.OpCheckout: {"branch"},
		gitops.OpMerge:    {"branch"},
	}

	for _, desc := range Catalog() {
		assert.Equal(t, want[desc.Op], desc.Required, "operation %s", desc.Op)
	}
}

func TestDefinitions_ToolNamesMatchOperations(t *testing.T) {
	t.Parallel()

	for _, def := range definitions() {
		assert.Equal(t, string(def.op), def.tool.Name)
	}
}

func TestDefinitions_EveryToolAcceptsRepo(t *testing.T) {
	t.Parallel()

	for _, def := range definitions() {
		_, ok := def.tool.InputSchema.Properties["repo"]
		assert.True(t, ok, "tool %s has no repo field", def.tool.Name)
	}
}

func TestDefinitions_EnumsAndDefaults(t *testing.T) {
	t.Parallel()

	prop := func(t *testing.T, op gitops.Op, field string) map[string]any {
		t.Helper()
		for _, def := range definitions() {
			if def.op == op {
				p, ok := def.tool.InputSchema.Properties[field].(map[string]any)
				require.True(t, ok, "%s.%s is not an object schema", op, field)
				return p
			}
		}
		t.Fatalf("operation %s not found", op)
		return nil
	}

	branchAction := prop(t, gitops.OpBranch, "action")
	assert.ElementsMatch(t, []string{"list", "create", "delete", "rename"}, branchAction["enum"])
	assert.Equal(t, "list", branchAction["default"])

	resetMode := prop(t, gitops.OpReset, "mode")
	assert.ElementsMatch(t, []string{"soft", "mixed", "hard"}, resetMode["enum"])
	assert.Equal(t, "mixed", resetMode["default"])

	resetCommit := prop(t, gitops.OpReset, "commit")
	assert.Equal(t, "HEAD", resetCommit["default"])

	pushRemote := prop(t, gitops.OpPush, "remote")
	assert.Equal(t, "origin", pushRemote["default"])

	logLimit := prop(t, gitops.OpLog, "limit")
	assert.Equal(t, float64(10), logLimit["default"])

	cloneRecursive := prop(t, gitops.OpClone, "recursive")
	assert.Equal(t, true, cloneRecursive["default"])
}
