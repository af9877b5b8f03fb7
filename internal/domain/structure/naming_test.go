package structure_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"testing/fstest"

	"github.com/nextcheck/nextcheck/internal/domain"
	"github.com/nextcheck/nextcheck/internal/domain/structure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaming_ComponentPascalCase(t *testing.T) {
	fsys := fstest.MapFS{
		"components/Foo.tsx":     file(),
		"components/foo-bar.tsx": file(),
	}

	result, err := defaultChecker().Naming(project(fsys))
	require.NoError(t, err)

	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "foo-bar.tsx")
	assert.NotContains(t, result.Errors[0], "Foo.tsx")
	assert.Equal(t, "Component file should be PascalCase: "+filepath.FromSlash("components/foo-bar.tsx"), result.Errors[0])
	assert.False(t, result.Passed)
	assert.Empty(t, result.Warnings)
}

func TestNaming_UIDirectoryExempt(t *testing.T) {
	fsys := fstest.MapFS{
		"components/ui/button.tsx":            file(),
		"components/features/ui/dialog.tsx":   file(),
		"components/features/ui/deep/x-y.tsx": file(),
	}

	result, err := defaultChecker().Naming(project(fsys))
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Empty(t, result.Errors)
}

func TestNaming_ComponentIgnoresNonComponentFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"components/button.test.tsx": file(),
		"components/utils.ts":        file(),
		"components/styles.css":      file(),
		"components/README.md":       file(),
	}

	result, err := defaultChecker().Naming(project(fsys))
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
}

func TestNaming_NestedComponents(t *testing.T) {
	fsys := fstest.MapFS{
		"components/layout/Header.tsx":           file(),
		"components/features/cart/cart-item.tsx": file(),
	}

	result, err := defaultChecker().Naming(project(fsys))
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "cart-item.tsx")
}

func TestNaming_HookRule(t *testing.T) {
	fsys := fstest.MapFS{
		"lib/hooks/useThing.ts":  file(),
		"lib/hooks/use-thing.ts": file(),
	}

	result, err := defaultChecker().Naming(project(fsys))
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Hook file should be use-*.ts: "+filepath.FromSlash("lib/hooks/useThing.ts"), result.Errors[0])
}

func TestNaming_LibDispatchByParent(t *testing.T) {
	fsys := fstest.MapFS{
		"lib/format-date.ts":         file(),
		"lib/formatDate.ts":          file(),
		"lib/stores/cart-store.ts":   file(),
		"lib/stores/cart.ts":         file(),
		"lib/utils/cn.ts":            file(),
		"lib/api/client.test.ts":     file(),
		"lib/api/Client.tsx":         file(),
		"lib/hooks/nested/helper.ts": file(),
		"lib/ui/Thing.ts":            file(),
	}

	result, err := defaultChecker().Naming(project(fsys))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"Utility file should be kebab-case: " + filepath.FromSlash("lib/formatDate.ts"),
		"Store file should be *-store.ts: " + filepath.FromSlash("lib/stores/cart.ts"),
		"Utility file should be kebab-case: " + filepath.FromSlash("lib/ui/Thing.ts"),
	}, result.Errors)
}

func TestNaming_TestFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"tests/unit/format-date.test.ts":   file(),
		"tests/e2e/Checkout.test.tsx":      file(),
		"tests/setup.ts":                   file(),
		"tests/e2e/checkout.spec.ts":       file(),
		"tests/components/button.test.tsx": file(),
	}

	result, err := defaultChecker().Naming(project(fsys))
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Test file should be kebab-case.test.ts(x): "+filepath.FromSlash("tests/e2e/Checkout.test.tsx"), result.Errors[0])
}

func TestNaming_MissingTreesAreNotErrors(t *testing.T) {
	result, err := defaultChecker().Naming(project(fstest.MapFS{}))
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestNaming_TreeRootIsFile(t *testing.T) {
	result, err := defaultChecker().Naming(project(fstest.MapFS{"lib": file()}))
	require.NoError(t, err)
	assert.True(t, result.Passed)
}

func TestNaming_DisplayRootPrefix(t *testing.T) {
	p := domain.Project{
		FS:          fstest.MapFS{"components/bad-name.tsx": file()},
		DisplayRoot: "web",
	}

	result, err := defaultChecker().Naming(p)
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Component file should be PascalCase: "+filepath.FromSlash("web/components/bad-name.tsx"), result.Errors[0])
}

func TestNaming_DeterministicOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"tests/B.test.ts":     file(),
		"components/z-z.tsx":  file(),
		"components/a-a.tsx":  file(),
		"lib/hooks/zThing.ts": file(),
	}

	result, err := defaultChecker().Naming(project(fsys))
	require.NoError(t, err)
	require.Len(t, result.Errors, 4)
	assert.Contains(t, result.Errors[0], "a-a.tsx")
	assert.Contains(t, result.Errors[1], "z-z.tsx")
	assert.Contains(t, result.Errors[2], "zThing.ts")
	assert.Contains(t, result.Errors[3], "B.test.ts")
}

func TestNaming_IgnorePatterns(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Naming.Ignore = []string{"lib/generated/**", "components/**/*.stories.tsx"}
	rules, err := cfg.Compile()
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"lib/generated/graphqlTypes.ts":      file(),
		"components/Button.stories.tsx":      file(),
		"components/forms/Input.stories.tsx": file(),
		"lib/realProblem.ts":                 file(),
	}

	result, err := structure.NewChecker(rules, nil).Naming(project(fsys))
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "realProblem.ts")
}

func TestNaming_MaxDepth(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Naming.MaxDepth = 1
	rules, err := cfg.Compile()
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"components/bad-top.tsx":     file(),
		"components/a/bad-one.tsx":   file(),
		"components/a/b/bad-two.tsx": file(),
	}

	result, err := structure.NewChecker(rules, nil).Naming(project(fsys))
	require.NoError(t, err)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "bad-one.tsx")
	assert.Contains(t, result.Errors[1], "bad-top.tsx")
}

func TestNaming_CustomExemptDirs(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Naming.ExemptDirs = []string{"ui", "vendor"}
	rules, err := cfg.Compile()
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"components/vendor/some-lib.tsx": file(),
		"components/ui/button.tsx":       file(),
	}

	result, err := structure.NewChecker(rules, nil).Naming(project(fsys))
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
}

func TestNaming_ListingErrorPropagates(t *testing.T) {
	fsys := failingFS{
		MapFS: fstest.MapFS{
			"lib/locked/thing.ts": file(),
			"lib/ok.ts":           file(),
		},
		fail: "lib/locked",
	}

	_, err := defaultChecker().Naming(project(fsys))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Contains(t, err.Error(), "lib/locked")
}

func TestNamingViolations_CarryRule(t *testing.T) {
	fsys := fstest.MapFS{
		"lib/hooks/useCart.ts":  file(),
		"lib/stores/cart.ts":    file(),
		"components/my-nav.tsx": file(),
	}

	violations, err := defaultChecker().NamingViolations(project(fsys))
	require.NoError(t, err)
	require.Len(t, violations, 3)
	assert.Equal(t, "components/my-nav.tsx", violations[0].Path)
	assert.Equal(t, domain.RuleComponent, violations[0].Rule.Name)
	assert.Equal(t, domain.RuleHook, violations[1].Rule.Name)
	assert.Equal(t, domain.RuleStore, violations[2].Rule.Name)
}

func TestNaming_SymlinkCycleTerminates(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "components", "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "components", "nested", "bad-one.tsx"), nil, 0o644))
	require.NoError(t, os.Symlink(filepath.Join(root, "components"), filepath.Join(root, "components", "nested", "loop")))

	result, err := defaultChecker().Naming(domain.Project{FS: os.DirFS(root), Root: root})
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "bad-one.tsx")
}
