package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nextcheck/nextcheck/internal/adapters/inbound/cli"
)

var completeProject = []string{
	"app/page.tsx",
	"components/ui/button.tsx",
	"components/layout/Header.tsx",
	"components/features/CartItem.tsx",
	"lib/api/client.ts",
	"lib/hooks/use-cart.ts",
	"lib/stores/cart-store.ts",
	"lib/types/index.ts",
	"lib/utils/format-date.ts",
	"lib/validation/schemas.ts",
	"tests/format-date.test.ts",
	"stories/",
	"package.json",
	"tsconfig.json",
	"next.config.js",
	"tailwind.config.ts",
	"vitest.config.ts",
	".eslintrc.json",
	".prettierrc",
	"components.json",
}

// writeProject creates entries under a new temp dir. Entries ending in "/"
// are directories.
func writeProject(t *testing.T, entries ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, e := range entries {
		p := filepath.Join(root, filepath.FromSlash(strings.TrimSuffix(e, "/")))
		if strings.HasSuffix(e, "/") {
			require.NoError(t, os.MkdirAll(p, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("export {}\n"), 0o644))
	}
	return root
}

// execute runs the root command with args and returns stdout, stderr and the
// error Execute returned.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
