package application_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nextcheck/nextcheck/internal/domain"
)

type staticLoader struct {
	cfg domain.Config
	err error
}

func (l staticLoader) Load(string) (domain.Config, error) { return l.cfg, l.err }

func defaults() staticLoader { return staticLoader{cfg: domain.DefaultConfig()} }

// writeTree creates entries under a new temp dir. Entries ending in "/" are
// directories; everything else is a file.
func writeTree(t *testing.T, entries ...string) string {
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

var completeTree = []string{
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
	"next.config.mjs",
	"tailwind.config.ts",
	"vitest.config.ts",
	".eslintrc.json",
	".prettierrc",
	"components.json",
}
