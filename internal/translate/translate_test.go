package translate

import (
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/require"

	"github.com/Crystalix007/globcore/internal/ast"
	"github.com/Crystalix007/globcore/internal/platform"
)

func mustMatch(t *testing.T, source, input string) bool {
	t.Helper()
	re, err := regexp2.Compile(source, regexp2.None)
	require.NoError(t, err)
	ok, err := re.MatchString(input)
	require.NoError(t, err)
	return ok
}

func translateOf(t *testing.T, pattern string, astOpts ast.Options, trOpts Options) string {
	t.Helper()
	nodes, err := ast.Parse(pattern, astOpts)
	require.NoError(t, err)
	source, err := Translate(nodes, trOpts)
	require.NoError(t, err)
	return source
}

func TestTranslateLiteralMatchesExactly(t *testing.T) {
	source := translateOf(t, "readme.txt", ast.Options{}, Options{})
	require.True(t, mustMatch(t, source, "readme.txt"))
	require.False(t, mustMatch(t, source, "readme.txtx"))
}

func TestTranslateAnyRunStopsAtSeparator(t *testing.T) {
	source := translateOf(t, "*.go", ast.Options{}, Options{})
	require.True(t, mustMatch(t, source, "main.go"))
	require.False(t, mustMatch(t, source, "a/main.go"))
}

func TestTranslateCaseFold(t *testing.T) {
	source := translateOf(t, "README.TXT", ast.Options{}, Options{CaseFold: true})
	require.True(t, mustMatch(t, source, "readme.txt"))
}

func TestTranslateDotGlobRejectsHiddenByDefault(t *testing.T) {
	source := translateOf(t, "*.go", ast.Options{}, Options{})
	require.False(t, mustMatch(t, source, ".hidden.go"))
}

func TestTranslateDotGlobAllowsHiddenWhenSet(t *testing.T) {
	source := translateOf(t, "*.go", ast.Options{}, Options{DotGlob: true})
	require.True(t, mustMatch(t, source, ".hidden.go"))
}

func TestTranslateSeparatorWindowsAcceptsBothSlashKinds(t *testing.T) {
	source := translateOf(t, "a/b", ast.Options{Platform: platform.Windows}, Options{Platform: platform.Windows})
	require.True(t, mustMatch(t, source, `a\b`))
	require.True(t, mustMatch(t, source, "a/b"))
}

func TestTranslateGlobstarMatchesZeroOrMoreComponents(t *testing.T) {
	source := translateOf(t, "a/**/b", ast.Options{Globstar: true}, Options{})
	require.True(t, mustMatch(t, source, "a/b"))
	require.True(t, mustMatch(t, source, "a/x/y/b"))
	require.False(t, mustMatch(t, source, "a/.hidden/b"))
}

func TestTranslateTrailingGlobstarMatchesEverythingUnder(t *testing.T) {
	source := translateOf(t, "a/**", ast.Options{Globstar: true}, Options{})
	require.True(t, mustMatch(t, source, "a"))
	require.True(t, mustMatch(t, source, "a/b/c"))
}

func TestTranslateMatchBasePrependsImplicitGlobstar(t *testing.T) {
	source := translateOf(t, "foo.go", ast.Options{}, Options{MatchBase: true})
	require.True(t, mustMatch(t, source, "foo.go"))
	require.True(t, mustMatch(t, source, "a/b/foo.go"))
}

func TestTranslateMatchBaseSkippedWhenSeparatorPresent(t *testing.T) {
	source := translateOf(t, "a/foo.go", ast.Options{}, Options{MatchBase: true})
	require.False(t, mustMatch(t, source, "x/a/foo.go"))
	require.True(t, mustMatch(t, source, "a/foo.go"))
}

func TestTranslateExcludeWrapsInNegativeLookahead(t *testing.T) {
	source := translateOf(t, "*.go", ast.Options{}, Options{Exclude: true})
	require.False(t, mustMatch(t, source, "main.go"))
	require.True(t, mustMatch(t, source, "main.txt"))
}

func TestTranslateNodotDirRejectsDotSegments(t *testing.T) {
	source := translateOf(t, "*", ast.Options{}, Options{NodotDir: true, DotGlob: true})
	require.False(t, mustMatch(t, source, "."))
	require.False(t, mustMatch(t, source, ".."))
	require.True(t, mustMatch(t, source, ".hidden"))
}
