package main_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scrapeo/scrapeo"
	main "github.com/scrapeo/scrapeo/cmd/scrapeo"
	"github.com/scrapeo/scrapeo/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageHTML = `<!DOCTYPE html>
<html>
<head>
	<title>Example Domain</title>
	<meta name="description" content="An example page">
	<meta name="robots" content="noindex">
	<meta property="og:type" content="website">
	<link rel="canonical" href="https://example.com/">
</head>
<body><h1>Hello</h1></body>
</html>`

// writePage writes html to a temp file and returns its path.
func writePage(t *testing.T, name, html string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(html), 0o644))
	return path
}

func run(t *testing.T, m *main.Main, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = m.Run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

// Story: CLI Help and Discovery
//
// Users discover scrapeo capabilities through help output and the
// shortcut listing.

func TestCLI_ShowsHelpWhenAsked(t *testing.T) {
	t.Parallel()

	// Given: a CLI instance
	m := main.NewMain()

	// When: running with --help
	stdout, _, err := run(t, m, "--help")

	// Then: help is displayed without error
	require.NoError(t, err)
	assert.Contains(t, stdout, "scrapeo")
	assert.Contains(t, stdout, "meta")
	assert.Contains(t, stdout, "shortcuts")
}

func TestCLI_ShowsHelpWhenNoArgumentsProvided(t *testing.T) {
	t.Parallel()

	// Given: a CLI instance
	m := main.NewMain()

	// When: running with no arguments
	stdout, _, err := run(t, m)

	// Then: help is shown but an error is returned
	require.Error(t, err)
	assert.Contains(t, stdout, "scrapeo")
}

func TestCLI_ListsShortcuts(t *testing.T) {
	t.Parallel()

	// Given: a CLI instance
	m := main.NewMain()

	// When: listing shortcuts
	stdout, _, err := run(t, m, "shortcuts")

	// Then: every built-in shortcut is listed in table order
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "meta_description"))
	assert.True(t, strings.HasPrefix(lines[1], "robots_meta"))
	assert.True(t, strings.HasPrefix(lines[2], "title_tag"))
	assert.True(t, strings.HasPrefix(lines[3], "canonical"))
	assert.Contains(t, lines[3], `link[rel="canonical"]`)
	assert.Contains(t, lines[3], "extracts href")
}

// Story: Extracting from a local file
//
// Users point scrapeo at saved HTML and ask for shortcut values or for
// ad-hoc attribute/value matches.

func TestCLI_PrintsBareValueForSingleQuery(t *testing.T) {
	t.Parallel()

	// Given: a saved page
	path := writePage(t, "page.html", pageHTML)

	// When: extracting the canonical URL
	stdout, stderr, err := run(t, main.NewMain(), "meta", path, "--canonical")

	// Then: only the value is printed
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/\n", stdout)
	assert.Empty(t, stderr)
}

func TestCLI_PrintsNamedValuesInOrder(t *testing.T) {
	t.Parallel()

	// Given: a saved page
	path := writePage(t, "page.html", pageHTML)

	// When: combining an ad-hoc value search with shortcuts
	stdout, _, err := run(t, main.NewMain(), "meta", path,
		"--val", "og:type", "--canonical", "--title-tag", "--meta-description")

	// Then: the ad-hoc result comes first, then shortcuts in table order
	require.NoError(t, err)
	assert.Equal(t, "adhoc: website\n"+
		"meta_description: An example page\n"+
		"title_tag: Example Domain\n"+
		"canonical: https://example.com/\n", stdout)
}

func TestCLI_AttributeAndValueMatchExactly(t *testing.T) {
	t.Parallel()

	path := writePage(t, "page.html", pageHTML)

	stdout, _, err := run(t, main.NewMain(), "meta", path, "--attr", "name", "--val", "robots")

	require.NoError(t, err)
	assert.Equal(t, "noindex\n", stdout)
}

func TestCLI_AttributeOnlyMatchesPresence(t *testing.T) {
	t.Parallel()

	path := writePage(t, "page.html", pageHTML)

	stdout, _, err := run(t, main.NewMain(), "meta", path, "--attr", "property")

	require.NoError(t, err)
	assert.Equal(t, "website\n", stdout)
}

func TestCLI_SeoAttrSelectsExtractedAttribute(t *testing.T) {
	t.Parallel()

	path := writePage(t, "page.html", pageHTML)

	stdout, _, err := run(t, main.NewMain(), "meta", path,
		"--tag", "link", "--attr", "rel", "--val", "canonical", "--seo-attr", "rel")

	require.NoError(t, err)
	assert.Equal(t, "canonical\n", stdout)
}

func TestCLI_ContentAliasAndShortcutFlag(t *testing.T) {
	t.Parallel()

	path := writePage(t, "page.html", pageHTML)

	// Repeating a shortcut yields a single lookup.
	stdout, _, err := run(t, main.NewMain(), "content", path,
		"--shortcut", "robots_meta", "--robots-meta", "-s", "robots_meta")

	require.NoError(t, err)
	assert.Equal(t, "noindex\n", stdout)
}

func TestCLI_ReadsStdin(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.Stdin = strings.NewReader(pageHTML)

	stdout, _, err := run(t, m, "meta", "-", "--title-tag")

	require.NoError(t, err)
	assert.Equal(t, "Example Domain\n", stdout)
}

// Story: Reporting misses
//
// Every lookup is attempted; misses are reported on stderr and make the
// command fail after all values are printed.

func TestCLI_ReportsNoMatchAndFails(t *testing.T) {
	t.Parallel()

	path := writePage(t, "page.html", pageHTML)

	stdout, stderr, err := run(t, main.NewMain(), "meta", path, "--val", "missing", "--title-tag")

	require.Error(t, err)
	assert.Equal(t, scrapeo.ENOMATCH, scrapeo.ErrorCode(err))
	assert.Equal(t, "title_tag: Example Domain\n", stdout)
	assert.Contains(t, stderr, `adhoc: meta[*="missing"]: no matching element`)
}

func TestCLI_ReportsMissingAttributeDistinctly(t *testing.T) {
	t.Parallel()

	path := writePage(t, "page.html", `<link rel="canonical">`)

	_, stderr, err := run(t, main.NewMain(), "meta", path, "--canonical")

	require.Error(t, err)
	assert.Equal(t, scrapeo.ENOATTR, scrapeo.ErrorCode(err))
	assert.Contains(t, stderr, `canonical: link[rel="canonical"]: <link> has no "href" attribute`)
}

func TestCLI_MixedFailuresKeepPerLookupCodes(t *testing.T) {
	t.Parallel()

	// Given: a page with a canonical link lacking href and no robots meta
	path := writePage(t, "page.html", `<title>T</title><link rel="canonical">`)

	// When: asking for both
	_, stderr, err := run(t, main.NewMain(), "meta", path, "--robots-meta", "--canonical")

	// Then: the overall code does not claim a single kind of miss
	require.Error(t, err)
	assert.Equal(t, scrapeo.EINTERNAL, scrapeo.ErrorCode(err))
	assert.Contains(t, stderr, "robots_meta: meta[name=\"robots\"]: no matching element")
	assert.Contains(t, stderr, `canonical: link[rel="canonical"]: <link> has no "href" attribute`)
}

func TestCLI_RequiresSomethingToExtract(t *testing.T) {
	t.Parallel()

	path := writePage(t, "page.html", pageHTML)

	_, stderr, err := run(t, main.NewMain(), "meta", path)

	require.Error(t, err)
	assert.Equal(t, scrapeo.EINVALID, scrapeo.ErrorCode(err))
	assert.Contains(t, stderr, "nothing to extract")
}

func TestCLI_RejectsUnknownShortcut(t *testing.T) {
	t.Parallel()

	path := writePage(t, "page.html", pageHTML)

	_, stderr, err := run(t, main.NewMain(), "meta", path, "-s", "og_image")

	require.Error(t, err)
	assert.Equal(t, scrapeo.EINVALID, scrapeo.ErrorCode(err))
	assert.Contains(t, stderr, `unknown shortcut "og_image"`)
}

func TestCLI_RequiresSource(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, main.NewMain(), "meta", "--title-tag")

	assert.Error(t, err)
}

// Story: Several sources
//
// Multiple sources are processed independently and grouped in the output
// in the order given.

func TestCLI_GroupsOutputPerSource(t *testing.T) {
	t.Parallel()

	a := writePage(t, "a.html", `<title>Page A</title>`)
	b := writePage(t, "b.html", `<title>Page B</title>`)
	missing := filepath.Join(t.TempDir(), "missing.html")

	stdout, stderr, err := run(t, main.NewMain(), "meta", a, missing, b, "--title-tag")

	require.Error(t, err)
	assert.Equal(t, scrapeo.ENOTFOUND, scrapeo.ErrorCode(err))
	assert.Equal(t, "==> "+a+" <==\ntitle_tag: Page A\n\n"+
		"==> "+missing+" <==\n\n"+
		"==> "+b+" <==\ntitle_tag: Page B\n", stdout)
	assert.Contains(t, stderr, "not found")
}

// Story: URL sources
//
// http(s) sources are fetched; everything else is read from disk.

func TestCLI_FetchesURLSources(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(pageHTML))
	}))
	defer server.Close()

	stdout, stderr, err := run(t, main.NewMain(), "--verbose", "meta", server.URL, "--meta-description")

	require.NoError(t, err)
	assert.Equal(t, "An example page\n", stdout)
	assert.Contains(t, stderr, "msg=fetch")
	assert.Contains(t, stderr, "msg=\"resolve all\"")
}

func TestCLI_UsesInjectedFetcher(t *testing.T) {
	t.Parallel()

	var fetched []string
	m := main.NewMain()
	m.Fetcher = &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			fetched = append(fetched, url)
			if strings.Contains(url, "down") {
				return "", errors.New("connection refused")
			}
			return pageHTML, nil
		},
	}

	stdout, stderr, err := run(t, m, "meta", "https://example.com/", "--rate", "0", "--title-tag")

	require.NoError(t, err)
	assert.Equal(t, "Example Domain\n", stdout)
	assert.Empty(t, stderr)
	assert.Equal(t, []string{"https://example.com/"}, fetched)

	_, stderr, err = run(t, m, "meta", "https://down.example.com/", "--title-tag")

	require.Error(t, err)
	assert.Contains(t, stderr, "connection refused")
}
