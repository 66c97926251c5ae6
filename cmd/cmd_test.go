package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	yaml "github.com/goccy/go-yaml"
	"github.com/heathj/minidom/internal/config"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<ul id="list">
<li class="item a">one</li>
<li class="item">two <a href="/t">link</a></li>
<li class="item b" data-x="1">three</li>
</ul>`

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestQueryText(t *testing.T) {
	out, _, err := run(t, page, "query", "li.item")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo link\nthree\n", out)
}

func TestQueryFirstAndLimit(t *testing.T) {
	out, _, err := run(t, page, "query", "--first", "li")
	require.NoError(t, err)
	assert.Equal(t, "one\n", out)

	out, _, err = run(t, page, "--limit", "2", "query", "li")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo link\n", out)

	out, _, err = run(t, page, "query", "table")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestQueryExplain(t *testing.T) {
	out, _, err := run(t, "", "query", "--explain", "UL > li.a , [data-x = '1'] #y#z, !!")
	require.NoError(t, err)
	assert.Equal(t, "ul > li.a\n[data-x=\"1\"] #y\n", out)
}

func TestQueryYAML(t *testing.T) {
	out, _, err := run(t, page, "-f", "yaml", "query", "[data-x], a")
	require.NoError(t, err)

	var got []match
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, []match{
		{Tag: "a", Attributes: map[string]string{"href": "/t"}, Text: "link"},
		{Tag: "li", Attributes: map[string]string{"class": "item b", "data-x": "1"}, Text: "three"},
	}, got)
}

func TestQueryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(page), 0o600))

	out, _, err := run(t, "", "query", "#list > li.b", path)
	require.NoError(t, err)
	assert.Equal(t, "three\n", out)

	_, _, err = run(t, "", "query", "li", filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestFind(t *testing.T) {
	out, _, err := run(t, page, "find", "li", "-", "--attr", "class=b item")
	require.NoError(t, err)
	assert.Equal(t, "three\n", out)

	out, _, err = run(t, page, "find", "*", "--attr", "href")
	require.NoError(t, err)
	assert.Equal(t, "link\n", out)

	out, _, err = run(t, page, "find", "--attr", "data-x=1", "-a", "class=a")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestTree(t *testing.T) {
	out, _, err := run(t, "<p class='x'>hi<br></p>", "tree")
	require.NoError(t, err)
	assert.Contains(t, out, "#document")
	assert.Contains(t, out, `<p class="x">`)
	assert.Contains(t, out, `"hi"`)

	out, _, err = run(t, "<p class='x'>hi<br></p>", "tree", "--dump")
	require.NoError(t, err)
	assert.Equal(t, "#document\n| <p>\n|   class=\"x\"\n|   \"hi\"\n|   <br>\n", out)
}

func TestTreeNamesItsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(page), 0o600))

	out, stderr, err := run(t, "", "--log-level", "debug", "tree", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "#document "+path+"\n"), out)
	assert.Contains(t, stderr, "method=parse")
	assert.Contains(t, stderr, "url="+path)

	out, _, err = run(t, page, "tree")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "#document\n"), out)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minidom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: tree\nlimit: 1\n"), 0o600))

	out, _, err := run(t, page, "--config", path, "query", "li")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `<li class="item a">`), out)
	assert.NotContains(t, out, "two")

	out, _, err = run(t, page, "--config", path, "--format", "text", "--limit", "0", "query", "li")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo link\nthree\n", out)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("# nothing set yet\n"), 0o600))
	out, _, err = run(t, page, "-c", empty, "query", "li.b")
	require.NoError(t, err)
	assert.Equal(t, "three\n", out)
}

func TestBadSettings(t *testing.T) {
	_, _, err := run(t, page, "--format", "json", "query", "li")
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidFormat))
	assert.Contains(t, err.Error(), "--format")

	_, _, err = run(t, page, "--log-level", "chatty", "tree")
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidLevel))
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "<p>x</span>", "--log-level", "debug", "query", "p")
	require.NoError(t, err)
	assert.Contains(t, stderr, "method=query")
	assert.Contains(t, stderr, "ignoring </span>")
}
