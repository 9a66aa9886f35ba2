package cmds

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AbsaOSS/libvcx/agent/status"
	"github.com/lainio/err2/assert"
)

func testCmd(t *testing.T) Cmd {
	dir := t.TempDir()
	return Cmd{
		DBName:     filepath.Join(dir, "agent.bolt"),
		KeysetFile: filepath.Join(dir, "agent.keyset"),
		AgencyURL:  "http://localhost:8080",
	}
}

func TestValidate(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	c := testCmd(t)
	assert.NoError(c.Validate())

	noDB := c
	noDB.DBName = ""
	assert.Error(noDB.Validate())

	noKeyset := c
	noKeyset.KeysetFile = ""
	assert.Error(noKeyset.Validate())

	badURL := c
	badURL.AgencyURL = "localhost"
	assert.Error(badURL.Validate())

	shortKey := c
	shortKey.Key = "abcd"
	assert.Error(shortKey.Validate())

	withKey := c
	withKey.Key = strings.Repeat("0f", 32)
	assert.NoError(withKey.Validate())
}

func TestSaveAndLoadConnection(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	c := testCmd(t)
	c.Key = strings.Repeat("1a", 32)

	env, err := c.Open()
	assert.NoError(err)
	h := env.ConnectionCreate("bob")
	assert.NoError(env.SaveConnection("bob", h))

	_, err = env.LoadConnection("alice")
	assert.Error(err)

	name, err := env.Backup()
	assert.NoError(err)
	_, err = os.Stat(name)
	assert.NoError(err)
	env.Close()

	env, err = c.Open()
	assert.NoError(err)
	defer env.Close()

	h, err = env.LoadConnection("bob")
	assert.NoError(err)
	st, err := env.ConnectionState(h)
	assert.NoError(err)
	assert.Equal(st, status.Initialized)

	all, err := env.Connections()
	assert.NoError(err)
	assert.Equal(len(all), 1)
}

func TestOpenClosesStorageOnError(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	c := testCmd(t)
	assert.NoError(os.WriteFile(c.KeysetFile, []byte("not a keyset"), 0600))
	_, err := c.Open()
	assert.Error(err)

	// the storage lock must be free for the next open
	assert.NoError(os.Remove(c.KeysetFile))
	env, err := c.Open()
	assert.NoError(err)
	env.Close()
}

func TestJSONResult(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	data, err := JSONResult{V: map[string]int{"state": 4}}.JSON()
	assert.NoError(err)
	var got map[string]int
	assert.NoError(json.Unmarshal(data, &got))
	assert.Equal(got["state"], 4)
}

func TestFprintln(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	var b strings.Builder
	Fprintln(&b, "a", 1)
	Fprintf(&b, "%s-%d", "b", 2)
	Fprint(nil, "ignored")
	assert.Equal(b.String(), "a 1\nb-2")
}
