package tools

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/AbsaOSS/libvcx/cmds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCmd(t *testing.T) {
	assert.ErrorIs(t, ValidateCmd{}.Validate(), cmds.ErrInvalid)

	c := ValidateCmd{
		DID:    "did:sov:8XFh8yBzrpJQmNyZzgoTqB",
		Verkey: "EkVTa7SCJ5SntpYyX7CSb2pcBhiVGT9kWSagA8a9T69A",
		URL:    "http://localhost:8080",
	}
	require.NoError(t, c.Validate())
	r, err := c.Exec(nil)
	require.NoError(t, err)
	data, err := r.JSON()
	require.NoError(t, err)
	var got validated
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, c.DID, got.DID)
	assert.Equal(t, c.Verkey, got.Verkey)
	assert.Equal(t, c.URL, got.URL)

	_, err = ValidateCmd{DID: "0XFh8yBzrpJQmNyZzgoTqB"}.Exec(nil)
	assert.Error(t, err)
	_, err = ValidateCmd{URL: "localhost"}.Exec(nil)
	assert.Error(t, err)
}

func TestBackupAndList(t *testing.T) {
	dir := t.TempDir()
	base := cmds.Cmd{
		DBName:     filepath.Join(dir, "agent.bolt"),
		KeysetFile: filepath.Join(dir, "agent.keyset"),
		AgencyURL:  "http://localhost:8080",
	}
	env, err := base.Open()
	require.NoError(t, err)
	require.NoError(t, env.SaveConnection("bob", env.ConnectionCreate("bob")))
	env.Close()

	var out bytes.Buffer
	_, err = ListCmd{Cmd: base}.Exec(&out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Initialized")

	out.Reset()
	_, err = BackupCmd{Cmd: base}.Exec(&out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "agent.bolt_backup")
}
