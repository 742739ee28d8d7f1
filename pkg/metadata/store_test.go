package metadata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/hyprpier/pkg/errors"
	"github.com/arthur-debert/hyprpier/pkg/filesystem"
)

const recordPath = "/home/user/.config/hyprpier/.metadata.json"

func TestStore_LoadMissingIsEmpty(t *testing.T) {
	s := NewStore(filesystem.NewMemory(), recordPath)

	m, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, m.ActiveProfile)
	assert.Nil(t, m.UndockedProfile)
	assert.Empty(t, m.DockProfiles)
}

func TestStore_RoundTrip(t *testing.T) {
	fixClock(t, 1700000000)
	fsys := filesystem.NewMemory()
	s := NewStore(fsys, recordPath)

	m := &Metadata{}
	m.LinkDock("d1-uuid", "desk")
	m.SetUndocked("laptop")
	m.SetActive("desk")
	require.NoError(t, s.Save(m))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, m, loaded)

	_, err = fsys.Stat("/home/user/.config/hyprpier/.metadata.tmp")
	assert.Error(t, err, "temporary file should be renamed away")
}

func TestStore_WireFormat(t *testing.T) {
	fsys := filesystem.NewMemory()
	s := NewStore(fsys, recordPath)

	m := &Metadata{
		ActiveProfile: strPtr("desk"),
		LastModified:  strPtr("1700000000"),
		DockProfiles:  map[string]string{"d1-uuid": "desk"},
	}
	require.NoError(t, s.Save(m))

	data, err := fsys.ReadFile(recordPath)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "desk", raw["active_profile"])
	assert.Equal(t, "1700000000", raw["last_modified"])
	assert.Equal(t, map[string]interface{}{"d1-uuid": "desk"}, raw["dock_profiles"])
	assert.Contains(t, raw, "undocked_profile")
	assert.Nil(t, raw["undocked_profile"])
}

func TestStore_WireFormat_EmptyRecord(t *testing.T) {
	fixClock(t, 1700000000)
	fsys := filesystem.NewMemory()
	s := NewStore(fsys, recordPath)

	m := &Metadata{}
	m.SetActive("desk")
	require.NoError(t, s.Save(m))
	assert.Nil(t, m.DockProfiles, "Save must not mutate the caller's record")

	data, err := fsys.ReadFile(recordPath)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, map[string]interface{}{}, raw["dock_profiles"])
	assert.Contains(t, string(data), `"dock_profiles": {}`)
}

func TestStore_LoadFillsMissingDockMap(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/home/user/.config/hyprpier", 0755))
	require.NoError(t, fsys.WriteFile(recordPath, []byte(`{"active_profile": "desk"}`), 0644))

	m, err := NewStore(fsys, recordPath).Load()
	require.NoError(t, err)
	require.NotNil(t, m.DockProfiles)
	assert.Empty(t, m.DockProfiles)
}

func TestStore_LoadMalformed(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/home/user/.config/hyprpier", 0755))
	require.NoError(t, fsys.WriteFile(recordPath, []byte("{not json"), 0644))

	_, err := NewStore(fsys, recordPath).Load()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
}

func TestStore_Update(t *testing.T) {
	s := NewStore(filesystem.NewMemory(), recordPath)

	require.NoError(t, s.Update(func(m *Metadata) error {
		m.LinkDock("d1-uuid", "desk")
		return nil
	}))
	require.NoError(t, s.Update(func(m *Metadata) error {
		m.LinkDock("d2-uuid", "office")
		return nil
	}))

	m, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, m.DockProfiles, 2)

	boom := errors.New(errors.ErrValidation, "nope")
	err = s.Update(func(m *Metadata) error {
		m.UnlinkDock("d1-uuid")
		return boom
	})
	assert.ErrorIs(t, err, boom)

	m, err = s.Load()
	require.NoError(t, err)
	assert.Len(t, m.DockProfiles, 2, "failed update must not be saved")
}
