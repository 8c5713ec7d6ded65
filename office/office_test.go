package office_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ocampo/deskplan/office"
)

func TestNewRegistry_Defaults(t *testing.T) {
	reg := office.NewRegistry(nil)
	require.Equal(t, office.DefaultID, reg.Default())
	require.True(t, reg.Contains(office.DefaultID))
	require.Equal(t, []office.ID{office.DefaultID}, reg.IDs())
}

func TestNewRegistry_DropsBlankAndDuplicate(t *testing.T) {
	reg := office.NewRegistry([]office.Info{
		{ID: "north", Name: "North Wing"},
		{ID: "  "},
		{ID: "north", Name: "dup"},
		{ID: "south"},
	})

	require.Equal(t, []office.ID{"north", "south"}, reg.IDs())
	require.Equal(t, office.ID("north"), reg.Default())
	require.False(t, reg.Contains("west"))

	infos := reg.Infos()
	require.Equal(t, "North Wing", infos[0].Name)
	require.Equal(t, "south", infos[1].Name)
}

func TestParseSeats(t *testing.T) {
	require.Equal(t, 7, office.ParseSeats("7"))
	require.Equal(t, 7, office.ParseSeats(" 7 "))
	require.Equal(t, 0, office.ParseSeats("abc"))
	require.Equal(t, 0, office.ParseSeats(""))
	require.Equal(t, 0, office.ParseSeats("-3"))
}
