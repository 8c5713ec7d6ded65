package state_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ocampo/deskplan/equipment"
	"github.com/ocampo/deskplan/kv"
	"github.com/ocampo/deskplan/office"
	"github.com/ocampo/deskplan/state"
)

func twoOffices() *office.Registry {
	return office.NewRegistry([]office.Info{{ID: "north"}, {ID: "south"}})
}

func TestLoad_FirstRun(t *testing.T) {
	ctx := context.Background()
	reg := twoOffices()
	store := state.NewStore(kv.NewMemory(), reg, nil)

	st, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), st.Counter)
	require.Empty(t, st.Equipment)
	require.Equal(t, office.Capacity{}, st.Offices["north"])
	require.Equal(t, office.Capacity{}, st.Offices["south"])
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	reg := twoOffices()
	mem := kv.NewMemory()
	store := state.NewStore(mem, reg, nil)

	st := state.NewState(reg)
	st.Offices["north"] = office.Capacity{Fixed: 5, Rotative: 3}
	st.Equipment = append(st.Equipment,
		equipment.Equipment{ID: st.NextID(), Name: "A", Date: "2024-06-15", Status: equipment.StatusPresent, People: 2, Office: "north"},
		equipment.Equipment{ID: st.NextID(), Name: "B", Date: "2024-06-16", Status: equipment.StatusAbsent, People: 4, Office: "south"},
	)
	require.NoError(t, store.Save(ctx, st))

	loaded, err := state.NewStore(mem, reg, nil).Load(ctx)
	require.NoError(t, err)
	require.Equal(t, st, loaded)
}

func TestSaveLoad_RoundTripEmpty(t *testing.T) {
	ctx := context.Background()
	reg := twoOffices()
	mem := kv.NewMemory()
	store := state.NewStore(mem, reg, nil)

	st := state.NewState(reg)
	require.NoError(t, store.Save(ctx, st))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, st, loaded)
}

func TestLoad_MalformedBlobFallsBack(t *testing.T) {
	ctx := context.Background()
	reg := twoOffices()
	mem := kv.NewMemory()
	require.NoError(t, mem.Set(ctx, state.KeyData, "{not json"))
	require.NoError(t, mem.Set(ctx, state.KeyCounter, "abc"))

	st, err := state.NewStore(mem, reg, nil).Load(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), st.Counter)
	require.Empty(t, st.Equipment)
}

func TestLoad_NewOfficeGetsZeroCapacity(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()

	oldReg := office.NewRegistry([]office.Info{{ID: "north"}})
	st, err := state.NewStore(mem, oldReg, nil).Load(ctx)
	require.NoError(t, err)
	st.Offices["north"] = office.Capacity{Fixed: 2, Rotative: 2}
	require.NoError(t, state.NewStore(mem, oldReg, nil).Save(ctx, st))

	loaded, err := state.NewStore(mem, twoOffices(), nil).Load(ctx)
	require.NoError(t, err)
	require.Equal(t, office.Capacity{Fixed: 2, Rotative: 2}, loaded.Offices["north"])
	require.Equal(t, office.Capacity{}, loaded.Offices["south"])
}

func TestNextID_Monotonic(t *testing.T) {
	st := state.NewState(twoOffices())
	require.Equal(t, int64(1), st.NextID())
	require.Equal(t, int64(2), st.NextID())
	require.Equal(t, int64(3), st.Counter)
}

func TestRemove(t *testing.T) {
	st := state.NewState(twoOffices())
	st.Equipment = []equipment.Equipment{
		{ID: 1, Office: "north"},
		{ID: 2, Office: "south"},
	}

	// wrong office scope: no-op
	require.False(t, st.Remove(1, "south"))
	require.Len(t, st.Equipment, 2)

	require.True(t, st.Remove(1, "north"))
	require.Len(t, st.Equipment, 1)
	require.False(t, st.Remove(1, "north"))
}

func TestForOffice(t *testing.T) {
	st := state.NewState(twoOffices())
	st.Equipment = []equipment.Equipment{
		{ID: 1, Office: "north"},
		{ID: 2, Office: "south"},
		{ID: 3, Office: "north"},
	}

	north := st.ForOffice("north")
	require.Len(t, north, 2)
	require.Equal(t, int64(1), north[0].ID)
	require.Equal(t, int64(3), north[1].ID)
}
