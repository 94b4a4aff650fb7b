package configs

import (
	"os"
	"testing"

	"github.com/magiconair/properties/assert"
)

func TestCapacityFormulas(t *testing.T) {
	orig := NumWare
	defer SetNumWare(orig)
	SetNumWare(2)

	assert.Equal(t, WarehouseTblSize(), 8)
	assert.Equal(t, DistrictTblSize(), 24)
	assert.Equal(t, ItemTblSize(), 100000)
	assert.Equal(t, StockTblSize(), 200000)
}

func TestAssertPanicsOnFalse(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected Assert to panic")
		}
	}()
	Assert(false, "should panic")
}

func TestAssertPassesThroughTrue(t *testing.T) {
	assert.Equal(t, Assert(true, "fine"), true)
}

func TestLoadConfigOverridesParameters(t *testing.T) {
	origW, origP := NumWare, NumPrograms
	defer func() { SetNumWare(origW); SetNumPrograms(origP) }()

	f, err := os.CreateTemp("", "tpcc-*.properties")
	assert.Equal(t, err, nil)
	defer os.Remove(f.Name())
	_, err = f.WriteString("numware=4\nnumprograms=500\n")
	assert.Equal(t, err, nil)
	f.Close()

	err = LoadConfig(f.Name())
	assert.Equal(t, err, nil)
	assert.Equal(t, NumWare, int32(4))
	assert.Equal(t, NumPrograms, int32(500))
}
