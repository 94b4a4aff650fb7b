package schema

import (
	"testing"

	"github.com/magiconair/properties/assert"
)

func TestSentinelDefaults(t *testing.T) {
	w := NewWarehouse()
	assert.Equal(t, w.WID, IntSentinel)
	assert.Equal(t, w.Tax, FloatSentinel)
	assert.Equal(t, w.Name.IsZero(), true)
}

func TestFloatEqualTolerance(t *testing.T) {
	assert.Equal(t, FloatEqual(10.00, 10.001), true)
	assert.Equal(t, FloatEqual(10.00, 10.02), false)
}

func TestWarehouseEqual(t *testing.T) {
	a := NewWarehouse()
	a.WID = 1
	a.Tax = 0.05
	b := a
	b.Tax = 0.0501
	assert.Equal(t, a.Equal(b), true)

	b.WID = 2
	assert.Equal(t, a.Equal(b), false)
}

func TestStockDistInfoSelectsByDistrict(t *testing.T) {
	s := NewStock()
	s.Dist[0].Assign("dist-01")
	s.Dist[9].Assign("dist-10")

	assert.Equal(t, s.DistInfo(1).String(), "dist-01")
	assert.Equal(t, s.DistInfo(10).String(), "dist-10")
}

func TestCustomerEqualToleratesFloatNoise(t *testing.T) {
	a := NewCustomer()
	a.CID, a.DID, a.WID = 1, 1, 1
	a.Balance = 100.00
	b := a
	b.Balance = 100.004
	assert.Equal(t, a.Equal(b), true)
}
