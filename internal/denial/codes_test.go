package denial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCode(t *testing.T) {
	c, ok := GetCode(" co-50 ")
	assert.True(t, ok)
	assert.Equal(t, "Not Medically Necessary", c.Name)

	_, ok = GetCode("CO-999")
	assert.False(t, ok)
}

func TestFind(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"Denial CO-50: Not Medically Necessary", []string{"CO-50"}},
		{"co 197 then CO-50 and again CO50", []string{"CO-197", "CO-50"}},
		{"PR-1 deductible", nil},
		{"policy 4.2.1 requires prior auth", nil},
		{"", nil},
		{"DECO-50", nil},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var got []string
			for _, c := range Find(tt.text) {
				got = append(got, c.Key)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllSorted(t *testing.T) {
	all := All()
	assert.Len(t, all, len(codes))
	for i := 1; i < len(all); i++ {
		assert.Less(t, reasonNumber(all[i-1].Key), reasonNumber(all[i].Key))
	}
	assert.Equal(t, "CO-11", all[0].Key)
	assert.Equal(t, "CO-197", all[len(all)-1].Key)
}
