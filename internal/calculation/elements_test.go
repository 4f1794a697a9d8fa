package calculation

import (
	"testing"
	"time"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelation(t *testing.T) {
	tests := []struct {
		a, b domain.Element
		want ElementRelation
	}{
		{domain.Wood, domain.Wood, Same},
		{domain.Wood, domain.Fire, Generates},
		{domain.Fire, domain.Wood, GeneratedBy},
		{domain.Wood, domain.Earth, Destroys},
		{domain.Earth, domain.Wood, DestroyedBy},
		{domain.Water, domain.Wood, Generates},
		{domain.Water, domain.Fire, Destroys},
		{domain.Metal, domain.Wood, Destroys},
		{domain.Earth, domain.Water, Destroys},
		{domain.Fire, domain.Metal, Destroys},
		{domain.Element(-1), domain.Wood, Unrelated},
	}
	for _, tt := range tests {
		t.Run(tt.a.English()+"-"+tt.b.English(), func(t *testing.T) {
			assert.Equal(t, tt.want, Relation(tt.a, tt.b))
		})
	}
}

func TestRelationIsTotalAndAntisymmetric(t *testing.T) {
	inverse := map[ElementRelation]ElementRelation{
		Same:        Same,
		Generates:   GeneratedBy,
		GeneratedBy: Generates,
		Destroys:    DestroyedBy,
		DestroyedBy: Destroys,
	}
	for _, a := range domain.AllElements {
		generates, destroys := 0, 0
		for _, b := range domain.AllElements {
			r := Relation(a, b)
			require.NotEqual(t, Unrelated, r, "%s %s", a, b)
			assert.Equal(t, inverse[r], Relation(b, a))
			switch r {
			case Generates:
				generates++
			case Destroys:
				destroys++
			}
		}
		assert.Equal(t, 1, generates)
		assert.Equal(t, 1, destroys)
	}
}

func TestBalanceScore(t *testing.T) {
	even := BalanceScore(map[domain.Element]int{domain.Wood: 1, domain.Fire: 1, domain.Earth: 1, domain.Metal: 1, domain.Water: 1})
	for _, e := range domain.AllElements {
		assert.InDelta(t, 0.5, even[e], 1e-12)
	}

	skewed := BalanceScore(map[domain.Element]int{domain.Water: 3, domain.Wood: 1})
	assert.Equal(t, 1.0, skewed[domain.Water])
	assert.InDelta(t, 0.625, skewed[domain.Wood], 1e-12)
	assert.Zero(t, skewed[domain.Fire])
	assert.Len(t, skewed, 5)

	empty := BalanceScore(nil)
	assert.Len(t, empty, 5)
	for _, e := range domain.AllElements {
		assert.Zero(t, empty[e])
	}
}

func TestAnalyzePillars(t *testing.T) {
	ld, err := NewLunarCalendar().GregorianToLunar(time.Date(2025, 7, 13, 16, 26, 0, 0, time.UTC))
	require.NoError(t, err)

	comp := AnalyzePillars(ld)
	assert.Equal(t, map[domain.Element]int{
		domain.Wood: 1, domain.Fire: 0, domain.Earth: 0, domain.Metal: 1, domain.Water: 2,
	}, comp.Distribution)
	assert.Equal(t, []domain.Element{domain.Water}, comp.Dominant)
	assert.Equal(t, []domain.Element{domain.Fire, domain.Earth}, comp.Weak)
	assert.False(t, comp.Balanced)
	assert.Equal(t, 1.0, comp.Balance[domain.Water])
	assert.InDelta(t, 0.625, comp.Balance[domain.Wood], 1e-12)
}
